package token

import (
	"fmt"
	"testing"
)

func TestMakePos(t *testing.T) {
	cases := []struct {
		line, col int
	}{
		{1, 1},
		{2, 7},
		{120, 3},
		{MaxLines, MaxCols},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d:%d", c.line, c.col), func(t *testing.T) {
			p := MakePos(c.line, c.col)
			gotLine, gotCol := p.LineCol()
			if gotLine != c.line || gotCol != c.col {
				t.Errorf("want %d:%d, got %d:%d", c.line, c.col, gotLine, gotCol)
			}
			if p.Unknown() {
				t.Errorf("want known position")
			}
		})
	}
}

func TestPosUnknown(t *testing.T) {
	var zero Pos
	if !zero.Unknown() {
		t.Errorf("want zero value Pos to be unknown")
	}
}

func TestSpanKey(t *testing.T) {
	sp := Span{Filename: "f.lox", Loc: Loc{Start: MakePos(3, 5), End: MakePos(3, 6)}}
	want := "a@3:5"
	if got := sp.Key("a"); got != want {
		t.Errorf("want %q, got %q", want, got)
	}

	// two occurrences of the same name at different positions must produce
	// distinct keys: this is the basis of identifier-identity for resolution.
	other := Span{Filename: "f.lox", Loc: Loc{Start: MakePos(4, 5), End: MakePos(4, 6)}}
	if sp.Key("a") == other.Key("a") {
		t.Errorf("want distinct keys for distinct positions")
	}
}

func TestSpanString(t *testing.T) {
	sp := Span{Filename: "f.lox", Loc: Loc{Start: MakePos(1, 7)}}
	if got, want := sp.String(), "f.lox:1:7"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}
