package diag

import (
	"testing"

	"github.com/mna/nenuphar-lox/lang/token"
	"github.com/stretchr/testify/require"
)

func span(line, col int) token.Span {
	return token.Span{Filename: "f.lox", Loc: token.Loc{Start: token.MakePos(line, col)}}
}

func TestListErrEmpty(t *testing.T) {
	var l List
	require.NoError(t, l.Err())
}

func TestListAddAndFormat(t *testing.T) {
	var l List
	l.Add("ReferenceError", "x is not defined", span(1, 7))
	err := l.Err()
	require.Error(t, err)
	require.Equal(t, "ReferenceError: x is not defined, at: f.lox:1:7", err.Error())
}

func TestListSort(t *testing.T) {
	var l List
	l.Add("A", "second", span(3, 1))
	l.Add("B", "first", span(1, 1))
	l.Sort()
	require.Equal(t, "first", l.Entries()[0].Msg)
	require.Equal(t, "second", l.Entries()[1].Msg)
}
