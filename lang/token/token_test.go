package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		if k.String() == "" {
			t.Errorf("missing string representation of kind %d", k)
		}
	}
}

func TestKeywordsRoundTrip(t *testing.T) {
	for word, kind := range Keywords {
		if kind != True && kind != False && kind != Null {
			require.Equal(t, word, kindNames[kind])
		}
	}
	require.Equal(t, KwLet, Keywords["let"])
	require.Equal(t, KwSuper, Keywords["super"])
	require.Equal(t, True, Keywords["true"])
	require.Equal(t, False, Keywords["false"])
	require.Equal(t, Null, Keywords["null"])
}

func TestOperatorForKind(t *testing.T) {
	cases := []struct {
		kind Kind
		want Operator
	}{
		{Plus, OpAdd},
		{Minus, OpSub},
		{Star, OpMul},
		{Slash, OpDiv},
		{Assign, OpAssign},
		{Eq, OpEq},
		{Neq, OpNeq},
		{Lt, OpLt},
		{Le, OpLe},
		{Gt, OpGt},
		{Ge, OpGe},
		{Bang, OpNot},
		{AndAnd, OpAnd},
		{OrOr, OpOr},
	}
	for _, c := range cases {
		t.Run(c.want.String(), func(t *testing.T) {
			got, ok := OperatorForKind(c.kind)
			require.True(t, ok)
			require.Equal(t, c.want, got)
		})
	}

	_, ok := OperatorForKind(Identifier)
	require.False(t, ok)
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Identifier, Raw: "foo"}
	require.Equal(t, "foo", tok.String())

	tok = Token{Kind: EOF}
	require.Equal(t, "end of file", tok.String())
}
