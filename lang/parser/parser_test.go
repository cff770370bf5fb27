package parser_test

import (
	"fmt"
	"testing"

	"github.com/mna/nenuphar-lox/lang/ast"
	"github.com/mna/nenuphar-lox/lang/parser"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	prog, err := parser.Parse("t.lox", []byte(src+"\n"))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)
	es, ok := prog.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok, "expected a single expression statement, got %T", prog.Stmts[0])
	return es.X
}

func TestParseLeftAssociativity(t *testing.T) {
	e := parseExpr(t, "1-2-3")
	outer, ok := e.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "-", outer.Op.String())
	inner, ok := outer.Left.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "-", inner.Op.String())
	require.Equal(t, "1", inner.Left.(*ast.NumberLit).Raw)
	require.Equal(t, "2", inner.Right.(*ast.NumberLit).Raw)
	require.Equal(t, "3", outer.Right.(*ast.NumberLit).Raw)
}

func TestParsePrecedenceMultiplicativeOverAdditive(t *testing.T) {
	e := parseExpr(t, "1+2*3")
	b, ok := e.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "+", b.Op.String())
	require.Equal(t, "1", b.Left.(*ast.NumberLit).Raw)
	mul, ok := b.Right.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "*", mul.Op.String())
}

func TestParsePrecedenceUnaryOverEquality(t *testing.T) {
	e := parseExpr(t, "!a == b")
	b, ok := e.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, "==", b.Op.String())
	_, ok = b.Left.(*ast.Unary)
	require.True(t, ok)
	_, ok = b.Right.(*ast.Ident)
	require.True(t, ok)
}

func TestParsePrecedenceAndOverOr(t *testing.T) {
	e := parseExpr(t, "a || b && c")
	l, ok := e.(*ast.Logical)
	require.True(t, ok)
	require.Equal(t, "||", l.Op.String())
	_, ok = l.Left.(*ast.Ident)
	require.True(t, ok)
	r, ok := l.Right.(*ast.Logical)
	require.True(t, ok)
	require.Equal(t, "&&", r.Op.String())
}

func TestParseNewlineTerminatesStatement(t *testing.T) {
	prog, err := parser.Parse("t.lox", []byte("let a = 1\nlet b = 2\n"))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 2)
}

func TestParseNewlineInsideParensDoesNotTerminate(t *testing.T) {
	prog, err := parser.Parse("t.lox", []byte("let a = (\n1 +\n2\n)\n"))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)
	vd := prog.Stmts[0].(*ast.VarDecl)
	_, ok := vd.Init.(*ast.Binary)
	require.True(t, ok)
}

func TestParseMissingTerminatorIsError(t *testing.T) {
	_, err := parser.Parse("t.lox", []byte("let a = 1 let b = 2\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), parser.KindMissingSemicolon)
}

func TestParseArityCapArguments(t *testing.T) {
	var args string
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ", "
		}
		args += fmt.Sprintf("%d", i)
	}
	_, err := parser.Parse("t.lox", []byte(fmt.Sprintf("f(%s)\n", args)))
	require.Error(t, err)
	require.Contains(t, err.Error(), parser.KindParseError)
}

func TestParseArityCapParameters(t *testing.T) {
	var params string
	for i := 0; i < 256; i++ {
		if i > 0 {
			params += ", "
		}
		params += fmt.Sprintf("p%d", i)
	}
	_, err := parser.Parse("t.lox", []byte(fmt.Sprintf("fn f(%s) {}\n", params)))
	require.Error(t, err)
	require.Contains(t, err.Error(), parser.KindParseError)
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := parser.Parse("t.lox", []byte("1 + 1 = 2\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), parser.KindInvalidAssignment)
}

func TestParseVarDecl(t *testing.T) {
	prog, err := parser.Parse("t.lox", []byte("let x = 1\n"))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)
	vd, ok := prog.Stmts[0].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, "x", vd.Id.Name)
}

func TestParseFuncDecl(t *testing.T) {
	prog, err := parser.Parse("t.lox", []byte("fn add(a, b) { return a + b }\n"))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)
	fd, ok := prog.Stmts[0].(*ast.FuncDecl)
	require.True(t, ok)
	require.Equal(t, "add", fd.Id.Name)
	require.Len(t, fd.Params, 2)
	require.Len(t, fd.Body, 1)
}

func TestParseClassDeclWithSuperAndMethods(t *testing.T) {
	src := `class B extends A {
  init(x) { this.x = x }
  greet() { print this.x }
}
`
	prog, err := parser.Parse("t.lox", []byte(src))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)
	cd, ok := prog.Stmts[0].(*ast.ClassDecl)
	require.True(t, ok)
	require.Equal(t, "B", cd.Id.Name)
	require.NotNil(t, cd.Super)
	require.Equal(t, "A", cd.Super.Name)
	require.Len(t, cd.Methods, 2)
	require.Equal(t, "init", cd.Methods[0].Id.Name)
}

func TestParseIfElseWhile(t *testing.T) {
	src := `if (a < b) { print a } else { print b }
while (a < b) { a = a + 1 }
`
	prog, err := parser.Parse("t.lox", []byte(src))
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 2)
	_, ok := prog.Stmts[0].(*ast.If)
	require.True(t, ok)
	_, ok = prog.Stmts[1].(*ast.While)
	require.True(t, ok)
}

func TestParseGetSetSuperThis(t *testing.T) {
	src := `class C extends A {
  m() { this.x = super.m() }
}
`
	prog, err := parser.Parse("t.lox", []byte(src))
	require.NoError(t, err)
	cd := prog.Stmts[0].(*ast.ClassDecl)
	es := cd.Methods[0].Body[0].(*ast.ExprStmt)
	set, ok := es.X.(*ast.Set)
	require.True(t, ok)
	_, ok = set.Object.(*ast.This)
	require.True(t, ok)
	call, ok := set.Value.(*ast.Call)
	require.True(t, ok)
	_, ok = call.Callee.(*ast.Super)
	require.True(t, ok)
}

func TestParseCallChaining(t *testing.T) {
	e := parseExpr(t, "a.b(1, 2).c")
	get, ok := e.(*ast.Get)
	require.True(t, ok)
	require.Equal(t, "c", get.Property.Name)
	call, ok := get.Object.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}
