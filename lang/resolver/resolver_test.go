package resolver_test

import (
	"testing"

	"github.com/mna/nenuphar-lox/lang/ast"
	"github.com/mna/nenuphar-lox/lang/parser"
	"github.com/mna/nenuphar-lox/lang/resolver"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src string) (*ast.Program, resolver.Locals, error) {
	t.Helper()
	prog, err := parser.Parse("t.lox", []byte(src))
	require.NoError(t, err)
	locals, err := resolver.Resolve(prog)
	return prog, locals, err
}

func TestResolveRejectsOwnInitializerRead(t *testing.T) {
	_, _, err := resolve(t, "let a = a\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), resolver.KindSyntaxError)
}

func TestResolveRejectsSameScopeRedeclaration(t *testing.T) {
	_, _, err := resolve(t, "{ let a = 1\nlet a = 2 }\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), resolver.KindDeclaredError)
}

func TestResolveAllowsRedeclarationAcrossScopes(t *testing.T) {
	_, _, err := resolve(t, "let a = 1\n{ let a = 2 }\n")
	require.NoError(t, err)
}

func TestResolveRejectsTopLevelReturn(t *testing.T) {
	_, _, err := resolve(t, "return 1\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), resolver.KindSyntaxError)
}

func TestResolveRejectsThisOutsideClass(t *testing.T) {
	_, _, err := resolve(t, "print this\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "'this'")
}

func TestResolveRejectsSuperOutsideClass(t *testing.T) {
	_, _, err := resolve(t, "print super.m\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "'super'")
}

func TestResolveRejectsSuperWithoutSuperclass(t *testing.T) {
	_, _, err := resolve(t, "class A { m() { print super.m() } }\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no superclass")
}

func TestResolveRejectsSelfExtend(t *testing.T) {
	_, _, err := resolve(t, "class A extends A {}\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), resolver.KindSyntaxError)
}

func TestResolveRejectsValueReturnFromInitializer(t *testing.T) {
	_, _, err := resolve(t, "class A { init() { return 1 } }\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "initializer")
}

func TestResolveAllowsBareReturnFromInitializer(t *testing.T) {
	_, _, err := resolve(t, "class A { init() { return } }\n")
	require.NoError(t, err)
}

func TestResolveClosureDepth(t *testing.T) {
	src := "fn make() { let i = 0\nfn inc() { i = i + 1\nreturn i }\nreturn inc }\n"
	prog, locals, err := resolve(t, src)
	require.NoError(t, err)

	outer := prog.Stmts[0].(*ast.FuncDecl)
	inner := outer.Body[1].(*ast.FuncDecl)
	assignStmt := inner.Body[0].(*ast.ExprStmt)
	assign := assignStmt.X.(*ast.Assign)

	depth, ok := locals[assign.Left.Sp.Key("i")]
	require.True(t, ok)
	require.Equal(t, 1, depth)
}

func TestResolveUnresolvedNameIsLeftAsGlobal(t *testing.T) {
	_, locals, err := resolve(t, "print undeclared\n")
	require.NoError(t, err)
	require.Empty(t, locals)
}

func TestResolveParamShadowingIsDefinedBeforeBody(t *testing.T) {
	_, locals, err := resolve(t, "fn f(a) { return a }\n")
	require.NoError(t, err)
	require.Len(t, locals, 1)
}
