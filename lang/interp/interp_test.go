package interp_test

import (
	"strings"
	"testing"

	"github.com/mna/nenuphar-lox/lang/interp"
	"github.com/mna/nenuphar-lox/lang/parser"
	"github.com/mna/nenuphar-lox/lang/resolver"
	"github.com/stretchr/testify/require"
)

// run parses, resolves and interprets src, returning the lines written via
// `print` (in order) and any error from the interpreter. A parse or resolve
// error fails the test.
func run(t *testing.T, src string) ([]string, error) {
	t.Helper()
	prog, err := parser.Parse("t.lox", []byte(src))
	require.NoError(t, err)
	locals, err := resolver.Resolve(prog)
	require.NoError(t, err)

	var out strings.Builder
	it := interp.New(&out, locals)
	if err := it.Run(prog); err != nil {
		return nil, err
	}
	text := strings.TrimRight(out.String(), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// Scenario A: scope and closure.
func TestScenarioScopeAndClosure(t *testing.T) {
	lines, err := run(t, "let a = \"global\"\n{ let a = \"inner\"\nprint a }\nprint a\n")
	require.NoError(t, err)
	require.Equal(t, []string{"inner", "global"}, lines)
}

// Scenario B / Property 9: lexical closure.
func TestScenarioCounterClosure(t *testing.T) {
	src := "fn make() { let i = 0\nfn inc() { i = i + 1\nprint i }\nreturn inc }\n" +
		"let c = make()\nc()\nc()\nc()\n"
	lines, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, lines)
}

// Scenario C: classes, inheritance, super.
func TestScenarioInheritanceAndSuper(t *testing.T) {
	src := `class A { greet() { print "A" } }
class B extends A { greet() { super.greet()
print "B" } }
B().greet()
`
	lines, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, lines)
}

// Scenario D: initializer.
func TestScenarioInitializer(t *testing.T) {
	src := `class Point { init(x, y) { this.x = x
this.y = y }
sum() { return this.x + this.y } }
print Point(3, 4).sum()
`
	lines, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"7"}, lines)
}

// Scenario E: while with early return.
func TestScenarioWhileEarlyReturn(t *testing.T) {
	src := `fn count(n) { while (n < 5) { if (n == 3) return n
print n
n = n + 1 } }
count(0)
`
	lines, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, lines)
}

// Scenario F: reference error.
func TestScenarioReferenceError(t *testing.T) {
	_, err := run(t, "print x\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), interp.KindReferenceError)
}

// Property 10: method binding identity.
func TestMethodBindingIdentityAcrossCalls(t *testing.T) {
	src := `class Counter { init() { this.n = 0 }
bump() { this.n = this.n + 1
return this.n } }
let obj = Counter()
let m = obj.bump
print m()
print m()
`
	lines, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, lines)
}

// Property 11: a method not defined on the subclass is found on the
// superclass.
func TestInheritedMethodFoundOnSuperclass(t *testing.T) {
	src := `class A { greet() { print "from A" } }
class B extends A {}
B().greet()
`
	lines, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"from A"}, lines)
}

// Property 12: bare return inside init still yields the instance.
func TestBareReturnInInitializerYieldsInstance(t *testing.T) {
	src := `class Point { init(x) { this.x = x
return } }
print Point(5).x
`
	lines, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"5"}, lines)
}

// Property 13: short-circuit evaluation.
func TestShortCircuitAndDoesNotCallRight(t *testing.T) {
	src := `fn boom() { print "called"
return true }
if (false && boom()) { print "unreachable" }
print "done"
`
	lines, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"done"}, lines)
}

func TestShortCircuitOrDoesNotCallRight(t *testing.T) {
	src := `fn boom() { print "called"
return true }
if (true || boom()) { print "done" }
`
	lines, err := run(t, src)
	require.NoError(t, err)
	require.Equal(t, []string{"done"}, lines)
}

// Property 14: arithmetic/comparison operand-type table.
func TestStringConcatenation(t *testing.T) {
	lines, err := run(t, `print "foo" + "bar"`+"\n")
	require.NoError(t, err)
	require.Equal(t, []string{"foobar"}, lines)
}

func TestStringEqualityIsRejected(t *testing.T) {
	_, err := run(t, `print "a" == "a"`+"\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), interp.KindSyntaxError)
}

func TestMixedTypeArithmeticIsRejected(t *testing.T) {
	_, err := run(t, `print 1 + "a"`+"\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), interp.KindSyntaxError)
}

func TestNumberComparison(t *testing.T) {
	lines, err := run(t, "print 1 < 2\nprint 2 <= 2\nprint 3 > 4\n")
	require.NoError(t, err)
	require.Equal(t, []string{"true", "true", "false"}, lines)
}

// Property 15: assignment to an undefined name raises ReferenceError.
func TestAssignToUndefinedNameIsReferenceError(t *testing.T) {
	_, err := run(t, "x = 1\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), interp.KindReferenceError)
}

func TestArgumentCountMismatchIsArgsMismatched(t *testing.T) {
	_, err := run(t, "fn f(a, b) { return a }\nf(1)\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), interp.KindArgsMismatched)
}

func TestCallingNonCallableIsSyntaxError(t *testing.T) {
	_, err := run(t, "let a = 1\na()\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), interp.KindSyntaxError)
}
