// Package resolver performs a single static pass over a parsed Program,
// computing for each identifier reference that denotes a local variable the
// number of enclosing scopes to skip to reach its binding. The result is a
// side table consumed by the interpreter; the AST itself is never mutated.
package resolver

import (
	"fmt"
	"io"
	"sort"

	"github.com/mna/nenuphar-lox/lang/ast"
	"github.com/mna/nenuphar-lox/lang/diag"
	"github.com/mna/nenuphar-lox/lang/token"
)

// Trace, when non-nil, receives one line per resolved local occurrence
// after a successful Resolve: "name@line:col -> depth". It is the
// structured replacement for an ad hoc debug print, gated by the CLI's
// NENUPHAR_LOX_TRACE_RESOLVER environment override.
var Trace io.Writer

// The closed set of ResolveError kinds, surfaced as the Kind field of each
// *diag.Entry accumulated while resolving.
const (
	KindError         = "Error"
	KindDeclaredError = "DeclaredError"
	KindSyntaxError   = "SyntaxError"
)

// FunctionKind identifies the kind of function body currently being
// resolved, used to validate "return" and "this"/"super" usage.
type FunctionKind int

// The enumeration of function contexts a resolver walk may be inside.
const (
	FuncNone FunctionKind = iota
	FuncFunction
	FuncMethod
	FuncInitializer
)

// ClassKind identifies whether the resolver is currently inside a class
// body, and whether that class has a superclass.
type ClassKind int

// The enumeration of class contexts a resolver walk may be inside.
const (
	ClassNone ClassKind = iota
	ClassClass
	ClassSubclass
)

type bindState int

const (
	declared bindState = iota
	defined
)

type scope map[string]bindState

// Locals is the resolver's output: occurrence key (see token.Span.Key) to
// the number of enclosing scopes to skip to reach the binding.
type Locals map[string]int

// Resolve walks prog once and returns the locals side table. The returned
// error, if non-nil, is a *diag.List accumulating every static-scope
// violation found (resolution does not stop at the first one, so that a
// single run reports every violation in the program).
func Resolve(prog *ast.Program) (Locals, error) {
	r := &resolver{locals: make(Locals)}
	r.resolveStmts(prog.Stmts)
	r.diags.Sort()
	if err := r.diags.Err(); err != nil {
		return r.locals, err
	}
	if Trace != nil {
		traceLocals(Trace, r.locals)
	}
	return r.locals, nil
}

func traceLocals(w io.Writer, locals Locals) {
	keys := make([]string, 0, len(locals))
	for k := range locals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s -> %d\n", k, locals[k])
	}
}

type resolver struct {
	scopes          []scope
	currentFunction FunctionKind
	currentClass    ClassKind
	locals          Locals
	diags           diag.List
}

func (r *resolver) pushScope() { r.scopes = append(r.scopes, scope{}) }
func (r *resolver) popScope()  { r.scopes = r.scopes[:len(r.scopes)-1] }

// declare introduces name in the current (innermost) scope in the
// Declared state. At the top level (no scopes pushed) it is a no-op: a
// name at top level is global and is never recorded in locals.
func (r *resolver) declare(id *ast.Ident) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[id.Name]; ok {
		r.diags.Add(KindDeclaredError, fmt.Sprintf("%q is already declared in this scope", id.Name), id.Sp)
	}
	sc[id.Name] = declared
}

// define transitions name to the Defined state in the current scope.
func (r *resolver) define(id *ast.Ident) {
	r.defineName(id.Name)
}

func (r *resolver) defineName(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = defined
}

// resolveLocal walks the scope stack from innermost outward looking for
// name. If found, it records the hop distance keyed by this occurrence's
// span. A name still in the Declared state at the scope where it is found
// means this occurrence is inside that binding's own initializer, which is
// rejected. A name not found in any scope is left unrecorded: it is
// resolved against the global environment at runtime.
func (r *resolver) resolveLocal(sp token.Span, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		state, ok := r.scopes[i][name]
		if !ok {
			continue
		}
		if state == declared {
			r.diags.Add(KindSyntaxError, fmt.Sprintf("cannot read local %q in its own initializer", name), sp)
		}
		r.locals[sp.Key(name)] = len(r.scopes) - 1 - i
		return
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(n.X)
	case *ast.Empty:
		// no-op
	case *ast.Block:
		r.pushScope()
		r.resolveStmts(n.Stmts)
		r.popScope()
	case *ast.VarDecl:
		if len(r.scopes) == 0 && n.Init != nil {
			// a top-level name is global and is not recorded, but reading it in
			// its own initializer is still rejected: resolve the initializer in a
			// throwaway scope where the name is only Declared.
			r.pushScope()
			r.declare(n.Id)
			r.resolveExpr(n.Init)
			r.popScope()
			break
		}
		r.declare(n.Id)
		if n.Init != nil {
			r.resolveExpr(n.Init)
		}
		r.define(n.Id)
	case *ast.FuncDecl:
		r.declare(n.Id)
		r.define(n.Id)
		r.resolveFunction(n, FuncFunction)
	case *ast.ClassDecl:
		r.resolveClassDecl(n)
	case *ast.If:
		r.resolveExpr(n.Test)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}
	case *ast.While:
		r.resolveExpr(n.Test)
		r.resolveStmt(n.Body)
	case *ast.Return:
		if r.currentFunction == FuncNone {
			r.diags.Add(KindSyntaxError, "cannot return from top-level code", n.Span())
		}
		if n.Value != nil {
			if r.currentFunction == FuncInitializer {
				r.diags.Add(KindSyntaxError, "cannot return a value from an initializer", n.Value.Span())
			}
			r.resolveExpr(n.Value)
		}
	case *ast.Print:
		r.resolveExpr(n.Value)
	default:
		panic(fmt.Sprintf("resolver: unhandled statement type %T", s))
	}
}

func (r *resolver) resolveFunction(fd *ast.FuncDecl, kind FunctionKind) {
	enclosing := r.currentFunction
	r.currentFunction = kind

	r.pushScope()
	for _, p := range fd.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fd.Body)
	r.popScope()

	r.currentFunction = enclosing
}

func (r *resolver) resolveClassDecl(n *ast.ClassDecl) {
	enclosingClass := r.currentClass
	r.currentClass = ClassClass

	r.declare(n.Id)
	r.define(n.Id)

	if n.Super != nil {
		if n.Super.Name == n.Id.Name {
			r.diags.Add(KindSyntaxError, fmt.Sprintf("class %q cannot extend itself", n.Id.Name), n.Super.Sp)
		} else {
			r.resolveLocal(n.Super.Sp, n.Super.Name)
		}
		r.currentClass = ClassSubclass
		r.pushScope()
		r.defineName("super")
	}

	r.pushScope()
	r.defineName("this")

	for _, m := range n.Methods {
		kind := FuncMethod
		if m.Id.Name == "init" {
			kind = FuncInitializer
		}
		r.resolveFunction(m, kind)
	}

	r.popScope() // this
	if n.Super != nil {
		r.popScope() // super
	}

	r.currentClass = enclosingClass
}

func (r *resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.NumberLit, *ast.StringLit, *ast.BoolLit, *ast.NullLit:
		// no-op: literals bind to nothing
	case *ast.Ident:
		r.resolveLocal(n.Sp, n.Name)
	case *ast.This:
		if r.currentClass == ClassNone {
			r.diags.Add(KindSyntaxError, "cannot use 'this' outside of a class", n.Sp)
			return
		}
		r.resolveLocal(n.Sp, "this")
	case *ast.Super:
		sp := n.Span()
		if r.currentClass == ClassNone {
			r.diags.Add(KindSyntaxError, "cannot use 'super' outside of a class", sp)
			return
		}
		if r.currentClass != ClassSubclass {
			r.diags.Add(KindSyntaxError, "cannot use 'super' in a class with no superclass", sp)
			return
		}
		r.resolveLocal(sp, "super")
	case *ast.Unary:
		r.resolveExpr(n.Right)
	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)
	case *ast.Assign:
		r.resolveExpr(n.Right)
		r.resolveLocal(n.Left.Sp, n.Left.Name)
	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Args {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(n.Object)
	case *ast.Set:
		r.resolveExpr(n.Value)
		r.resolveExpr(n.Object)
	default:
		panic(fmt.Sprintf("resolver: unhandled expression type %T", e))
	}
}
