package interp

import (
	"fmt"
	"io"

	"github.com/dolthub/swiss"

	"github.com/mna/nenuphar-lox/lang/ast"
	"github.com/mna/nenuphar-lox/lang/diag"
	"github.com/mna/nenuphar-lox/lang/resolver"
	"github.com/mna/nenuphar-lox/lang/token"
)

// The closed set of RuntimeError kinds, surfaced as the Kind field of the
// *diag.Entry returned by a failed evaluation.
const (
	KindError         = "Error"
	KindSyntaxError   = "SyntaxError"
	KindReferenceError = "ReferenceError"
	KindArgsMismatched = "ArgsMismatched"
)

// returnSignal is the distinguished non-error control-flow value used to
// unwind a function call on "return". It implements error so that it
// propagates through execStmt/execBlock exactly like any other runtime
// error, and is intercepted only at call boundaries (callFunction).
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string { return "return outside of a function call" }

// Interpreter walks a resolved Program, maintaining a global environment,
// the currently active environment, and the resolver's locals side table.
type Interpreter struct {
	global *Environment
	env    *Environment
	locals resolver.Locals
	out    io.Writer
	result Value
}

// New creates an Interpreter that writes `print` output to out and
// resolves identifier references using locals (the output of
// resolver.Resolve).
func New(out io.Writer, locals resolver.Locals) *Interpreter {
	g := NewEnvironment()
	return &Interpreter{global: g, env: g, locals: locals, out: out, result: Null}
}

// Result returns the value of the last expression statement executed, at
// any nesting level (including inside function bodies), or Null if none has
// run yet.
func (in *Interpreter) Result() Value { return in.result }

// Run executes every statement of prog in order, stopping at the first
// error.
func (in *Interpreter) Run(prog *ast.Program) error {
	for _, s := range prog.Stmts {
		if err := in.execStmt(s); err != nil {
			if rs, ok := err.(*returnSignal); ok {
				return in.runtimeErr(KindError, fmt.Sprintf("unexpected return of %s at top level", rs.value.Type()), prog.Span())
			}
			return err
		}
	}
	return nil
}

func (in *Interpreter) execStmt(s ast.Stmt) error {
	switch n := s.(type) {
	case *ast.ExprStmt:
		v, err := in.evalExpr(n.X)
		if err != nil {
			return err
		}
		in.result = v
		return nil

	case *ast.Empty:
		return nil

	case *ast.Block:
		return in.execBlock(n.Stmts, NewEnclosedEnvironment(in.env))

	case *ast.VarDecl:
		var v Value = Null
		if n.Init != nil {
			var err error
			v, err = in.evalExpr(n.Init)
			if err != nil {
				return err
			}
		}
		in.env.Define(n.Id.Name, v)
		return nil

	case *ast.FuncDecl:
		fn := &Function{Name: n.Id.Name, Params: identNames(n.Params), Body: n.Body, Closure: in.env}
		in.env.Define(n.Id.Name, fn)
		return nil

	case *ast.ClassDecl:
		return in.execClassDecl(n)

	case *ast.If:
		t, err := in.evalExpr(n.Test)
		if err != nil {
			return err
		}
		if Truthy(t) {
			return in.execStmt(n.Then)
		}
		if n.Else != nil {
			return in.execStmt(n.Else)
		}
		return nil

	case *ast.While:
		for {
			t, err := in.evalExpr(n.Test)
			if err != nil {
				return err
			}
			if !Truthy(t) {
				return nil
			}
			if err := in.execStmt(n.Body); err != nil {
				return err
			}
		}

	case *ast.Return:
		var v Value = Null
		if n.Value != nil {
			var err error
			v, err = in.evalExpr(n.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{value: v}

	case *ast.Print:
		v, err := in.evalExpr(n.Value)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, v.String())
		return nil

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", s))
	}
}

// execBlock runs stmts in env, saving and restoring the interpreter's
// current environment so that the caller's environment is always
// restored, including when an error (or a return signal) propagates out.
func (in *Interpreter) execBlock(stmts []ast.Stmt, env *Environment) error {
	prev := in.env
	in.env = env
	defer func() { in.env = prev }()

	for _, s := range stmts {
		if err := in.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execClassDecl(n *ast.ClassDecl) error {
	var super *Class
	if n.Super != nil {
		v, err := in.lookupIdent(n.Super.Sp, n.Super.Name)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return in.runtimeErr(KindSyntaxError, fmt.Sprintf("superclass %q is not a class", n.Super.Name), n.Super.Sp)
		}
		super = sc
	}

	closureEnv := in.env
	if n.Super != nil {
		closureEnv = NewEnclosedEnvironment(in.env)
		closureEnv.Define("super", super)
	}

	methods := swiss.NewMap[string, *Function](uint32(len(n.Methods)))
	for _, m := range n.Methods {
		fn := &Function{
			Name:    m.Id.Name,
			Params:  identNames(m.Params),
			Body:    m.Body,
			Closure: closureEnv,
			IsInit:  m.Id.Name == "init",
		}
		methods.Put(m.Id.Name, fn)
	}

	// the class name is defined in the enclosing scope, not the super-scope,
	// matching how the resolver records it.
	in.env.Define(n.Id.Name, &Class{Name: n.Id.Name, Super: super, Methods: methods})
	return nil
}

func identNames(ids []*ast.Ident) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Name
	}
	return out
}

func (in *Interpreter) runtimeErr(kind, msg string, sp token.Span) error {
	return &diag.Entry{Kind: kind, Msg: msg, Span: sp}
}

// lookupIdent resolves name occurring at sp: if the resolver recorded a
// depth for this occurrence, it is looked up at that ancestor environment;
// otherwise it is looked up as a global.
func (in *Interpreter) lookupIdent(sp token.Span, name string) (Value, error) {
	if d, ok := in.locals[sp.Key(name)]; ok {
		if v, ok := in.env.GetAt(d, name); ok {
			return v, nil
		}
		return nil, in.runtimeErr(KindReferenceError, fmt.Sprintf("%q is not defined", name), sp)
	}
	if v, ok := in.global.Get(name); ok {
		return v, nil
	}
	return nil, in.runtimeErr(KindReferenceError, fmt.Sprintf("%q is not defined", name), sp)
}
