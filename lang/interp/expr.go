package interp

import (
	"fmt"

	"github.com/mna/nenuphar-lox/lang/ast"
	"github.com/mna/nenuphar-lox/lang/token"
)

// MaxArgs is the cap on the number of arguments a call may pass, mirroring
// parser.MaxArgs so that an overridden NENUPHAR_LOX_MAX_ARGS is honored by
// both. evalCall checks it against the call expression's argument list
// before evaluating the arguments.
var MaxArgs = 255

func (in *Interpreter) evalExpr(e ast.Expr) (Value, error) {
	switch n := e.(type) {
	case *ast.NumberLit:
		return Number(n.Value), nil
	case *ast.StringLit:
		return String(n.Value), nil
	case *ast.BoolLit:
		return Boolean(n.Value), nil
	case *ast.NullLit:
		return Null, nil

	case *ast.Ident:
		return in.lookupIdent(n.Sp, n.Name)

	case *ast.This:
		return in.lookupIdent(n.Sp, "this")

	case *ast.Super:
		return in.evalSuper(n)

	case *ast.Unary:
		return in.evalUnary(n)

	case *ast.Binary:
		return in.evalBinary(n)

	case *ast.Logical:
		return in.evalLogical(n)

	case *ast.Assign:
		v, err := in.evalExpr(n.Right)
		if err != nil {
			return nil, err
		}
		if d, ok := in.locals[n.Left.Sp.Key(n.Left.Name)]; ok {
			if in.env.AssignAt(d, n.Left.Name, v) {
				return v, nil
			}
			return nil, in.runtimeErr(KindReferenceError, fmt.Sprintf("%q is not defined", n.Left.Name), n.Left.Sp)
		}
		if in.global.Assign(n.Left.Name, v) {
			return v, nil
		}
		return nil, in.runtimeErr(KindReferenceError, fmt.Sprintf("%q is not defined", n.Left.Name), n.Left.Sp)

	case *ast.Call:
		return in.evalCall(n)

	case *ast.Get:
		obj, err := in.evalExpr(n.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, in.runtimeErr(KindSyntaxError, "only instances have properties", n.Object.Span())
		}
		v, ok := inst.Get(n.Property.Name)
		if !ok {
			return nil, in.runtimeErr(KindReferenceError, fmt.Sprintf("undefined property %q", n.Property.Name), n.Property.Sp)
		}
		return v, nil

	case *ast.Set:
		obj, err := in.evalExpr(n.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, in.runtimeErr(KindSyntaxError, "only instances have properties", n.Object.Span())
		}
		v, err := in.evalExpr(n.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(n.Property.Name, v)
		return v, nil

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", e))
	}
}

func (in *Interpreter) evalUnary(n *ast.Unary) (Value, error) {
	v, err := in.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case token.OpSub:
		num, ok := v.(Number)
		if !ok {
			return nil, in.runtimeErr(KindSyntaxError, fmt.Sprintf("cannot negate a %s", v.Type()), n.Span())
		}
		return -num, nil
	case token.OpNot:
		return Boolean(!Truthy(v)), nil
	default:
		panic(fmt.Sprintf("interp: unhandled unary operator %v", n.Op))
	}
}

func (in *Interpreter) evalLogical(n *ast.Logical) (Value, error) {
	left, err := in.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Op == token.OpOr {
		if Truthy(left) {
			return left, nil
		}
	} else {
		if !Truthy(left) {
			return left, nil
		}
	}
	return in.evalExpr(n.Right)
}

// evalBinary implements the dispatch table: Number/Number supports the
// full arithmetic and comparison set; String/String supports only `+`
// (concatenation), every other operator between two strings is a
// SyntaxError; any other pairing of operand types is a SyntaxError.
func (in *Interpreter) evalBinary(n *ast.Binary) (Value, error) {
	left, err := in.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	if l, ok := left.(Number); ok {
		if r, ok := right.(Number); ok {
			return in.evalNumberBinary(n, l, r)
		}
	}
	if l, ok := left.(String); ok {
		if r, ok := right.(String); ok {
			if n.Op == token.OpAdd {
				return l + r, nil
			}
			return nil, in.runtimeErr(KindSyntaxError, fmt.Sprintf("operator %s is not supported between strings", n.Op), n.OpSpan)
		}
	}
	return nil, in.runtimeErr(KindSyntaxError, fmt.Sprintf("operator %s is not supported between %s and %s", n.Op, left.Type(), right.Type()), n.OpSpan)
}

func (in *Interpreter) evalNumberBinary(n *ast.Binary, l, r Number) (Value, error) {
	switch n.Op {
	case token.OpAdd:
		return l + r, nil
	case token.OpSub:
		return l - r, nil
	case token.OpMul:
		return l * r, nil
	case token.OpDiv:
		return l / r, nil
	case token.OpLt:
		return Boolean(l < r), nil
	case token.OpLe:
		return Boolean(l <= r), nil
	case token.OpGt:
		return Boolean(l > r), nil
	case token.OpGe:
		return Boolean(l >= r), nil
	case token.OpEq:
		return Boolean(l == r), nil
	case token.OpNeq:
		return Boolean(l != r), nil
	default:
		return nil, in.runtimeErr(KindSyntaxError, fmt.Sprintf("operator %s is not supported between numbers", n.Op), n.OpSpan)
	}
}

func (in *Interpreter) evalSuper(n *ast.Super) (Value, error) {
	sp := n.Span()
	d, ok := in.locals[sp.Key("super")]
	if !ok {
		return nil, in.runtimeErr(KindReferenceError, "'super' is not defined", sp)
	}
	sv, ok := in.env.GetAt(d, "super")
	if !ok {
		return nil, in.runtimeErr(KindReferenceError, "'super' is not defined", sp)
	}
	super, ok := sv.(*Class)
	if !ok {
		return nil, in.runtimeErr(KindSyntaxError, "'super' does not resolve to a class", sp)
	}
	// `this` lives one scope inside `super`'s binding, by construction of
	// every subclass method's closure chain.
	thisVal, ok := in.env.GetAt(d-1, "this")
	if !ok {
		return nil, in.runtimeErr(KindReferenceError, "'this' is not defined", sp)
	}
	inst, ok := thisVal.(*Instance)
	if !ok {
		return nil, in.runtimeErr(KindSyntaxError, "'this' does not resolve to an instance", sp)
	}
	method, ok := super.FindMethod(n.Method.Name)
	if !ok {
		return nil, in.runtimeErr(KindReferenceError, fmt.Sprintf("undefined property %q", n.Method.Name), n.Method.Sp)
	}
	return bindMethod(method, inst), nil
}

func (in *Interpreter) evalCall(n *ast.Call) (Value, error) {
	callee, err := in.evalExpr(n.Callee)
	if err != nil {
		return nil, err
	}

	if len(n.Args) > MaxArgs {
		return nil, in.runtimeErr(KindArgsMismatched, fmt.Sprintf("size: too many arguments (max %d)", MaxArgs), n.Span())
	}

	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := in.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *Function:
		return in.callFunction(fn, args, n.Span())
	case *Class:
		return in.instantiate(fn, args, n.Span())
	default:
		return nil, in.runtimeErr(KindSyntaxError, fmt.Sprintf("%s is not callable", callee.Type()), n.Callee.Span())
	}
}

func (in *Interpreter) callFunction(fn *Function, args []Value, sp token.Span) (Value, error) {
	if len(args) != len(fn.Params) {
		return nil, in.runtimeErr(KindArgsMismatched, fmt.Sprintf("expected %d argument(s) but got %d", len(fn.Params), len(args)), sp)
	}

	callEnv := NewEnclosedEnvironment(fn.Closure)
	for i, p := range fn.Params {
		callEnv.Define(p, args[i])
	}

	err := in.execBlock(fn.Body, callEnv)
	if rs, ok := err.(*returnSignal); ok {
		if fn.IsInit {
			this, _ := fn.Closure.Get("this")
			return this, nil
		}
		return rs.value, nil
	}
	if err != nil {
		return nil, err
	}
	if fn.IsInit {
		this, _ := fn.Closure.Get("this")
		return this, nil
	}
	return Null, nil
}

func (in *Interpreter) instantiate(class *Class, args []Value, sp token.Span) (Value, error) {
	inst := NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		if _, err := in.callFunction(bindMethod(init, inst), args, sp); err != nil {
			return nil, err
		}
	} else if len(args) != 0 {
		return nil, in.runtimeErr(KindArgsMismatched, fmt.Sprintf("expected 0 argument(s) but got %d", len(args)), sp)
	}
	return inst, nil
}
