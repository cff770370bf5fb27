// Package interp implements the tree-walking evaluator: it executes a
// resolved *ast.Program against a chain of mutable environments, producing
// print side effects and a final expression-statement accumulator value.
package interp

import (
	"fmt"
	"strconv"

	"github.com/dolthub/swiss"

	"github.com/mna/nenuphar-lox/lang/ast"
)

// Value is the interface implemented by every runtime value the evaluator
// manipulates.
type Value interface {
	// String returns the display form of the value, as used by `print`.
	String() string

	// Type returns a short name for the value's runtime type.
	Type() string
}

// NullType is the type of Null. Its only legal value is Null.
type NullType byte

// Null is the sole value of NullType.
const Null = NullType(0)

var _ Value = Null

func (NullType) String() string { return "null" }
func (NullType) Type() string   { return "null" }

// Boolean is the type of true/false.
type Boolean bool

var _ Value = Boolean(false)

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Boolean) Type() string { return "boolean" }

// Number is an IEEE-754 double.
type Number float64

var _ Value = Number(0)

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (Number) Type() string     { return "number" }

// String is a string value. It displays unquoted; use Quoted for a
// REPL-style quoted rendering.
type String string

var _ Value = String("")

func (s String) String() string { return string(s) }
func (String) Type() string     { return "string" }

// Function is a closure: a declaration's parameters and body paired with
// the environment active when it was declared (or, for a bound method,
// the method's environment extended with `this`/`super`).
type Function struct {
	Name    string
	Params  []string
	Body    []ast.Stmt
	Closure *Environment
	IsInit  bool
}

var _ Value = (*Function)(nil)

func (f *Function) String() string {
	if f.Name == "" {
		return "<fn anonymous>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}
func (f *Function) Type() string { return "function" }

// Class is a single-inheritance class value: a name, an optional
// superclass and a method table.
type Class struct {
	Name    string
	Super   *Class
	Methods *swiss.Map[string, *Function]
}

var _ Value = (*Class)(nil)

func (c *Class) String() string { return fmt.Sprintf("<class %s>", c.Name) }
func (c *Class) Type() string   { return "class" }

// FindMethod looks up name in c's method table, then recurses into the
// superclass chain. It returns false if no class in the chain defines it.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods.Get(name); ok {
		return m, true
	}
	if c.Super != nil {
		return c.Super.FindMethod(name)
	}
	return nil, false
}

// Instance is an object created by calling a Class. Its fields live
// independently of the class and shadow method lookups of the same name.
type Instance struct {
	Class  *Class
	Fields *swiss.Map[string, Value]
}

var _ Value = (*Instance)(nil)

// NewInstance creates an instance of class with an empty field table.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: swiss.NewMap[string, Value](0)}
}

func (i *Instance) String() string { return fmt.Sprintf("<instance of %s>", i.Class.Name) }
func (i *Instance) Type() string   { return "instance" }

// Get looks up name, checking instance fields first and falling back to a
// method bound to this instance.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields.Get(name); ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return bindMethod(m, i), true
	}
	return nil, false
}

// Set stores value under name in the instance's own field table.
func (i *Instance) Set(name string, value Value) {
	i.Fields.Put(name, value)
}

// bindMethod produces a new Function whose closure extends method's
// closure with `this` defined to inst, preserving IsInit.
func bindMethod(method *Function, inst *Instance) *Function {
	env := NewEnclosedEnvironment(method.Closure)
	env.Define("this", inst)
	return &Function{Name: method.Name, Params: method.Params, Body: method.Body, Closure: env, IsInit: method.IsInit}
}

// Truthy reports whether v is truthy: every value is truthy except Null
// and Boolean(false).
func Truthy(v Value) bool {
	switch x := v.(type) {
	case NullType:
		return false
	case Boolean:
		return bool(x)
	default:
		return true
	}
}

// Equal reports value equality for primitives and identity equality (same
// shared handle) for functions, classes and instances. Values of
// different dynamic types are always unequal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case NullType:
		_, ok := b.(NullType)
		return ok
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	default:
		return a == b
	}
}

// Quoted renders v the way a REPL would: strings are quoted, everything
// else is the same as String().
func Quoted(v Value) string {
	if s, ok := v.(String); ok {
		return strconv.Quote(string(s))
	}
	return v.String()
}
