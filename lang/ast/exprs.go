package ast

import (
	"fmt"

	"github.com/mna/nenuphar-lox/lang/token"
)

// Ident is both a standalone expression (a variable reference) and the
// node used wherever the grammar calls for a plain identifier (parameter
// names, property names, declared names).
type Ident struct {
	Sp   token.Span
	Name string
}

func (n *Ident) expr()         {}
func (n *Ident) Span() token.Span { return n.Sp }
func (n *Ident) Walk(v Visitor)   {}
func (n *Ident) Format(f fmt.State, verb rune) {
	format(f, verb, n, "ident "+n.Name, nil)
}

// NumberLit is a numeric literal expression.
type NumberLit struct {
	Sp    token.Span
	Value float64
	Raw   string
}

func (n *NumberLit) expr()            {}
func (n *NumberLit) Span() token.Span { return n.Sp }
func (n *NumberLit) Walk(v Visitor)   {}
func (n *NumberLit) Format(f fmt.State, verb rune) {
	format(f, verb, n, "number "+n.Raw, nil)
}

// StringLit is a string literal expression, already unescaped by the
// scanner.
type StringLit struct {
	Sp    token.Span
	Value string
}

func (n *StringLit) expr()            {}
func (n *StringLit) Span() token.Span { return n.Sp }
func (n *StringLit) Walk(v Visitor)   {}
func (n *StringLit) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("string %q", n.Value), nil)
}

// BoolLit is the true/false literal expression.
type BoolLit struct {
	Sp    token.Span
	Value bool
}

func (n *BoolLit) expr()            {}
func (n *BoolLit) Span() token.Span { return n.Sp }
func (n *BoolLit) Walk(v Visitor)   {}
func (n *BoolLit) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("bool %v", n.Value), nil)
}

// NullLit is the null literal expression.
type NullLit struct {
	Sp token.Span
}

func (n *NullLit) expr()            {}
func (n *NullLit) Span() token.Span { return n.Sp }
func (n *NullLit) Walk(v Visitor)   {}
func (n *NullLit) Format(f fmt.State, verb rune) {
	format(f, verb, n, "null", nil)
}

// This is the `this` expression, valid only inside a method body.
type This struct {
	Sp token.Span
}

func (n *This) expr()            {}
func (n *This) Span() token.Span { return n.Sp }
func (n *This) Walk(v Visitor)   {}
func (n *This) Format(f fmt.State, verb rune) {
	format(f, verb, n, "this", nil)
}

// Super is a `super.method` expression, valid only inside a method body of
// a class that has a superclass.
type Super struct {
	Kw     token.Pos
	Method *Ident
}

func (n *Super) expr() {}
func (n *Super) Span() token.Span {
	m := n.Method.Span()
	return token.Span{Filename: m.Filename, Loc: token.Loc{Start: n.Kw, End: m.Loc.End}}
}
func (n *Super) Walk(v Visitor) { Walk(v, n.Method) }
func (n *Super) Format(f fmt.State, verb rune) {
	format(f, verb, n, "super ."+n.Method.Name, nil)
}

// Unary is a prefix operator expression: !x or -x.
type Unary struct {
	Op     token.Operator
	OpSpan token.Span
	Right  Expr
}

func (n *Unary) expr() {}
func (n *Unary) Span() token.Span {
	r := n.Right.Span()
	return token.Span{Filename: n.OpSpan.Filename, Loc: token.Loc{Start: n.OpSpan.Loc.Start, End: r.Loc.End}}
}
func (n *Unary) Walk(v Visitor) { Walk(v, n.Right) }
func (n *Unary) Format(f fmt.State, verb rune) {
	format(f, verb, n, "unary "+n.Op.String(), nil)
}

// Binary is an arithmetic or comparison operator expression: x + y, x < y.
// Short-circuit && and || are represented by Logical instead.
type Binary struct {
	Left   Expr
	Op     token.Operator
	OpSpan token.Span
	Right  Expr
}

func (n *Binary) expr() {}
func (n *Binary) Span() token.Span {
	l, r := n.Left.Span(), n.Right.Span()
	return token.Span{Filename: l.Filename, Loc: token.Loc{Start: l.Loc.Start, End: r.Loc.End}}
}
func (n *Binary) Walk(v Visitor) { Walk(v, n.Left); Walk(v, n.Right) }
func (n *Binary) Format(f fmt.State, verb rune) {
	format(f, verb, n, "binary "+n.Op.String(), nil)
}

// Logical is the short-circuiting && and || expression.
type Logical struct {
	Left   Expr
	Op     token.Operator
	OpSpan token.Span
	Right  Expr
}

func (n *Logical) expr() {}
func (n *Logical) Span() token.Span {
	l, r := n.Left.Span(), n.Right.Span()
	return token.Span{Filename: l.Filename, Loc: token.Loc{Start: l.Loc.Start, End: r.Loc.End}}
}
func (n *Logical) Walk(v Visitor) { Walk(v, n.Left); Walk(v, n.Right) }
func (n *Logical) Format(f fmt.State, verb rune) {
	format(f, verb, n, "logical "+n.Op.String(), nil)
}

// Assign is a variable assignment expression: x = value.
type Assign struct {
	Left   *Ident
	OpSpan token.Span
	Right  Expr
}

func (n *Assign) expr() {}
func (n *Assign) Span() token.Span {
	l, r := n.Left.Span(), n.Right.Span()
	return token.Span{Filename: l.Filename, Loc: token.Loc{Start: l.Loc.Start, End: r.Loc.End}}
}
func (n *Assign) Walk(v Visitor) { Walk(v, n.Left); Walk(v, n.Right) }
func (n *Assign) Format(f fmt.State, verb rune) {
	format(f, verb, n, "assign "+n.Left.Name, nil)
}

// Call is a function or method call expression: callee(args...).
type Call struct {
	Callee Expr
	LParen token.Pos
	Args   []Expr
	RParen token.Pos
}

func (n *Call) expr() {}
func (n *Call) Span() token.Span {
	c := n.Callee.Span()
	return token.Span{Filename: c.Filename, Loc: token.Loc{Start: c.Loc.Start, End: n.RParen}}
}
func (n *Call) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *Call) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}

// Get is a property read expression: object.property.
type Get struct {
	Object   Expr
	Dot      token.Pos
	Property *Ident
}

func (n *Get) expr() {}
func (n *Get) Span() token.Span {
	o, p := n.Object.Span(), n.Property.Span()
	return token.Span{Filename: o.Filename, Loc: token.Loc{Start: o.Loc.Start, End: p.Loc.End}}
}
func (n *Get) Walk(v Visitor) { Walk(v, n.Object); Walk(v, n.Property) }
func (n *Get) Format(f fmt.State, verb rune) {
	format(f, verb, n, "get ."+n.Property.Name, nil)
}

// Set is a property assignment expression: object.property = value.
type Set struct {
	Object   Expr
	Dot      token.Pos
	Property *Ident
	Value    Expr
}

func (n *Set) expr() {}
func (n *Set) Span() token.Span {
	o, v := n.Object.Span(), n.Value.Span()
	return token.Span{Filename: o.Filename, Loc: token.Loc{Start: o.Loc.Start, End: v.Loc.End}}
}
func (n *Set) Walk(v Visitor) { Walk(v, n.Object); Walk(v, n.Property); Walk(v, n.Value) }
func (n *Set) Format(f fmt.State, verb rune) {
	format(f, verb, n, "set ."+n.Property.Name, nil)
}
