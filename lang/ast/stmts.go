package ast

import (
	"fmt"

	"github.com/mna/nenuphar-lox/lang/token"
)

// ExprStmt is an expression evaluated for its side effects, terminated by a
// statement terminator.
type ExprStmt struct {
	X   Expr
	End token.Pos
}

func (n *ExprStmt) stmt() {}
func (n *ExprStmt) Span() token.Span {
	x := n.X.Span()
	return token.Span{Filename: x.Filename, Loc: token.Loc{Start: x.Loc.Start, End: n.End}}
}
func (n *ExprStmt) Walk(v Visitor) { Walk(v, n.X) }
func (n *ExprStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "expr stmt", nil)
}

// Empty is a statement consisting solely of a terminator, with no effect.
type Empty struct {
	Sp token.Span
}

func (n *Empty) stmt()            {}
func (n *Empty) Span() token.Span { return n.Sp }
func (n *Empty) Walk(v Visitor)   {}
func (n *Empty) Format(f fmt.State, verb rune) {
	format(f, verb, n, "empty stmt", nil)
}

// Block is a brace-delimited sequence of statements introducing a new
// lexical scope.
type Block struct {
	Open  token.Pos
	Stmts []Stmt
	Close token.Pos
}

func (n *Block) stmt() {}
func (n *Block) Span() token.Span {
	fn := ""
	if len(n.Stmts) > 0 {
		fn = n.Stmts[0].Span().Filename
	}
	return token.Span{Filename: fn, Loc: token.Loc{Start: n.Open, End: n.Close}}
}
func (n *Block) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
func (n *Block) Format(f fmt.State, verb rune) {
	format(f, verb, n, "block", map[string]int{"stmts": len(n.Stmts)})
}

// VarDecl declares a new variable in the enclosing scope: let x = init.
// Init may be nil, in which case the variable is initialized to null.
type VarDecl struct {
	Kw   token.Pos
	Id   *Ident
	Init Expr
	End  token.Pos
}

func (n *VarDecl) stmt() {}
func (n *VarDecl) Span() token.Span {
	return token.Span{Filename: n.Id.Sp.Filename, Loc: token.Loc{Start: n.Kw, End: n.End}}
}
func (n *VarDecl) Walk(v Visitor) {
	Walk(v, n.Id)
	if n.Init != nil {
		Walk(v, n.Init)
	}
}
func (n *VarDecl) Format(f fmt.State, verb rune) {
	format(f, verb, n, "var decl "+n.Id.Name, nil)
}

// FuncDecl declares a named function, and is also reused (without a Kw) as
// the node for each method in a ClassDecl's Methods list.
type FuncDecl struct {
	Kw     token.Pos
	Id     *Ident
	Params []*Ident
	Body   []Stmt
	End    token.Pos
}

func (n *FuncDecl) stmt() {}
func (n *FuncDecl) Span() token.Span {
	start := n.Kw
	if start.Unknown() {
		start = n.Id.Sp.Loc.Start
	}
	return token.Span{Filename: n.Id.Sp.Filename, Loc: token.Loc{Start: start, End: n.End}}
}
func (n *FuncDecl) Walk(v Visitor) {
	Walk(v, n.Id)
	for _, p := range n.Params {
		Walk(v, p)
	}
	for _, s := range n.Body {
		Walk(v, s)
	}
}
func (n *FuncDecl) Format(f fmt.State, verb rune) {
	format(f, verb, n, "func decl "+n.Id.Name, map[string]int{"params": len(n.Params), "body": len(n.Body)})
}

// ClassDecl declares a class, optionally extending a superclass, with zero
// or more methods.
type ClassDecl struct {
	Kw      token.Pos
	Id      *Ident
	Super   *Ident // nil if no "extends" clause
	Methods []*FuncDecl
	End     token.Pos
}

func (n *ClassDecl) stmt() {}
func (n *ClassDecl) Span() token.Span {
	return token.Span{Filename: n.Id.Sp.Filename, Loc: token.Loc{Start: n.Kw, End: n.End}}
}
func (n *ClassDecl) Walk(v Visitor) {
	Walk(v, n.Id)
	if n.Super != nil {
		Walk(v, n.Super)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
func (n *ClassDecl) Format(f fmt.State, verb rune) {
	format(f, verb, n, "class decl "+n.Id.Name, map[string]int{"methods": len(n.Methods)})
}

// If is a conditional statement with an optional else branch. Else may be
// another *If (for "else if" chains), a *Block, or nil.
type If struct {
	Kw   token.Pos
	Test Expr
	Then Stmt
	Else Stmt
}

func (n *If) stmt() {}
func (n *If) Span() token.Span {
	end := n.Then.Span().Loc.End
	if n.Else != nil {
		end = n.Else.Span().Loc.End
	}
	return token.Span{Filename: n.Test.Span().Filename, Loc: token.Loc{Start: n.Kw, End: end}}
}
func (n *If) Walk(v Visitor) {
	Walk(v, n.Test)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *If) Format(f fmt.State, verb rune) {
	format(f, verb, n, "if", nil)
}

// While is a pre-tested loop statement.
type While struct {
	Kw   token.Pos
	Test Expr
	Body Stmt
}

func (n *While) stmt() {}
func (n *While) Span() token.Span {
	return token.Span{Filename: n.Test.Span().Filename, Loc: token.Loc{Start: n.Kw, End: n.Body.Span().Loc.End}}
}
func (n *While) Walk(v Visitor) { Walk(v, n.Test); Walk(v, n.Body) }
func (n *While) Format(f fmt.State, verb rune) {
	format(f, verb, n, "while", nil)
}

// Return exits the enclosing function, optionally with a value. Value is
// nil for a bare "return".
type Return struct {
	Kw    token.Pos
	Value Expr
	End   token.Pos
}

func (n *Return) stmt() {}
func (n *Return) Span() token.Span {
	fn := ""
	if n.Value != nil {
		fn = n.Value.Span().Filename
	}
	return token.Span{Filename: fn, Loc: token.Loc{Start: n.Kw, End: n.End}}
}
func (n *Return) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *Return) Format(f fmt.State, verb rune) {
	format(f, verb, n, "return", nil)
}

// Print evaluates an expression and writes its textual form followed by a
// newline to the program's output stream.
type Print struct {
	Kw    token.Pos
	Value Expr
	End   token.Pos
}

func (n *Print) stmt() {}
func (n *Print) Span() token.Span {
	return token.Span{Filename: n.Value.Span().Filename, Loc: token.Loc{Start: n.Kw, End: n.End}}
}
func (n *Print) Walk(v Visitor) { Walk(v, n.Value) }
func (n *Print) Format(f fmt.State, verb rune) {
	format(f, verb, n, "print", nil)
}
