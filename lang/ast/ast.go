// Package ast defines the abstract syntax tree produced by the parser. AST
// nodes are created once by the parser and never mutated; the resolver
// walks the tree read-only and records its findings in a side table owned
// by the interpreter rather than on the nodes themselves.
package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mna/nenuphar-lox/lang/token"
)

// Node represents any node in the AST.
type Node interface {
	// Every Node implements the fmt.Formatter interface so they can print a
	// short description of themselves. The only supported verbs are 'v' and
	// 's'; the '#' flag adds child-count information.
	fmt.Formatter

	// Span reports the source span of the node.
	Span() token.Span

	// Walk enters each child node to implement the Visitor pattern.
	Walk(v Visitor)
}

// Expr represents an expression in the AST.
type Expr interface {
	Node
	expr()
}

// Stmt represents a statement in the AST.
type Stmt interface {
	Node
	stmt()
}

// Program is the root of the AST: an ordered sequence of statements parsed
// from a single source file.
type Program struct {
	Filename string
	Stmts    []Stmt
	EOF      token.Pos
}

func (n *Program) Format(f fmt.State, verb rune) {
	format(f, verb, n, "program", map[string]int{"stmts": len(n.Stmts)})
}

func (n *Program) Span() token.Span {
	if len(n.Stmts) == 0 {
		return token.Span{Filename: n.Filename, Loc: token.Loc{Start: n.EOF, End: n.EOF}}
	}
	start := n.Stmts[0].Span().Loc.Start
	end := n.Stmts[len(n.Stmts)-1].Span().Loc.End
	return token.Span{Filename: n.Filename, Loc: token.Loc{Start: start, End: end}}
}

func (n *Program) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

func format(f fmt.State, verb rune, n Node, label string, counts map[string]int) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%T)", verb, n)
		return
	}

	label = strings.ReplaceAll(label, "\r\n", "⏎")
	label = strings.ReplaceAll(label, "\n", "⏎")
	label = strings.ReplaceAll(label, "\t", "⭾")

	if w, ok := f.Width(); ok {
		minus, plus := f.Flag('-'), f.Flag('+')
		runes := []rune(label)
		if len(runes) >= w {
			runes = runes[:w]
		} else if minus {
			runes = append(runes, []rune(strings.Repeat(" ", w-len(runes)))...)
		} else if !plus {
			runes = append([]rune(strings.Repeat(" ", w-len(runes))), runes...)
		}
		label = string(runes)
	}

	fmt.Fprint(f, label)
	if f.Flag('#') && len(counts) > 0 {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprint(f, " {")
		for i, k := range keys {
			if i > 0 {
				fmt.Fprint(f, ", ")
			}
			fmt.Fprintf(f, "%s=%d", k, counts[k])
		}
		fmt.Fprint(f, "}")
	}
}
