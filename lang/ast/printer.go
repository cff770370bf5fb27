package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer controls pretty-printing of the AST nodes as an indented tree,
// one node per line.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// WithPos prints each node's source span alongside its label.
	WithPos bool

	// NodeFmt is the format string used to print each node's label. The verb
	// must be either `s` or `v`; width, and the `#`/`-` flags, are supported
	// as implemented by the Node.Format methods. Defaults to "%v".
	NodeFmt string
}

// Print pretty-prints the AST node n as an indented tree.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output, withPos: p.WithPos, nodeFmt: p.NodeFmt}
	if pp.nodeFmt == "" {
		pp.nodeFmt = "%v"
	}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w       io.Writer
	withPos bool
	nodeFmt string
	depth   int
	err     error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}

	p.depth++
	p.printNode(n, p.depth-1)
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}

	format := "%s"
	args := []interface{}{strings.Repeat(". ", indent)}
	if p.withPos {
		format += "[%s] "
		args = append(args, n.Span())
	}
	format += p.nodeFmt + "\n"
	args = append(args, n)

	_, p.err = fmt.Fprintf(p.w, format, args...)
}
