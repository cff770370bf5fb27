package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/nenuphar-lox/lang/ast"
	"github.com/mna/nenuphar-lox/lang/parser"
	"github.com/mna/nenuphar-lox/lang/resolver"
)

func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ResolveFile(ctx, stdio, args[0])
}

// ResolveFile parses and resolves file, printing the AST and, if
// NENUPHAR_LOX_TRACE_RESOLVER is set, the resolved locals table.
func ResolveFile(ctx context.Context, stdio mainer.Stdio, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	prog, err := parser.Parse(file, src)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	_, err = resolver.Resolve(prog)

	p := &ast.Printer{Output: stdio.Stdout, WithPos: true}
	if perr := p.Print(prog); perr != nil {
		fmt.Fprintln(stdio.Stderr, perr)
		return perr
	}

	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return nil
}
