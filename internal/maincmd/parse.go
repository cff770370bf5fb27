package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/nenuphar-lox/lang/ast"
	"github.com/mna/nenuphar-lox/lang/parser"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFile(ctx, stdio, args[0])
}

// ParseFile parses file and prints the resulting AST as an indented tree.
func ParseFile(ctx context.Context, stdio mainer.Stdio, file string) error {
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

	p := &ast.Printer{Output: stdio.Stdout, WithPos: true}
	return p.Print(prog)
}
