package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/nenuphar-lox/lang/interp"
	"github.com/mna/nenuphar-lox/lang/parser"
	"github.com/mna/nenuphar-lox/lang/resolver"
)

func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return RunFile(ctx, stdio, args[0], c.EchoLast)
}

// RunFile tokenizes, parses, resolves and interprets file, writing `print`
// output to stdio.Stdout. If echoLast is set, it additionally prints the
// value of the last expression statement executed (see
// interp.Interpreter.Result) once the program terminates, matching a REPL's
// trailing-value echo.
func RunFile(ctx context.Context, stdio mainer.Stdio, file string, echoLast bool) error {
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

	locals, err := resolver.Resolve(prog)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	it := interp.New(stdio.Stdout, locals)
	if err := it.Run(prog); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	if echoLast {
		fmt.Fprintf(stdio.Stdout, " > %s\n", interp.Quoted(it.Result()))
	}
	return nil
}
