package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"gopkg.in/yaml.v3"

	"github.com/mna/nenuphar-lox/lang/diag"
	"github.com/mna/nenuphar-lox/lang/parser"
	"github.com/mna/nenuphar-lox/lang/scanner"
	"github.com/mna/nenuphar-lox/lang/token"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFile(ctx, stdio, c.Format, args[0])
}

// yamlToken is the structured form of a token.Token used for the
// --format=yaml dump.
type yamlToken struct {
	Kind string `yaml:"kind"`
	Raw  string `yaml:"raw,omitempty"`
	Span string `yaml:"span"`
}

// TokenizeFile scans file and prints its token stream to stdio.Stdout,
// either one token per line (the default) or as a YAML document
// (format == "yaml").
func TokenizeFile(ctx context.Context, stdio mainer.Stdio, format, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	var diags diag.List
	sc := scanner.New(file, src, func(sp token.Span, msg string) {
		diags.Add(parser.KindLexingError, msg, sp)
	})

	var toks []token.Token
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		tok := sc.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	if format == "yaml" {
		out := make([]yamlToken, len(toks))
		for i, tok := range toks {
			out[i] = yamlToken{
				Kind: tok.Kind.String(),
				Raw:  tok.Raw,
				Span: token.Span{Filename: file, Loc: tok.Loc}.String(),
			}
		}
		enc := yaml.NewEncoder(stdio.Stdout)
		defer enc.Close()
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
	} else {
		for _, tok := range toks {
			sp := token.Span{Filename: file, Loc: tok.Loc}
			if tok.Raw != "" && tok.Raw != tok.Kind.String() {
				fmt.Fprintf(stdio.Stdout, "%s: %s %q\n", sp, tok.Kind, tok.Raw)
			} else {
				fmt.Fprintf(stdio.Stdout, "%s: %s\n", sp, tok.Kind)
			}
		}
	}

	diags.Sort()
	if err := diags.Err(); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return nil
}
