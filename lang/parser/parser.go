// Package parser implements the recursive-descent parser that turns a
// token stream into an *ast.Program. Parsing is fail-fast: the first error
// aborts with a single diagnostic carrying its exact position.
package parser

import (
	"fmt"
	"strings"

	"github.com/mna/nenuphar-lox/lang/ast"
	"github.com/mna/nenuphar-lox/lang/diag"
	"github.com/mna/nenuphar-lox/lang/scanner"
	"github.com/mna/nenuphar-lox/lang/token"
)

// The closed set of ParserError kinds, surfaced as the Kind field of the
// *diag.Entry returned by Parse.
const (
	KindInvalidCharacter  = "InvalidCharacter"
	KindParseError        = "ParseError"
	KindInvalidToken      = "InvalidToken"
	KindUnexpectedToken   = "UnexpectedToken"
	KindMissingSemicolon  = "MissingSemicolon"
	KindLexingError       = "LexingError"
	KindInvalidAssignment = "InvalidAssignment"
	KindInvalidFunction   = "InvalidFunction"
)

// MaxArgs is the cap on the number of arguments in a call and parameters in
// a function declaration. It is a var, not a const, so that
// internal/runconfig can override it from the NENUPHAR_LOX_MAX_ARGS
// environment variable before parsing begins.
var MaxArgs = 255

// Parse parses a single source file into a Program. The returned error, if
// non-nil, is a *diag.Entry describing the first error encountered.
func Parse(filename string, src []byte) (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			entry, ok := r.(*diag.Entry)
			if !ok {
				panic(r)
			}
			err = entry
		}
	}()
	p := newParser(filename, src)
	prog = p.parseProgram()
	return prog, nil
}

type parser struct {
	filename string
	sc       *scanner.Scanner
	lexErr   *diag.Entry

	tok         token.Token // current, significant (non-Eol) token
	prevEnd     token.Pos   // end position of the previously consumed significant token
	couldBeSemi bool        // an Eol was seen since the previous token
}

func newParser(filename string, src []byte) *parser {
	p := &parser{filename: filename}
	p.sc = scanner.New(filename, src, func(span token.Span, msg string) {
		if p.lexErr == nil {
			p.lexErr = &diag.Entry{Kind: classifyLexErr(msg), Msg: msg, Span: span}
		}
	})
	p.advance()
	return p
}

func classifyLexErr(msg string) string {
	if strings.Contains(msg, "invalid character") || strings.Contains(msg, "UTF-8") {
		return KindInvalidCharacter
	}
	return KindLexingError
}

func (p *parser) parseProgram() *ast.Program {
	var stmts []ast.Stmt
	for p.tok.Kind != token.EOF {
		stmts = append(stmts, p.statement())
	}
	return &ast.Program{Filename: p.filename, Stmts: stmts, EOF: p.tok.Loc.Start}
}

// advance consumes the current token and scans forward to the next
// significant token, collapsing any run of Eol tokens into the
// couldBeSemi flag rather than exposing them to the grammar.
func (p *parser) advance() {
	p.prevEnd = p.tok.Loc.End
	p.couldBeSemi = false
	for {
		tok := p.sc.Scan()
		if p.lexErr != nil {
			panic(p.lexErr)
		}
		if tok.Kind == token.Eol {
			p.couldBeSemi = true
			continue
		}
		if tok.Kind == token.ILLEGAL {
			p.failAt(KindInvalidToken, "invalid token "+tok.String(), tok.Loc.Start)
		}
		p.tok = tok
		return
	}
}

// expect consumes the current token if it has the given kind, otherwise it
// aborts parsing with an UnexpectedToken error.
func (p *parser) expect(kind token.Kind) token.Token {
	if p.tok.Kind != kind {
		p.failAt(KindUnexpectedToken, fmt.Sprintf("expected %s, found %s", kind, p.tok), p.tok.Loc.Start)
	}
	tok := p.tok
	p.advance()
	return tok
}

// term consumes a statement terminator (TERM): an explicit ';', an Eol
// already seen (couldBeSemi), or an upcoming '}'/EOF. It returns the
// position to use as the statement's end.
func (p *parser) term() token.Pos {
	if p.tok.Kind == token.Semi {
		end := p.tok.Loc.End
		p.advance()
		return end
	}
	if p.couldBeSemi || p.tok.Kind == token.BraceClose || p.tok.Kind == token.EOF {
		return p.prevEnd
	}
	p.failAt(KindMissingSemicolon, fmt.Sprintf("expected statement terminator, found %s", p.tok), p.tok.Loc.Start)
	return token.Pos{}
}

// atTermStart reports whether the current position already satisfies TERM,
// used to recognize a bare "return" or "return;" with no value expression.
func (p *parser) atTermStart() bool {
	return p.couldBeSemi || p.tok.Kind == token.Semi || p.tok.Kind == token.BraceClose || p.tok.Kind == token.EOF
}

func (p *parser) identifier() *ast.Ident {
	if p.tok.Kind != token.Identifier {
		p.failAt(KindUnexpectedToken, fmt.Sprintf("expected identifier, found %s", p.tok), p.tok.Loc.Start)
	}
	id := &ast.Ident{Sp: token.Span{Filename: p.filename, Loc: p.tok.Loc}, Name: p.tok.Raw}
	p.advance()
	return id
}

func (p *parser) fail(kind, msg string, span token.Span) {
	panic(&diag.Entry{Kind: kind, Msg: msg, Span: span})
}

func (p *parser) failAt(kind, msg string, pos token.Pos) {
	p.fail(kind, msg, token.Span{Filename: p.filename, Loc: token.Loc{Start: pos, End: pos}})
}
