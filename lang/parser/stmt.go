package parser

import (
	"fmt"

	"github.com/mna/nenuphar-lox/lang/ast"
	"github.com/mna/nenuphar-lox/lang/token"
)

func (p *parser) statement() ast.Stmt {
	switch p.tok.Kind {
	case token.BraceOpen:
		return p.block()
	case token.Semi:
		return p.emptyStmt()
	case token.KwLet:
		return p.varDecl()
	case token.KwFn:
		return p.fnDeclStmt()
	case token.KwClass:
		return p.classDecl()
	case token.KwIf:
		return p.ifStmt()
	case token.KwWhile:
		return p.whileStmt()
	case token.KwReturn:
		return p.returnStmt()
	case token.KwPrint:
		return p.printStmt()
	default:
		return p.exprStmt()
	}
}

func (p *parser) block() *ast.Block {
	open := p.tok.Loc.Start
	p.advance() // consume '{'

	var stmts []ast.Stmt
	for p.tok.Kind != token.BraceClose && p.tok.Kind != token.EOF {
		stmts = append(stmts, p.statement())
	}
	closePos := p.tok.Loc.End
	p.expect(token.BraceClose)
	return &ast.Block{Open: open, Stmts: stmts, Close: closePos}
}

func (p *parser) emptyStmt() *ast.Empty {
	sp := token.Span{Filename: p.filename, Loc: p.tok.Loc}
	p.advance() // consume ';'
	return &ast.Empty{Sp: sp}
}

func (p *parser) varDecl() *ast.VarDecl {
	kw := p.tok.Loc.Start
	p.advance() // consume 'let'
	id := p.identifier()

	var init ast.Expr
	if p.tok.Kind == token.Assign {
		p.advance()
		init = p.expression()
	}
	end := p.term()
	return &ast.VarDecl{Kw: kw, Id: id, Init: init, End: end}
}

func (p *parser) fnDeclStmt() *ast.FuncDecl {
	kw := p.tok.Loc.Start
	p.advance() // consume 'fn'
	return p.fnBody(kw)
}

// fnBody parses IDENT "(" params? ")" block, shared between a top-level
// "fn" declaration (kw is the "fn" keyword's position) and a class method
// (kw is the zero Pos, since methods have no leading keyword).
func (p *parser) fnBody(kw token.Pos) *ast.FuncDecl {
	id := p.identifier()
	p.expect(token.ParenOpen)

	var params []*ast.Ident
	if p.tok.Kind != token.ParenClose {
		for {
			if len(params) >= MaxArgs {
				p.failAt(KindParseError, fmt.Sprintf("size: too many parameters (max %d)", MaxArgs), p.tok.Loc.Start)
			}
			param := p.identifier()
			for _, other := range params {
				if other.Name == param.Name {
					p.fail(KindInvalidFunction, fmt.Sprintf("duplicate parameter %q", param.Name), param.Sp)
				}
			}
			params = append(params, param)
			if p.tok.Kind != token.Comma {
				break
			}
			p.advance()
		}
	}
	p.expect(token.ParenClose)
	body := p.block()
	return &ast.FuncDecl{Kw: kw, Id: id, Params: params, Body: body.Stmts, End: body.Close}
}

func (p *parser) classDecl() *ast.ClassDecl {
	kw := p.tok.Loc.Start
	p.advance() // consume 'class'
	id := p.identifier()

	var super *ast.Ident
	if p.tok.Kind == token.KwExtends {
		p.advance()
		super = p.identifier()
	}

	p.expect(token.BraceOpen)
	var methods []*ast.FuncDecl
	for p.tok.Kind != token.BraceClose && p.tok.Kind != token.EOF {
		methods = append(methods, p.fnBody(token.Pos{}))
	}
	closePos := p.tok.Loc.End
	p.expect(token.BraceClose)
	return &ast.ClassDecl{Kw: kw, Id: id, Super: super, Methods: methods, End: closePos}
}

func (p *parser) ifStmt() *ast.If {
	kw := p.tok.Loc.Start
	p.advance() // consume 'if'
	p.expect(token.ParenOpen)
	test := p.expression()
	p.expect(token.ParenClose)
	then := p.statement()

	var els ast.Stmt
	if p.tok.Kind == token.KwElse {
		p.advance()
		els = p.statement()
	}
	return &ast.If{Kw: kw, Test: test, Then: then, Else: els}
}

func (p *parser) whileStmt() *ast.While {
	kw := p.tok.Loc.Start
	p.advance() // consume 'while'
	p.expect(token.ParenOpen)
	test := p.expression()
	p.expect(token.ParenClose)
	body := p.statement()
	return &ast.While{Kw: kw, Test: test, Body: body}
}

func (p *parser) returnStmt() *ast.Return {
	kw := p.tok.Loc.Start
	p.advance() // consume 'return'

	var value ast.Expr
	if !p.atTermStart() {
		value = p.expression()
	}
	end := p.term()
	return &ast.Return{Kw: kw, Value: value, End: end}
}

func (p *parser) printStmt() *ast.Print {
	kw := p.tok.Loc.Start
	p.advance() // consume 'print'
	value := p.expression()
	end := p.term()
	return &ast.Print{Kw: kw, Value: value, End: end}
}

func (p *parser) exprStmt() *ast.ExprStmt {
	x := p.expression()
	end := p.term()
	return &ast.ExprStmt{X: x, End: end}
}
