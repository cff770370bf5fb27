package parser

import (
	"fmt"
	"strconv"

	"github.com/mna/nenuphar-lox/lang/ast"
	"github.com/mna/nenuphar-lox/lang/token"
)

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

func (p *parser) assignment() ast.Expr {
	left := p.logicOr()
	if p.tok.Kind != token.Assign {
		return left
	}

	opSpan := token.Span{Filename: p.filename, Loc: p.tok.Loc}
	p.advance()
	right := p.assignment()

	switch l := left.(type) {
	case *ast.Ident:
		return &ast.Assign{Left: l, OpSpan: opSpan, Right: right}
	case *ast.Get:
		return &ast.Set{Object: l.Object, Dot: l.Dot, Property: l.Property, Value: right}
	default:
		p.fail(KindInvalidAssignment, "invalid assignment target", opSpan)
		return nil
	}
}

func (p *parser) logicOr() ast.Expr {
	left := p.logicAnd()
	for p.tok.Kind == token.OrOr {
		op, _ := token.OperatorForKind(p.tok.Kind)
		opSpan := token.Span{Filename: p.filename, Loc: p.tok.Loc}
		p.advance()
		right := p.logicAnd()
		left = &ast.Logical{Left: left, Op: op, OpSpan: opSpan, Right: right}
	}
	return left
}

func (p *parser) logicAnd() ast.Expr {
	left := p.equality()
	for p.tok.Kind == token.AndAnd {
		op, _ := token.OperatorForKind(p.tok.Kind)
		opSpan := token.Span{Filename: p.filename, Loc: p.tok.Loc}
		p.advance()
		right := p.equality()
		left = &ast.Logical{Left: left, Op: op, OpSpan: opSpan, Right: right}
	}
	return left
}

func (p *parser) equality() ast.Expr {
	left := p.relational()
	for p.tok.Kind == token.Eq || p.tok.Kind == token.Neq {
		op, _ := token.OperatorForKind(p.tok.Kind)
		opSpan := token.Span{Filename: p.filename, Loc: p.tok.Loc}
		p.advance()
		right := p.relational()
		left = &ast.Binary{Left: left, Op: op, OpSpan: opSpan, Right: right}
	}
	return left
}

func (p *parser) relational() ast.Expr {
	left := p.additive()
	for p.tok.Kind == token.Lt || p.tok.Kind == token.Le || p.tok.Kind == token.Gt || p.tok.Kind == token.Ge {
		op, _ := token.OperatorForKind(p.tok.Kind)
		opSpan := token.Span{Filename: p.filename, Loc: p.tok.Loc}
		p.advance()
		right := p.additive()
		left = &ast.Binary{Left: left, Op: op, OpSpan: opSpan, Right: right}
	}
	return left
}

func (p *parser) additive() ast.Expr {
	left := p.mul()
	for p.tok.Kind == token.Plus || p.tok.Kind == token.Minus {
		op, _ := token.OperatorForKind(p.tok.Kind)
		opSpan := token.Span{Filename: p.filename, Loc: p.tok.Loc}
		p.advance()
		right := p.mul()
		left = &ast.Binary{Left: left, Op: op, OpSpan: opSpan, Right: right}
	}
	return left
}

func (p *parser) mul() ast.Expr {
	left := p.unary()
	for p.tok.Kind == token.Star || p.tok.Kind == token.Slash {
		op, _ := token.OperatorForKind(p.tok.Kind)
		opSpan := token.Span{Filename: p.filename, Loc: p.tok.Loc}
		p.advance()
		right := p.unary()
		left = &ast.Binary{Left: left, Op: op, OpSpan: opSpan, Right: right}
	}
	return left
}

func (p *parser) unary() ast.Expr {
	if p.tok.Kind == token.Minus || p.tok.Kind == token.Bang {
		op, _ := token.OperatorForKind(p.tok.Kind)
		opSpan := token.Span{Filename: p.filename, Loc: p.tok.Loc}
		p.advance()
		right := p.unary()
		return &ast.Unary{Op: op, OpSpan: opSpan, Right: right}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch p.tok.Kind {
		case token.ParenOpen:
			expr = p.finishCall(expr)
		case token.Dot:
			p.advance()
			prop := p.identifier()
			expr = &ast.Get{Object: expr, Property: prop}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	lparen := p.tok.Loc.Start
	p.advance() // consume '('

	var args []ast.Expr
	if p.tok.Kind != token.ParenClose {
		for {
			if len(args) >= MaxArgs {
				p.failAt(KindParseError, fmt.Sprintf("size: too many arguments (max %d)", MaxArgs), p.tok.Loc.Start)
			}
			args = append(args, p.expression())
			if p.tok.Kind != token.Comma {
				break
			}
			p.advance()
		}
	}
	rparen := p.tok.Loc.End
	p.expect(token.ParenClose)
	return &ast.Call{Callee: callee, LParen: lparen, Args: args, RParen: rparen}
}

func (p *parser) primary() ast.Expr {
	switch p.tok.Kind {
	case token.Number:
		return p.numberLit()
	case token.String:
		sp := token.Span{Filename: p.filename, Loc: p.tok.Loc}
		v := p.tok.Raw
		p.advance()
		return &ast.StringLit{Sp: sp, Value: v}
	case token.True, token.False:
		sp := token.Span{Filename: p.filename, Loc: p.tok.Loc}
		v := p.tok.Kind == token.True
		p.advance()
		return &ast.BoolLit{Sp: sp, Value: v}
	case token.Null:
		sp := token.Span{Filename: p.filename, Loc: p.tok.Loc}
		p.advance()
		return &ast.NullLit{Sp: sp}
	case token.Identifier:
		return p.identifier()
	case token.ParenOpen:
		p.advance()
		e := p.expression()
		p.expect(token.ParenClose)
		return e
	case token.KwThis:
		sp := token.Span{Filename: p.filename, Loc: p.tok.Loc}
		p.advance()
		return &ast.This{Sp: sp}
	case token.KwSuper:
		kw := p.tok.Loc.Start
		p.advance()
		p.expect(token.Dot)
		method := p.identifier()
		return &ast.Super{Kw: kw, Method: method}
	default:
		p.failAt(KindUnexpectedToken, fmt.Sprintf("unexpected %s", p.tok), p.tok.Loc.Start)
		return nil
	}
}

func (p *parser) numberLit() ast.Expr {
	sp := token.Span{Filename: p.filename, Loc: p.tok.Loc}
	raw := p.tok.Raw
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail(KindParseError, "numeric: invalid literal "+strconv.Quote(raw), sp)
	}
	p.advance()
	return &ast.NumberLit{Sp: sp, Value: v, Raw: raw}
}
