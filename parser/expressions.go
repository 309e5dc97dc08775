package parser

import (
	"github.com/bornomala-lang/bornomala/ast"
	"github.com/bornomala-lang/bornomala/errors"
	"github.com/bornomala-lang/bornomala/token"
)

// Expression precedence, lowest first:
//
//	assignment      x = expr      (right associative)
//	comparison      < > == !=     (not chainable)
//	additive        + - যোগ বিয়োগ
//	multiplicative  * / গুণ ভাগ
//	primary         literal, identifier, ( expr )

func (p *Parser) parseExpr() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return p.parseAssign()
}

func (p *Parser) parseAssign() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.ASSIGN) {
		return left, nil
	}
	eqTok := p.curToken
	name, ok := left.(*ast.Ident)
	if !ok {
		return nil, p.rangeError(left.Pos(), left.End(), errors.E1005,
			"only a variable name can appear on the left side of =",
			"invalid assignment target: %s", left.String())
	}
	p.nextToken()
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: name, EqPos: eqTok.StartPosition, Value: value}, nil
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if !token.IsComparison(p.curToken.Type) {
		return left, nil
	}
	opTok := p.curToken
	p.nextToken()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &ast.Compare{X: left, OpPos: opTok.StartPosition, Op: opTok.Type, Y: right}, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for isAdditive(p.curToken.Type) {
		opTok := p.curToken
		p.nextToken()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = newInfix(left, opTok, right)
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for isMultiplicative(p.curToken.Type) {
		opTok := p.curToken
		p.nextToken()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = newInfix(left, opTok, right)
	}
	return left, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.curToken
	switch tok.Type {
	case token.NUM:
		p.nextToken()
		return &ast.Int{ValuePos: tok.StartPosition, Literal: tok.Literal, Value: tok.Value}, nil
	case token.STRING:
		p.nextToken()
		return &ast.String{ValuePos: tok.StartPosition, Value: tok.Literal}, nil
	case token.IDENT:
		p.nextToken()
		return &ast.Ident{NamePos: tok.StartPosition, Name: tok.Literal}, nil
	case token.LPAREN:
		p.nextToken()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("parenthesized expression", token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.ILLEGAL:
		if isDigits(tok.Literal) {
			return nil, p.tokenError(tok, errors.E1008, "number %s is out of range", tok.Literal)
		}
		return nil, p.tokenError(tok, errors.E1003, "illegal token %q", tok.Literal)
	default:
		return nil, p.tokenError(tok, errors.E1004, "expected an expression (got %s)", tokenDescription(tok))
	}
}

func newInfix(left ast.Expr, op token.Token, right ast.Expr) *ast.Infix {
	return &ast.Infix{
		X:       left,
		OpPos:   op.StartPosition,
		Op:      op.Type,
		Literal: op.Literal,
		Y:       right,
	}
}

func isAdditive(t token.Type) bool {
	switch t {
	case token.PLUS, token.MINUS, token.JOG, token.BIYOG:
		return true
	}
	return false
}

func isMultiplicative(t token.Type) bool {
	switch t {
	case token.ASTERISK, token.SLASH, token.GUN, token.BHAG:
		return true
	}
	return false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
