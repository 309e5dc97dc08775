package parser

import (
	"github.com/bornomala-lang/bornomala/ast"
	"github.com/bornomala-lang/bornomala/errors"
	"github.com/bornomala-lang/bornomala/token"
)

func (p *Parser) parseStatement() (ast.Stmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.ctx != nil {
		if err := p.ctx.Err(); err != nil {
			return nil, err
		}
	}
	switch p.curToken.Type {
	case token.PRINT:
		return p.parsePrint()
	case token.VOWEL_CHECK:
		return p.parseVowelCheck()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	lbrace, err := p.expect("block", token.LBRACE)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Lbrace: lbrace.StartPosition}
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			return nil, p.unexpected("block", tokenTypeDescription(token.RBRACE))
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	block.Rbrace = p.curToken.StartPosition
	p.nextToken()
	return block, nil
}

func (p *Parser) parsePrint() (*ast.Print, error) {
	printTok := p.curToken
	p.nextToken()
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect("print statement", token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.Print{PrintPos: printTok.StartPosition, X: x, Semicolon: semi.StartPosition}, nil
}

func (p *Parser) parseVowelCheck() (*ast.VowelCheck, error) {
	checkTok := p.curToken
	p.nextToken()
	lparen, err := p.expect("vowel check", token.LPAREN)
	if err != nil {
		return nil, err
	}
	argTok := p.curToken
	if argTok.Type != token.STRING {
		return nil, p.rangeError(argTok.StartPosition, argTok.EndPosition, errors.E1011,
			"pass the text in double quotes", "expected string argument to %s (got %s)",
			token.VOWEL_CHECK, tokenDescription(argTok))
	}
	p.nextToken()
	rparen, err := p.expect("vowel check", token.RPAREN)
	if err != nil {
		return nil, err
	}
	semi, err := p.expect("vowel check", token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.VowelCheck{
		CheckPos:  checkTok.StartPosition,
		Lparen:    lparen.StartPosition,
		Arg:       &ast.String{ValuePos: argTok.StartPosition, Value: argTok.Literal},
		Rparen:    rparen.StartPosition,
		Semicolon: semi.StartPosition,
	}, nil
}

// parseCondition parses "( expr )" following a control flow keyword.
func (p *Parser) parseCondition(context string) (ast.Expr, error) {
	if _, err := p.expect(context, token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(context, token.RPAREN); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) parseIf() (*ast.If, error) {
	ifTok := p.curToken
	p.nextToken()
	cond, err := p.parseCondition("if statement")
	if err != nil {
		return nil, err
	}
	consequence, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{IfPos: ifTok.StartPosition, Cond: cond, Consequence: consequence}
	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		alternative, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Alternative = alternative
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (*ast.While, error) {
	whileTok := p.curToken
	p.nextToken()
	cond, err := p.parseCondition("while loop")
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.While{WhilePos: whileTok.StartPosition, Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (*ast.For, error) {
	forTok := p.curToken
	p.nextToken()
	if _, err := p.expect("for loop", token.LPAREN); err != nil {
		return nil, err
	}
	init, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("for loop", token.SEMICOLON); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("for loop", token.SEMICOLON); err != nil {
		return nil, err
	}
	post, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("for loop", token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.For{
		ForPos: forTok.StartPosition,
		Init:   init,
		Cond:   cond,
		Post:   post,
		Body:   body,
	}, nil
}

func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect("expression statement", token.SEMICOLON)
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: x, Semicolon: semi.StartPosition}, nil
}
