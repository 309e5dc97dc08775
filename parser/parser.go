// Package parser is used to generate the abstract syntax tree (AST) for a
// program.
//
// A parser is created by calling New() with a complete token sequence. The
// parser should then be used only once, by calling parser.Parse() to produce
// the AST. Parsing stops at the first error; there is no recovery.
package parser

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bornomala-lang/bornomala/ast"
	"github.com/bornomala-lang/bornomala/errors"
	"github.com/bornomala-lang/bornomala/internal/lexer"
	"github.com/bornomala-lang/bornomala/token"
)

// Parse the provided input as bornomala source code and return the AST. This
// is shorthand for tokenizing the input and then calling Parse on a new
// Parser.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	p := &Parser{}
	for _, opt := range options {
		opt(p)
	}
	l := lexer.New(input)
	if p.filename != "" {
		l.SetFilename(p.filename)
	}
	options = append(options, WithSource(input))
	return New(l.Tokenize(), options...).Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithSource supplies the source text the tokens were scanned from, so that
// errors can show the offending line.
func WithSource(input string) Option {
	return func(p *Parser) {
		p.input = input
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithLogger sets the logger used for trace output.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Parser object
type Parser struct {
	// the Context supplied in the Parse() call
	ctx context.Context

	// the token sequence, always terminated by a single EOF token
	tokens []token.Token

	// index of curToken within tokens
	pos int

	// curToken holds the token under the cursor.
	curToken token.Token

	// source text, used for error context when available
	input string

	// The filename of the input
	filename string

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int

	logger zerolog.Logger
}

// New returns a Parser for the given tokens. If the sequence does not end
// with EOF, one is appended.
func New(tokens []token.Token, options ...Option) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		eof := token.Token{Type: token.EOF}
		if len(tokens) > 0 {
			eof.StartPosition = tokens[len(tokens)-1].EndPosition
			eof.EndPosition = eof.StartPosition
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		opt(p)
	}
	p.curToken = p.tokens[0]
	return p
}

// Parse the program held by the parser. Returns the AST, or the first error
// encountered.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	p.ctx = ctx
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stmt, err := p.parseStatement()
		if err != nil {
			p.logger.Debug().Err(err).Msg("parse failed")
			return nil, err
		}
		program.Stmts = append(program.Stmts, stmt)
	}
	p.logger.Debug().Int("statements", len(program.Stmts)).Msg("parsed program")
	return program, nil
}

// nextToken advances the cursor. It never moves past the EOF token.
func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curToken = p.tokens[p.pos]
}

// curTokenIs returns true if the current token has the given type.
func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

// expect consumes the current token if it has the given type. Otherwise it
// returns an "unexpected token" error naming what was being parsed.
func (p *Parser) expect(context string, t token.Type) (token.Token, error) {
	tok := p.curToken
	if tok.Type != t {
		return tok, p.unexpected(context, tokenTypeDescription(t))
	}
	p.nextToken()
	return tok, nil
}

// enter records one more level of nesting. Callers must call leave when
// done, even on error.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.tokenError(p.curToken, errors.E1009, "maximum nesting depth exceeded")
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) unexpected(context, expected string) error {
	tok := p.curToken
	if tok.Type == token.ILLEGAL {
		return p.tokenError(tok, errors.E1003, "illegal token %q while parsing %s", tok.Literal, context)
	}
	return p.tokenError(tok, errors.E1001, "unexpected %s while parsing %s (expected %s)",
		tokenDescription(tok), context, expected)
}

func (p *Parser) tokenError(t token.Token, code errors.ErrorCode, msg string, args ...any) error {
	return p.rangeError(t.StartPosition, t.EndPosition, code, "", msg, args...)
}

func (p *Parser) rangeError(start, end token.Position, code errors.ErrorCode, hint, msg string, args ...any) error {
	return NewSyntaxError(ErrorOpts{
		Code:          code,
		Message:       fmt.Sprintf(msg, args...),
		Hint:          hint,
		File:          p.filename,
		StartPosition: start,
		EndPosition:   end,
		SourceCode:    p.lineText(start),
	})
}

func (p *Parser) lineText(pos token.Position) string {
	if p.input == "" {
		return ""
	}
	return lexer.LineText(p.input, pos)
}
