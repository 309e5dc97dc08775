// Package lexer converts bornomala source text into tokens.
//
// The lexer never fails. Input it cannot make sense of is reported as an
// ILLEGAL token and left for the parser to reject.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bornomala-lang/bornomala/token"
)

// Lexer holds the state for scanning one input string.
type Lexer struct {
	input     string
	pos       int // byte offset of the next unread byte
	line      int
	lineStart int
	filename  string

	// col is the rune count of input[lineStart:colPos]. position advances
	// it from colPos so each byte of a line is counted once.
	col    int
	colPos int
}

// New returns a Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// SetFilename sets the filename recorded in token positions.
func (l *Lexer) SetFilename(filename string) {
	l.filename = filename
}

// Filename returns the filename recorded in token positions.
func (l *Lexer) Filename() string {
	return l.filename
}

// Tokenize is shorthand for New(input).Tokenize().
func Tokenize(input string) []token.Token {
	return New(input).Tokenize()
}

// Tokenize scans the remaining input and returns the tokens found. The last
// token is always the single EOF token.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// Next returns the next token in the input. Once the input is exhausted it
// keeps returning EOF.
func (l *Lexer) Next() token.Token {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		pos := l.position()
		return token.Token{Type: token.EOF, StartPosition: pos, EndPosition: pos}
	}
	c := l.input[l.pos]
	switch {
	case c == '"':
		return l.readString()
	case isDigit(c):
		return l.readNumber()
	case c >= 0xE0 || isLetter(c):
		return l.readWord()
	}
	start := l.position()
	switch c {
	case '+':
		return l.symbol(start, token.PLUS, 1)
	case '-':
		return l.symbol(start, token.MINUS, 1)
	case '*':
		return l.symbol(start, token.ASTERISK, 1)
	case '/':
		return l.symbol(start, token.SLASH, 1)
	case '(':
		return l.symbol(start, token.LPAREN, 1)
	case ')':
		return l.symbol(start, token.RPAREN, 1)
	case '{':
		return l.symbol(start, token.LBRACE, 1)
	case '}':
		return l.symbol(start, token.RBRACE, 1)
	case ';':
		return l.symbol(start, token.SEMICOLON, 1)
	case '<':
		return l.symbol(start, token.LT, 1)
	case '>':
		return l.symbol(start, token.GT, 1)
	case '=':
		if l.peekByte() == '=' {
			return l.symbol(start, token.EQ, 2)
		}
		return l.symbol(start, token.ASSIGN, 1)
	case '!':
		if l.peekByte() == '=' {
			return l.symbol(start, token.NOT_EQ, 2)
		}
		return l.symbol(start, token.ILLEGAL, 1)
	default:
		return l.symbol(start, token.ILLEGAL, 1)
	}
}

// GetLineText returns the full line of source text containing the token.
func (l *Lexer) GetLineText(tok token.Token) string {
	return LineText(l.input, tok.StartPosition)
}

// LineText returns the line of input that contains pos, without the
// trailing newline.
func LineText(input string, pos token.Position) string {
	start := pos.LineStart
	if start < 0 || start > len(input) {
		return ""
	}
	rest := input[start:]
	if end := strings.IndexByte(rest, '\n'); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimRight(rest, "\r")
}

func (l *Lexer) symbol(start token.Position, t token.Type, width int) token.Token {
	literal := l.input[l.pos : l.pos+width]
	l.pos += width
	return token.Token{
		Type:          t,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

func (l *Lexer) readString() token.Token {
	start := l.position()
	l.pos++ // opening quote
	begin := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '"' {
		if l.input[l.pos] == '\n' {
			l.line++
			l.lineStart = l.pos + 1
		}
		l.pos++
	}
	value := l.input[begin:l.pos]
	if l.pos < len(l.input) {
		l.pos++ // closing quote
	}
	return token.Token{
		Type:          token.STRING,
		Literal:       value,
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

func (l *Lexer) readNumber() token.Token {
	start := l.position()
	begin := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	return l.numberToken(l.input[begin:l.pos], start)
}

func (l *Lexer) numberToken(literal string, start token.Position) token.Token {
	tok := token.Token{
		Type:          token.NUM,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.position(),
	}
	value, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		tok.Type = token.ILLEGAL
		return tok
	}
	tok.Value = value
	return tok
}

// readWord consumes a run of letters. Bytes from 0xE0 up are treated as the
// lead byte of a 3-byte UTF-8 sequence, which covers the Bengali block.
func (l *Lexer) readWord() token.Token {
	start := l.position()
	begin := l.pos
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if isSpace(c) || isReserved(c) {
			break
		}
		if c >= 0xE0 && l.pos+2 < len(l.input) {
			l.pos += 3
		} else {
			l.pos++
		}
	}
	word := l.input[begin:l.pos]
	tok := token.Token{
		Literal:       word,
		StartPosition: start,
		EndPosition:   l.position(),
	}
	if t, ok := token.LookupKeyword(word); ok {
		tok.Type = t
		return tok
	}
	if v, ok := token.LookupNumberWord(word); ok {
		tok.Type = token.NUM
		tok.Value = v
		return tok
	}
	if v, ok := token.LookupDigit(word); ok {
		tok.Type = token.NUM
		tok.Value = v
		return tok
	}
	if isAllDigits(word) {
		return l.numberToken(word, start)
	}
	tok.Type = token.IDENT
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		if l.input[l.pos] == '\n' {
			l.line++
			l.lineStart = l.pos + 1
		}
		l.pos++
	}
}

func (l *Lexer) peekByte() byte {
	if l.pos+1 < len(l.input) {
		return l.input[l.pos+1]
	}
	return 0
}

func (l *Lexer) position() token.Position {
	if l.colPos < l.lineStart {
		l.col, l.colPos = 0, l.lineStart
	}
	l.col += utf8.RuneCountInString(l.input[l.colPos:l.pos])
	l.colPos = l.pos
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.col,
		File:      l.filename,
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isReserved(c byte) bool {
	switch c {
	case '(', ')', '{', '}', ';', '"', '+', '-', '*', '/', '=', '!', '<', '>':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
