// Package token defines the keywords, numerals and tokens used when lexing
// bornomala source code.
package token

// Type describes the type of a token as a string. Operator and keyword types
// are spelled the way they appear in source.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the input
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column, counted in runes
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n bytes and cols columns.
// It assumes the advance does not cross a line boundary.
func (p Position) Advance(n, cols int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + cols,
		File:      p.File,
	}
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string // source text, or the contents of a string literal
	Value         int64  // numeric payload for NUM tokens
	StartPosition Position
	EndPosition   Position
}

// Token types
const (
	EOF     Type = "EOF"
	ILLEGAL Type = "ILLEGAL"

	NUM    Type = "NUM"
	STRING Type = "STRING"
	IDENT  Type = "IDENT"

	PLUS     Type = "+"
	MINUS    Type = "-"
	ASTERISK Type = "*"
	SLASH    Type = "/"

	JOG   Type = "যোগ"
	BIYOG Type = "বিয়োগ"
	GUN   Type = "গুণ"
	BHAG  Type = "ভাগ"

	LT     Type = "<"
	GT     Type = ">"
	EQ     Type = "=="
	NOT_EQ Type = "!="
	ASSIGN Type = "="

	IF    Type = "যদি"
	ELSE  Type = "নাহলে"
	WHILE Type = "যতক্ষণ"
	FOR   Type = "প্রতিবার"

	PRINT       Type = "লেখ"
	VOWEL_CHECK Type = "স্বরবর্ণচেক"

	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	SEMICOLON Type = ";"
)

// Reserved keywords
var keywords = map[string]Type{
	"যোগ":         JOG,
	"বিয়োগ":       BIYOG,
	"গুণ":         GUN,
	"ভাগ":         BHAG,
	"যদি":         IF,
	"নাহলে":       ELSE,
	"যতক্ষণ":      WHILE,
	"প্রতিবার":    FOR,
	"লেখ":         PRINT,
	"স্বরবর্ণচেক": VOWEL_CHECK,
}

// Words that stand for a number.
var numberWords = map[string]int64{
	"এক":   1,
	"দুই":  2,
	"তিন":  3,
	"চার":  4,
	"পাঁচ": 5,
}

// Single-glyph Bengali digits.
var digitGlyphs = map[string]int64{
	"০": 0,
	"১": 1,
	"২": 2,
	"৩": 3,
	"৪": 4,
	"৫": 5,
	"৬": 6,
	"৭": 7,
	"৮": 8,
	"৯": 9,
}

// LookupKeyword returns the keyword type for the given word, if it is one.
func LookupKeyword(word string) (Type, bool) {
	t, ok := keywords[word]
	return t, ok
}

// LookupNumberWord returns the value of a number word such as "তিন".
func LookupNumberWord(word string) (int64, bool) {
	v, ok := numberWords[word]
	return v, ok
}

// LookupDigit returns the value of a single Bengali digit glyph such as "৩".
func LookupDigit(word string) (int64, bool) {
	v, ok := digitGlyphs[word]
	return v, ok
}

// Keywords returns a copy of the reserved keyword table.
func Keywords() map[string]Type {
	out := make(map[string]Type, len(keywords))
	for k, v := range keywords {
		out[k] = v
	}
	return out
}

// NumberWords returns a copy of the number word table.
func NumberWords() map[string]int64 {
	out := make(map[string]int64, len(numberWords))
	for k, v := range numberWords {
		out[k] = v
	}
	return out
}

// Digits returns a copy of the Bengali digit glyph table.
func Digits() map[string]int64 {
	out := make(map[string]int64, len(digitGlyphs))
	for k, v := range digitGlyphs {
		out[k] = v
	}
	return out
}

// IsArithmetic reports whether t is one of the four arithmetic operators,
// in either symbolic or keyword spelling.
func IsArithmetic(t Type) bool {
	switch t {
	case PLUS, MINUS, ASTERISK, SLASH, JOG, BIYOG, GUN, BHAG:
		return true
	}
	return false
}

// IsComparison reports whether t is a comparison operator.
func IsComparison(t Type) bool {
	switch t {
	case LT, GT, EQ, NOT_EQ:
		return true
	}
	return false
}
