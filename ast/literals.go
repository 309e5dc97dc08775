package ast

import (
	"github.com/bornomala-lang/bornomala/token"
)

// Int is an expression node that holds an integer literal. The literal may be
// ASCII digits, a Bengali digit glyph or a number word.
type Int struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text (e.g., "42", "৩", "তিন")
	Value    int64          // the parsed value
}

func (x *Int) exprNode() {}

func (x *Int) Pos() token.Position { return x.ValuePos }
func (x *Int) End() token.Position { return advance(x.ValuePos, x.Literal) }

func (x *Int) String() string { return x.Literal }

// String is an expression node that holds a string literal. Strings have no
// escape sequences.
type String struct {
	ValuePos token.Position // position of the opening quote
	Value    string         // the text between the quotes
}

func (x *String) exprNode() {}

func (x *String) Pos() token.Position { return x.ValuePos }
func (x *String) End() token.Position { return advance(x.ValuePos, `"`+x.Value+`"`) }

func (x *String) String() string { return `"` + x.Value + `"` }
