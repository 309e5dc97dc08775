package ast

import (
	"bytes"

	"github.com/bornomala-lang/bornomala/token"
)

// Ident is an expression node that refers to a variable by name.
type Ident struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return advance(x.NamePos, x.Name) }

func (x *Ident) String() string { return x.Name }

// Infix is an arithmetic expression where the operator is between the
// operands. Op is the operator type; Literal is its spelling in the source,
// which is either the symbol ("+") or the keyword ("যোগ").
type Infix struct {
	X       Expr           // left operand
	OpPos   token.Position // position of operator
	Op      token.Type     // operator: PLUS, JOG, MINUS, BIYOG, ...
	Literal string         // operator as written
	Y       Expr           // right operand
}

func (x *Infix) exprNode() {}

func (x *Infix) Pos() token.Position { return x.X.Pos() }
func (x *Infix) End() token.Position { return x.Y.End() }

func (x *Infix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Literal + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// Compare is a comparison between two integer operands. It yields a
// condition and is only meaningful where a condition is expected.
type Compare struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    token.Type     // LT, GT, EQ or NOT_EQ
	Y     Expr           // right operand
}

func (x *Compare) exprNode() {}

func (x *Compare) Pos() token.Position { return x.X.Pos() }
func (x *Compare) End() token.Position { return x.Y.End() }

func (x *Compare) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + string(x.Op) + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// Assign is an expression that binds a value to a variable and yields the
// value. The target is always a plain identifier.
type Assign struct {
	Name  *Ident         // variable being assigned
	EqPos token.Position // position of "="
	Value Expr           // value to assign
}

func (x *Assign) exprNode() {}

func (x *Assign) Pos() token.Position { return x.Name.Pos() }
func (x *Assign) End() token.Position { return x.Value.End() }

func (x *Assign) String() string {
	var out bytes.Buffer
	out.WriteString(x.Name.String())
	out.WriteString(" = ")
	out.WriteString(x.Value.String())
	return out.String()
}
