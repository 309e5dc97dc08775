// Package ast defines the abstract syntax tree representation of bornomala
// code.
//
// The node set is closed: Stmt and Expr carry unexported marker methods, so
// only this package can add node types. Each child is owned by exactly one
// parent and nodes are not modified after the parser builds them.
package ast

import (
	"unicode/utf8"

	"github.com/bornomala-lang/bornomala/token"
)

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the input source code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node. Statements are executed for their side
// effects.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to an integer and
// may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// advance returns pos moved past the text s on the same line.
func advance(pos token.Position, s string) token.Position {
	return pos.Advance(len(s), utf8.RuneCountInString(s))
}
