package ast

import (
	"bytes"
	"strings"

	"github.com/bornomala-lang/bornomala/token"
)

// Program is the root of a parsed source file. It is executed like a block.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Pos() token.Position {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Pos()
	}
	return token.NoPos
}

func (p *Program) End() token.Position {
	if len(p.Stmts) > 0 {
		return p.Stmts[len(p.Stmts)-1].End()
	}
	return token.NoPos
}

func (p *Program) String() string {
	lines := make([]string, 0, len(p.Stmts))
	for _, s := range p.Stmts {
		lines = append(lines, s.String())
	}
	return strings.Join(lines, "\n")
}

// Block is a braced sequence of statements.
type Block struct {
	Lbrace token.Position // position of "{"
	Stmts  []Stmt
	Rbrace token.Position // position of "}"
}

func (s *Block) stmtNode() {}

func (s *Block) Pos() token.Position { return s.Lbrace }
func (s *Block) End() token.Position { return s.Rbrace.Advance(1, 1) }

func (s *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for _, stmt := range s.Stmts {
		out.WriteString(" ")
		out.WriteString(stmt.String())
	}
	out.WriteString(" }")
	return out.String()
}

// ExprStmt is an expression evaluated for its side effects, such as an
// assignment.
type ExprStmt struct {
	X         Expr
	Semicolon token.Position
}

func (s *ExprStmt) stmtNode() {}

func (s *ExprStmt) Pos() token.Position { return s.X.Pos() }
func (s *ExprStmt) End() token.Position { return s.Semicolon.Advance(1, 1) }

func (s *ExprStmt) String() string { return s.X.String() + ";" }

// Print writes its operand to the output ("লেখ x;").
type Print struct {
	PrintPos  token.Position // position of the keyword
	X         Expr           // value to print
	Semicolon token.Position
}

func (s *Print) stmtNode() {}

func (s *Print) Pos() token.Position { return s.PrintPos }
func (s *Print) End() token.Position { return s.Semicolon.Advance(1, 1) }

func (s *Print) String() string {
	return string(token.PRINT) + " " + s.X.String() + ";"
}

// VowelCheck reports whether a string literal contains a Bengali vowel
// (`স্বরবর্ণচেক("আমি");`).
type VowelCheck struct {
	CheckPos  token.Position // position of the keyword
	Lparen    token.Position
	Arg       *String
	Rparen    token.Position
	Semicolon token.Position
}

func (s *VowelCheck) stmtNode() {}

func (s *VowelCheck) Pos() token.Position { return s.CheckPos }
func (s *VowelCheck) End() token.Position { return s.Semicolon.Advance(1, 1) }

func (s *VowelCheck) String() string {
	return string(token.VOWEL_CHECK) + "(" + s.Arg.String() + ");"
}

// If runs Consequence when Cond holds, otherwise Alternative if present.
type If struct {
	IfPos       token.Position // position of the keyword
	Cond        Expr
	Consequence Stmt
	Alternative Stmt // nil when there is no else branch
}

func (s *If) stmtNode() {}

func (s *If) Pos() token.Position { return s.IfPos }
func (s *If) End() token.Position {
	if s.Alternative != nil {
		return s.Alternative.End()
	}
	return s.Consequence.End()
}

func (s *If) String() string {
	var out bytes.Buffer
	out.WriteString(string(token.IF))
	out.WriteString(" (")
	out.WriteString(s.Cond.String())
	out.WriteString(") ")
	out.WriteString(s.Consequence.String())
	if s.Alternative != nil {
		out.WriteString(" " + string(token.ELSE) + " ")
		out.WriteString(s.Alternative.String())
	}
	return out.String()
}

// While runs Body for as long as Cond holds.
type While struct {
	WhilePos token.Position // position of the keyword
	Cond     Expr
	Body     Stmt
}

func (s *While) stmtNode() {}

func (s *While) Pos() token.Position { return s.WhilePos }
func (s *While) End() token.Position { return s.Body.End() }

func (s *While) String() string {
	return string(token.WHILE) + " (" + s.Cond.String() + ") " + s.Body.String()
}

// For evaluates Init once, then repeats Body and Post while Cond holds.
type For struct {
	ForPos token.Position // position of the keyword
	Init   Expr
	Cond   Expr
	Post   Expr
	Body   Stmt
}

func (s *For) stmtNode() {}

func (s *For) Pos() token.Position { return s.ForPos }
func (s *For) End() token.Position { return s.Body.End() }

func (s *For) String() string {
	var out bytes.Buffer
	out.WriteString(string(token.FOR))
	out.WriteString(" (")
	out.WriteString(s.Init.String())
	out.WriteString("; ")
	out.WriteString(s.Cond.String())
	out.WriteString("; ")
	out.WriteString(s.Post.String())
	out.WriteString(") ")
	out.WriteString(s.Body.String())
	return out.String()
}
