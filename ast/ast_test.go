package ast

import (
	"testing"

	"github.com/bornomala-lang/bornomala/token"
	"github.com/stretchr/testify/assert"
)

func pos(line, col, char int) token.Position {
	return token.Position{Line: line, Column: col, Char: char}
}

func TestIdentEnd(t *testing.T) {
	x := &Ident{NamePos: pos(0, 4, 10), Name: "গণনা"}
	assert.Equal(t, 4, x.Pos().Column)
	// Column counts runes, Char counts bytes.
	assert.Equal(t, 8, x.End().Column)
	assert.Equal(t, 10+len("গণনা"), x.End().Char)
}

func TestStrings(t *testing.T) {
	sum := &Infix{
		X:       &Int{Literal: "দুই", Value: 2},
		Op:      token.JOG,
		Literal: "যোগ",
		Y:       &Int{Literal: "৩", Value: 3},
	}
	assert.Equal(t, "(দুই যোগ ৩)", sum.String())

	assign := &Assign{Name: &Ident{Name: "x"}, Value: sum}
	assert.Equal(t, "x = (দুই যোগ ৩)", assign.String())

	cond := &Compare{X: &Ident{Name: "x"}, Op: token.LT, Y: &Int{Literal: "3", Value: 3}}
	assert.Equal(t, "(x < 3)", cond.String())

	ifStmt := &If{
		Cond:        cond,
		Consequence: &Block{Stmts: []Stmt{&Print{X: &String{Value: "ছোট"}}}},
		Alternative: &Block{},
	}
	assert.Equal(t, `যদি ((x < 3)) { লেখ "ছোট"; } নাহলে { }`, ifStmt.String())

	check := &VowelCheck{Arg: &String{Value: "আমি"}}
	assert.Equal(t, `স্বরবর্ণচেক("আমি");`, check.String())

	loop := &For{
		Init: &Assign{Name: &Ident{Name: "i"}, Value: &Int{Literal: "0"}},
		Cond: &Compare{X: &Ident{Name: "i"}, Op: token.LT, Y: &Int{Literal: "3"}},
		Post: &Assign{Name: &Ident{Name: "i"}, Value: &Infix{
			X: &Ident{Name: "i"}, Op: token.PLUS, Literal: "+", Y: &Int{Literal: "1"},
		}},
		Body: &Block{Stmts: []Stmt{&Print{X: &Ident{Name: "i"}}}},
	}
	assert.Equal(t, "প্রতিবার (i = 0; (i < 3); i = (i + 1)) { লেখ i; }", loop.String())

	prog := &Program{Stmts: []Stmt{
		&ExprStmt{X: assign},
		&While{Cond: cond, Body: &Block{}},
	}}
	assert.Equal(t, "x = (দুই যোগ ৩);\nযতক্ষণ ((x < 3)) { }", prog.String())
}

func TestProgramPositions(t *testing.T) {
	empty := &Program{}
	assert.Equal(t, token.NoPos, empty.Pos())
	assert.Equal(t, token.NoPos, empty.End())

	stmt := &Print{PrintPos: pos(0, 0, 0), X: &Int{Literal: "1"}, Semicolon: pos(0, 5, 9)}
	prog := &Program{Stmts: []Stmt{stmt}}
	assert.Equal(t, 0, prog.Pos().Column)
	assert.Equal(t, 6, prog.End().Column)
}

func TestIfEnd(t *testing.T) {
	then := &Block{Lbrace: pos(0, 10, 10), Rbrace: pos(0, 20, 20)}
	els := &Block{Lbrace: pos(0, 30, 30), Rbrace: pos(0, 40, 40)}
	s := &If{Cond: &Ident{Name: "x"}, Consequence: then}
	assert.Equal(t, 21, s.End().Column)
	s.Alternative = els
	assert.Equal(t, 41, s.End().Column)
}
