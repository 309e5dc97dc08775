package ast

import (
	"testing"

	"github.com/bornomala-lang/bornomala/token"
	"github.com/stretchr/testify/assert"
)

// x = 1 + 2; যদি (x > 2) লেখ x; নাহলে লেখ "না";
func sampleProgram() *Program {
	x := func() *Ident { return &Ident{Name: "x"} }
	return &Program{
		Stmts: []Stmt{
			&ExprStmt{X: &Assign{
				Name: x(),
				Value: &Infix{
					X:       &Int{Literal: "1", Value: 1},
					Op:      token.PLUS,
					Literal: "+",
					Y:       &Int{Literal: "2", Value: 2},
				},
			}},
			&If{
				Cond:        &Compare{X: x(), Op: token.GT, Y: &Int{Literal: "2", Value: 2}},
				Consequence: &Print{X: x()},
				Alternative: &Print{X: &String{Value: "না"}},
			},
		},
	}
}

func nodeName(n Node) string {
	switch node := n.(type) {
	case *Program:
		return "Program"
	case *ExprStmt:
		return "ExprStmt"
	case *Assign:
		return "Assign"
	case *Infix:
		return "Infix:" + node.Literal
	case *Compare:
		return "Compare:" + string(node.Op)
	case *Int:
		return "Int"
	case *Ident:
		return "Ident:" + node.Name
	case *If:
		return "If"
	case *Print:
		return "Print"
	case *String:
		return "String"
	}
	return "?"
}

func TestWalk(t *testing.T) {
	var visited []string
	Inspect(sampleProgram(), func(n Node) bool {
		visited = append(visited, nodeName(n))
		return true
	})
	expected := []string{
		"Program",
		"ExprStmt", "Assign", "Ident:x", "Infix:+", "Int", "Int",
		"If", "Compare:>", "Ident:x", "Int", "Print", "Ident:x", "Print", "String",
	}
	assert.Equal(t, expected, visited)
}

func TestInspectSkipsChildren(t *testing.T) {
	var visited []string
	Inspect(sampleProgram(), func(n Node) bool {
		visited = append(visited, nodeName(n))
		_, isIf := n.(*If)
		return !isIf
	})
	assert.Equal(t, []string{
		"Program", "ExprStmt", "Assign", "Ident:x", "Infix:+", "Int", "Int", "If",
	}, visited)
}

func TestPreorder(t *testing.T) {
	var walked, iterated []string
	prog := sampleProgram()
	Inspect(prog, func(n Node) bool {
		walked = append(walked, nodeName(n))
		return true
	})
	for n := range Preorder(prog) {
		iterated = append(iterated, nodeName(n))
	}
	assert.Equal(t, walked, iterated)
}

func TestPreorderEarlyStop(t *testing.T) {
	count := 0
	for range Preorder(sampleProgram()) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestChildrenSkipsMissingElse(t *testing.T) {
	s := &If{Cond: &Ident{Name: "x"}, Consequence: &Block{}}
	assert.Len(t, Children(s), 2)

	loop := &For{
		Init: &Ident{Name: "a"},
		Cond: &Ident{Name: "b"},
		Post: &Ident{Name: "c"},
		Body: &Block{},
	}
	assert.Len(t, Children(loop), 4)
}
