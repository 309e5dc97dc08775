package bornomala

import (
	"sort"

	"github.com/bornomala-lang/bornomala/ast"
)

// Program is parsed bornomala source code. It is immutable after creation
// and may be run any number of times, each run with fresh variables.
type Program struct {
	root *ast.Program

	// Metadata
	source   string
	filename string
}

// AST returns the syntax tree of the program.
func (p *Program) AST() *ast.Program {
	return p.root
}

// Source returns the source code the program was parsed from.
func (p *Program) Source() string {
	return p.source
}

// Filename returns the filename associated with this program, if any.
func (p *Program) Filename() string {
	return p.filename
}

// VariableNames returns the sorted names of all variables the program
// assigns to.
func (p *Program) VariableNames() []string {
	seen := map[string]bool{}
	for node := range ast.Preorder(p.root) {
		if assign, ok := node.(*ast.Assign); ok {
			seen[assign.Name.Name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the program in normalized form.
func (p *Program) String() string {
	return p.root.String()
}
