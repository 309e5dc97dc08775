package syntax

import "github.com/bornomala-lang/bornomala/ast"

// SyntaxValidator validates an AST against a SyntaxConfig.
type SyntaxValidator struct {
	config SyntaxConfig
}

// NewSyntaxValidator creates a validator for the given configuration.
func NewSyntaxValidator(config SyntaxConfig) *SyntaxValidator {
	return &SyntaxValidator{config: config}
}

// Validate checks the AST against the syntax configuration.
func (v *SyntaxValidator) Validate(program *ast.Program) []ValidationError {
	var errors []ValidationError
	for node := range ast.Preorder(program) {
		if msg := v.violation(node); msg != "" {
			errors = append(errors, ValidationError{
				Message:  msg,
				Node:     node,
				Position: node.Pos(),
			})
		}
	}
	return errors
}

func (v *SyntaxValidator) violation(node ast.Node) string {
	switch node.(type) {
	case *ast.Assign:
		if v.config.DisallowAssignment {
			return "assignment is not allowed"
		}
	case *ast.Print:
		if v.config.DisallowPrint {
			return "print statements are not allowed"
		}
	case *ast.VowelCheck:
		if v.config.DisallowVowelCheck {
			return "vowel checks are not allowed"
		}
	case *ast.If:
		if v.config.DisallowIf {
			return "if statements are not allowed"
		}
	case *ast.While, *ast.For:
		if v.config.DisallowLoops {
			return "loops are not allowed"
		}
	}
	return ""
}
