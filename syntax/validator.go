// Package syntax checks parsed programs against syntax restrictions and
// reports likely mistakes.
package syntax

import (
	"fmt"
	"strings"

	"github.com/bornomala-lang/bornomala/ast"
	"github.com/bornomala-lang/bornomala/errors"
	"github.com/bornomala-lang/bornomala/token"
)

// ValidationError represents a syntax restriction violation.
type ValidationError struct {
	Message  string         // description of the violation
	Node     ast.Node       // the offending node
	Position token.Position // source location
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	pos := e.Position
	if pos.File != "" {
		return fmt.Sprintf("%s at %s:%d:%d", e.Message, pos.File, pos.LineNumber(), pos.ColumnNumber())
	}
	return fmt.Sprintf("%s at line %d, column %d", e.Message, pos.LineNumber(), pos.ColumnNumber())
}

// ToFormatted converts the violation for display with errors.Formatter.
func (e *ValidationError) ToFormatted() *errors.FormattedError {
	return &errors.FormattedError{
		Kind:     "syntax error",
		Message:  e.Message,
		Filename: e.Position.File,
		Line:     e.Position.LineNumber(),
		Column:   e.Position.ColumnNumber(),
	}
}

// ValidationErrors wraps multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// NewValidationErrors creates a ValidationErrors from a slice of errors.
func NewValidationErrors(errs []ValidationError) *ValidationErrors {
	return &ValidationErrors{Errors: errs}
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return e.Errors[0].Error()
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
		for _, err := range e.Errors {
			fmt.Fprintf(&b, "  - %s\n", err.Error())
		}
		return b.String()
	}
}

// Formatted returns every violation ready for errors.Formatter.FormatMultiple.
func (e *ValidationErrors) Formatted() []*errors.FormattedError {
	out := make([]*errors.FormattedError, len(e.Errors))
	for i := range e.Errors {
		out[i] = e.Errors[i].ToFormatted()
	}
	return out
}

// Unwrap returns the first error for errors.Is/As compatibility.
func (e *ValidationErrors) Unwrap() error {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}
	return nil
}

// Validator inspects an AST and returns validation errors.
// Validators should not modify the AST.
type Validator interface {
	// Validate checks the AST and returns any validation errors.
	// Multiple errors may be returned to show all violations at once.
	Validate(program *ast.Program) []ValidationError
}

// ValidatorFunc is an adapter to use a function as a Validator.
type ValidatorFunc func(*ast.Program) []ValidationError

// Validate implements the Validator interface.
func (f ValidatorFunc) Validate(p *ast.Program) []ValidationError {
	return f(p)
}

// Check runs every validator over program and returns the combined
// violations as a *ValidationErrors, or nil when there are none.
func Check(program *ast.Program, validators ...Validator) error {
	var all []ValidationError
	for _, v := range validators {
		all = append(all, v.Validate(program)...)
	}
	if len(all) == 0 {
		return nil
	}
	return NewValidationErrors(all)
}
