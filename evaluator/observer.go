package evaluator

import (
	"github.com/bornomala-lang/bornomala/ast"
	"github.com/bornomala-lang/bornomala/errors"
)

// Observer receives execution events from an Evaluator. It can be used for
// tracing, coverage or to stop a runaway program.
//
// Observer methods are called synchronously during execution, so
// implementations should be fast.
type Observer interface {
	// OnStatement is called before each statement executes, including
	// statements nested in blocks and loop bodies. Returning false halts
	// execution with ErrHalted.
	OnStatement(event StatementEvent) bool
}

// StatementEvent describes a statement about to execute.
type StatementEvent struct {
	// Stmt is the statement node.
	Stmt ast.Stmt

	// Location is the source location of the statement.
	Location errors.SourceLocation

	// Depth is the nesting depth, 0 for top level statements.
	Depth int

	// Step counts statements executed so far in this run, starting at 1.
	Step int
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(event StatementEvent) bool

func (f ObserverFunc) OnStatement(event StatementEvent) bool {
	return f(event)
}

// StepLimit returns an observer that halts execution after max statements.
func StepLimit(max int) Observer {
	return ObserverFunc(func(event StatementEvent) bool {
		return event.Step <= max
	})
}
