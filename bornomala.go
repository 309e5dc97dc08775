// Package bornomala runs programs written in bornomala, a small language
// with Bengali keywords and numerals.
//
// The simplest entry point is Eval, which parses and runs source code and
// returns the final variables:
//
//	vars, err := bornomala.Eval(ctx, "x = দুই যোগ তিন; লেখ x;")
//
// Parse and Run split the two steps so a program can be parsed once and run
// many times.
package bornomala

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/bornomala-lang/bornomala/evaluator"
	"github.com/bornomala-lang/bornomala/internal/lexer"
	"github.com/bornomala-lang/bornomala/parser"
	"github.com/bornomala-lang/bornomala/syntax"
	"github.com/bornomala-lang/bornomala/token"
)

// Tokenize returns the tokens of source. It never fails; unrecognized input
// becomes token.ILLEGAL.
func Tokenize(source string, opts ...Option) []token.Token {
	o := collectOptions(opts...)
	l := lexer.New(source)
	if o.filename != "" {
		l.SetFilename(o.filename)
	}
	return l.Tokenize()
}

// Parse parses source code into a Program.
func Parse(ctx context.Context, source string, opts ...Option) (*Program, error) {
	o := collectOptions(opts...)
	root, err := parser.Parse(ctx, source, o.parserOpts()...)
	if err != nil {
		return nil, err
	}
	if err := syntax.Check(root, o.validators...); err != nil {
		return nil, err
	}
	return &Program{root: root, source: source, filename: o.filename}, nil
}

// Run executes a parsed program with a fresh variable environment and
// returns the variables as they were when execution stopped. On error the
// variables are still returned.
func Run(ctx context.Context, program *Program, opts ...Option) (map[string]int64, error) {
	o := collectOptions(opts...)
	runID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generating run id: %w", err)
	}
	logger := o.logger.With().Str("run_id", runID.String()).Logger()
	if program.filename != "" {
		logger = logger.With().Str("file", program.filename).Logger()
	}

	evalOpts := append(o.evaluatorOpts(logger), evaluator.WithSource(program.filename, program.source))
	e := evaluator.New(evalOpts...)
	logger.Debug().Msg("run started")
	err = e.Execute(ctx, program.root)
	vars := e.Environment().Snapshot()
	if err != nil {
		logger.Debug().Err(err).Msg("run failed")
		return vars, err
	}
	logger.Debug().Int("variables", len(vars)).Msg("run finished")
	return vars, nil
}

// Eval parses and runs source code. It is equivalent to Parse followed by
// Run. A syntax error means nothing was executed.
func Eval(ctx context.Context, source string, opts ...Option) (map[string]int64, error) {
	program, err := Parse(ctx, source, opts...)
	if err != nil {
		return nil, err
	}
	return Run(ctx, program, opts...)
}
