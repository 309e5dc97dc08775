package bornomala

import (
	"io"
	"maps"

	"github.com/rs/zerolog"

	"github.com/bornomala-lang/bornomala/evaluator"
	"github.com/bornomala-lang/bornomala/parser"
	"github.com/bornomala-lang/bornomala/syntax"
)

// Option configures a bornomala parse or execution.
type Option func(*options)

type options struct {
	vars     map[string]int64
	filename string
	output   io.Writer
	logger   zerolog.Logger
	observer evaluator.Observer
	maxSteps int
	maxDepth int

	validators []syntax.Validator
}

func collectOptions(opts ...Option) *options {
	o := &options{
		vars:   map[string]int64{},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts() []parser.Option {
	opts := []parser.Option{parser.WithLogger(o.logger)}
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	if o.maxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(o.maxDepth))
	}
	return opts
}

func (o *options) evaluatorOpts(logger zerolog.Logger) []evaluator.Option {
	opts := []evaluator.Option{
		evaluator.WithLogger(logger),
		evaluator.WithEnvironment(evaluator.NewEnvironment(o.vars)),
	}
	if o.output != nil {
		opts = append(opts, evaluator.WithOutput(o.output))
	}
	switch {
	case o.observer != nil && o.maxSteps > 0:
		opts = append(opts, evaluator.WithObserver(bothObservers(o.observer, evaluator.StepLimit(o.maxSteps))))
	case o.observer != nil:
		opts = append(opts, evaluator.WithObserver(o.observer))
	case o.maxSteps > 0:
		opts = append(opts, evaluator.WithObserver(evaluator.StepLimit(o.maxSteps)))
	}
	return opts
}

func bothObservers(a, b evaluator.Observer) evaluator.Observer {
	return evaluator.ObserverFunc(func(event evaluator.StatementEvent) bool {
		return a.OnStatement(event) && b.OnStatement(event)
	})
}

// WithVariables seeds the variable environment. This option is additive,
// so multiple WithVariables options may be supplied. If the same name is
// supplied more than once, the last value wins.
func WithVariables(vars map[string]int64) Option {
	return func(o *options) {
		maps.Copy(o.vars, vars)
	}
}

// WithVariable seeds a single variable.
func WithVariable(name string, value int64) Option {
	return func(o *options) {
		o.vars[name] = value
	}
}

// WithFilename sets the filename for the source code. It is used in error
// messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithOutput sets where print and vowel check output is written. The default
// is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithLogger sets the logger for parse and execution tracing. Each run adds
// a "run_id" field.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithObserver sets an observer for execution events.
func WithObserver(observer evaluator.Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithMaxSteps halts execution with evaluator.ErrHalted after n statements.
// Zero means no limit, which is the default.
func WithMaxSteps(n int) Option {
	return func(o *options) {
		o.maxSteps = n
	}
}

// WithMaxDepth sets the maximum nesting depth accepted by the parser.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithSyntax restricts the language features a program may use. Parse
// returns a *syntax.ValidationErrors listing every violation.
func WithSyntax(config syntax.SyntaxConfig) Option {
	return func(o *options) {
		o.validators = append(o.validators, syntax.NewSyntaxValidator(config))
	}
}

// WithValidator adds a custom validator that runs after parsing.
func WithValidator(v syntax.Validator) Option {
	return func(o *options) {
		o.validators = append(o.validators, v)
	}
}
