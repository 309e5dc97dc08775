// Package evaluator executes a parsed bornomala program by walking its
// syntax tree.
//
// Every value is a signed 64-bit integer. String literals are only special
// to the print and vowel check statements; anywhere else a string evaluates
// to its length in bytes. Comparisons produce conditions, not values, and
// may only appear where a condition is expected.
package evaluator

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bornomala-lang/bornomala/ast"
	"github.com/bornomala-lang/bornomala/errors"
	"github.com/bornomala-lang/bornomala/internal/lexer"
	"github.com/bornomala-lang/bornomala/token"
)

// Output labels.
const (
	PrintLabel = "লেখ: "
	VowelLabel = "স্বরবর্ণ আছে: "
	Yes        = "হ্যাঁ"
	No         = "না"
)

// ErrHalted is returned when an Observer stops execution.
var ErrHalted = errors.EvalErrorf("execution halted")

var vowels = []string{
	"অ", "আ", "ই", "ঈ", "উ", "ঊ",
	"ঋ", "এ", "ঐ", "ও", "ঔ",
}

// Vowels returns the independent vowel letters recognized by the vowel
// check.
func Vowels() []string {
	out := make([]string, len(vowels))
	copy(out, vowels)
	return out
}

// HasVowel reports whether s contains at least one of the independent vowel
// letters. Matching is a plain substring test on the UTF-8 bytes.
func HasVowel(s string) bool {
	for _, v := range vowels {
		if strings.Contains(s, v) {
			return true
		}
	}
	return false
}

// Option is a configuration function for an Evaluator.
type Option func(*Evaluator)

// WithOutput sets the writer that print and vowel check output goes to. The
// default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Evaluator) {
		e.out = w
	}
}

// WithLogger sets the logger used for trace output.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithEnvironment sets the variable environment. Use this to seed variables
// or to inspect them after execution.
func WithEnvironment(env *Environment) Option {
	return func(e *Evaluator) {
		e.env = env
	}
}

// WithSource supplies the file name and source text of the program, which
// are attached to runtime errors.
func WithSource(filename, source string) Option {
	return func(e *Evaluator) {
		e.filename = filename
		e.source = source
	}
}

// WithObserver sets an observer for execution events.
func WithObserver(observer Observer) Option {
	return func(e *Evaluator) {
		e.observer = observer
	}
}

// Evaluator executes programs against a single variable environment. It is
// not safe for concurrent use.
type Evaluator struct {
	env      *Environment
	out      io.Writer
	logger   zerolog.Logger
	observer Observer
	filename string
	source   string
	depth    int
	steps    int
}

// New returns an Evaluator with a fresh environment unless one is supplied.
func New(options ...Option) *Evaluator {
	e := &Evaluator{
		out:    os.Stdout,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(e)
	}
	if e.env == nil {
		e.env = NewEnvironment(nil)
	}
	return e
}

// Environment returns the evaluator's variable environment.
func (e *Evaluator) Environment() *Environment {
	return e.env
}

// Execute runs each statement of the program in order. Output written before
// an error is not retracted.
func (e *Evaluator) Execute(ctx context.Context, program *ast.Program) error {
	if program == nil {
		return nil
	}
	e.logger.Debug().Int("statements", len(program.Stmts)).Msg("executing program")
	for _, stmt := range program.Stmts {
		if err := e.execStmt(ctx, stmt); err != nil {
			e.logger.Debug().Err(err).Int("steps", e.steps).Msg("execution failed")
			return err
		}
	}
	e.logger.Debug().
		Int("steps", e.steps).
		Int("variables", e.env.Len()).
		Msg("execution finished")
	return nil
}

// Evaluate returns the value of node. Expressions yield their value; the
// vowel check yields 1 or 0; other statements yield 0 after executing. A nil
// node yields 0.
func (e *Evaluator) Evaluate(ctx context.Context, node ast.Node) (int64, error) {
	switch node := node.(type) {
	case nil:
		return 0, nil
	case *ast.Program:
		return 0, e.Execute(ctx, node)
	case ast.Expr:
		return e.eval(ctx, node)
	case *ast.VowelCheck:
		if err := e.observe(node); err != nil {
			return 0, err
		}
		return e.vowelCheck(node)
	case ast.Stmt:
		return 0, e.execStmt(ctx, node)
	default:
		return 0, e.unknownNode(node)
	}
}

// EvalCondition decides a condition. A comparison compares its integer
// operands. Any other expression is not a condition and is false, but the
// operands of an arithmetic or assignment node are still evaluated, left
// then right, so their side effects and errors happen. The node itself is
// never applied: `যদি (x = 5)` leaves x unset.
func (e *Evaluator) EvalCondition(ctx context.Context, expr ast.Expr) (bool, error) {
	var left, right ast.Expr
	var op token.Type
	switch expr := expr.(type) {
	case nil:
		return false, nil
	case *ast.Compare:
		left, op, right = expr.X, expr.Op, expr.Y
	case *ast.Infix:
		left, right = expr.X, expr.Y
	case *ast.Assign:
		left, right = expr.Name, expr.Value
	default:
		e.logger.Trace().Str("expr", expr.String()).Msg("non-comparison condition is false")
		return false, nil
	}
	x, err := e.eval(ctx, left)
	if err != nil {
		return false, err
	}
	y, err := e.eval(ctx, right)
	if err != nil {
		return false, err
	}
	switch op {
	case token.LT:
		return x < y, nil
	case token.GT:
		return x > y, nil
	case token.EQ:
		return x == y, nil
	case token.NOT_EQ:
		return x != y, nil
	}
	return false, nil
}

func (e *Evaluator) execStmt(ctx context.Context, stmt ast.Stmt) error {
	if stmt == nil {
		return nil
	}
	if err := e.observe(stmt); err != nil {
		return err
	}
	e.depth++
	defer func() { e.depth-- }()

	switch stmt := stmt.(type) {
	case *ast.ExprStmt:
		_, err := e.eval(ctx, stmt.X)
		return err
	case *ast.Print:
		return e.print(ctx, stmt)
	case *ast.VowelCheck:
		_, err := e.vowelCheck(stmt)
		return err
	case *ast.Block:
		return e.execBlock(ctx, stmt)
	case *ast.If:
		return e.execIf(ctx, stmt)
	case *ast.While:
		return e.execWhile(ctx, stmt)
	case *ast.For:
		return e.execFor(ctx, stmt)
	default:
		return e.unknownNode(stmt)
	}
}

func (e *Evaluator) execBlock(ctx context.Context, block *ast.Block) error {
	for _, stmt := range block.Stmts {
		if err := e.execStmt(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execIf(ctx context.Context, stmt *ast.If) error {
	ok, err := e.EvalCondition(ctx, stmt.Cond)
	if err != nil {
		return err
	}
	if ok {
		return e.execStmt(ctx, stmt.Consequence)
	}
	if stmt.Alternative != nil {
		return e.execStmt(ctx, stmt.Alternative)
	}
	return nil
}

func (e *Evaluator) execWhile(ctx context.Context, stmt *ast.While) error {
	for {
		if err := e.checkContext(ctx, stmt); err != nil {
			return err
		}
		ok, err := e.EvalCondition(ctx, stmt.Cond)
		if err != nil || !ok {
			return err
		}
		if err := e.execStmt(ctx, stmt.Body); err != nil {
			return err
		}
	}
}

func (e *Evaluator) execFor(ctx context.Context, stmt *ast.For) error {
	if _, err := e.eval(ctx, stmt.Init); err != nil {
		return err
	}
	for {
		if err := e.checkContext(ctx, stmt); err != nil {
			return err
		}
		ok, err := e.EvalCondition(ctx, stmt.Cond)
		if err != nil || !ok {
			return err
		}
		if err := e.execStmt(ctx, stmt.Body); err != nil {
			return err
		}
		if _, err := e.eval(ctx, stmt.Post); err != nil {
			return err
		}
	}
}

func (e *Evaluator) print(ctx context.Context, stmt *ast.Print) error {
	if s, ok := stmt.X.(*ast.String); ok {
		return e.writeLine(PrintLabel + s.Value)
	}
	value, err := e.eval(ctx, stmt.X)
	if err != nil {
		return err
	}
	return e.writeLine(fmt.Sprintf("%s%d", PrintLabel, value))
}

func (e *Evaluator) vowelCheck(stmt *ast.VowelCheck) (int64, error) {
	found := HasVowel(stmt.Arg.Value)
	answer := No
	if found {
		answer = Yes
	}
	if err := e.writeLine(VowelLabel + answer); err != nil {
		return 0, err
	}
	if found {
		return 1, nil
	}
	return 0, nil
}

func (e *Evaluator) writeLine(line string) error {
	if _, err := io.WriteString(e.out, line+"\n"); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (e *Evaluator) eval(ctx context.Context, expr ast.Expr) (int64, error) {
	switch expr := expr.(type) {
	case nil:
		return 0, nil
	case *ast.Int:
		return expr.Value, nil
	case *ast.String:
		return int64(len(expr.Value)), nil
	case *ast.Ident:
		return e.env.Get(expr.Name), nil
	case *ast.Assign:
		value, err := e.eval(ctx, expr.Value)
		if err != nil {
			return 0, err
		}
		e.env.Set(expr.Name.Name, value)
		e.logger.Trace().Str("name", expr.Name.Name).Int64("value", value).Msg("assign")
		return value, nil
	case *ast.Infix:
		return e.evalInfix(ctx, expr)
	default:
		// Comparisons land here: they are conditions, not values.
		return 0, e.unknownNode(expr)
	}
}

func (e *Evaluator) evalInfix(ctx context.Context, expr *ast.Infix) (int64, error) {
	if isDivision(expr.Op) {
		// The divisor is evaluated and checked before the dividend.
		y, err := e.eval(ctx, expr.Y)
		if err != nil {
			return 0, err
		}
		if y == 0 {
			return 0, errors.NewRuntimeError(errors.E3002, e.location(expr.OpPos), errors.ErrDivisionByZero)
		}
		x, err := e.eval(ctx, expr.X)
		if err != nil {
			return 0, err
		}
		return x / y, nil
	}
	x, err := e.eval(ctx, expr.X)
	if err != nil {
		return 0, err
	}
	y, err := e.eval(ctx, expr.Y)
	if err != nil {
		return 0, err
	}
	switch expr.Op {
	case token.PLUS, token.JOG:
		return x + y, nil
	case token.MINUS, token.BIYOG:
		return x - y, nil
	case token.ASTERISK, token.GUN:
		return x * y, nil
	default:
		return 0, e.unknownNode(expr)
	}
}

func isDivision(t token.Type) bool {
	return t == token.SLASH || t == token.BHAG
}

func (e *Evaluator) observe(stmt ast.Stmt) error {
	e.steps++
	if e.observer == nil {
		return nil
	}
	event := StatementEvent{
		Stmt:     stmt,
		Location: e.location(stmt.Pos()),
		Depth:    e.depth,
		Step:     e.steps,
	}
	if !e.observer.OnStatement(event) {
		return ErrHalted
	}
	return nil
}

// checkContext reports a cancelled or expired ctx as a runtime error at the
// loop that noticed it.
func (e *Evaluator) checkContext(ctx context.Context, stmt ast.Stmt) error {
	if err := ctx.Err(); err != nil {
		return errors.NewRuntimeError(errors.E3011, e.location(stmt.Pos()), err)
	}
	return nil
}

func (e *Evaluator) unknownNode(node ast.Node) error {
	e.logger.Debug().Str("node", fmt.Sprintf("%T", node)).Msg("unknown node type")
	var pos token.Position
	if node != nil {
		pos = node.Pos()
	}
	return errors.NewRuntimeError(errors.E3007, e.location(pos), errors.ErrUnknownNode)
}

func (e *Evaluator) location(pos token.Position) errors.SourceLocation {
	loc := errors.SourceLocation{
		Filename: e.filename,
		Line:     pos.LineNumber(),
		Column:   pos.ColumnNumber(),
	}
	if e.source != "" {
		loc.Source = lexer.LineText(e.source, pos)
	}
	return loc
}
