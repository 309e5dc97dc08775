package syntax

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bornomala-lang/bornomala/ast"
	"github.com/bornomala-lang/bornomala/token"
)

// Issue levels.
const (
	LevelWarning = "warning"
	LevelError   = "error"
)

// MaxLineLength is the width past which a line is reported as too long,
// counted in characters.
const MaxLineLength = 120

// Issue is a probable mistake found by Lint.
type Issue struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Level   string `json:"level"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s [%s] %s", i.Line, i.Column, i.Level, i.Rule, i.Message)
}

// Lint reports constructs that parse but probably do not do what the author
// meant. Issues are sorted by position.
func Lint(program *ast.Program, source string) []Issue {
	l := &linter{assigned: map[string]bool{}, reported: map[string]bool{}}
	for _, stmt := range program.Stmts {
		l.stmt(stmt)
	}
	l.lines(source)
	sort.SliceStable(l.issues, func(i, j int) bool {
		a, b := l.issues[i], l.issues[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return l.issues
}

type linter struct {
	issues   []Issue
	assigned map[string]bool
	reported map[string]bool
}

func (l *linter) add(pos token.Position, level, rule, format string, args ...any) {
	l.issues = append(l.issues, Issue{
		Line:    pos.LineNumber(),
		Column:  pos.ColumnNumber(),
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Level:   level,
	})
}

// stmt visits statements in execution order so reads can be matched with
// earlier assignments.
func (l *linter) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Block:
		for _, inner := range s.Stmts {
			l.stmt(inner)
		}
	case *ast.ExprStmt:
		l.expr(s.X)
	case *ast.Print:
		if _, ok := s.X.(*ast.String); !ok {
			l.expr(s.X)
		}
	case *ast.If:
		l.cond(s.Cond)
		l.body(s.Consequence, "if")
		if s.Alternative != nil {
			l.body(s.Alternative, "else")
		}
	case *ast.While:
		l.cond(s.Cond)
		l.body(s.Body, "loop")
	case *ast.For:
		l.expr(s.Init)
		l.cond(s.Cond)
		l.body(s.Body, "loop")
		l.expr(s.Post)
	}
}

func (l *linter) body(s ast.Stmt, what string) {
	if b, ok := s.(*ast.Block); ok && len(b.Stmts) == 0 {
		l.add(b.Pos(), LevelWarning, "empty-block", "empty %s block", what)
	}
	l.stmt(s)
}

func (l *linter) cond(x ast.Expr) {
	cmp, ok := x.(*ast.Compare)
	if !ok {
		const msg = "condition %s is not a comparison and is always false"
		switch x := x.(type) {
		case *ast.Infix:
			l.add(x.Pos(), LevelWarning, "not-a-condition", msg+"; its operands are still evaluated", x)
			l.expr(x.X)
			l.expr(x.Y)
		case *ast.Assign:
			// Only the operands run; the assignment itself never happens.
			l.add(x.Pos(), LevelWarning, "not-a-condition", msg+"; its operands are still evaluated", x)
			l.expr(x.Name)
			l.expr(x.Value)
		default:
			l.add(x.Pos(), LevelWarning, "not-a-condition", msg, x)
			l.expr(x)
		}
		return
	}
	if a, ok := cmp.X.(*ast.Ident); ok {
		if b, ok := cmp.Y.(*ast.Ident); ok && a.Name == b.Name {
			l.add(cmp.Pos(), LevelWarning, "self-compare", "comparing %q to itself", a.Name)
		}
	}
	if a, ok := cmp.X.(*ast.Int); ok {
		if b, ok := cmp.Y.(*ast.Int); ok {
			l.add(cmp.Pos(), LevelWarning, "constant-condition",
				"condition is always %t", compareInts(cmp.Op, a.Value, b.Value))
		}
	}
	l.operand(cmp.X)
	l.operand(cmp.Y)
}

func (l *linter) expr(x ast.Expr) {
	switch x := x.(type) {
	case *ast.Ident:
		if !l.assigned[x.Name] && !l.reported[x.Name] {
			l.reported[x.Name] = true
			l.add(x.Pos(), LevelWarning, "unset-variable",
				"variable %q is read before it is assigned and starts at 0", x.Name)
		}
	case *ast.Assign:
		l.expr(x.Value)
		l.assigned[x.Name.Name] = true
	case *ast.Infix:
		l.operand(x.X)
		l.operand(x.Y)
		if x.Op == token.SLASH || x.Op == token.BHAG {
			if lit, ok := x.Y.(*ast.Int); ok && lit.Value == 0 {
				l.add(x.OpPos, LevelError, "division-by-zero", "division by zero")
			}
		}
	case *ast.Compare:
		l.add(x.Pos(), LevelError, "comparison-value",
			"comparison %s can only be used as a condition", x)
		l.operand(x.X)
		l.operand(x.Y)
	}
}

// operand checks one side of an arithmetic or comparison operator.
func (l *linter) operand(x ast.Expr) {
	if s, ok := x.(*ast.String); ok {
		l.add(s.Pos(), LevelWarning, "string-operand",
			"string %s is used as the number %d (its length in bytes)", s, len(s.Value))
		return
	}
	l.expr(x)
}

func (l *linter) lines(source string) {
	if source == "" {
		return
	}
	for i, line := range strings.Split(source, "\n") {
		pos := token.Position{Line: i}
		if strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
			pos.Column = utf8.RuneCountInString(strings.TrimRight(line, " \t"))
			l.add(pos, LevelWarning, "trailing-whitespace", "trailing whitespace")
		}
		if n := utf8.RuneCountInString(line); n > MaxLineLength {
			pos.Column = MaxLineLength
			l.add(pos, LevelWarning, "line-too-long", "line exceeds %d characters (%d)", MaxLineLength, n)
		}
	}
}

func compareInts(op token.Type, a, b int64) bool {
	switch op {
	case token.LT:
		return a < b
	case token.GT:
		return a > b
	case token.EQ:
		return a == b
	case token.NOT_EQ:
		return a != b
	}
	return false
}
