package syntax

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bornomala-lang/bornomala/ast"
	bnerrors "github.com/bornomala-lang/bornomala/errors"
	"github.com/bornomala-lang/bornomala/parser"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := parser.Parse(context.Background(), src)
	require.NoError(t, err)
	return program
}

func TestSyntaxValidator(t *testing.T) {
	tests := []struct {
		name   string
		config SyntaxConfig
		src    string
		want   []string
	}{
		{"full language", FullLanguage, "x = 1; যতক্ষণ (x < 3) x = x + 1;", nil},
		{"no loops", NoLoops, "x = 1; যতক্ষণ (x < 3) x = x + 1;", []string{"loops are not allowed"}},
		{"no for loops", NoLoops, "প্রতিবার (i = 0; i < 3; i = i + 1) লেখ i;", []string{"loops are not allowed"}},
		{"calculator allows print", Calculator, "লেখ দুই যোগ তিন;", nil},
		{"calculator", Calculator, "x = 1; যদি (x > 0) লেখ x;", []string{
			"assignment is not allowed",
			"if statements are not allowed",
		}},
		{"no print", SyntaxConfig{DisallowPrint: true}, "লেখ 1;", []string{"print statements are not allowed"}},
		{"no vowel check", Calculator, `স্বরবর্ণচেক("আ");`, []string{"vowel checks are not allowed"}},
		{"nested", NoLoops, "যদি (1 < 2) { যতক্ষণ (1 < 2) { } }", []string{"loops are not allowed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := NewSyntaxValidator(tt.config).Validate(parse(t, tt.src))
			var got []string
			for _, e := range errs {
				got = append(got, e.Message)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidationErrorPosition(t *testing.T) {
	errs := NewSyntaxValidator(NoLoops).Validate(parse(t, "x = 1;\n  যতক্ষণ (x < 3) x = x + 1;"))
	require.Len(t, errs, 1)
	assert.Equal(t, "loops are not allowed at line 2, column 3", errs[0].Error())
	_, ok := errs[0].Node.(*ast.While)
	assert.True(t, ok)

	program, err := parser.Parse(context.Background(), "যতক্ষণ (1 < 2) {}", parser.WithFilename("loop.bn"))
	require.NoError(t, err)
	errs = NewSyntaxValidator(NoLoops).Validate(program)
	require.Len(t, errs, 1)
	assert.Equal(t, "loops are not allowed at loop.bn:1:1", errs[0].Error())
}

func TestCheck(t *testing.T) {
	program := parse(t, "x = 1; y = 2;")
	assert.NoError(t, Check(program))
	assert.NoError(t, Check(program, NewSyntaxValidator(NoLoops)))

	err := Check(program, NewSyntaxValidator(Calculator))
	require.Error(t, err)
	var verrs *ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs.Errors, 2)
	assert.True(t, strings.HasPrefix(err.Error(), "2 validation errors:\n  - assignment is not allowed at line 1, column 1\n"))

	var single *ValidationError
	require.True(t, errors.As(err, &single))
	assert.Equal(t, "assignment is not allowed", single.Message)
}

func TestValidationErrorsFormatted(t *testing.T) {
	program, err := parser.Parse(context.Background(), "x = 1;\nযদি (x > 0) লেখ x;", parser.WithFilename("calc.bn"))
	require.NoError(t, err)
	var verrs *ValidationErrors
	require.True(t, errors.As(Check(program, NewSyntaxValidator(Calculator)), &verrs))

	formatted := verrs.Formatted()
	require.Len(t, formatted, 2)
	assert.Equal(t, "syntax error", formatted[1].Kind)
	assert.Equal(t, "if statements are not allowed", formatted[1].Message)
	assert.Equal(t, "calc.bn", formatted[1].Filename)
	assert.Equal(t, 2, formatted[1].Line)
	assert.Equal(t, 1, formatted[1].Column)

	out := bnerrors.NewFormatter(false).FormatMultiple(formatted)
	assert.Contains(t, out, "syntax error[1/2]: assignment is not allowed\n  --> calc.bn:1:1\n")
	assert.Contains(t, out, "syntax error[2/2]: if statements are not allowed\n  --> calc.bn:2:1\n")
	assert.Contains(t, out, "found 2 errors")
}

func TestValidatorFunc(t *testing.T) {
	noX := ValidatorFunc(func(p *ast.Program) []ValidationError {
		var errs []ValidationError
		for node := range ast.Preorder(p) {
			if id, ok := node.(*ast.Ident); ok && id.Name == "x" {
				errs = append(errs, ValidationError{Message: "x is reserved", Node: id, Position: id.Pos()})
			}
		}
		return errs
	})
	err := Check(parse(t, "y = 1; x = y;"), noX)
	require.Error(t, err)
	assert.Equal(t, "x is reserved at line 1, column 8", err.Error())
}

func TestValidationErrorsEmpty(t *testing.T) {
	assert.Equal(t, "no validation errors", NewValidationErrors(nil).Error())
	assert.Nil(t, NewValidationErrors(nil).Unwrap())
}

func rules(issues []Issue) []string {
	var out []string
	for _, i := range issues {
		out = append(out, i.Rule)
	}
	return out
}

func TestLint(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"clean", "x = 1; যতক্ষণ (x < 3) { x = x + 1; } লেখ x;", nil},
		{"unset variable", "লেখ y;", []string{"unset-variable"}},
		{"unset reported once", "লেখ y; লেখ y;", []string{"unset-variable"}},
		{"self assignment reads first", "x = x + 1;", []string{"unset-variable"}},
		{"for init assigns", "প্রতিবার (i = 0; i < 3; i = i + 1) লেখ i;", nil},
		{"not a condition", "x = 1; যদি (x) লেখ x;", []string{"not-a-condition"}},
		{"self compare", "x = 1; যদি (x == x) লেখ x;", []string{"self-compare"}},
		{"constant condition", "যদি (1 < 2) লেখ 1;", []string{"constant-condition"}},
		{"string operand", `লেখ "আমি" + 1;`, []string{"string-operand"}},
		{"string print is fine", `লেখ "আমি";`, nil},
		{"division by zero", "লেখ 4 ভাগ 0;", []string{"division-by-zero"}},
		{"comparison value", "x = 1; লেখ x < 2;", []string{"comparison-value"}},
		{"empty blocks", "x = 1; যদি (x > 0) { } নাহলে { }", []string{"empty-block", "empty-block"}},
		{"trailing whitespace", "লেখ 1; ", []string{"trailing-whitespace"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules(Lint(parse(t, tt.src), tt.src)))
		})
	}
}

func TestLintMessagesAndOrder(t *testing.T) {
	src := "যদি (a) {\n}\nলেখ 8 / 0;"
	issues := Lint(parse(t, src), src)
	require.Len(t, issues, 4)
	assert.Equal(t, "1:6: warning [not-a-condition] condition a is not a comparison and is always false", issues[0].String())
	assert.Equal(t, "1:6: warning [unset-variable] variable \"a\" is read before it is assigned and starts at 0", issues[1].String())
	assert.Equal(t, "1:9: warning [empty-block] empty if block", issues[2].String())
	assert.Equal(t, "3:7: error [division-by-zero] division by zero", issues[3].String())
}

func TestLintNonComparisonOperands(t *testing.T) {
	src := "x = 0; যদি (x + (y = 5)) { লেখ y; }"
	issues := Lint(parse(t, src), src)
	require.NotEmpty(t, issues)
	assert.Equal(t, "not-a-condition", issues[0].Rule)
	assert.Equal(t, "condition (x + y = 5) is not a comparison and is always false; its operands are still evaluated", issues[0].Message)
	assert.Equal(t, []string{"not-a-condition"}, rules(issues))

	src = "যদি (x = 5) লেখ x;"
	assert.Equal(t, []string{"not-a-condition", "unset-variable"}, rules(Lint(parse(t, src), src)))
}

func TestLintLongLine(t *testing.T) {
	src := "লেখ 1;" + strings.Repeat(" ", MaxLineLength) + "লেখ 2;"
	issues := Lint(parse(t, src), src)
	assert.Equal(t, []string{"line-too-long"}, rules(issues))
	assert.Equal(t, MaxLineLength+1, issues[0].Column)
}
