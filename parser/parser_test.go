package parser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bornomala-lang/bornomala/ast"
	bnerrors "github.com/bornomala-lang/bornomala/errors"
	"github.com/bornomala-lang/bornomala/internal/lexer"
	"github.com/bornomala-lang/bornomala/token"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, err := Parse(context.Background(), input)
	require.NoError(t, err)
	return program
}

func parseErr(t *testing.T, input string) ParserError {
	t.Helper()
	_, err := Parse(context.Background(), input)
	require.Error(t, err)
	var pe ParserError
	require.True(t, errors.As(err, &pe), "expected ParserError, got %T", err)
	return pe
}

func TestEmptyProgram(t *testing.T) {
	program := parse(t, "  \n\t ")
	assert.Empty(t, program.Stmts)
	assert.Equal(t, "", program.String())
}

func TestTokenLineCol(t *testing.T) {
	program := parse(t, "x = 5;\nলেখ x;")
	require.Len(t, program.Stmts, 2)

	stmt1 := program.Stmts[0].(*ast.ExprStmt)
	stmt2 := program.Stmts[1].(*ast.Print)

	assert.Equal(t, 1, stmt1.Pos().LineNumber())
	assert.Equal(t, 1, stmt1.Pos().ColumnNumber())
	assert.Equal(t, 7, stmt1.End().ColumnNumber())

	assert.Equal(t, 2, stmt2.Pos().LineNumber())
	assert.Equal(t, 1, stmt2.Pos().ColumnNumber())
	assert.Equal(t, 2, stmt2.End().LineNumber())
	assert.Equal(t, 7, stmt2.End().ColumnNumber())
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"লেখ 1 + 2 * 3;", "লেখ (1 + (2 * 3));"},
		{"লেখ (1 + 2) * 3;", "লেখ ((1 + 2) * 3);"},
		{"x = 8 - 3 - 2;", "x = ((8 - 3) - 2);"},
		{"x = 8 / 4 / 2;", "x = ((8 / 4) / 2);"},
		{"x = দুই যোগ তিন গুণ চার;", "x = (দুই যোগ (তিন গুণ চার));"},
		{"x = ৬ ভাগ ৩ " + string(token.BIYOG) + " 1;", "x = ((৬ ভাগ ৩) " + string(token.BIYOG) + " 1);"},
		{"a = b = 3;", "a = b = 3;"},
		{"a = 1 < 2;", "a = (1 < 2);"},
		{`লেখ "hi";`, `লেখ "hi";`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := parse(t, tt.input)
			assert.Equal(t, tt.expected, program.String())
		})
	}
}

func TestOperatorTypes(t *testing.T) {
	program := parse(t, "লেখ 1 যোগ 2 + 3;")
	printStmt := program.Stmts[0].(*ast.Print)
	outer, ok := printStmt.X.(*ast.Infix)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, outer.Op)
	assert.Equal(t, "+", outer.Literal)
	inner, ok := outer.X.(*ast.Infix)
	require.True(t, ok)
	assert.Equal(t, token.JOG, inner.Op)
	assert.Equal(t, "যোগ", inner.Literal)
}

func TestAssignIsRightAssociative(t *testing.T) {
	program := parse(t, "a = b = 3;")
	stmt := program.Stmts[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Name.Name)
	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Name)
	assert.Equal(t, int64(3), inner.Value.(*ast.Int).Value)
}

func TestNumberForms(t *testing.T) {
	program := parse(t, "লেখ ৭; লেখ পাঁচ; লেখ 42;")
	var values []int64
	for _, stmt := range program.Stmts {
		values = append(values, stmt.(*ast.Print).X.(*ast.Int).Value)
	}
	assert.Equal(t, []int64{7, 5, 42}, values)
}

func TestIfElse(t *testing.T) {
	program := parse(t, "যদি (x == 1) { লেখ 1; } নাহলে { লেখ 2; }")
	stmt, ok := program.Stmts[0].(*ast.If)
	require.True(t, ok)
	cond, ok := stmt.Cond.(*ast.Compare)
	require.True(t, ok)
	assert.Equal(t, token.EQ, cond.Op)
	assert.IsType(t, &ast.Block{}, stmt.Consequence)
	assert.IsType(t, &ast.Block{}, stmt.Alternative)

	program = parse(t, "যদি (x != 1) লেখ 1;")
	stmt = program.Stmts[0].(*ast.If)
	assert.IsType(t, &ast.Print{}, stmt.Consequence)
	assert.Nil(t, stmt.Alternative)
}

func TestDanglingElseBindsToNearestIf(t *testing.T) {
	program := parse(t, "যদি (a) যদি (b) লেখ 1; নাহলে লেখ 2;")
	outer := program.Stmts[0].(*ast.If)
	assert.Nil(t, outer.Alternative)
	inner := outer.Consequence.(*ast.If)
	assert.NotNil(t, inner.Alternative)
}

func TestWhileAndFor(t *testing.T) {
	program := parse(t, "যতক্ষণ (x < 3) { x = x + 1; } প্রতিবার (i = 0; i < 3; i = i + 1) লেখ i;")
	require.Len(t, program.Stmts, 2)

	while := program.Stmts[0].(*ast.While)
	assert.Equal(t, "(x < 3)", while.Cond.String())
	assert.Len(t, while.Body.(*ast.Block).Stmts, 1)

	loop := program.Stmts[1].(*ast.For)
	assert.Equal(t, "i = 0", loop.Init.String())
	assert.Equal(t, "(i < 3)", loop.Cond.String())
	assert.Equal(t, "i = (i + 1)", loop.Post.String())
	assert.IsType(t, &ast.Print{}, loop.Body)
}

func TestVowelCheck(t *testing.T) {
	program := parse(t, `স্বরবর্ণচেক("আমি");`)
	stmt, ok := program.Stmts[0].(*ast.VowelCheck)
	require.True(t, ok)
	assert.Equal(t, "আমি", stmt.Arg.Value)
}

func TestNestedBlocks(t *testing.T) {
	program := parse(t, "{ { } লেখ 1; }")
	outer := program.Stmts[0].(*ast.Block)
	require.Len(t, outer.Stmts, 2)
	assert.Empty(t, outer.Stmts[0].(*ast.Block).Stmts)
	assert.Equal(t, "{ { } লেখ 1; }", program.String())
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		code    bnerrors.ErrorCode
		message string
	}{
		{
			"missing semicolon",
			"লেখ 1",
			bnerrors.E1001,
			"syntax error: unexpected end of input while parsing print statement (expected \";\")",
		},
		{
			"missing closing paren",
			"লেখ (1 + 2;",
			bnerrors.E1001,
			"syntax error: unexpected \";\" while parsing parenthesized expression (expected \")\")",
		},
		{
			"chained comparison",
			"যদি (1 < 2 < 3) লেখ 1;",
			bnerrors.E1001,
			"syntax error: unexpected \"<\" while parsing if statement (expected \")\")",
		},
		{
			"unclosed block",
			"{ লেখ 1;",
			bnerrors.E1001,
			"syntax error: unexpected end of input while parsing block (expected \"}\")",
		},
		{
			"missing expression",
			"লেখ ;",
			bnerrors.E1004,
			"syntax error: expected an expression (got \";\")",
		},
		{
			"illegal token",
			"লেখ !;",
			bnerrors.E1003,
			"syntax error: illegal token \"!\"",
		},
		{
			"number out of range",
			"লেখ 99999999999999999999;",
			bnerrors.E1008,
			"syntax error: number 99999999999999999999 is out of range",
		},
		{
			"illegal token where punctuation expected",
			"x = 1 !",
			bnerrors.E1003,
			"syntax error: illegal token \"!\" while parsing expression statement",
		},
		{
			"vowel check with identifier",
			"স্বরবর্ণচেক(x);",
			bnerrors.E1011,
			"syntax error: expected string argument to স্বরবর্ণচেক (got \"x\")",
		},
		{
			"number assignment target",
			"1 = 2;",
			bnerrors.E1005,
			"syntax error: invalid assignment target: 1",
		},
		{
			"expression assignment target",
			"(x + 1) = 2;",
			bnerrors.E1005,
			"syntax error: invalid assignment target: (x + 1)",
		},
		{
			"for loop missing semicolon",
			"প্রতিবার (i = 0 i < 3) লেখ i;",
			bnerrors.E1001,
			"syntax error: unexpected \"i\" while parsing for loop (expected \";\")",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := parseErr(t, tt.input)
			assert.Equal(t, tt.code, pe.Code())
			assert.Equal(t, tt.message, pe.Error())
			assert.Equal(t, "syntax error", pe.Type())
		})
	}
}

func TestAssignmentTargetHint(t *testing.T) {
	pe := parseErr(t, "5 = x;")
	formatted := pe.FriendlyErrorMessage()
	assert.Contains(t, formatted, "syntax error[E1005]: invalid assignment target: 5")
	assert.Contains(t, formatted, "hint: only a variable name can appear on the left side of =")
}

func TestErrorSourceContext(t *testing.T) {
	_, err := Parse(context.Background(), "x = 1;\nলেখ (x;", WithFilename("main.bn"))
	require.Error(t, err)

	var pe ParserError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "main.bn", pe.File())
	assert.Equal(t, "লেখ (x;", pe.SourceCode())
	assert.Equal(t, 2, pe.StartPosition().LineNumber())
	assert.Equal(t, 7, pe.StartPosition().ColumnNumber())

	lines := strings.Split(pe.FriendlyErrorMessage(), "\n")
	assert.Equal(t, "  --> main.bn:2:7", lines[1])
	assert.Equal(t, " 2 | লেখ (x;", lines[3])
	assert.Equal(t, "   |       ^", lines[4])
}

func TestParseTokensWithoutSource(t *testing.T) {
	tokens := lexer.Tokenize("লেখ (;")
	_, err := New(tokens).Parse(context.Background())
	require.Error(t, err)
	var pe ParserError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "", pe.SourceCode())
}

func TestNewAppendsEOF(t *testing.T) {
	tokens := lexer.Tokenize("লেখ 1;")
	withoutEOF := tokens[:len(tokens)-1]
	program, err := New(withoutEOF).Parse(context.Background())
	require.NoError(t, err)
	assert.Len(t, program.Stmts, 1)
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Type, "input tokens must not be modified")

	program, err = New(nil).Parse(context.Background())
	require.NoError(t, err)
	assert.Empty(t, program.Stmts)
}

func TestMaxDepth(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("লেখ ")
	for i := 0; i < 600; i++ {
		sb.WriteString("(")
	}
	sb.WriteString("1")
	for i := 0; i < 600; i++ {
		sb.WriteString(")")
	}
	sb.WriteString(";")

	pe := parseErr(t, sb.String())
	assert.Equal(t, bnerrors.E1009, pe.Code())
	assert.Contains(t, pe.Error(), "maximum nesting depth exceeded")

	_, err := Parse(context.Background(), "{ { { লেখ 1; } } }", WithMaxDepth(3))
	require.Error(t, err)
	program, err := Parse(context.Background(), "{ { { লেখ 1; } } }", WithMaxDepth(10))
	require.NoError(t, err)
	assert.Len(t, program.Stmts, 1)
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, "লেখ 1; লেখ 2;")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParserNeverPanics(t *testing.T) {
	inputs := []string{
		"", ";", "}", "{", "(", ")", "=", "==", "!", "\"", "যদি", "যদি (", "নাহলে",
		"প্রতিবার (;;)", "স্বরবর্ণচেক", "স্বরবর্ণচেক(", "লেখ", "x =", "= x;",
		"\xe0", "\xe0\xa6", "\x80\x81", "99999999999999999999;",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			_, _ = Parse(context.Background(), input)
		}, "input %q", input)
	}
}
