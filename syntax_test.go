package bornomala

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bornomala-lang/bornomala/ast"
	"github.com/bornomala-lang/bornomala/syntax"
)

func TestWithSyntaxNoLoops(t *testing.T) {
	ctx := context.Background()

	t.Run("allows straight-line code", func(t *testing.T) {
		var out bytes.Buffer
		_, err := Eval(ctx, "যদি (1 < 2) লেখ 1;", WithSyntax(syntax.NoLoops), WithOutput(&out))
		require.NoError(t, err)
		assert.Equal(t, "লেখ: 1\n", out.String())
	})

	t.Run("rejects loops before running anything", func(t *testing.T) {
		var out bytes.Buffer
		vars, err := Eval(ctx, "লেখ 1; যতক্ষণ (1 == 1) { }", WithSyntax(syntax.NoLoops), WithOutput(&out))
		require.Error(t, err)
		assert.Nil(t, vars)
		assert.Empty(t, out.String())
		assert.Equal(t, "loops are not allowed at line 1, column 8", err.Error())
	})
}

func TestWithSyntaxCalculator(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	_, err := Eval(ctx, "লেখ দাম গুণ ২;", WithSyntax(syntax.Calculator), WithVariable("দাম", 21), WithOutput(&out))
	require.NoError(t, err)
	assert.Equal(t, "লেখ: 42\n", out.String())

	_, err = Eval(ctx, "দাম = 1; লেখ দাম;", WithSyntax(syntax.Calculator), WithOutput(&out))
	var verrs *syntax.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "assignment is not allowed", verrs.Errors[0].Message)
}

func TestWithValidator(t *testing.T) {
	maxStatements := syntax.ValidatorFunc(func(p *ast.Program) []syntax.ValidationError {
		if len(p.Stmts) > 2 {
			return []syntax.ValidationError{{Message: "too many statements", Node: p.Stmts[2], Position: p.Stmts[2].Pos()}}
		}
		return nil
	})
	_, err := Parse(context.Background(), "x = 1; y = 2;", WithValidator(maxStatements))
	require.NoError(t, err)

	_, err = Parse(context.Background(), "x = 1;\ny = 2;\nz = 3;", WithValidator(maxStatements), WithFilename("big.bn"))
	require.Error(t, err)
	assert.Equal(t, "too many statements at big.bn:3:1", err.Error())
}

func TestProgramAccessors(t *testing.T) {
	program, err := Parse(context.Background(), "x = দুই;\nলেখ x;", WithFilename("prog.bn"))
	require.NoError(t, err)
	assert.Equal(t, "prog.bn", program.Filename())
	assert.Equal(t, "x = দুই;\nলেখ x;", program.Source())
	require.Len(t, program.AST().Stmts, 2)
	assert.Equal(t, "x = দুই;\nলেখ x;", program.String())
}
