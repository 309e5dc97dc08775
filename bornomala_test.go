package bornomala

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bnerrors "github.com/bornomala-lang/bornomala/errors"
	"github.com/bornomala-lang/bornomala/evaluator"
	"github.com/bornomala-lang/bornomala/parser"
	"github.com/bornomala-lang/bornomala/token"
)

func TestEval(t *testing.T) {
	var out bytes.Buffer
	vars, err := Eval(context.Background(), "x = দুই যোগ তিন; লেখ x;", WithOutput(&out))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"x": 5}, vars)
	assert.Equal(t, "লেখ: 5\n", out.String())
}

func TestEvalWithVariables(t *testing.T) {
	var out bytes.Buffer
	vars, err := Eval(context.Background(), "y = x * 2; লেখ y;",
		WithOutput(&out),
		WithVariables(map[string]int64{"x": 10}),
		WithVariable("z", 1))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"x": 10, "y": 20, "z": 1}, vars)
	assert.Equal(t, "লেখ: 20\n", out.String())
}

func TestSyntaxErrorRunsNothing(t *testing.T) {
	var out bytes.Buffer
	vars, err := Eval(context.Background(), "লেখ 1; স্বরবর্ণচেক(5);", WithOutput(&out), WithFilename("bad.bn"))
	require.Error(t, err)
	assert.Nil(t, vars)
	assert.Empty(t, out.String())

	var pe parser.ParserError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, bnerrors.E1011, pe.Code())
	assert.Equal(t, "bad.bn", pe.File())
}

func TestRuntimeErrorKeepsVariables(t *testing.T) {
	var out bytes.Buffer
	vars, err := Eval(context.Background(), "a = 1; লেখ a; b = a / 0;", WithOutput(&out))
	require.Error(t, err)
	assert.True(t, errors.Is(err, bnerrors.ErrDivisionByZero))
	assert.Equal(t, map[string]int64{"a": 1}, vars)
	assert.Equal(t, "লেখ: 1\n", out.String())
}

func TestParseOnceRunMany(t *testing.T) {
	program, err := Parse(context.Background(), "x = x + 1; লেখ x;", WithFilename("count.bn"))
	require.NoError(t, err)
	assert.Equal(t, "count.bn", program.Filename())
	assert.Equal(t, "x = x + 1; লেখ x;", program.Source())
	assert.Equal(t, "x = (x + 1);\nলেখ x;", program.String())

	for i := 0; i < 3; i++ {
		var out bytes.Buffer
		vars, err := Run(context.Background(), program, WithOutput(&out))
		require.NoError(t, err)
		assert.Equal(t, int64(1), vars["x"])
		assert.Equal(t, "লেখ: 1\n", out.String())
	}
}

func TestVariableNames(t *testing.T) {
	program, err := Parse(context.Background(), `
b = 1;
প্রতিবার (i = 0; i < 3; i = i + 1) { a = b = i; }
লেখ c;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "i"}, program.VariableNames())
}

func TestMaxSteps(t *testing.T) {
	_, err := Eval(context.Background(), "যতক্ষণ (1 == 1) { x = x + 1; }",
		WithOutput(&bytes.Buffer{}), WithMaxSteps(100))
	require.Error(t, err)
	assert.True(t, errors.Is(err, evaluator.ErrHalted))
}

func TestObserverWithMaxSteps(t *testing.T) {
	var seen int
	observer := evaluator.ObserverFunc(func(evaluator.StatementEvent) bool {
		seen++
		return true
	})
	_, err := Eval(context.Background(), "লেখ 1; লেখ 2; লেখ 3;",
		WithOutput(&bytes.Buffer{}), WithObserver(observer), WithMaxSteps(2))
	require.Error(t, err)
	assert.Equal(t, 3, seen)
}

func TestMaxDepth(t *testing.T) {
	src := "লেখ " + strings.Repeat("(", 20) + "1" + strings.Repeat(")", 20) + ";"
	_, err := Eval(context.Background(), src, WithOutput(&bytes.Buffer{}), WithMaxDepth(10))
	require.Error(t, err)
	var pe parser.ParserError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, bnerrors.E1009, pe.Code())
}

func TestRunIDLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	_, err := Eval(context.Background(), "লেখ 1;", WithOutput(&bytes.Buffer{}), WithLogger(logger))
	require.NoError(t, err)

	var runIDs []string
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if id, ok := entry["run_id"].(string); ok {
			runIDs = append(runIDs, id)
		}
	}
	require.NotEmpty(t, runIDs)
	for _, id := range runIDs {
		assert.Equal(t, runIDs[0], id)
	}
	assert.Len(t, runIDs[0], 36)
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("লেখ ৫;", WithFilename("t.bn"))
	require.Len(t, tokens, 4)
	assert.Equal(t, token.PRINT, tokens[0].Type)
	assert.Equal(t, token.NUM, tokens[1].Type)
	assert.Equal(t, int64(5), tokens[1].Value)
	assert.Equal(t, token.SEMICOLON, tokens[2].Type)
	assert.Equal(t, token.EOF, tokens[3].Type)
	assert.Equal(t, "t.bn", tokens[0].StartPosition.File)
}
