package engine_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l0stplains/Nyunda/pkg/compiler/lexer"
	"github.com/l0stplains/Nyunda/pkg/compiler/parser"
	"github.com/l0stplains/Nyunda/pkg/engine"
	"github.com/l0stplains/Nyunda/pkg/interp"
)

func TestRunFoldsAndPrints(t *testing.T) {
	res, err := engine.Run("x = 3\ncetak(x * 1 + 0)", engine.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, []string{"3"}, res.Printed())
	require.Less(t, res.CostAfter, res.CostBefore)
	require.Equal(t, 2, res.Optimizer.Identities)
}

func TestRunFactorial(t *testing.T) {
	src := "n = 5\nhasil = 1\nbari n > 0 { hasil = hasil * n\nn = n - 1 }\ncetak(hasil)"
	res, err := engine.Run(src, engine.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, []string{"120"}, res.Printed())
}

func TestRunDivisionByZero(t *testing.T) {
	res, err := engine.Run("cetak(4 / 0)", engine.DefaultConfig())
	require.Error(t, err)

	var arithErr *interp.ArithmeticError
	require.ErrorAs(t, err, &arithErr, "stage error stays reachable through the wrap")

	require.NotNil(t, res, "evaluation failures still return the partial result")
	require.Empty(t, res.Output)
}

func TestRunUnboundVariable(t *testing.T) {
	_, err := engine.Run("y = x + 1", engine.DefaultConfig())
	var unbound *interp.UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	require.Equal(t, "x", unbound.Name)
}

func TestRunLexAndParseFailures(t *testing.T) {
	res, err := engine.Run("x = @", engine.DefaultConfig())
	require.Nil(t, res)
	var lexErr *lexer.LexError
	require.ErrorAs(t, err, &lexErr)

	res, err = engine.Run("upami { cetak(1) }", engine.DefaultConfig())
	require.Nil(t, res)
	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestRunPartialOutputStands(t *testing.T) {
	res, err := engine.Run("cetak(1)\ncetak(2 / 0)", engine.DefaultConfig())
	require.Error(t, err)
	require.Equal(t, []string{"1"}, res.Printed())
}

func TestTogglesDoNotChangeOutput(t *testing.T) {
	src := "n = 4\nsq = n ** 2\ncetak(sq * 1)\ncetak(n * n + n * n)\nupami n > 2 { cetak(n - 1) }"

	var want []string
	for _, optimize := range []bool{true, false} {
		for _, memoize := range []bool{true, false} {
			cfg := engine.Config{Optimize: optimize, Memoize: memoize}
			res, err := engine.Run(src, cfg)
			require.NoError(t, err)
			if want == nil {
				want = res.Printed()
			} else {
				require.Equal(t, want, res.Printed(), "optimize=%v memoize=%v", optimize, memoize)
			}
		}
	}
	require.Equal(t, []string{"16", "32", "3"}, want)
}

func TestDisabledStagesReportNoWork(t *testing.T) {
	res, err := engine.Run("cetak(1 + 2)", engine.Config{})
	require.NoError(t, err)
	require.Equal(t, []string{"3"}, res.Printed())
	require.Zero(t, res.Optimizer.Applied())
	require.Equal(t, res.CostBefore, res.CostAfter)
	require.Zero(t, res.Memo.Misses)
}

func TestLoopLimitConfig(t *testing.T) {
	_, err := engine.Run("bari 1 > 0 { x = 1 }", engine.Config{LoopLimit: 10})
	var limitErr *interp.LoopLimitError
	require.ErrorAs(t, err, &limitErr)
}

func TestOutputStreaming(t *testing.T) {
	var buf bytes.Buffer
	cfg := engine.DefaultConfig()
	cfg.Output = &buf
	_, err := engine.Run("cetak(1)\ncetak(2)", cfg)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n", buf.String())
}

func TestMemoStatsExposed(t *testing.T) {
	cfg := engine.Config{Memoize: true}
	res, err := engine.Run("a = 2\nb = 3\ncetak(a * b + a * b)", cfg)
	require.NoError(t, err)
	require.Positive(t, res.Memo.Hits)
	require.Positive(t, res.Memo.Misses)
}
