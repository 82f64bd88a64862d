// Package engine is the pipeline's external boundary: it chains lexing,
// parsing, optimization and evaluation over one source text and returns the
// ordered print output together with read-only run statistics.
package engine

import (
	"io"

	"github.com/pkg/errors"

	"github.com/l0stplains/Nyunda/pkg/compiler/ast"
	"github.com/l0stplains/Nyunda/pkg/compiler/lexer"
	"github.com/l0stplains/Nyunda/pkg/compiler/parser"
	"github.com/l0stplains/Nyunda/pkg/core/value"
	"github.com/l0stplains/Nyunda/pkg/interp"
	"github.com/l0stplains/Nyunda/pkg/optimizer"
)

// Config selects the optional pipeline stages. Both switches change only
// performance, never the printed output.
type Config struct {
	// Optimize runs the rewrite search before evaluation.
	Optimize bool

	// Memoize enables the evaluator's expression cache.
	Memoize bool

	// SearchBudget caps optimizer state expansions; non-positive selects
	// the optimizer's default.
	SearchBudget int

	// LoopLimit caps iterations per bari loop. Zero means unbounded,
	// which is the language's documented behavior.
	LoopLimit uint64

	// Output, when set, streams printed values as they are produced.
	Output io.Writer
}

// DefaultConfig enables both the optimizer and the memoizing evaluator.
func DefaultConfig() Config {
	return Config{Optimize: true, Memoize: true}
}

// Result carries a run's output and its introspection surface. On a runtime
// failure the Result is still returned alongside the error: output printed
// before the failure stands.
type Result struct {
	Output     []value.Value
	Env        *interp.Environment
	Optimizer  optimizer.Stats
	Memo       interp.Stats
	CostBefore int
	CostAfter  int
}

// Printed renders the output values in their human-readable form.
func (r *Result) Printed() []string {
	out := make([]string, len(r.Output))
	for i, v := range r.Output {
		out[i] = v.String()
	}
	return out
}

// Run executes one source text through the full pipeline. Lex and parse
// failures return a nil Result; evaluation failures return the partial one.
// Stage errors stay reachable through errors.As.
func Run(source string, cfg Config) (*Result, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, errors.Wrap(err, "lex")
	}

	prog, err := parser.New(tokens).Parse()
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	res := &Result{CostBefore: ast.Cost(prog)}

	opt := optimizer.New(cfg.Optimize, cfg.SearchBudget)
	prog = opt.Optimize(prog)
	res.Optimizer = opt.Stats()
	res.CostAfter = ast.Cost(prog)

	in := interp.New(interp.Options{
		Memoize:   cfg.Memoize,
		LoopLimit: cfg.LoopLimit,
		Output:    cfg.Output,
	})
	runErr := in.Run(prog)

	res.Output = in.Printed()
	res.Env = in.Env()
	res.Memo = in.MemoStats()

	if runErr != nil {
		return res, errors.Wrap(runErr, "eval")
	}
	return res, nil
}
