package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/l0stplains/Nyunda/pkg/engine"
)

const demoSource = `# Ngitung faktorial 6
n = 6
hasil = 1

bari n > 0 {
  hasil = hasil * n
  n = n - 1
}

cetak(hasil)
`

func main() {
	noGreedy := flag.Bool("no-greedy", false, "disable the greedy best-first AST optimization pass")
	noDP := flag.Bool("no-dp", false, "disable the memoizing (dynamic programming) expression evaluator")
	loopLimit := flag.Uint64("loop-limit", 0, "maximum iterations per bari loop (0 = unbounded)")
	verbose := flag.Bool("verbose", false, "print pipeline statistics after the run")
	flag.Parse()

	cfg := engine.Config{
		Optimize:  !*noGreedy,
		Memoize:   !*noDP,
		LoopLimit: *loopLimit,
		Output:    os.Stdout,
	}

	source := demoSource
	if flag.NArg() > 0 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			color.Red("Error reading file: %v", err)
			os.Exit(1)
		}
		source = string(data)
	} else {
		fmt.Println("No file provided, running the built-in demo.")
	}

	result, err := engine.Run(source, cfg)
	if err != nil {
		color.Red("%v", err)
		if result == nil || !*verbose {
			os.Exit(1)
		}
	}

	if *verbose {
		report(result, cfg)
	}
	if err != nil {
		os.Exit(1)
	}
}

func report(r *engine.Result, cfg engine.Config) {
	color.Cyan("--- Pipeline Report ---")
	fmt.Printf("estimated cost: %d -> %d\n", r.CostBefore, r.CostAfter)
	if cfg.Optimize {
		fmt.Printf("optimizer: %d states explored, %d rewrites (%d folds, %d reductions, %d identities)\n",
			r.Optimizer.StatesExplored, r.Optimizer.Applied(),
			r.Optimizer.Folds, r.Optimizer.Reductions, r.Optimizer.Identities)
	} else {
		fmt.Println("optimizer: disabled")
	}
	if cfg.Memoize {
		fmt.Printf("memo table: %d hits, %d misses, %d entries, %d invalidations\n",
			r.Memo.Hits, r.Memo.Misses, r.Memo.Entries, r.Memo.Invalidations)
	} else {
		fmt.Println("memo table: disabled")
	}
	fmt.Printf("variables bound: %d\n", r.Env.Len())
}
