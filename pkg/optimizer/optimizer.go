// Package optimizer rewrites a program into a semantically equivalent one of
// equal-or-lower estimated cost, using greedy best-first search over local
// rewrites: the frontier is a cost-ordered priority queue of whole-program
// snapshots, and each expanded state commits to its single cheapest neighbor.
package optimizer

import (
	"github.com/ahrtr/gocontainer/queue/priorityqueue"
	"github.com/zeebo/blake3"

	"github.com/l0stplains/Nyunda/pkg/compiler/ast"
)

// DefaultBudget bounds the number of states the search may expand.
const DefaultBudget = 100

// Stats counts the work done by the last Optimize call. Rule counters only
// count committed rewrites, not candidates that were generated and rejected.
type Stats struct {
	StatesExplored int
	Folds          int
	Reductions     int
	Identities     int
}

// Applied returns the total number of committed rewrites.
func (s Stats) Applied() int {
	return s.Folds + s.Reductions + s.Identities
}

// Optimizer runs the rewrite search. A disabled optimizer is the identity
// transform.
type Optimizer struct {
	enabled bool
	budget  int
	stats   Stats
}

// New creates an optimizer. A non-positive budget selects DefaultBudget.
func New(enabled bool, budget int) *Optimizer {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Optimizer{enabled: enabled, budget: budget}
}

// Stats reports the counters from the last Optimize call.
func (o *Optimizer) Stats() Stats {
	return o.stats
}

type state struct {
	prog *ast.Program
	cost int
}

// byCost orders frontier states by ascending total cost.
type byCost struct{}

func (*byCost) Compare(v1, v2 interface{}) (int, error) {
	c1, c2 := v1.(*state).cost, v2.(*state).cost
	switch {
	case c1 < c2:
		return -1, nil
	case c1 > c2:
		return 1, nil
	}
	return 0, nil
}

// Optimize returns the lowest-cost program found. The search pops the
// cheapest unvisited state, commits to its best strictly cheaper neighbor,
// and stops at a local optimum or when the budget runs out. Rewrites never
// execute the program, so this cannot fail on a well-formed tree.
func (o *Optimizer) Optimize(prog *ast.Program) *ast.Program {
	o.stats = Stats{}
	if !o.enabled {
		return prog
	}

	frontier := priorityqueue.New().WithComparator(&byCost{})
	visited := make(map[[32]byte]struct{})

	start := &state{prog: prog, cost: ast.Cost(prog)}
	frontier.Add(start)
	best := start

	for !frontier.IsEmpty() && o.stats.StatesExplored < o.budget {
		cur := frontier.Poll().(*state)

		fp := fingerprint(cur.prog)
		if _, seen := visited[fp]; seen {
			continue
		}
		visited[fp] = struct{}{}
		o.stats.StatesExplored++

		if cur.cost < best.cost {
			best = cur
		}

		next, applied := o.bestNeighbor(cur)
		if next == nil {
			continue
		}
		o.countRule(applied)
		frontier.Add(next)
	}

	return best.prog
}

// bestNeighbor returns the cheapest strictly cheaper single-rewrite neighbor
// of a state, or nil at a local optimum. Ties go to the earlier rule, then
// to the leftmost position, because candidates are generated in that order
// and only strictly better ones replace the running best.
func (o *Optimizer) bestNeighbor(cur *state) (*state, rule) {
	var best *state
	bestRule := ruleFold
	for _, r := range []rule{ruleFold, ruleStrength, ruleIdentity} {
		for _, prog := range programVariants(r, cur.prog) {
			cost := ast.Cost(prog)
			if cost >= cur.cost {
				continue
			}
			if best == nil || cost < best.cost {
				best = &state{prog: prog, cost: cost}
				bestRule = r
			}
		}
	}
	return best, bestRule
}

func (o *Optimizer) countRule(r rule) {
	switch r {
	case ruleFold:
		o.stats.Folds++
	case ruleStrength:
		o.stats.Reductions++
	default:
		o.stats.Identities++
	}
}

// fingerprint hashes the canonical encoding of a tree, so the visited set
// recognizes structurally identical states reached by different rewrite
// orders.
func fingerprint(prog *ast.Program) [32]byte {
	return blake3.Sum256([]byte(ast.Format(prog)))
}
