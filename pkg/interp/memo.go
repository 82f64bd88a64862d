package interp

import (
	"github.com/segmentio/fasthash/fnv1a"

	"github.com/l0stplains/Nyunda/pkg/compiler/ast"
	"github.com/l0stplains/Nyunda/pkg/core/value"
)

// Stats exposes the memo table's counters after a run.
type Stats struct {
	Hits          int
	Misses        int
	Entries       int
	Invalidations int
}

// memoKey identifies a computed subexpression: its canonical structural
// encoding plus a hash of the values of its free variables at lookup time.
type memoKey struct {
	expr string
	vars uint64
}

// memoTable caches expression results within one run. Any assignment may
// change a free variable referenced by a cached subtree, so the table is
// cleared whenever one executes.
type memoTable struct {
	entries map[memoKey]value.Value
	stats   Stats

	// Encodings and free-variable sets are immutable per node once the
	// tree is built, so they are computed once and cached by pointer.
	encodings map[ast.Expr]string
	freeVars  map[ast.Expr][]string
}

func newMemoTable() *memoTable {
	return &memoTable{
		entries:   make(map[memoKey]value.Value),
		encodings: make(map[ast.Expr]string),
		freeVars:  make(map[ast.Expr][]string),
	}
}

// keyFor builds the cache key for an expression under the current
// environment. It reports ok=false when a free variable is unbound, in which
// case the caller evaluates normally and surfaces the proper error.
func (m *memoTable) keyFor(e ast.Expr, env *Environment) (memoKey, bool) {
	names, cached := m.freeVars[e]
	if !cached {
		names = ast.FreeVars(e)
		m.freeVars[e] = names
	}

	h := fnv1a.Init64
	for _, name := range names {
		v, ok := env.Get(name)
		if !ok {
			return memoKey{}, false
		}
		h = fnv1a.AddString64(h, name)
		h = fnv1a.AddUint64(h, uint64(v.Type))
		h = fnv1a.AddString64(h, v.String())
	}

	enc, cached := m.encodings[e]
	if !cached {
		enc = ast.Format(e)
		m.encodings[e] = enc
	}
	return memoKey{expr: enc, vars: h}, true
}

func (m *memoTable) lookup(key memoKey) (value.Value, bool) {
	v, ok := m.entries[key]
	if ok {
		m.stats.Hits++
	} else {
		m.stats.Misses++
	}
	return v, ok
}

func (m *memoTable) store(key memoKey, v value.Value) {
	m.entries[key] = v
}

// invalidate clears every cached result. The per-node encodings and
// free-variable sets survive; they do not depend on the environment.
func (m *memoTable) invalidate() {
	clear(m.entries)
	m.stats.Invalidations++
}

func (m *memoTable) snapshot() Stats {
	s := m.stats
	s.Entries = len(m.entries)
	return s
}
