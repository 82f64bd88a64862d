package ast

import "sort"

// FreeVars returns the sorted, deduplicated names of all identifiers that
// occur in an expression subtree. The language has no nested scopes, so
// every identifier read is free.
func FreeVars(e Expr) []string {
	seen := make(map[string]struct{})
	collectVars(e, seen)
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVars(e Expr, seen map[string]struct{}) {
	switch t := e.(type) {
	case *Identifier:
		seen[t.Name] = struct{}{}
	case *BinaryOp:
		collectVars(t.Left, seen)
		collectVars(t.Right, seen)
	case *UnaryOp:
		collectVars(t.Operand, seen)
	}
}
