package interp

import (
	"sort"

	"github.com/l0stplains/Nyunda/pkg/core/value"
)

// Environment maps variable names to their current values. One environment
// belongs to exactly one run; nothing is shared between runs.
type Environment struct {
	vars map[string]value.Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// Get looks up a variable.
func (e *Environment) Get(name string) (value.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds a variable, creating or replacing it.
func (e *Environment) Set(name string, v value.Value) {
	e.vars[name] = v
}

// Len returns the number of bound variables.
func (e *Environment) Len() int {
	return len(e.vars)
}

// Names returns all bound names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
