package interp

import (
	"fmt"
	"strings"

	"github.com/l0stplains/Nyunda/pkg/core/value"
)

// ArithmeticError reports division or modulo by zero at runtime.
type ArithmeticError struct {
	Op     string
	Line   int
	Column int
}

func (e *ArithmeticError) Error() string {
	what := "division"
	if e.Op == "%" {
		what = "modulo"
	}
	return fmt.Sprintf("arithmetic error at line %d, column %d: %s by zero", e.Line, e.Column, what)
}

// UnboundVariableError reports a read of a variable that was never assigned.
type UnboundVariableError struct {
	Name   string
	Line   int
	Column int
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable at line %d, column %d: %q is not defined", e.Line, e.Column, e.Name)
}

// TypeError reports an operator applied to operand types it does not support.
type TypeError struct {
	Op       string
	Operands []value.Type
	Line     int
	Column   int
}

func (e *TypeError) Error() string {
	kinds := make([]string, len(e.Operands))
	for i, t := range e.Operands {
		kinds[i] = t.String()
	}
	return fmt.Sprintf("type error at line %d, column %d: operator %q not supported for %s",
		e.Line, e.Column, e.Op, strings.Join(kinds, " and "))
}

// LoopLimitError reports a bari loop that exceeded the configured iteration
// ceiling. It can only occur when a limit is set; by default loops run
// unbounded, as the language defines.
type LoopLimitError struct {
	Limit  uint64
	Line   int
	Column int
}

func (e *LoopLimitError) Error() string {
	return fmt.Sprintf("loop at line %d, column %d exceeded the iteration limit of %d", e.Line, e.Column, e.Limit)
}
