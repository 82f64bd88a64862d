// Package interp executes a program tree against a mutable environment. The
// expression walk is memoized: results are cached under the subtree's
// structural encoding plus a snapshot of its free variables, and the cache
// is cleared whenever an assignment executes.
package interp

import (
	"fmt"
	"io"
	"math"

	"github.com/l0stplains/Nyunda/pkg/compiler/ast"
	"github.com/l0stplains/Nyunda/pkg/compiler/lexer"
	"github.com/l0stplains/Nyunda/pkg/core/value"
)

// Options configures a single interpreter run.
type Options struct {
	// Memoize enables the expression cache. Off, the interpreter is a
	// plain recursive tree walker with identical observable output.
	Memoize bool

	// LoopLimit caps iterations per bari loop. Zero means unbounded.
	LoopLimit uint64

	// Output, when set, receives each printed value on its own line as it
	// is produced. Printed values are collected either way.
	Output io.Writer
}

// Interpreter executes one program. It is single-use: environment and memo
// table belong to exactly one run.
type Interpreter struct {
	opts    Options
	env     *Environment
	memo    *memoTable
	printed []value.Value
}

// New creates an interpreter with an empty environment.
func New(opts Options) *Interpreter {
	return &Interpreter{
		opts: opts,
		env:  NewEnvironment(),
		memo: newMemoTable(),
	}
}

// Env exposes the variable state, final or partial if the run failed.
func (i *Interpreter) Env() *Environment {
	return i.env
}

// Printed returns the values printed so far, in execution order. Output
// produced before a runtime failure stands.
func (i *Interpreter) Printed() []value.Value {
	return i.printed
}

// MemoStats reports the expression cache counters.
func (i *Interpreter) MemoStats() Stats {
	return i.memo.snapshot()
}

// Run executes the program's statements in sequence. The first runtime
// failure aborts the rest of the run.
func (i *Interpreter) Run(prog *ast.Program) error {
	return i.execBlock(prog.Statements)
}

func (i *Interpreter) execBlock(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := i.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) exec(s ast.Stmt) error {
	switch t := s.(type) {
	case *ast.Assignment:
		v, err := i.eval(t.Value)
		if err != nil {
			return err
		}
		i.env.Set(t.Name, v)
		if i.opts.Memoize {
			i.memo.invalidate()
		}
		return nil

	case *ast.If:
		cond, err := i.eval(t.Condition)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return i.execBlock(t.Then)
		}
		return i.execBlock(t.Else)

	case *ast.While:
		var iterations uint64
		for {
			cond, err := i.eval(t.Condition)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if i.opts.LoopLimit > 0 && iterations >= i.opts.LoopLimit {
				return &LoopLimitError{Limit: i.opts.LoopLimit, Line: t.Token.Line, Column: t.Token.Column}
			}
			if err := i.execBlock(t.Body); err != nil {
				return err
			}
			iterations++
		}

	case *ast.Print:
		v, err := i.eval(t.Argument)
		if err != nil {
			return err
		}
		i.printed = append(i.printed, v)
		if i.opts.Output != nil {
			fmt.Fprintln(i.opts.Output, v.String())
		}
		return nil

	case *ast.ExprStmt:
		_, err := i.eval(t.Expression)
		return err
	}
	return nil
}

// eval computes an expression, consulting the memo table first when
// memoization is on. Subtrees whose free variables are not all bound bypass
// the cache so the unbound read fails in the right place.
func (i *Interpreter) eval(e ast.Expr) (value.Value, error) {
	if !i.opts.Memoize {
		return i.evalExpr(e)
	}
	key, ok := i.memo.keyFor(e, i.env)
	if !ok {
		return i.evalExpr(e)
	}
	if v, hit := i.memo.lookup(key); hit {
		return v, nil
	}
	v, err := i.evalExpr(e)
	if err != nil {
		return value.Value{}, err
	}
	i.memo.store(key, v)
	return v, nil
}

func (i *Interpreter) evalExpr(e ast.Expr) (value.Value, error) {
	switch t := e.(type) {
	case *ast.Number:
		return value.Number(t.Value), nil
	case *ast.Boolean:
		return value.Bool(t.Value), nil
	case *ast.String:
		return value.Str(t.Value), nil
	case *ast.Identifier:
		v, ok := i.env.Get(t.Name)
		if !ok {
			return value.Value{}, &UnboundVariableError{Name: t.Name, Line: t.Token.Line, Column: t.Token.Column}
		}
		return v, nil
	case *ast.UnaryOp:
		return i.evalUnary(t)
	case *ast.BinaryOp:
		return i.evalBinary(t)
	}
	return value.Value{}, fmt.Errorf("cannot evaluate node %T", e)
}

func (i *Interpreter) evalUnary(u *ast.UnaryOp) (value.Value, error) {
	operand, err := i.eval(u.Operand)
	if err != nil {
		return value.Value{}, err
	}
	switch u.Op {
	case ast.OpNot:
		return value.Bool(!operand.Truthy()), nil
	default: // OpNeg
		if !operand.IsNumber() {
			return value.Value{}, i.typeError(u.Token, u.Op, operand)
		}
		return value.Number(-operand.Num), nil
	}
}

func (i *Interpreter) evalBinary(b *ast.BinaryOp) (value.Value, error) {
	left, err := i.eval(b.Left)
	if err != nil {
		return value.Value{}, err
	}
	right, err := i.eval(b.Right)
	if err != nil {
		return value.Value{}, err
	}

	switch b.Op {
	case ast.OpEq:
		return value.Bool(left.Equal(right)), nil
	case ast.OpNeq:
		return value.Bool(!left.Equal(right)), nil
	}

	if b.Op == ast.OpAdd && (left.IsString() || right.IsString()) {
		return value.Str(left.String() + right.String()), nil
	}

	if !left.IsNumber() || !right.IsNumber() {
		return value.Value{}, i.typeError(b.Token, b.Op, left, right)
	}
	return i.evalNumeric(b, left.Num, right.Num)
}

func (i *Interpreter) evalNumeric(b *ast.BinaryOp, left, right float64) (value.Value, error) {
	switch b.Op {
	case ast.OpAdd:
		return value.Number(left + right), nil
	case ast.OpSub:
		return value.Number(left - right), nil
	case ast.OpMul:
		return value.Number(left * right), nil
	case ast.OpDiv:
		if right == 0 {
			return value.Value{}, &ArithmeticError{Op: "/", Line: b.Token.Line, Column: b.Token.Column}
		}
		return value.Number(left / right), nil
	case ast.OpMod:
		if right == 0 {
			return value.Value{}, &ArithmeticError{Op: "%", Line: b.Token.Line, Column: b.Token.Column}
		}
		return value.Number(value.Mod(left, right)), nil
	case ast.OpPow:
		return value.Number(math.Pow(left, right)), nil
	case ast.OpLt:
		return value.Bool(left < right), nil
	case ast.OpGt:
		return value.Bool(left > right), nil
	case ast.OpLte:
		return value.Bool(left <= right), nil
	default: // OpGte
		return value.Bool(left >= right), nil
	}
}

func (i *Interpreter) typeError(tok lexer.Token, op ast.Op, operands ...value.Value) error {
	kinds := make([]value.Type, len(operands))
	for n, v := range operands {
		kinds[n] = v.Type
	}
	return &TypeError{Op: op.String(), Operands: kinds, Line: tok.Line, Column: tok.Column}
}
