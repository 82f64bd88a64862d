package optimizer

import (
	"math"

	"github.com/l0stplains/Nyunda/pkg/compiler/ast"
	"github.com/l0stplains/Nyunda/pkg/core/value"
)

// rule identifies one local rewrite. The order of the constants is the
// tie-break order between rules.
type rule uint8

const (
	ruleFold rule = iota
	ruleStrength
	ruleIdentity
)

func (r rule) String() string {
	switch r {
	case ruleFold:
		return "constant-folding"
	case ruleStrength:
		return "strength-reduction"
	default:
		return "algebraic-identity"
	}
}

// applyRule attempts a rule at exactly this node and returns the replacement
// expression, or nil when the structural match fails.
func applyRule(r rule, e ast.Expr) ast.Expr {
	switch r {
	case ruleFold:
		return foldConstants(e)
	case ruleStrength:
		return reduceStrength(e)
	default:
		return applyIdentity(e)
	}
}

// foldConstants evaluates operators over literal operands at rewrite time.
// Division and modulo by a literal zero are left untouched so the failure
// surfaces at evaluation.
func foldConstants(e ast.Expr) ast.Expr {
	switch t := e.(type) {
	case *ast.BinaryOp:
		left, lok := t.Left.(*ast.Number)
		right, rok := t.Right.(*ast.Number)
		if !lok || !rok {
			return nil
		}
		switch t.Op {
		case ast.OpAdd:
			return &ast.Number{Token: t.Token, Value: left.Value + right.Value}
		case ast.OpSub:
			return &ast.Number{Token: t.Token, Value: left.Value - right.Value}
		case ast.OpMul:
			return &ast.Number{Token: t.Token, Value: left.Value * right.Value}
		case ast.OpDiv:
			if right.Value == 0 {
				return nil
			}
			return &ast.Number{Token: t.Token, Value: left.Value / right.Value}
		case ast.OpMod:
			if right.Value == 0 {
				return nil
			}
			return &ast.Number{Token: t.Token, Value: value.Mod(left.Value, right.Value)}
		case ast.OpPow:
			return &ast.Number{Token: t.Token, Value: math.Pow(left.Value, right.Value)}
		case ast.OpEq:
			return &ast.Boolean{Token: t.Token, Value: left.Value == right.Value}
		case ast.OpNeq:
			return &ast.Boolean{Token: t.Token, Value: left.Value != right.Value}
		case ast.OpLt:
			return &ast.Boolean{Token: t.Token, Value: left.Value < right.Value}
		case ast.OpGt:
			return &ast.Boolean{Token: t.Token, Value: left.Value > right.Value}
		case ast.OpLte:
			return &ast.Boolean{Token: t.Token, Value: left.Value <= right.Value}
		case ast.OpGte:
			return &ast.Boolean{Token: t.Token, Value: left.Value >= right.Value}
		}
	case *ast.UnaryOp:
		switch t.Op {
		case ast.OpNeg:
			if num, ok := t.Operand.(*ast.Number); ok {
				return &ast.Number{Token: t.Token, Value: -num.Value}
			}
		case ast.OpNot:
			if b, ok := t.Operand.(*ast.Boolean); ok {
				return &ast.Boolean{Token: t.Token, Value: !b.Value}
			}
		}
	}
	return nil
}

// reduceStrength rewrites x ** 2 into x * x. Only the literal exponent 2
// qualifies; the duplicated operand is cloned so the result stays a tree.
func reduceStrength(e ast.Expr) ast.Expr {
	b, ok := e.(*ast.BinaryOp)
	if !ok || b.Op != ast.OpPow {
		return nil
	}
	if exp, ok := b.Right.(*ast.Number); !ok || exp.Value != 2 {
		return nil
	}
	return &ast.BinaryOp{Token: b.Token, Op: ast.OpMul, Left: b.Left, Right: ast.CloneExpr(b.Left)}
}

// applyIdentity removes arithmetic no-ops: x*1, 1*x, x+0, 0+x, x-0, x/1
// collapse to x; x*0 and 0*x collapse to the zero literal.
func applyIdentity(e ast.Expr) ast.Expr {
	b, ok := e.(*ast.BinaryOp)
	if !ok {
		return nil
	}
	switch b.Op {
	case ast.OpMul:
		switch {
		case isLiteral(b.Right, 1):
			return b.Left
		case isLiteral(b.Left, 1):
			return b.Right
		case isLiteral(b.Right, 0):
			return b.Right
		case isLiteral(b.Left, 0):
			return b.Left
		}
	case ast.OpAdd:
		switch {
		case isLiteral(b.Right, 0):
			return b.Left
		case isLiteral(b.Left, 0):
			return b.Right
		}
	case ast.OpSub:
		if isLiteral(b.Right, 0) {
			return b.Left
		}
	case ast.OpDiv:
		if isLiteral(b.Right, 1) {
			return b.Left
		}
	}
	return nil
}

func isLiteral(e ast.Expr, v float64) bool {
	num, ok := e.(*ast.Number)
	return ok && num.Value == v
}

// exprVariants returns every expression reachable by applying the rule at
// exactly one node, in pre-order (the node itself, then positions inside its
// left child, then its right). Untouched subtrees are shared with the input,
// which is safe because trees are never mutated after parsing.
func exprVariants(r rule, e ast.Expr) []ast.Expr {
	var out []ast.Expr
	if repl := applyRule(r, e); repl != nil {
		out = append(out, repl)
	}
	switch t := e.(type) {
	case *ast.BinaryOp:
		for _, l := range exprVariants(r, t.Left) {
			out = append(out, &ast.BinaryOp{Token: t.Token, Op: t.Op, Left: l, Right: t.Right})
		}
		for _, rv := range exprVariants(r, t.Right) {
			out = append(out, &ast.BinaryOp{Token: t.Token, Op: t.Op, Left: t.Left, Right: rv})
		}
	case *ast.UnaryOp:
		for _, o := range exprVariants(r, t.Operand) {
			out = append(out, &ast.UnaryOp{Token: t.Token, Op: t.Op, Operand: o})
		}
	}
	return out
}

func stmtVariants(r rule, s ast.Stmt) []ast.Stmt {
	var out []ast.Stmt
	switch t := s.(type) {
	case *ast.Assignment:
		for _, v := range exprVariants(r, t.Value) {
			out = append(out, &ast.Assignment{Token: t.Token, Name: t.Name, Value: v})
		}
	case *ast.If:
		for _, c := range exprVariants(r, t.Condition) {
			out = append(out, &ast.If{Token: t.Token, Condition: c, Then: t.Then, Else: t.Else})
		}
		for _, then := range blockVariants(r, t.Then) {
			out = append(out, &ast.If{Token: t.Token, Condition: t.Condition, Then: then, Else: t.Else})
		}
		for _, els := range blockVariants(r, t.Else) {
			out = append(out, &ast.If{Token: t.Token, Condition: t.Condition, Then: t.Then, Else: els})
		}
	case *ast.While:
		for _, c := range exprVariants(r, t.Condition) {
			out = append(out, &ast.While{Token: t.Token, Condition: c, Body: t.Body})
		}
		for _, body := range blockVariants(r, t.Body) {
			out = append(out, &ast.While{Token: t.Token, Condition: t.Condition, Body: body})
		}
	case *ast.Print:
		for _, a := range exprVariants(r, t.Argument) {
			out = append(out, &ast.Print{Token: t.Token, Argument: a})
		}
	case *ast.ExprStmt:
		for _, v := range exprVariants(r, t.Expression) {
			out = append(out, &ast.ExprStmt{Expression: v})
		}
	}
	return out
}

func blockVariants(r rule, stmts []ast.Stmt) [][]ast.Stmt {
	var out [][]ast.Stmt
	for i, s := range stmts {
		for _, v := range stmtVariants(r, s) {
			block := make([]ast.Stmt, len(stmts))
			copy(block, stmts)
			block[i] = v
			out = append(out, block)
		}
	}
	return out
}

func programVariants(r rule, p *ast.Program) []*ast.Program {
	var out []*ast.Program
	for _, stmts := range blockVariants(r, p.Statements) {
		out = append(out, &ast.Program{Statements: stmts})
	}
	return out
}
