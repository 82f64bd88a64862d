package ast

import "math"

// Operator weights. The exponent weight scales with a small literal integer
// exponent; anything else pays a flat penalty so reducible powers still sort
// cheaper than opaque ones.
const (
	costAdditive   = 1
	costCompare    = 1
	costMulMod     = 2
	costDiv        = 3
	costPowPerUnit = 4
	costPowOpaque  = 32
	maxCostedExp   = 8
)

// Cost returns the estimated execution cost of a subtree: the node's own
// operator weight plus the cost of its children. Leaves cost nothing and
// statements weigh only what they contain.
func Cost(n Node) int {
	switch t := n.(type) {
	case *Program:
		return costStmts(t.Statements)
	case *Number, *Boolean, *String, *Identifier:
		return 0
	case *BinaryOp:
		return opWeight(t) + Cost(t.Left) + Cost(t.Right)
	case *UnaryOp:
		return 1 + Cost(t.Operand)
	case *Assignment:
		return Cost(t.Value)
	case *If:
		return Cost(t.Condition) + costStmts(t.Then) + costStmts(t.Else)
	case *While:
		return Cost(t.Condition) + costStmts(t.Body)
	case *Print:
		return Cost(t.Argument)
	case *ExprStmt:
		return Cost(t.Expression)
	}
	return 0
}

func costStmts(stmts []Stmt) int {
	total := 0
	for _, s := range stmts {
		total += Cost(s)
	}
	return total
}

func opWeight(b *BinaryOp) int {
	switch b.Op {
	case OpAdd, OpSub:
		return costAdditive
	case OpMul, OpMod:
		return costMulMod
	case OpDiv:
		return costDiv
	case OpPow:
		if exp, ok := smallIntExponent(b.Right); ok {
			return costPowPerUnit * exp
		}
		return costPowOpaque
	default:
		return costCompare
	}
}

func smallIntExponent(e Expr) (int, bool) {
	num, ok := e.(*Number)
	if !ok {
		return 0, false
	}
	if num.Value < 0 || num.Value > maxCostedExp || num.Value != math.Trunc(num.Value) {
		return 0, false
	}
	return int(num.Value), true
}
