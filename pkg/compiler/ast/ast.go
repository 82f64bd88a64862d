package ast

import "github.com/l0stplains/Nyunda/pkg/compiler/lexer"

// Op identifies a binary or unary operator.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLte
	OpGte
	OpNeg // unary -
	OpNot // unary henteu
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub, OpNeg:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLte:
		return "<="
	case OpGte:
		return ">="
	case OpNot:
		return "henteu"
	}
	return "?"
}

// IsComparison reports whether the operator yields a boolean.
func (o Op) IsComparison() bool {
	switch o {
	case OpEq, OpNeq, OpLt, OpGt, OpLte, OpGte:
		return true
	}
	return false
}

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	Pos() lexer.Token
}

// Expr represents an expression that yields a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a standalone unit of execution.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root node: a sequence of top-level statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) Pos() lexer.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Token{Kind: lexer.KindEOF, Line: 1, Column: 1}
}

// Number is a numeric literal.
type Number struct {
	Token lexer.Token
	Value float64
}

func (n *Number) Pos() lexer.Token { return n.Token }
func (n *Number) exprNode()        {}

// Boolean is a leres/palsu literal.
type Boolean struct {
	Token lexer.Token
	Value bool
}

func (b *Boolean) Pos() lexer.Token { return b.Token }
func (b *Boolean) exprNode()        {}

// String is a double-quoted literal. The language has no escape sequences.
type String struct {
	Token lexer.Token
	Value string
}

func (s *String) Pos() lexer.Token { return s.Token }
func (s *String) exprNode()        {}

// Identifier reads a variable from the environment.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) Pos() lexer.Token { return i.Token }
func (i *Identifier) exprNode()        {}

// BinaryOp applies Op to Left and Right. Token is the operator token.
type BinaryOp struct {
	Token lexer.Token
	Op    Op
	Left  Expr
	Right Expr
}

func (b *BinaryOp) Pos() lexer.Token { return b.Token }
func (b *BinaryOp) exprNode()        {}

// UnaryOp applies OpNeg or OpNot to Operand.
type UnaryOp struct {
	Token   lexer.Token
	Op      Op
	Operand Expr
}

func (u *UnaryOp) Pos() lexer.Token { return u.Token }
func (u *UnaryOp) exprNode()        {}

// Assignment binds Name to the value of Value. Token is the identifier.
type Assignment struct {
	Token lexer.Token
	Name  string
	Value Expr
}

func (a *Assignment) Pos() lexer.Token { return a.Token }
func (a *Assignment) stmtNode()        {}

// If executes Then when Condition is truthy, otherwise Else (may be empty).
type If struct {
	Token     lexer.Token
	Condition Expr
	Then      []Stmt
	Else      []Stmt
}

func (i *If) Pos() lexer.Token { return i.Token }
func (i *If) stmtNode()        {}

// While re-checks Condition before every iteration of Body.
type While struct {
	Token     lexer.Token
	Condition Expr
	Body      []Stmt
}

func (w *While) Pos() lexer.Token { return w.Token }
func (w *While) stmtNode()        {}

// Print evaluates Argument and appends it to the run's output.
type Print struct {
	Token    lexer.Token
	Argument Expr
}

func (p *Print) Pos() lexer.Token { return p.Token }
func (p *Print) stmtNode()        {}

// ExprStmt is a bare expression in statement position, evaluated for effect
// (which, in practice, means only for its potential runtime error).
type ExprStmt struct {
	Expression Expr
}

func (e *ExprStmt) Pos() lexer.Token { return e.Expression.Pos() }
func (e *ExprStmt) stmtNode()        {}
