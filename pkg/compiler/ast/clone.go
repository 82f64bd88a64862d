package ast

// CloneExpr returns a deep copy of an expression. Rewrites that duplicate an
// operand must clone it so no subtree appears twice in one tree.
func CloneExpr(e Expr) Expr {
	switch t := e.(type) {
	case *Number:
		c := *t
		return &c
	case *Boolean:
		c := *t
		return &c
	case *String:
		c := *t
		return &c
	case *Identifier:
		c := *t
		return &c
	case *BinaryOp:
		return &BinaryOp{Token: t.Token, Op: t.Op, Left: CloneExpr(t.Left), Right: CloneExpr(t.Right)}
	case *UnaryOp:
		return &UnaryOp{Token: t.Token, Op: t.Op, Operand: CloneExpr(t.Operand)}
	}
	return e
}

// CloneStmt returns a deep copy of a statement.
func CloneStmt(s Stmt) Stmt {
	switch t := s.(type) {
	case *Assignment:
		return &Assignment{Token: t.Token, Name: t.Name, Value: CloneExpr(t.Value)}
	case *If:
		return &If{Token: t.Token, Condition: CloneExpr(t.Condition), Then: CloneStmts(t.Then), Else: CloneStmts(t.Else)}
	case *While:
		return &While{Token: t.Token, Condition: CloneExpr(t.Condition), Body: CloneStmts(t.Body)}
	case *Print:
		return &Print{Token: t.Token, Argument: CloneExpr(t.Argument)}
	case *ExprStmt:
		return &ExprStmt{Expression: CloneExpr(t.Expression)}
	}
	return s
}

// CloneStmts deep-copies a statement list. A nil list stays nil.
func CloneStmts(stmts []Stmt) []Stmt {
	if stmts == nil {
		return nil
	}
	out := make([]Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = CloneStmt(s)
	}
	return out
}

// CloneProgram deep-copies a whole program.
func CloneProgram(p *Program) *Program {
	return &Program{Statements: CloneStmts(p.Statements)}
}
