package ast

import (
	"strconv"
	"strings"
)

// Format renders a node as canonical Nyunda source. Expressions are fully
// parenthesized, so the output is both re-parseable and usable as a
// structural signature: two subtrees format equally iff they are
// structurally identical.
func Format(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch t := n.(type) {
	case *Program:
		writeStmts(b, t.Statements)
	case *Number:
		b.WriteString(FormatNumber(t.Value))
	case *Boolean:
		if t.Value {
			b.WriteString("leres")
		} else {
			b.WriteString("palsu")
		}
	case *String:
		b.WriteByte('"')
		b.WriteString(t.Value)
		b.WriteByte('"')
	case *Identifier:
		b.WriteString(t.Name)
	case *BinaryOp:
		b.WriteByte('(')
		writeNode(b, t.Left)
		b.WriteByte(' ')
		b.WriteString(t.Op.String())
		b.WriteByte(' ')
		writeNode(b, t.Right)
		b.WriteByte(')')
	case *UnaryOp:
		b.WriteByte('(')
		b.WriteString(t.Op.String())
		if t.Op == OpNot {
			b.WriteByte(' ')
		}
		writeNode(b, t.Operand)
		b.WriteByte(')')
	case *Assignment:
		b.WriteString(t.Name)
		b.WriteString(" = ")
		writeNode(b, t.Value)
	case *If:
		b.WriteString("upami ")
		writeNode(b, t.Condition)
		writeBlock(b, t.Then)
		if len(t.Else) > 0 {
			b.WriteString(" sanes")
			writeBlock(b, t.Else)
		}
	case *While:
		b.WriteString("bari ")
		writeNode(b, t.Condition)
		writeBlock(b, t.Body)
	case *Print:
		b.WriteString("cetak(")
		writeNode(b, t.Argument)
		b.WriteByte(')')
	case *ExprStmt:
		writeNode(b, t.Expression)
	}
}

func writeStmts(b *strings.Builder, stmts []Stmt) {
	for i, s := range stmts {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeNode(b, s)
	}
}

func writeBlock(b *strings.Builder, stmts []Stmt) {
	b.WriteString(" {\n")
	writeStmts(b, stmts)
	b.WriteString("\n}")
}

// FormatNumber renders a float in its minimal decimal form, so integral
// values print without a fractional part (120, not 120.0).
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
