package parser

import (
	"fmt"
	"strconv"

	"github.com/l0stplains/Nyunda/pkg/compiler/ast"
	"github.com/l0stplains/Nyunda/pkg/compiler/lexer"
)

// ParseError reports a token stream that violates the grammar.
type ParseError struct {
	Expected string
	Found    lexer.Token
}

func (e *ParseError) Error() string {
	found := e.Found.Text
	if e.Found.Kind == lexer.KindEOF {
		found = "end of input"
	} else {
		found = fmt.Sprintf("%q", found)
	}
	return fmt.Sprintf("parse error at line %d, column %d: expected %s, found %s",
		e.Found.Line, e.Found.Column, e.Expected, found)
}

// Parser consumes a token sequence with one token of lookahead and produces
// a Program. It never executes code.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a parser over a token sequence ending in EOF.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the Program from the token stream.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}
	for {
		p.skipSemicolons()
		if p.current().Kind == lexer.KindEOF {
			return program, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
}

func (p *Parser) current() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return lexer.Token{Kind: lexer.KindEOF}
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return lexer.Token{Kind: lexer.KindEOF}
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) expectSymbol(sym string) (lexer.Token, error) {
	tok := p.current()
	if tok.Kind != lexer.KindSymbol || tok.Text != sym {
		return tok, &ParseError{Expected: fmt.Sprintf("%q", sym), Found: tok}
	}
	return p.advance(), nil
}

func (p *Parser) skipSemicolons() {
	for p.current().Kind == lexer.KindSymbol && p.current().Text == ";" {
		p.advance()
	}
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.current()

	if tok.Kind == lexer.KindKeyword {
		switch tok.Text {
		case "if":
			return p.parseIf()
		case "while":
			return p.parseWhile()
		case "print":
			return p.parsePrint()
		case "not", "true", "false":
			// Expression-leading keywords fall through to the bare
			// expression statement below.
		default:
			return nil, &ParseError{Expected: "statement", Found: tok}
		}
	}

	if tok.Kind == lexer.KindIdentifier && p.peek().Kind == lexer.KindOperator && p.peek().Text == "=" {
		return p.parseAssignment()
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expression: expr}, nil
}

func (p *Parser) parseAssignment() (ast.Stmt, error) {
	name := p.advance()
	p.advance() // =
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Token: name, Name: name.Text, Value: value}, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	tok := p.advance() // if
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBranch []ast.Stmt
	if p.current().Kind == lexer.KindKeyword && p.current().Text == "else" {
		p.advance()
		elseBranch, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Token: tok, Condition: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	tok := p.advance() // while
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Token: tok, Condition: cond, Body: body}, nil
}

func (p *Parser) parsePrint() (ast.Stmt, error) {
	tok := p.advance() // print
	if _, err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	return &ast.Print{Token: tok, Argument: arg}, nil
}

func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if _, err := p.expectSymbol("{"); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for {
		p.skipSemicolons()
		tok := p.current()
		if tok.Kind == lexer.KindSymbol && tok.Text == "}" {
			p.advance()
			return stmts, nil
		}
		if tok.Kind == lexer.KindEOF {
			return nil, &ParseError{Expected: `"}"`, Found: tok}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// Expression precedence, lowest to highest: comparison, additive,
// multiplicative, power (right-associative), unary, primary.

var (
	comparisonOps     = map[string]ast.Op{"==": ast.OpEq, "!=": ast.OpNeq, "<": ast.OpLt, ">": ast.OpGt, "<=": ast.OpLte, ">=": ast.OpGte}
	additiveOps       = map[string]ast.Op{"+": ast.OpAdd, "-": ast.OpSub}
	multiplicativeOps = map[string]ast.Op{"*": ast.OpMul, "/": ast.OpDiv, "%": ast.OpMod}
)

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseBinary(comparisonOps, func() (ast.Expr, error) {
		return p.parseBinary(additiveOps, func() (ast.Expr, error) {
			return p.parseBinary(multiplicativeOps, p.parsePower)
		})
	})
}

func (p *Parser) parseBinary(ops map[string]ast.Op, next func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.current()
		if tok.Kind != lexer.KindOperator {
			return left, nil
		}
		op, ok := ops[tok.Text]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Token: tok, Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parsePower() (ast.Expr, error) {
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	tok := p.current()
	if tok.Kind != lexer.KindOperator || tok.Text != "**" {
		return base, nil
	}
	p.advance()
	exp, err := p.parsePower() // right-associative
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Token: tok, Op: ast.OpPow, Left: base, Right: exp}, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	tok := p.current()
	if tok.Kind == lexer.KindOperator && tok.Text == "-" {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Token: tok, Op: ast.OpNeg, Operand: operand}, nil
	}
	if tok.Kind == lexer.KindKeyword && tok.Text == "not" {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Token: tok, Op: ast.OpNot, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case lexer.KindNumber:
		p.advance()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, &ParseError{Expected: "number", Found: tok}
		}
		return &ast.Number{Token: tok, Value: v}, nil
	case lexer.KindString:
		p.advance()
		return &ast.String{Token: tok, Value: tok.Text}, nil
	case lexer.KindIdentifier:
		p.advance()
		return &ast.Identifier{Token: tok, Name: tok.Text}, nil
	case lexer.KindKeyword:
		switch tok.Text {
		case "true":
			p.advance()
			return &ast.Boolean{Token: tok, Value: true}, nil
		case "false":
			p.advance()
			return &ast.Boolean{Token: tok, Value: false}, nil
		}
	case lexer.KindSymbol:
		if tok.Text == "(" {
			p.advance()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectSymbol(")"); err != nil {
				return nil, err
			}
			return expr, nil
		}
	}
	return nil, &ParseError{Expected: "expression", Found: tok}
}
