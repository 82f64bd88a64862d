package lexer

import "fmt"

// LexError reports a character sequence that matches no token pattern.
type LexError struct {
	Line   int
	Column int
	Char   byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: invalid character %q", e.Line, e.Column, e.Char)
}

// Scanner performs lexical analysis on Nyunda source.
//
// Pattern priority at each position: numbers, strings, identifiers (with
// keyword mapping), multi-character operators, then single-character
// operators and symbols. Each match consumes the longest lexeme it can.
type Scanner struct {
	source []byte
	cursor int
	line   int
	column int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: []byte(source),
		line:   1,
		column: 1,
	}
}

// Tokenize scans the whole source in one call. The returned sequence always
// ends with a single EOF token.
func Tokenize(source string) ([]Token, error) {
	s := NewScanner(source)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

// Next returns the next token from the source.
func (s *Scanner) Next() (Token, error) {
	s.skipBlanks()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Line: s.line, Column: s.column}, nil
	}

	ch := s.source[s.cursor]
	switch {
	case isDigit(ch):
		return s.scanNumber(), nil
	case ch == '"':
		return s.scanString()
	case isAlpha(ch):
		return s.scanIdentifier(), nil
	}

	if tok, ok := s.scanOperator(); ok {
		return tok, nil
	}

	return Token{}, &LexError{Line: s.line, Column: s.column, Char: ch}
}

// skipBlanks consumes whitespace, newlines and # comments.
func (s *Scanner) skipBlanks() {
	for s.cursor < len(s.source) {
		switch ch := s.source[s.cursor]; {
		case ch == ' ' || ch == '\t' || ch == '\r':
			s.advance(1)
		case ch == '\n':
			s.cursor++
			s.line++
			s.column = 1
		case ch == '#':
			for s.cursor < len(s.source) && s.source[s.cursor] != '\n' {
				s.advance(1)
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanNumber() Token {
	start := s.cursor
	line, column := s.line, s.column
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.advance(1)
	}
	// Fractional part only when a digit follows the dot, so "3." lexes as
	// NUMBER then OPERATOR and fails later in the parser, like the original.
	if s.cursor+1 < len(s.source) && s.source[s.cursor] == '.' && isDigit(s.source[s.cursor+1]) {
		s.advance(1)
		for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
			s.advance(1)
		}
	}
	return Token{Kind: KindNumber, Text: string(s.source[start:s.cursor]), Line: line, Column: column}
}

func (s *Scanner) scanString() (Token, error) {
	line, column := s.line, s.column
	s.advance(1) // opening quote
	start := s.cursor
	for s.cursor < len(s.source) && s.source[s.cursor] != '"' && s.source[s.cursor] != '\n' {
		s.advance(1)
	}
	if s.cursor >= len(s.source) || s.source[s.cursor] != '"' {
		return Token{}, &LexError{Line: line, Column: column, Char: '"'}
	}
	text := string(s.source[start:s.cursor])
	s.advance(1) // closing quote
	return Token{Kind: KindString, Text: text, Line: line, Column: column}, nil
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	line, column := s.line, s.column
	for s.cursor < len(s.source) && isIdentChar(s.source[s.cursor]) {
		s.advance(1)
	}
	text := string(s.source[start:s.cursor])
	if canonical, ok := keywords[text]; ok {
		return Token{Kind: KindKeyword, Text: canonical, Line: line, Column: column}
	}
	return Token{Kind: KindIdentifier, Text: text, Line: line, Column: column}
}

// twoCharOps are tried before their single-character prefixes.
var twoCharOps = []string{"**", "==", "!=", "<=", ">="}

func (s *Scanner) scanOperator() (Token, bool) {
	line, column := s.line, s.column
	if s.cursor+1 < len(s.source) {
		pair := string(s.source[s.cursor : s.cursor+2])
		for _, op := range twoCharOps {
			if pair == op {
				s.advance(2)
				return Token{Kind: KindOperator, Text: op, Line: line, Column: column}, true
			}
		}
	}

	ch := s.source[s.cursor]
	switch ch {
	case '+', '-', '*', '/', '%', '<', '>', '=':
		s.advance(1)
		return Token{Kind: KindOperator, Text: string(ch), Line: line, Column: column}, true
	case '(', ')', '{', '}', ';':
		s.advance(1)
		return Token{Kind: KindSymbol, Text: string(ch), Line: line, Column: column}, true
	}
	return Token{}, false
}

func (s *Scanner) advance(n int) {
	s.cursor += n
	s.column += n
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentChar(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
