package lexer

// Kind classifies a token produced by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindKeyword
	KindIdentifier
	KindNumber
	KindString
	KindOperator
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindKeyword:
		return "KEYWORD"
	case KindIdentifier:
		return "IDENTIFIER"
	case KindNumber:
		return "NUMBER"
	case KindString:
		return "STRING"
	case KindOperator:
		return "OPERATOR"
	case KindSymbol:
		return "SYMBOL"
	}
	return "UNKNOWN"
}

// Token is one lexical unit of Nyunda source. For keywords, Text holds the
// canonical English form ("if", "while", ...) rather than the Sundanese
// lexeme, so the parser never deals with surface spellings. String tokens
// carry their content without the surrounding quotes.
type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}

// keywords maps Sundanese keywords to their canonical names. "elif", "and"
// and "or" are recognized and reserved; the grammar does not use them yet.
var keywords = map[string]string{
	"upami":  "if",
	"lamun":  "elif",
	"sanes":  "else",
	"bari":   "while",
	"cetak":  "print",
	"jeung":  "and",
	"atawa":  "or",
	"henteu": "not",
	"leres":  "true",
	"palsu":  "false",
}
