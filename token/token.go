// Package token defines the lexical vocabulary of the language: the closed
// set of token kinds, the spanned token value, and byte-offset source spans.
package token

import "github.com/semiviral/algosh/intern"

// Kind classifies a lexical token.  It must be one of the enumerated token
// kinds below.  The set is closed: the diagnostic model matches over it
// exhaustively, so adding a kind means updating the error rendering paths.
type Kind int

const (
	EOF Kind = iota

	// Identifiers and literals.
	IDENT
	INTLIT
	BOOLLIT

	// Type name keywords.
	UNIT
	INT
	UINT
	BOOL

	// Word operators.
	OR
	XOR
	AND

	// Punctuation and delimiters.
	LBRACE
	RBRACE
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	COLON
	COMMA
	ARROW

	// Symbol operators.
	POW
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	SHL
	SHR
	CARET
	AMP
	PIPE
	EQ
	NEQ
	LT
	GT
	LTEQ
	GTEQ
	ASSIGN
)

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind Kind

	// The raw source text of the token.
	Value string

	// The interned symbol for the identifier text.  Only set on IDENT tokens.
	Sym intern.Symbol

	// The parsed magnitude of the literal.  Only set on INTLIT tokens.  The
	// surface grammar has no unary negation, so the value is unsigned;
	// signedness is decided by the checker.
	Int uint64

	// The parsed value of the literal.  Only set on BOOLLIT tokens.
	Bool bool

	// The byte span over which the token occurs.
	Span Span
}

// kindStrings maps each token kind to its representative source text, used
// when a diagnostic names a token kind.
var kindStrings = map[Kind]string{
	EOF:     "end of input",
	IDENT:   "identifier",
	INTLIT:  "integer literal",
	BOOLLIT: "boolean literal",

	UNIT: "Unit",
	INT:  "Int",
	UINT: "UInt",
	BOOL: "Bool",

	OR:  "or",
	XOR: "xor",
	AND: "and",

	LBRACE:   "{",
	RBRACE:   "}",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACKET: "[",
	RBRACKET: "]",
	COLON:    ":",
	COMMA:    ",",
	ARROW:    "->",

	POW:     "**",
	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",
	SHL:     "<<",
	SHR:     ">>",
	CARET:   "^",
	AMP:     "&",
	PIPE:    "|",
	EQ:      "==",
	NEQ:     "!=",
	LT:      "<",
	GT:      ">",
	LTEQ:    "<=",
	GTEQ:    ">=",
	ASSIGN:  "=",
}

func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}

	return "unknown"
}
