// Package syntax implements the lexer and the recursive descent parser that
// turn a source buffer into an expression tree.
package syntax

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/semiviral/algosh/intern"
	"github.com/semiviral/algosh/report"
	"github.com/semiviral/algosh/token"
)

// Lexer is responsible for tokenizing a source buffer.  The buffer is fully
// materialized before lexing begins; the lexer is stateless beyond its scan
// position.  Whitespace and comments are discarded, never emitted as tokens.
type Lexer struct {
	src      string
	interner *intern.Interner

	// pos is the current byte offset into the source buffer.
	pos int

	// start is the byte offset at which the current token begins.
	start int
}

// NewLexer creates a new lexer for the given source buffer.
func NewLexer(src string, interner *intern.Interner) *Lexer {
	return &Lexer{src: src, interner: interner}
}

// NextToken retrieves the next token from the source buffer.  If the buffer
// has ended, this will be an EOF token.  Unrecognized input is a terminal
// failure: the lexer returns a diagnostic and must not be resumed.
func (l *Lexer) NextToken() (*token.Token, *report.Error) {
	for {
		c := l.peek()
		if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.eat()
		case '/':
			if tok, err := l.lexCommentOrDiv(); tok != nil || err != nil {
				return tok, err
			}
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	return &token.Token{Kind: token.EOF, Span: token.Span{Start: l.pos, End: l.pos}}, nil
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]token.Kind{
	"+": token.PLUS,
	"-": token.MINUS,
	"*": token.STAR,
	// Division is handled with comment logic.
	"%":  token.PERCENT,
	"**": token.POW,

	"&":  token.AMP,
	"|":  token.PIPE,
	"^":  token.CARET,
	"<<": token.SHL,
	">>": token.SHR,

	"==": token.EQ,
	"!=": token.NEQ,
	"<":  token.LT,
	"<=": token.LTEQ,
	">":  token.GT,
	">=": token.GTEQ,

	"=":  token.ASSIGN,
	"->": token.ARROW,

	"(": token.LPAREN,
	")": token.RPAREN,
	"{": token.LBRACE,
	"}": token.RBRACE,
	"[": token.LBRACKET,
	"]": token.RBRACKET,
	",": token.COMMA,
	":": token.COLON,
}

// lexPunctOrOper lexes a punctuation or operator symbol with maximal munch.
func (l *Lexer) lexPunctOrOper() (*token.Token, *report.Error) {
	l.mark()
	l.eat()

	kind, ok := symbolPatterns[l.lexeme()]
	if !ok {
		// Some symbols ("!=") have no single-rune prefix token.
		if c := l.peek(); c != -1 {
			if _kind, ok2 := symbolPatterns[l.lexeme()+string(c)]; ok2 {
				l.eat()
				kind = _kind
				ok = true
			}
		}

		if !ok {
			return nil, report.Raise(l.getSpan(), "unknown rune")
		}
	}

	for {
		c := l.peek()
		if c == -1 {
			break
		}

		if _kind, ok := symbolPatterns[l.lexeme()+string(c)]; ok {
			l.eat()
			kind = _kind
		} else {
			break
		}
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token
// kind.
var keywordPatterns = map[string]token.Kind{
	"Unit": token.UNIT,
	"Int":  token.INT,
	"UInt": token.UINT,
	"Bool": token.BOOL,

	"true":  token.BOOLLIT,
	"false": token.BOOLLIT,

	"or":  token.OR,
	"xor": token.XOR,
	"and": token.AND,
}

// lexIdentOrKeyword lexes an identifier or a keyword.  Identifier tokens
// carry their interned symbol inline so downstream stages never re-resolve
// the text.
func (l *Lexer) lexIdentOrKeyword() (*token.Token, *report.Error) {
	l.mark()
	l.eat()

	for {
		c := l.peek()
		if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	if kind, ok := keywordPatterns[l.lexeme()]; ok {
		tok := l.makeToken(kind)
		if kind == token.BOOLLIT {
			tok.Bool = tok.Value == "true"
		}

		return tok, nil
	}

	tok := l.makeToken(token.IDENT)
	tok.Sym = l.interner.Intern(tok.Value)
	return tok, nil
}

// -----------------------------------------------------------------------------

// lexNumericLit lexes an integer literal in base 2, 8, 10, or 16, with
// optional `_` digit separators.  The parsed value is carried on the token.
func (l *Lexer) lexNumericLit() (*token.Token, *report.Error) {
	l.mark()
	first := l.eat()

	// Determine the base of the literal.
	base := 10
	if first == '0' {
		switch l.peek() {
		case 'x':
			base = 16
			l.eat()
		case 'o':
			base = 8
			l.eat()
		case 'b':
			base = 2
			l.eat()
		}
	}

	for {
		c := l.peek()
		if c == '_' || isBaseDigit(c, base) {
			l.eat()
			continue
		}

		break
	}

	tok := l.makeToken(token.INTLIT)

	// Parse with the base scanned above rather than strconv's base inference:
	// a leading zero never makes a decimal literal octal.
	digits := strings.ReplaceAll(tok.Value, "_", "")
	if base != 10 {
		digits = digits[2:]
	}

	value, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return nil, report.Raise(tok.Span, "malformed numeric literal `%s`", tok.Value)
	}

	tok.Int = value
	return tok, nil
}

// -----------------------------------------------------------------------------

// lexCommentOrDiv lexes a comment or a division token.  Comments are
// discarded: the lexer returns (nil, nil) and the caller continues scanning.
func (l *Lexer) lexCommentOrDiv() (*token.Token, *report.Error) {
	l.mark()
	l.eat()

	switch l.peek() {
	case '/':
		for c := l.peek(); c != -1 && c != '\n'; c = l.peek() {
			l.eat()
		}
	case '*':
		l.eat()

		for {
			c := l.eat()
			if c == -1 {
				break
			}

			if c == '*' && l.peek() == '/' {
				l.eat()
				break
			}
		}
	default:
		return l.makeToken(token.SLASH), nil
	}

	return nil, nil
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored token start to its current position.
func (l *Lexer) mark() {
	l.start = l.pos
}

// lexeme returns the source text consumed since the last mark.
func (l *Lexer) lexeme() string {
	return l.src[l.start:l.pos]
}

// makeToken produces a new token of the given kind from the lexer's state.
func (l *Lexer) makeToken(kind token.Kind) *token.Token {
	return &token.Token{
		Kind:  kind,
		Value: l.lexeme(),
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() token.Span {
	return token.Span{Start: l.start, End: l.pos}
}

// eat moves the lexer forward one rune and returns it.  If the lexer
// encounters the end of the buffer, -1 is returned as the rune value.
func (l *Lexer) eat() rune {
	c, size := l.decode()
	l.pos += size
	return c
}

// peek returns the next rune in the buffer without moving the lexer forward.
// If the lexer encounters the end of the buffer, -1 is returned as the rune
// value.
func (l *Lexer) peek() rune {
	c, _ := l.decode()
	return c
}

func (l *Lexer) decode() (rune, int) {
	if l.pos >= len(l.src) {
		return -1, 0
	}

	return utf8.DecodeRuneInString(l.src[l.pos:])
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isHexDigit returns whether c is a hexadecimal digit.
func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isBaseDigit returns whether c is a digit in the given base.
func isBaseDigit(c rune, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return '0' <= c && c <= '7'
	case 16:
		return isHexDigit(c)
	default:
		return isDecimalDigit(c)
	}
}

// isFirstIdentChar returns whether c could be the first rune of an
// identifier.
func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
