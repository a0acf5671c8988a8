package syntax

import (
	"github.com/semiviral/algosh/ast"
	"github.com/semiviral/algosh/intern"
	"github.com/semiviral/algosh/report"
	"github.com/semiviral/algosh/token"
)

// Parser parses a single source buffer into an expression tree.  The parser
// owns the token stream produced by its lexer and moves over it with a
// cursor; every grammar rule is built from the primitives below.  All parsing
// functions assume that they begin with the cursor on the first token of
// their production and must consume all tokens of their production, leaving
// the cursor on the next token.  A failed primitive never leaves the cursor
// advanced past the offending token, so an enclosing rule observes the same
// unconsumed token when it decides how to recover.
type Parser struct {
	interner *intern.Interner

	// toks is the token stream being parsed.
	toks []token.Token

	// cursor is the index of the current token within toks.
	cursor int

	// srcEnd is the byte length of the source buffer, used to position
	// end-of-input diagnostics.
	srcEnd int

	// scopes is the stack of parameter scopes opened by enclosing
	// transforms.
	scopes []map[intern.Symbol]struct{}
}

// NewParser tokenizes the given source buffer and returns a parser positioned
// on the first token.  A lexical failure is returned as a diagnostic.
func NewParser(src string, interner *intern.Interner) (*Parser, *report.Error) {
	lexer := NewLexer(src, interner)

	var toks []token.Token
	for {
		tok, err := lexer.NextToken()
		if err != nil {
			return nil, err
		}

		if tok.Kind == token.EOF {
			break
		}

		toks = append(toks, *tok)
	}

	return &Parser{interner: interner, toks: toks, srcEnd: len(src)}, nil
}

// ParseScript parses a whole source buffer as a single top-level expression.
func ParseScript(src string, interner *intern.Interner) (ast.Expr, *report.Error) {
	p, err := NewParser(src, interner)
	if err != nil {
		return nil, err
	}

	return p.ParseTopLevel()
}

// -----------------------------------------------------------------------------

// Peek returns the token the cursor is positioned on without consuming it, or
// nil at end of stream.
func (p *Parser) Peek() *token.Token {
	if p.cursor < len(p.toks) {
		return &p.toks[p.cursor]
	}

	return nil
}

// Advance consumes the current token and returns it, or nil at end of stream.
func (p *Parser) Advance() *token.Token {
	tok := p.Peek()
	if tok != nil {
		p.cursor++
	}

	return tok
}

// Expect consumes the current token iff its kind matches kind.  On a mismatch
// the offending token is left unconsumed and a lookahead diagnostic is
// returned.
func (p *Parser) Expect(kind token.Kind) (*token.Token, *report.Error) {
	tok := p.Peek()
	if tok == nil {
		return nil, report.RaiseUnexpected(p.endSpan(), []token.Kind{kind}, nil)
	}

	if tok.Kind != kind {
		found := tok.Kind
		return nil, report.RaiseUnexpected(tok.Span, []token.Kind{kind}, &found)
	}

	return p.Advance(), nil
}

// ExpectWith consumes the current token and transforms it through a
// caller-supplied fallible projection.  If the projection fails, its error is
// returned untouched and the token is left unconsumed.
func ExpectWith[T any](p *Parser, project func(*token.Token) (T, *report.Error)) (T, *report.Error) {
	var zero T

	tok := p.Peek()
	if tok == nil {
		return zero, report.RaiseUnexpected(p.endSpan(), nil, nil)
	}

	value, err := project(tok)
	if err != nil {
		return zero, err
	}

	p.Advance()
	return value, nil
}

// endSpan returns the empty span positioned at the end of the source buffer.
func (p *Parser) endSpan() token.Span {
	return token.Span{Start: p.srcEnd, End: p.srcEnd}
}

// -----------------------------------------------------------------------------

// pushScope opens a binding scope containing the given parameters.
func (p *Parser) pushScope(params []ast.Param) {
	scope := make(map[intern.Symbol]struct{}, len(params))
	for _, param := range params {
		scope[param.Name] = struct{}{}
	}

	p.scopes = append(p.scopes, scope)
}

// popScope closes the innermost binding scope.
func (p *Parser) popScope() {
	p.scopes = p.scopes[:len(p.scopes)-1]
}

// lookup returns whether sym is bound by any enclosing scope.
func (p *Parser) lookup(sym intern.Symbol) bool {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if _, ok := p.scopes[i][sym]; ok {
			return true
		}
	}

	return false
}
