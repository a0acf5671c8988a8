package syntax

import (
	"github.com/semiviral/algosh/ast"
	"github.com/semiviral/algosh/common"
	"github.com/semiviral/algosh/report"
	"github.com/semiviral/algosh/token"
	"github.com/semiviral/algosh/types"
	"github.com/semiviral/algosh/util"
)

// ParseTopLevel parses the parser's whole token stream as a single top-level
// expression.  An input with no tokens at all (empty, or only whitespace and
// comments) fails with a no-top-level-expression diagnostic at span 0..0.
func (p *Parser) ParseTopLevel() (ast.Expr, *report.Error) {
	if p.Peek() == nil {
		return nil, report.NoTopLevel()
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if tok := p.Peek(); tok != nil {
		found := tok.Kind
		return nil, report.RaiseUnexpected(tok.Span, nil, &found).WithLabel("script")
	}

	return expr, nil
}

// expr = transform | operator_expr
func (p *Parser) parseExpr() (ast.Expr, *report.Error) {
	if tok := p.Peek(); tok != nil && tok.Kind == token.LBRACE {
		return p.parseTransformExpr()
	}

	return p.parseOperatorExpr(0)
}

// parseTransformExpr parses a transform occupying an expression position.  A
// transform used as an expression must end with a body: a bare parameter list
// is only legal as the terminal of an enclosing chain, never on its own.
func (p *Parser) parseTransformExpr() (ast.Expr, *report.Error) {
	transform, err := p.parseTransform()
	if err != nil {
		return nil, err
	}

	if transform.Body == nil {
		var found *token.Kind
		span := p.endSpan()
		if tok := p.Peek(); tok != nil {
			found = &tok.Kind
			span = tok.Span
		}

		return nil, report.RaiseUnexpected(span, []token.Kind{token.LBRACE}, found).WithLabel("transform")
	}

	return transform, nil
}

// -----------------------------------------------------------------------------

// transform = '{' [param {',' param}] '}' [transform]
// param     = ident ':' type
//
// The body of a transform is only ever another transform: a parameter-list
// chain models a curried function head.  The final transform of a chain
// carries a nil body; whether a chain is complete is decided by the caller.
func (p *Parser) parseTransform() (*ast.Transform, *report.Error) {
	open, err := p.Expect(token.LBRACE)
	if err != nil {
		return nil, err
	}

	var params []ast.Param
	var closing *token.Token

	if tok := p.Peek(); tok != nil && tok.Kind == token.RBRACE {
		closing = p.Advance()
	} else {
	paramLoop:
		for {
			tok := p.Peek()
			if tok == nil {
				return nil, p.raiseUnclosed(open, token.RBRACE, "transform")
			}

			if tok.Kind != token.IDENT {
				return nil, report.Raise(tok.Span,
					"expected identifier (hint: parameter format is `name: Int`)")
			}

			name, nameSpan := tok.Sym, tok.Span
			p.Advance()

			if _, err := p.Expect(token.COLON); err != nil {
				return nil, err.WithLabel("transform")
			}

			paramType, err := ExpectWith(p, func(t *token.Token) (types.Type, *report.Error) {
				if ty, ok := types.FromToken(t); ok {
					return ty, nil
				}

				return nil, report.Raise(t.Span,
					"expected type (hint: parameter format is `name: Type`)")
			})
			if err != nil {
				return nil, err
			}

			params = append(params, ast.Param{Name: name, NameSpan: nameSpan, Type: paramType})

			next := p.Peek()
			switch {
			case next == nil:
				return nil, p.raiseUnclosed(open, token.RBRACE, "transform")
			case next.Kind == token.RBRACE:
				closing = p.Advance()
				break paramLoop
			case next.Kind == token.COMMA:
				p.Advance()
			default:
				return nil, report.RaiseNotYetSupported(next.Span, "parameter list recovery")
			}
		}
	}

	// The parameters bind in the body.
	var body ast.Expr
	if tok := p.Peek(); tok != nil && tok.Kind == token.LBRACE {
		p.pushScope(params)
		inner, err := p.parseTransform()
		p.popScope()
		if err != nil {
			return nil, err
		}

		body = inner
	}

	end := closing.Span
	if body != nil {
		end = body.Span()
	}

	return &ast.Transform{
		ExprBase: ast.NewExprBaseOver(open.Span, end),
		Params:   params,
		Body:     body,
	}, nil
}

// raiseUnclosed reports that the given opening delimiter was never matched
// before the end of the stream.
func (p *Parser) raiseUnclosed(open *token.Token, expected token.Kind, label string) *report.Error {
	return report.RaiseUnclosed(p.endSpan(), open.Kind, open.Span, expected, nil).WithLabel(label)
}

// -----------------------------------------------------------------------------

// precedences maps binary operator tokens to their binding power, lowest
// first.  The banding follows the operator categories: logical connectives
// bind loosest, then comparisons, then the arithmetic ladder.
var precedences = map[token.Kind]int{
	token.OR:  1,
	token.XOR: 1,

	token.AND: 2,

	token.EQ:   3,
	token.NEQ:  3,
	token.LT:   3,
	token.GT:   3,
	token.LTEQ: 3,
	token.GTEQ: 3,

	token.PIPE:  4,
	token.CARET: 5,
	token.AMP:   6,

	token.SHL: 7,
	token.SHR: 7,

	token.PLUS:  8,
	token.MINUS: 8,

	token.STAR:    9,
	token.SLASH:   9,
	token.PERCENT: 9,

	token.POW: 10,
}

// binaryOps maps binary operator tokens to their operator tag.
var binaryOps = map[token.Kind]common.Operator{
	token.OR:  common.OpOr,
	token.XOR: common.OpXor,
	token.AND: common.OpAnd,

	token.EQ:   common.OpEq,
	token.NEQ:  common.OpNotEq,
	token.LT:   common.OpLess,
	token.GT:   common.OpGreater,
	token.LTEQ: common.OpLessEq,
	token.GTEQ: common.OpGreaterEq,

	token.PIPE:  common.OpBitOr,
	token.CARET: common.OpBitXor,
	token.AMP:   common.OpBitAnd,

	token.SHL: common.OpShl,
	token.SHR: common.OpShr,

	token.PLUS:  common.OpAdd,
	token.MINUS: common.OpSub,

	token.STAR:    common.OpMul,
	token.SLASH:   common.OpDiv,
	token.PERCENT: common.OpRem,

	token.POW: common.OpExp,
}

// operator_expr = atom {bin_op atom}
//
// Binary expressions are parsed by precedence climbing over the tables
// above.
func (p *Parser) parseOperatorExpr(minPrec int) (ast.Expr, *report.Error) {
	lhs, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.Peek()
		if tok == nil {
			break
		}

		prec, ok := precedences[tok.Kind]
		if !ok || prec < minPrec {
			break
		}

		p.Advance()

		// Exponentiation is right-associative; everything else binds left.
		nextMin := prec + 1
		if tok.Kind == token.POW {
			nextMin = prec
		}

		rhs, err := p.parseOperatorExpr(nextMin)
		if err != nil {
			return nil, err
		}

		lhs = &ast.BinaryOp{
			ExprBase: ast.NewExprBaseOver(lhs.Span(), rhs.Span()),
			Op:       binaryOps[tok.Kind],
			OpSpan:   tok.Span,
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}

	return lhs, nil
}

// atomStarts is the set of token kinds that may begin an atom, used in
// lookahead diagnostics.
var atomStarts = []token.Kind{
	token.INTLIT, token.BOOLLIT, token.IDENT,
	token.LPAREN, token.LBRACKET, token.LBRACE,
}

// atom = INTLIT | BOOLLIT | ident | '(' ')' | '(' expr ')' | array | transform
func (p *Parser) parseAtom() (ast.Expr, *report.Error) {
	tok := p.Peek()
	if tok == nil {
		return nil, report.RaiseUnexpected(p.endSpan(), atomStarts, nil).WithLabel("expression")
	}

	if !util.Contains(atomStarts, tok.Kind) {
		found := tok.Kind
		return nil, report.RaiseUnexpected(tok.Span, atomStarts, &found).WithLabel("expression")
	}

	switch tok.Kind {
	case token.INTLIT:
		p.Advance()
		return &ast.IntLit{ExprBase: ast.NewExprBase(tok.Span), Value: tok.Int}, nil

	case token.BOOLLIT:
		p.Advance()
		return &ast.BoolLit{ExprBase: ast.NewExprBase(tok.Span), Value: tok.Bool}, nil

	case token.IDENT:
		// Identifiers must reference a parameter bound by an enclosing
		// transform.  Bodies are currently always transforms, so no expression
		// position sits inside a pushed scope yet and every identifier fails
		// this check; the scope stack is already in place for when bodies
		// grow beyond parameter lists.  The check happens before the token is
		// consumed so a failure leaves the cursor on the offending identifier.
		if !p.lookup(tok.Sym) {
			return nil, report.RaiseUndeclared(tok.Span, tok.Value)
		}

		p.Advance()
		return &ast.Identifier{ExprBase: ast.NewExprBase(tok.Span), Name: tok.Sym}, nil

	case token.LPAREN:
		return p.parseGroup()

	case token.LBRACKET:
		return p.parseArrayLit()

	default:
		// atomStarts membership leaves only LBRACE.
		return p.parseTransformExpr()
	}
}

// group = '(' ')' | '(' expr ')'
func (p *Parser) parseGroup() (ast.Expr, *report.Error) {
	open := p.Advance()

	if tok := p.Peek(); tok != nil && tok.Kind == token.RPAREN {
		closing := p.Advance()
		return &ast.UnitLit{ExprBase: ast.NewExprBaseOver(open.Span, closing.Span)}, nil
	}

	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.Expect(token.RPAREN); err != nil {
		if p.Peek() == nil {
			return nil, p.raiseUnclosed(open, token.RPAREN, "grouping")
		}

		return nil, err.WithLabel("grouping")
	}

	return inner, nil
}

// array = '[' [expr {',' expr}] ']'
func (p *Parser) parseArrayLit() (ast.Expr, *report.Error) {
	open := p.Advance()

	if tok := p.Peek(); tok != nil && tok.Kind == token.RBRACKET {
		closing := p.Advance()
		return &ast.ArrayLit{ExprBase: ast.NewExprBaseOver(open.Span, closing.Span)}, nil
	}

	var elems []ast.Expr
	for {
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		elems = append(elems, elem)

		next := p.Peek()
		switch {
		case next == nil:
			return nil, p.raiseUnclosed(open, token.RBRACKET, "array")
		case next.Kind == token.COMMA:
			p.Advance()
		case next.Kind == token.RBRACKET:
			closing := p.Advance()
			return &ast.ArrayLit{
				ExprBase: ast.NewExprBaseOver(open.Span, closing.Span),
				Elems:    elems,
			}, nil
		default:
			found := next.Kind
			return nil, report.RaiseUnexpected(
				next.Span,
				[]token.Kind{token.COMMA, token.RBRACKET},
				&found,
			).WithLabel("array")
		}
	}
}
