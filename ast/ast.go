// Package ast defines the expression tree produced by the parser.  The node
// set is closed: every node lives in this package, so consumers can switch
// over the concrete types exhaustively.
package ast

import (
	"github.com/semiviral/algosh/report"
	"github.com/semiviral/algosh/token"
)

// Expr is the interface implemented by all expression nodes.
type Expr interface {
	// Span returns the text span over which the expression occurs.
	Span() token.Span

	// TryReduce normalizes the node in place.  Reduction is idempotent:
	// reducing an already-reduced node must leave it unchanged.  No node
	// implements reduction in this revision; every node fails fast with a
	// not-yet-supported diagnostic rather than silently doing nothing.
	TryReduce() *report.Error

	exprNode()
}

// ExprBase is a utility base struct for all expression nodes.
type ExprBase struct {
	// The span over which the node occurs.
	span token.Span
}

// NewExprBase creates a new expression base with the given span.
func NewExprBase(span token.Span) ExprBase {
	return ExprBase{span: span}
}

// NewExprBaseOver creates a new expression base spanning over two spans.
func NewExprBaseOver(start, end token.Span) ExprBase {
	return ExprBase{span: token.SpanOver(start, end)}
}

func (eb ExprBase) Span() token.Span {
	return eb.span
}

func (eb ExprBase) exprNode() {}
