package ast

import (
	"github.com/semiviral/algosh/common"
	"github.com/semiviral/algosh/intern"
	"github.com/semiviral/algosh/report"
	"github.com/semiviral/algosh/token"
	"github.com/semiviral/algosh/types"
)

// Param is a single `name: type` parameter binding of a transform.
type Param struct {
	// The interned parameter name.
	Name intern.Symbol

	// The span of the name token.
	NameSpan token.Span

	// The declared parameter type.
	Type types.Type
}

// Transform represents a parameter-list-prefixed expression: a function
// literal whose head binds zero or more typed parameters over its body.
// Chained transforms model curried application heads.
type Transform struct {
	ExprBase

	// The ordered parameter bindings of the head.
	Params []Param

	// The owned body expression.  As constructed today this is always another
	// Transform; it is nil only for the final transform of a chain.
	Body Expr
}

func (t *Transform) TryReduce() *report.Error {
	return report.RaiseNotYetSupported(t.Span(), "transform reduction")
}

// -----------------------------------------------------------------------------

// Identifier references a parameter bound by an enclosing transform.
type Identifier struct {
	ExprBase

	// The interned name of the referenced binding.
	Name intern.Symbol
}

func (id *Identifier) TryReduce() *report.Error {
	return report.RaiseNotYetSupported(id.Span(), "identifier reduction")
}

// IntLit is an integer literal.
type IntLit struct {
	ExprBase

	// The literal's magnitude as lexed.
	Value uint64
}

func (il *IntLit) TryReduce() *report.Error {
	return report.RaiseNotYetSupported(il.Span(), "literal reduction")
}

// BoolLit is a boolean literal.
type BoolLit struct {
	ExprBase

	Value bool
}

func (bl *BoolLit) TryReduce() *report.Error {
	return report.RaiseNotYetSupported(bl.Span(), "literal reduction")
}

// UnitLit is the unit literal `()`.
type UnitLit struct {
	ExprBase
}

func (ul *UnitLit) TryReduce() *report.Error {
	return report.RaiseNotYetSupported(ul.Span(), "literal reduction")
}

// ArrayLit is an array literal: an ordered list of element expressions.
type ArrayLit struct {
	ExprBase

	Elems []Expr
}

func (al *ArrayLit) TryReduce() *report.Error {
	return report.RaiseNotYetSupported(al.Span(), "array reduction")
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	// The applied operator.
	Op common.Operator

	// The span of the operator token.
	OpSpan token.Span

	Lhs, Rhs Expr
}

func (bo *BinaryOp) TryReduce() *report.Error {
	return report.RaiseNotYetSupported(bo.Span(), "operator reduction")
}
