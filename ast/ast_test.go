package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semiviral/algosh/report"
	"github.com/semiviral/algosh/token"
)

func TestTryReduceNotYetSupported(t *testing.T) {
	span := token.Span{Start: 3, End: 8}

	nodes := []Expr{
		&Transform{ExprBase: NewExprBase(span)},
		&Identifier{ExprBase: NewExprBase(span)},
		&IntLit{ExprBase: NewExprBase(span), Value: 7},
		&BoolLit{ExprBase: NewExprBase(span), Value: true},
		&UnitLit{ExprBase: NewExprBase(span)},
		&ArrayLit{ExprBase: NewExprBase(span)},
		&BinaryOp{ExprBase: NewExprBase(span)},
	}

	for _, node := range nodes {
		err := node.TryReduce()
		require.NotNil(t, err)

		assert.IsType(t, report.NotYetSupported{}, err.Kind())
		assert.Equal(t, span, err.Span())
	}
}

func TestSpanOver(t *testing.T) {
	base := NewExprBaseOver(token.Span{Start: 2, End: 4}, token.Span{Start: 9, End: 12})
	assert.Equal(t, token.Span{Start: 2, End: 12}, base.Span())
}
