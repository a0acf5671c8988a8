package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semiviral/algosh/ast"
	"github.com/semiviral/algosh/common"
	"github.com/semiviral/algosh/intern"
	"github.com/semiviral/algosh/report"
	"github.com/semiviral/algosh/token"
	"github.com/semiviral/algosh/types"
)

func parse(t *testing.T, src string) (ast.Expr, *report.Error) {
	t.Helper()
	return ParseScript(src, intern.NewInterner())
}

func parseOK(t *testing.T, src string) ast.Expr {
	t.Helper()

	expr, err := parse(t, src)
	require.Nil(t, err)
	require.NotNil(t, expr)
	return expr
}

func parseFail(t *testing.T, src string) *report.Error {
	t.Helper()

	expr, err := parse(t, src)
	require.NotNil(t, err)
	require.Nil(t, expr)
	return err
}

// -----------------------------------------------------------------------------

func TestExpectDoesNotAdvanceOnMismatch(t *testing.T) {
	p, err := NewParser("x y", intern.NewInterner())
	require.Nil(t, err)

	_, perr := p.Expect(token.COMMA)
	require.NotNil(t, perr)

	// The offending token is still current.
	tok := p.Peek()
	require.NotNil(t, tok)
	assert.Equal(t, token.IDENT, tok.Kind)
	assert.Equal(t, "x", tok.Value)
}

func TestExpectAtEndOfStream(t *testing.T) {
	p, err := NewParser("", intern.NewInterner())
	require.Nil(t, err)

	_, perr := p.Expect(token.RBRACE)
	require.NotNil(t, perr)

	kind, ok := perr.Kind().(report.Unexpected)
	require.True(t, ok)
	assert.Equal(t, []token.Kind{token.RBRACE}, kind.Expected)
	assert.Nil(t, kind.Found)
}

// -----------------------------------------------------------------------------

func TestParseTransformChain(t *testing.T) {
	expr := parseOK(t, "{x: Int} {y: Int}")

	outer, ok := expr.(*ast.Transform)
	require.True(t, ok)
	require.Len(t, outer.Params, 1)
	assert.True(t, types.Equals(types.PrimInt, outer.Params[0].Type))

	inner, ok := outer.Body.(*ast.Transform)
	require.True(t, ok)
	require.Len(t, inner.Params, 1)
	assert.Nil(t, inner.Body)

	// The chain's span covers the whole source.
	assert.Equal(t, token.Span{Start: 0, End: 17}, outer.Span())
}

func TestParseTransformMultipleParams(t *testing.T) {
	expr := parseOK(t, "{x: Int, y: Bool} {}")

	outer, ok := expr.(*ast.Transform)
	require.True(t, ok)
	require.Len(t, outer.Params, 2)
	assert.True(t, types.Equals(types.PrimInt, outer.Params[0].Type))
	assert.True(t, types.Equals(types.PrimBool, outer.Params[1].Type))
	assert.NotEqual(t, outer.Params[0].Name, outer.Params[1].Name)
}

func TestParseTransformNamedType(t *testing.T) {
	interner := intern.NewInterner()
	expr, err := ParseScript("{v: Vector} {}", interner)
	require.Nil(t, err)

	outer := expr.(*ast.Transform)
	require.Len(t, outer.Params, 1)

	checked, ok := outer.Params[0].Type.(*types.CheckedType)
	require.True(t, ok)

	name, ok := interner.Resolve(checked.Name)
	require.True(t, ok)
	assert.Equal(t, "Vector", name)
}

func TestTopLevelTransformRequiresBody(t *testing.T) {
	err := parseFail(t, "{x: Int, y: Bool}")

	kind, ok := err.Kind().(report.Unexpected)
	require.True(t, ok)
	assert.Equal(t, []token.Kind{token.LBRACE}, kind.Expected)
	assert.Nil(t, kind.Found)
	assert.Equal(t, "transform", err.Label())
}

func TestBodilessTransformInExpressionPosition(t *testing.T) {
	// A chain-terminal parameter list is only legal as the body of an
	// enclosing transform, never as an expression of its own.
	for _, src := range []string{"[{x: Int}]", "({x: Int})"} {
		err := parseFail(t, src)

		kind, ok := err.Kind().(report.Unexpected)
		require.True(t, ok, "source %q", src)
		assert.Equal(t, []token.Kind{token.LBRACE}, kind.Expected)
		require.NotNil(t, kind.Found)
		assert.Equal(t, "transform", err.Label())
	}

	// As a body, the same parameter list is fine.
	parseOK(t, "{x: Int} {y: Int}")
}

func TestBadExpressionStart(t *testing.T) {
	err := parseFail(t, ", 1")

	kind, ok := err.Kind().(report.Unexpected)
	require.True(t, ok)
	require.NotNil(t, kind.Found)
	assert.Equal(t, token.COMMA, *kind.Found)
	assert.Equal(t, "expression", err.Label())
}

func TestScopeLookup(t *testing.T) {
	interner := intern.NewInterner()
	p, err := NewParser("", interner)
	require.Nil(t, err)

	sym := interner.Intern("x")
	assert.False(t, p.lookup(sym))

	p.pushScope([]ast.Param{{Name: sym}})
	assert.True(t, p.lookup(sym))

	p.popScope()
	assert.False(t, p.lookup(sym))
}

func TestEmptyScript(t *testing.T) {
	for _, src := range []string{"", "   \n\t", "// only a comment\n"} {
		err := parseFail(t, src)

		assert.IsType(t, report.NoTopLevelExpr{}, err.Kind())
		assert.Equal(t, token.Span{Start: 0, End: 0}, err.Span())
	}
}

func TestUnclosedTransform(t *testing.T) {
	err := parseFail(t, "{x: Int")

	kind, ok := err.Kind().(report.UnclosedDelimiter)
	require.True(t, ok)
	assert.Equal(t, token.LBRACE, kind.Delimiter)
	assert.Equal(t, token.Span{Start: 0, End: 1}, kind.DelimiterSpan)
	assert.Equal(t, token.RBRACE, kind.Expected)
	assert.Equal(t, "transform", err.Label())

	// The error itself points at the end of the buffer.
	assert.Equal(t, token.Span{Start: 7, End: 7}, err.Span())
}

func TestBadParamSeparator(t *testing.T) {
	err := parseFail(t, "{x: Int -> y: Bool}")

	kind, ok := err.Kind().(report.NotYetSupported)
	require.True(t, ok)
	assert.Equal(t, "parameter list recovery", kind.Feature)
}

func TestParamHints(t *testing.T) {
	err := parseFail(t, "{1: Int}")
	assert.Equal(t, "expected identifier (hint: parameter format is `name: Int`)", err.Error())

	err = parseFail(t, "{x: 5}")
	assert.Equal(t, "expected type (hint: parameter format is `name: Type`)", err.Error())
}

func TestMissingColon(t *testing.T) {
	err := parseFail(t, "{x Int}")

	kind, ok := err.Kind().(report.Unexpected)
	require.True(t, ok)
	assert.Equal(t, []token.Kind{token.COLON}, kind.Expected)
	require.NotNil(t, kind.Found)
	assert.Equal(t, token.INT, *kind.Found)
	assert.Equal(t, "transform", err.Label())
}

// -----------------------------------------------------------------------------

func TestPrecedence(t *testing.T) {
	expr := parseOK(t, "1 + 2 * 3")

	add, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, common.OpAdd, add.Op)

	mul, ok := add.Rhs.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, common.OpMul, mul.Op)
}

func TestLeftAssociativity(t *testing.T) {
	expr := parseOK(t, "10 - 4 - 3")

	outer, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, common.OpSub, outer.Op)

	innerLhs, ok := outer.Lhs.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, common.OpSub, innerLhs.Op)
}

func TestExponentIsRightAssociative(t *testing.T) {
	expr := parseOK(t, "2 ** 3 ** 2")

	outer, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, common.OpExp, outer.Op)

	innerRhs, ok := outer.Rhs.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, common.OpExp, innerRhs.Op)
}

func TestComparisonBindsTighterThanLogic(t *testing.T) {
	expr := parseOK(t, "1 < 2 and true")

	and, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, common.OpAnd, and.Op)

	less, ok := and.Lhs.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, common.OpLess, less.Op)
}

func TestGroupingOverridesPrecedence(t *testing.T) {
	expr := parseOK(t, "(1 + 2) * 3")

	mul, ok := expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, common.OpMul, mul.Op)

	add, ok := mul.Lhs.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, common.OpAdd, add.Op)
}

func TestUnitLiteral(t *testing.T) {
	expr := parseOK(t, "()")

	unit, ok := expr.(*ast.UnitLit)
	require.True(t, ok)
	assert.Equal(t, token.Span{Start: 0, End: 2}, unit.Span())
}

func TestArrayLiteral(t *testing.T) {
	expr := parseOK(t, "[1, 2 + 3, true]")

	arr, ok := expr.(*ast.ArrayLit)
	require.True(t, ok)
	require.Len(t, arr.Elems, 3)

	assert.IsType(t, &ast.IntLit{}, arr.Elems[0])
	assert.IsType(t, &ast.BinaryOp{}, arr.Elems[1])
	assert.IsType(t, &ast.BoolLit{}, arr.Elems[2])
}

func TestEmptyArrayLiteral(t *testing.T) {
	expr := parseOK(t, "[]")

	arr, ok := expr.(*ast.ArrayLit)
	require.True(t, ok)
	assert.Empty(t, arr.Elems)
}

func TestUnclosedArray(t *testing.T) {
	err := parseFail(t, "[1, 2")

	kind, ok := err.Kind().(report.UnclosedDelimiter)
	require.True(t, ok)
	assert.Equal(t, token.LBRACKET, kind.Delimiter)
	assert.Equal(t, token.RBRACKET, kind.Expected)
	assert.Equal(t, "array", err.Label())
}

func TestUnclosedGroup(t *testing.T) {
	err := parseFail(t, "(1 + 2")

	kind, ok := err.Kind().(report.UnclosedDelimiter)
	require.True(t, ok)
	assert.Equal(t, token.LPAREN, kind.Delimiter)
	assert.Equal(t, token.RPAREN, kind.Expected)
	assert.Equal(t, "grouping", err.Label())
}

func TestUndeclaredVariable(t *testing.T) {
	err := parseFail(t, "foo + 1")

	kind, ok := err.Kind().(report.UndeclaredVar)
	require.True(t, ok)
	assert.Equal(t, "foo", kind.VarName)
	assert.Equal(t, token.Span{Start: 0, End: 3}, err.Span())
}

func TestTrailingTokens(t *testing.T) {
	err := parseFail(t, "1 2")

	kind, ok := err.Kind().(report.Unexpected)
	require.True(t, ok)
	require.NotNil(t, kind.Found)
	assert.Equal(t, token.INTLIT, *kind.Found)
	assert.Equal(t, "script", err.Label())
	assert.Equal(t, token.Span{Start: 2, End: 3}, err.Span())
}

func TestLexicalErrorSurfacesFromParse(t *testing.T) {
	err := parseFail(t, "1 + $")

	assert.IsType(t, report.General{}, err.Kind())
	assert.Equal(t, "unknown rune", err.Error())
}

func TestIntLiteralValue(t *testing.T) {
	expr := parseOK(t, "0xFF")

	lit, ok := expr.(*ast.IntLit)
	require.True(t, ok)
	assert.Equal(t, uint64(255), lit.Value)
}
