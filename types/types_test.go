package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/semiviral/algosh/intern"
	"github.com/semiviral/algosh/token"
)

func TestPrimEquality(t *testing.T) {
	assert.True(t, Equals(PrimInt, PrimInt))
	assert.False(t, Equals(PrimInt, PrimUInt))
	assert.False(t, Equals(PrimBool, PrimUnit))
}

func TestEqualsNilSafety(t *testing.T) {
	assert.True(t, Equals(nil, nil))
	assert.False(t, Equals(PrimInt, nil))
	assert.False(t, Equals(nil, PrimInt))
}

func TestTupleEqualityIsOrdered(t *testing.T) {
	in := intern.NewInterner()
	a, b := in.Intern("a"), in.Intern("b")

	ab := TupleType{{Name: a, Type: PrimInt}, {Name: b, Type: PrimBool}}
	ba := TupleType{{Name: b, Type: PrimBool}, {Name: a, Type: PrimInt}}

	assert.True(t, Equals(ab, TupleType{{Name: a, Type: PrimInt}, {Name: b, Type: PrimBool}}))
	assert.False(t, Equals(ab, ba))
}

func TestTupleFieldNamesMatter(t *testing.T) {
	in := intern.NewInterner()

	named := TupleType{{Name: in.Intern("x"), Type: PrimInt}}
	positional := TupleType{{Name: intern.NoSymbol, Type: PrimInt}}

	assert.False(t, Equals(named, positional))
}

func TestArrayEquality(t *testing.T) {
	assert.True(t, Equals(&ArrayType{Elem: PrimInt, Len: 3}, &ArrayType{Elem: PrimInt, Len: 3}))
	assert.False(t, Equals(&ArrayType{Elem: PrimInt, Len: 3}, &ArrayType{Elem: PrimInt, Len: 4}))
	assert.False(t, Equals(&ArrayType{Elem: PrimInt, Len: -1}, &ArrayType{Elem: PrimInt, Len: 3}))
	assert.False(t, Equals(&ArrayType{Elem: PrimInt, Len: 3}, &ArrayType{Elem: PrimBool, Len: 3}))
}

func TestExpressionEquality(t *testing.T) {
	intToBool := &ExpressionType{Input: PrimInt, Output: PrimBool}

	assert.True(t, Equals(intToBool, &ExpressionType{Input: PrimInt, Output: PrimBool}))
	assert.False(t, Equals(intToBool, &ExpressionType{Input: PrimBool, Output: PrimInt}))
	assert.False(t, Equals(intToBool, PrimBool))
}

func TestCheckedEqualityBySymbol(t *testing.T) {
	in := intern.NewInterner()
	vec := in.Intern("Vec")
	mat := in.Intern("Mat")

	assert.True(t, Equals(&CheckedType{Name: vec}, &CheckedType{Name: vec}))
	assert.False(t, Equals(&CheckedType{Name: vec}, &CheckedType{Name: mat}))
}

func TestRepr(t *testing.T) {
	assert.Equal(t, "Int", PrimInt.Repr())
	assert.Equal(t, "[Bool]", (&ArrayType{Elem: PrimBool, Len: -1}).Repr())
	assert.Equal(t, "[UInt; 8]", (&ArrayType{Elem: PrimUInt, Len: 8}).Repr())
	assert.Equal(t, "Int -> Bool", (&ExpressionType{Input: PrimInt, Output: PrimBool}).Repr())
}

func TestFromToken(t *testing.T) {
	in := intern.NewInterner()

	ty, ok := FromToken(&token.Token{Kind: token.INT})
	assert.True(t, ok)
	assert.True(t, Equals(PrimInt, ty))

	sym := in.Intern("Custom")
	ty, ok = FromToken(&token.Token{Kind: token.IDENT, Value: "Custom", Sym: sym})
	assert.True(t, ok)
	assert.True(t, Equals(&CheckedType{Name: sym}, ty))

	_, ok = FromToken(&token.Token{Kind: token.COMMA})
	assert.False(t, ok)
}
