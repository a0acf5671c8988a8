// Package types defines the algebraic representation of type terms used to
// annotate parameters and, eventually, expressions.  Type terms only describe
// structure: resolving or comparing named references against definitions is
// the checker's job.
package types

import (
	"fmt"
	"strings"

	"github.com/semiviral/algosh/intern"
)

// Type represents a type term.  Terms are immutable once constructed and own
// their sub-terms by value; two terms are compared structurally with Equals.
type Type interface {
	// equals is the type-specific implementation of Equals.  It should never
	// be called directly except by Equals.
	equals(other Type) bool

	// Repr returns a representative string of the type for purposes of error
	// reporting.
	Repr() string
}

// Equals returns whether two type terms are structurally equal.
func Equals(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.equals(b)
}

// -----------------------------------------------------------------------------

// PrimType represents a primitive type.  It must be one of the enumerated
// primitive types.
type PrimType int

// Enumeration of the different primitive types.
const (
	PrimUnit PrimType = iota
	PrimInt
	PrimUInt
	PrimBool
)

func (pt PrimType) equals(other Type) bool {
	if opt, ok := other.(PrimType); ok {
		return pt == opt
	}

	return false
}

func (pt PrimType) Repr() string {
	switch pt {
	case PrimUnit:
		return "Unit"
	case PrimInt:
		return "Int"
	case PrimUInt:
		return "UInt"
	default:
		return "Bool"
	}
}

// -----------------------------------------------------------------------------

// TupleField is a single field of a tuple type.  Field order is part of the
// representation: tuples with reordered fields are different types.
type TupleField struct {
	// The interned field name, or intern.NoSymbol for a positional field.
	Name intern.Symbol

	// The field's type.
	Type Type
}

// TupleType represents a structural tuple type.
type TupleType []TupleField

func (tt TupleType) equals(other Type) bool {
	ott, ok := other.(TupleType)
	if !ok || len(tt) != len(ott) {
		return false
	}

	for i, field := range tt {
		if field.Name != ott[i].Name || !Equals(field.Type, ott[i].Type) {
			return false
		}
	}

	return true
}

func (tt TupleType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('(')

	for i, field := range tt {
		if field.Name != intern.NoSymbol {
			sb.WriteString(fmt.Sprintf("#%d: ", field.Name))
		}

		sb.WriteString(field.Type.Repr())

		if i < len(tt)-1 {
			sb.WriteString(", ")
		}
	}

	sb.WriteRune(')')
	return sb.String()
}

// -----------------------------------------------------------------------------

// ArrayType represents an array type with an optional fixed length.
type ArrayType struct {
	// The element type of the array.
	Elem Type

	// The fixed element count, or -1 when the length is not fixed.
	Len int64
}

func (at *ArrayType) equals(other Type) bool {
	if oat, ok := other.(*ArrayType); ok {
		return at.Len == oat.Len && Equals(at.Elem, oat.Elem)
	}

	return false
}

func (at *ArrayType) Repr() string {
	if at.Len < 0 {
		return fmt.Sprintf("[%s]", at.Elem.Repr())
	}

	return fmt.Sprintf("[%s; %d]", at.Elem.Repr(), at.Len)
}

// -----------------------------------------------------------------------------

// ExpressionType represents a function arrow: the type of an expression that
// consumes an input term and produces an output term.
type ExpressionType struct {
	Input  Type
	Output Type
}

func (et *ExpressionType) equals(other Type) bool {
	if oet, ok := other.(*ExpressionType); ok {
		return Equals(et.Input, oet.Input) && Equals(et.Output, oet.Output)
	}

	return false
}

func (et *ExpressionType) Repr() string {
	return et.Input.Repr() + " -> " + et.Output.Repr()
}

// -----------------------------------------------------------------------------

// CheckedType represents a nominal type reference that has not yet been
// resolved against a definition table.  Until the checker resolves it, the
// reference is opaque: two checked references are equal iff they name the
// same symbol.
type CheckedType struct {
	// The interned name of the referenced type.
	Name intern.Symbol
}

func (ct *CheckedType) equals(other Type) bool {
	if oct, ok := other.(*CheckedType); ok {
		return ct.Name == oct.Name
	}

	return false
}

// Repr prints the raw symbol id: resolving it to text requires the interner,
// which belongs to the host, not to the type term.
func (ct *CheckedType) Repr() string {
	return fmt.Sprintf("checked(#%d)", ct.Name)
}
