// Package common holds vocabulary shared across the front end's stages.
package common

// Operator represents a binary operator of the surface grammar.  The set is
// closed; category membership below is computed statically, never stored.
type Operator int

// Enumeration of binary operators.
const (
	OpExp Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
	OpShr
	OpShl

	OpBitXor
	OpBitAnd
	OpBitOr

	OpEq
	OpNotEq

	OpGreater
	OpGreaterEq
	OpLess
	OpLessEq

	OpOr
	OpXor
	OpAnd

	// Two slots reserved for operators that have no surface syntax yet.
	OpReserved0
	OpReserved1

	OpAssign
)

// IsArithmetic returns whether the operator combines numeric operands into a
// numeric result.
func (op Operator) IsArithmetic() bool {
	switch op {
	case OpExp, OpAdd, OpSub, OpMul, OpDiv, OpRem, OpShr, OpShl,
		OpBitXor, OpBitAnd, OpBitOr:
		return true
	default:
		return false
	}
}

// IsBoolean returns whether the operator is a comparison yielding a boolean.
func (op Operator) IsBoolean() bool {
	switch op {
	case OpEq, OpNotEq, OpGreater, OpGreaterEq, OpLess, OpLessEq:
		return true
	default:
		return false
	}
}

// IsLogical returns whether the operator participates in boolean logic.
// Comparison operators are both boolean and logical.
func (op Operator) IsLogical() bool {
	switch op {
	case OpEq, OpNotEq, OpGreater, OpGreaterEq, OpLess, OpLessEq,
		OpOr, OpXor, OpAnd:
		return true
	default:
		return false
	}
}

func (op Operator) String() string {
	switch op {
	case OpExp:
		return "**"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpRem:
		return "%"
	case OpShr:
		return ">>"
	case OpShl:
		return "<<"
	case OpBitXor:
		return "^"
	case OpBitAnd:
		return "&"
	case OpBitOr:
		return "|"
	case OpEq:
		return "=="
	case OpNotEq:
		return "!="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpAnd:
		return "and"
	case OpAssign:
		return "="
	default:
		return "reserved"
	}
}
