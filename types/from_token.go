package types

import "github.com/semiviral/algosh/token"

// FromToken converts a token denoting a primitive or named type into a type
// term.  It returns false for any token that does not denote a type; callers
// must treat that as recoverable input for their own diagnostic, not as a
// failure of the conversion itself.
func FromToken(tok *token.Token) (Type, bool) {
	switch tok.Kind {
	case token.UNIT:
		return PrimUnit, true
	case token.INT:
		return PrimInt, true
	case token.UINT:
		return PrimUInt, true
	case token.BOOL:
		return PrimBool, true
	case token.IDENT:
		return &CheckedType{Name: tok.Sym}, true
	default:
		return nil, false
	}
}
