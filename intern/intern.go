package intern

// Symbol is an opaque handle to an interned string.  Two symbols produced by
// the same interner compare equal if and only if their originating strings are
// equal, so identifier comparisons are constant time.  Symbols are freely
// copyable and hashable; they are only meaningful to the interner that
// produced them.
type Symbol uint32

// NoSymbol is the zero symbol.  It is never returned by Intern and is used to
// mark the absence of a name (eg. a positional tuple field).
const NoSymbol Symbol = 0

// Interner is a table mapping interned strings to symbols and back.  The
// table owns the canonical copy of every string interned into it and only
// grows: symbols are never individually freed.  An interner is a plain value
// passed to whatever stage needs it; it performs no synchronization, so a
// multi-threaded host must either lock it externally or create one interner
// per parse.
type Interner struct {
	// symbols maps canonical strings to their assigned symbols.
	symbols map[string]Symbol

	// strings stores the canonical string for each symbol, indexed by the
	// symbol value less one.
	strings []string
}

// NewInterner creates a new, empty interner.
func NewInterner() *Interner {
	return &Interner{symbols: make(map[string]Symbol)}
}

// Intern returns the symbol for text, allocating a new one if text has not
// been interned before.
func (in *Interner) Intern(text string) Symbol {
	if sym, ok := in.symbols[text]; ok {
		return sym
	}

	in.strings = append(in.strings, text)
	sym := Symbol(len(in.strings))
	in.symbols[text] = sym
	return sym
}

// Resolve returns the string a symbol was interned from.  It is total over
// every symbol this interner has ever returned; the boolean is false only for
// symbols it never produced.
func (in *Interner) Resolve(sym Symbol) (string, bool) {
	if sym == NoSymbol || int(sym) > len(in.strings) {
		return "", false
	}

	return in.strings[sym-1], true
}

// Count returns the number of distinct strings interned so far.
func (in *Interner) Count() int {
	return len(in.strings)
}
