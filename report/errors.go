// Package report defines the diagnostic model for the front end: structured,
// spanned, labeled error values, plus the collaborator that renders them for
// a terminal.  The model itself never performs presentation formatting; it
// only carries the data a renderer needs.
package report

import (
	"fmt"

	"github.com/semiviral/algosh/token"
)

// ErrorKind is the closed set of diagnostic kinds.  Each concrete kind
// carries the data specific to its failure; the enclosing Error carries the
// span and label shared by all of them.
type ErrorKind interface {
	// message returns the plain-text message for the kind, without the label
	// prefix and without any presentation markup.
	message() string

	errorKind()
}

// General is a free-form contextual error.
type General struct {
	Msg string
}

// Unexpected is a lookahead mismatch: the parser wanted one of Expected and
// found Found.  Found is nil when the mismatch occurred at end of input.
type Unexpected struct {
	Expected []token.Kind
	Found    *token.Kind
}

// UnclosedDelimiter reports an opening delimiter that was never matched
// before the stream ended.  DelimiterSpan is the span of the opening token
// and always precedes the error's own span.
type UnclosedDelimiter struct {
	Delimiter     token.Kind
	DelimiterSpan token.Span
	Expected      token.Kind
	Found         *token.Kind
}

// UndeclaredVar reports an identifier referenced outside any binding scope.
type UndeclaredVar struct {
	VarName string
}

// NoTopLevelExpr reports that the whole input produced no expression at all.
type NoTopLevelExpr struct{}

// NotYetSupported marks a grammar or reduction path that exists in the
// surface language but has no implementation yet.  It is a distinct kind so
// callers can assert on it instead of treating it as a generic failure.
type NotYetSupported struct {
	Feature string
}

func (g General) message() string { return g.Msg }

func (u Unexpected) message() string {
	if u.Found != nil {
		return fmt.Sprintf("unexpected input, found '%s'", *u.Found)
	}

	return "unexpected input"
}

func (u UnclosedDelimiter) message() string { return "unclosed delimiter" }

func (u UndeclaredVar) message() string {
	return fmt.Sprintf("use of undeclared variable `%s`", u.VarName)
}

func (NoTopLevelExpr) message() string { return "script has no top-level expression" }

func (n NotYetSupported) message() string {
	return fmt.Sprintf("not yet supported: %s", n.Feature)
}

func (General) errorKind()           {}
func (Unexpected) errorKind()        {}
func (UnclosedDelimiter) errorKind() {}
func (UndeclaredVar) errorKind()     {}
func (NoTopLevelExpr) errorKind()    {}
func (NotYetSupported) errorKind()   {}

// -----------------------------------------------------------------------------

// Error is a single diagnostic: a span into the source buffer, the kind of
// failure, and an optional label naming the grammar rule that raised it.
// Errors are ordinary values; the host decides whether one is fatal.
type Error struct {
	span  token.Span
	kind  ErrorKind
	label string
}

// Raise creates a new general diagnostic over the given span.  The function
// takes a message and arguments to format into it.
func Raise(span token.Span, msg string, args ...interface{}) *Error {
	return &Error{span: span, kind: General{Msg: fmt.Sprintf(msg, args...)}}
}

// RaiseUnexpected creates a lookahead-mismatch diagnostic.  found is nil when
// the mismatch occurred at end of input.
func RaiseUnexpected(span token.Span, expected []token.Kind, found *token.Kind) *Error {
	return &Error{span: span, kind: Unexpected{Expected: expected, Found: found}}
}

// RaiseUnclosed creates an unclosed-delimiter diagnostic.  delimSpan is the
// span of the opening delimiter token.
func RaiseUnclosed(span token.Span, delim token.Kind, delimSpan token.Span, expected token.Kind, found *token.Kind) *Error {
	return &Error{span: span, kind: UnclosedDelimiter{
		Delimiter:     delim,
		DelimiterSpan: delimSpan,
		Expected:      expected,
		Found:         found,
	}}
}

// RaiseUndeclared creates an undeclared-variable diagnostic.
func RaiseUndeclared(span token.Span, varName string) *Error {
	return &Error{span: span, kind: UndeclaredVar{VarName: varName}}
}

// RaiseNotYetSupported creates a placeholder diagnostic for an unimplemented
// path.
func RaiseNotYetSupported(span token.Span, feature string) *Error {
	return &Error{span: span, kind: NotYetSupported{Feature: feature}}
}

// NoTopLevel creates the diagnostic for an input with no top-level
// expression.  Its span is always 0..0.
func NoTopLevel() *Error {
	return &Error{span: token.Span{Start: 0, End: 0}, kind: NoTopLevelExpr{}}
}

// Span returns the span over which the diagnostic occurs.
func (e *Error) Span() token.Span { return e.span }

// Kind returns the diagnostic's kind.
func (e *Error) Kind() ErrorKind { return e.kind }

// Label returns the name of the grammar rule that raised the diagnostic, or
// an empty string if none was attached.
func (e *Error) Label() string { return e.label }

// WithLabel attaches the name of an enclosing grammar rule to the diagnostic.
// The span and kind are left untouched.
func (e *Error) WithLabel(label string) *Error {
	e.label = label
	return e
}

// Merge combines the diagnostics of two failed parse alternatives.  The
// current policy keeps the receiver verbatim: no best-match selection is
// attempted.
func (e *Error) Merge(*Error) *Error {
	return e
}

func (e *Error) Error() string {
	msg := e.kind.message()
	if e.label != "" {
		return fmt.Sprintf("[%s] %s", e.label, msg)
	}

	return msg
}
