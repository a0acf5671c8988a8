package token

import "fmt"

// Span is a half-open byte-offset range `[Start, End)` into the source buffer
// a token stream was produced from.  Spans are carried by every token, every
// syntax node, and every diagnostic so that later stages can point back into
// the source without retaining it.
type Span struct {
	// The byte offset of the first byte of the span.
	Start int

	// The byte offset one past the last byte of the span.
	End int
}

// SpanOver returns a new span which spans over and between the two given
// spans.
func SpanOver(start, end Span) Span {
	return Span{Start: start.Start, End: end.End}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
