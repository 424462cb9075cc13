package sdt

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input tokens. For every
// non-terminal instance the translator tracks which token positions it
// covers. A span denotes a start position and the position just behind
// the end.
type Span [2]uint64 // (x…y)

// SpanAt returns a span starting and ending at position pos, i.e. an empty
// span anchored at pos.
func SpanAt(pos int) Span {
	return Span{uint64(pos), uint64(pos)}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Close sets the end of a span to pos. It will never shrink the span below
// its start.
func (s Span) Close(pos int) Span {
	if uint64(pos) < s[0] {
		s[1] = s[0]
		return s
	}
	s[1] = uint64(pos)
	return s
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
