// Package text defines byte offsets, half-open spans, and offset-safe
// multi-edit application over single-line task text.
package text

import (
	"errors"
	"fmt"
)

// Error categories wrapped by span validation and edit application.
var (
	// ErrInvalidSpan indicates a span with negative or inverted bounds.
	ErrInvalidSpan = errors.New("invalid span")
	// ErrOutOfBounds indicates an edit span beyond the source length.
	ErrOutOfBounds = errors.New("edit out of bounds")
	// ErrOverlap indicates two edits covering a common byte.
	ErrOverlap = errors.New("overlapping edits")
)

// ByteOffset is a byte index into a UTF-8 source string.
type ByteOffset int

// IsValid reports whether the offset is non-negative.
func (o ByteOffset) IsValid() bool {
	return o >= 0
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start ByteOffset // inclusive
	End   ByteOffset // exclusive
}

// NewSpan constructs a validated span.
func NewSpan(start, end ByteOffset) (Span, error) {
	s := Span{Start: start, End: end}
	if err := s.Validate(); err != nil {
		return Span{}, err
	}
	return s, nil
}

// Validate reports an error if the span is invalid.
func (s Span) Validate() error {
	if !s.Start.IsValid() {
		return fmt.Errorf("%w: start %d", ErrInvalidSpan, s.Start)
	}
	if !s.End.IsValid() {
		return fmt.Errorf("%w: end %d", ErrInvalidSpan, s.End)
	}
	if s.End < s.Start {
		return fmt.Errorf("%w: end (%d) < start (%d)", ErrInvalidSpan, s.End, s.Start)
	}
	return nil
}

// IsValid reports whether the span bounds are well-formed.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.End >= s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the number of bytes covered by the span.
// For invalid spans, the result is undefined.
func (s Span) Len() ByteOffset {
	return s.End - s.Start
}

// Slice returns the substring of src covered by the span.
// The span must be valid and within bounds.
func (s Span) Slice(src string) string {
	return src[s.Start:s.End]
}

// Contains reports whether off is within the half-open span [Start, End).
func (s Span) Contains(off ByteOffset) bool {
	if !s.IsValid() || !off.IsValid() {
		return false
	}
	return s.Start <= off && off < s.End
}

// Intersects reports whether two spans overlap by at least one byte.
// Spans that only touch at a boundary do not intersect.
func (s Span) Intersects(other Span) bool {
	if !s.IsValid() || !other.IsValid() {
		return false
	}
	return s.Start < other.End && other.Start < s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
