package text

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Edit replaces the bytes in Span with NewText.
type Edit struct {
	Span    Span
	NewText string
}

// ValidateEdits validates edit spans against a source length and checks
// overlap. Touching spans are allowed.
func ValidateEdits(srcLen ByteOffset, edits []Edit) error {
	_, err := validatedSortedEdits(srcLen, edits)
	return err
}

// Apply applies non-overlapping edits to src and returns the updated string.
// Edits may be provided in any order; the batch is all-or-nothing, so a
// malformed edit leaves src untouched.
func Apply(src string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return src, nil
	}

	sorted, err := validatedSortedEdits(ByteOffset(len(src)), edits)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	cursor := ByteOffset(0)
	for _, e := range sorted {
		out.WriteString(src[cursor:e.Span.Start])
		out.WriteString(e.NewText)
		cursor = e.Span.End
	}
	out.WriteString(src[cursor:])
	return out.String(), nil
}

func validatedSortedEdits(srcLen ByteOffset, edits []Edit) ([]Edit, error) {
	if !srcLen.IsValid() {
		return nil, fmt.Errorf("invalid source length: %d", srcLen)
	}
	for _, e := range edits {
		if err := e.Span.Validate(); err != nil {
			return nil, fmt.Errorf("invalid edit span %s: %w", e.Span, err)
		}
		if e.Span.End > srcLen {
			return nil, fmt.Errorf("%w: edit span %s exceeds source length %d", ErrOutOfBounds, e.Span, srcLen)
		}
	}

	sorted := slices.Clone(edits)
	slices.SortFunc(sorted, compareEdits)

	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1]
		cur := sorted[i]
		if cur.Span.Start < prev.Span.End {
			return nil, fmt.Errorf("%w: %s and %s", ErrOverlap, prev.Span, cur.Span)
		}
	}
	return sorted, nil
}

func compareEdits(a, b Edit) int {
	if c := cmp.Compare(a.Span.Start, b.Span.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.Span.End, b.Span.End)
}
