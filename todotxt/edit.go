package todotxt

import (
	"errors"
	"fmt"

	"github.com/kpumuk/todo-weaver/internal/text"
)

// Editor failure categories. Malformed input is a programming error and
// is surfaced immediately; silent offset corruption would hand the
// caller a mangled task line with no indication.
var (
	// ErrInvalidSpan reports a span with negative or inverted offsets
	// passed to a single-span edit.
	ErrInvalidSpan = text.ErrInvalidSpan
	// ErrInvalidEdit reports a batch entry carrying neither a usable
	// span nor usable literal offsets.
	ErrInvalidEdit = errors.New("invalid edit")
	// ErrOutOfBounds reports an edit whose offsets fall outside the
	// task string.
	ErrOutOfBounds = text.ErrOutOfBounds
	// ErrOverlappingEdits reports two edits in one batch covering a
	// common byte. Batches are rejected up front, so the task string is
	// never partially edited.
	ErrOverlappingEdits = text.ErrOverlap
)

// Edit is one entry in a ReplaceSpans batch: either a span edit, whose
// replacement text is derived through FormatReplacement, or a literal
// edit replacing an explicit byte range verbatim.
type Edit struct {
	kind        editKind
	span        Span
	newValue    string
	start, end  int
	replacement string
}

type editKind uint8

const (
	editSpan editKind = iota + 1
	editLiteral
)

// SpanEdit builds an edit replacing span's logical value with newValue.
func SpanEdit(span Span, newValue string) Edit {
	return Edit{kind: editSpan, span: span, newValue: newValue}
}

// LiteralEdit builds an edit replacing task[start:end] with replacement,
// bypassing FormatReplacement.
func LiteralEdit(start, end int, replacement string) Edit {
	return Edit{kind: editLiteral, start: start, end: end, replacement: replacement}
}

// RemoveEdit builds an edit deleting the span's raw text entirely.
func RemoveEdit(span Span) Edit {
	return LiteralEdit(span.Start, span.End, "")
}

// ReplaceSpan replaces span's logical value in task with newValue,
// routing the replacement text through FormatReplacement. It fails with
// ErrInvalidSpan when the span offsets are negative or inverted, and
// ErrOutOfBounds when they fall outside task.
func ReplaceSpan(task string, span Span, newValue string) (string, error) {
	if span.Start < 0 || span.End < span.Start {
		return "", fmt.Errorf("%w: %d..%d", ErrInvalidSpan, span.Start, span.End)
	}
	if span.End > len(task) {
		return "", fmt.Errorf("%w: span %d..%d, task length %d", ErrOutOfBounds, span.Start, span.End, len(task))
	}
	return task[:span.Start] + FormatReplacement(span, newValue) + task[span.End:], nil
}

// RemoveSpan deletes the span's raw text from task.
func RemoveSpan(task string, span Span) (string, error) {
	return ReplaceSpans(task, []Edit{RemoveEdit(span)})
}

// ReplaceSpans applies a batch of edits against one snapshot of task.
// Edits may arrive in any order; they are validated, sorted by offset,
// and applied in a single pass, so the result does not depend on input
// order. The batch is all-or-nothing: any malformed, out-of-bounds, or
// overlapping entry rejects the whole batch before any edit is applied.
func ReplaceSpans(task string, edits []Edit) (string, error) {
	normalized := make([]text.Edit, 0, len(edits))
	for i, e := range edits {
		ne, err := e.normalize()
		if err != nil {
			return "", fmt.Errorf("edit %d: %w", i, err)
		}
		normalized = append(normalized, ne)
	}
	return text.Apply(task, normalized)
}

// RemoveSpans deletes every span's raw text from task. The spans must
// come from the same extraction snapshot of task.
func RemoveSpans(task string, spans []Span) (string, error) {
	edits := make([]Edit, len(spans))
	for i, s := range spans {
		edits[i] = RemoveEdit(s)
	}
	return ReplaceSpans(task, edits)
}

func (e Edit) normalize() (text.Edit, error) {
	switch e.kind {
	case editSpan:
		if e.span.Start < 0 || e.span.End < e.span.Start {
			return text.Edit{}, fmt.Errorf("%w: span %d..%d", ErrInvalidEdit, e.span.Start, e.span.End)
		}
		return text.Edit{
			Span:    text.Span{Start: text.ByteOffset(e.span.Start), End: text.ByteOffset(e.span.End)},
			NewText: FormatReplacement(e.span, e.newValue),
		}, nil
	case editLiteral:
		if e.start < 0 || e.end < e.start {
			return text.Edit{}, fmt.Errorf("%w: range %d..%d", ErrInvalidEdit, e.start, e.end)
		}
		return text.Edit{
			Span:    text.Span{Start: text.ByteOffset(e.start), End: text.ByteOffset(e.end)},
			NewText: e.replacement,
		}, nil
	default:
		return text.Edit{}, ErrInvalidEdit
	}
}
