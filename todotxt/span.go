// Package todotxt locates semantically meaningful spans inside a single
// todo.txt task line and performs offset-safe edits on them.
//
// A task line is plain text with optional leading completion marker,
// priority marker, dates, and inline @context, +project, and key:value
// tokens. Extractors report each field as a Span carrying the logical
// value, the exact raw substring, and its byte offsets. Edit operations
// take a task string plus spans and return a new string; nothing is ever
// mutated in place.
//
// A Span is a snapshot tied to the exact string it was extracted from.
// Applying it against a different or already-edited string is a caller
// error: offsets are bounds-checked at edit time, but semantic staleness
// cannot be detected.
package todotxt

// Span is a position-tagged descriptor of one matched field.
//
// Raw is the exact substring task[Start:End], including the field's
// marker and at most one leading whitespace byte, so that removing the
// span also removes the separator before it. Value is the logical
// content with the marker decoration stripped.
type Span struct {
	Value string
	Raw   string
	Start int // inclusive byte offset of Raw
	End   int // exclusive byte offset of Raw
}

// KeyValue is a Span for a key:value token. Value holds the value half
// only; Key holds the key half. Raw covers the whole token including the
// "key:" prefix.
type KeyValue struct {
	Span
	Key string
}

// Values returns the logical values of spans, in order.
func Values(spans []Span) []string {
	if len(spans) == 0 {
		return nil
	}
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Value
	}
	return out
}
