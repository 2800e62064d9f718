package todotxt

import "strings"

// FormatReplacement renders the text that replaces span.Raw when the
// span's logical value becomes newValue. The first occurrence of Value
// inside Raw is swapped for newValue, preserving whatever decoration the
// raw text carries (leading whitespace, @/+ marker, "key:" prefix), so
// callers never re-derive it.
//
// Degenerate spans degrade instead of failing: a span with no raw text
// yields newValue unchanged, and a span whose value cannot be located in
// its raw text keeps only the leading whitespace run of Raw.
func FormatReplacement(span Span, newValue string) string {
	if span.Raw == "" {
		return newValue
	}
	if span.Value != "" {
		if i := strings.Index(span.Raw, span.Value); i >= 0 {
			return span.Raw[:i] + newValue + span.Raw[i+len(span.Value):]
		}
	}
	return leadingSpace(span.Raw) + newValue
}

func leadingSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[:i]
}
