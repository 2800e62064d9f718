package todotxt

// Field extraction scans a task line left to right over whitespace-
// separated tokens, producing non-overlapping spans in source order.

// KeyValueOptions controls key:value extraction.
type KeyValueOptions struct {
	// AllowEmptyValue admits a trailing bare "key:" token with an empty
	// value. By default the value half must be non-empty.
	AllowEmptyValue bool
}

// Contexts returns spans for every @context token in the task.
func Contexts(task string) []Span {
	return markerSpans(task, '@')
}

// Projects returns spans for every +project token in the task.
func Projects(task string) []Span {
	return markerSpans(task, '+')
}

func markerSpans(task string, marker byte) []Span {
	var out []Span
	scanTokens(task, func(start, end int) {
		if end-start < 2 || task[start] != marker {
			return
		}
		out = append(out, makeSpan(task, start, end, task[start+1:end]))
	})
	return out
}

// KeyValues returns spans for every key:value token in the task. The key
// is one or more ASCII letters; the value is the token remainder after
// the first colon.
func KeyValues(task string, opts KeyValueOptions) []KeyValue {
	var out []KeyValue
	scanTokens(task, func(start, end int) {
		colon := start
		for colon < end && isLetter(task[colon]) {
			colon++
		}
		if colon == start || colon >= end || task[colon] != ':' {
			return
		}
		value := task[colon+1 : end]
		if value == "" && !(opts.AllowEmptyValue && end == len(task)) {
			return
		}
		out = append(out, KeyValue{
			Span: makeSpan(task, start, end, value),
			Key:  task[start:colon],
		})
	})
	return out
}

// Priority returns the span of a "(X) " priority marker at the start of
// the task. Raw includes the trailing space; Value is the letter.
func Priority(task string) (Span, bool) {
	if len(task) < 4 || task[0] != '(' || !isUpper(task[1]) || task[2] != ')' || task[3] != ' ' {
		return Span{}, false
	}
	return Span{Value: task[1:2], Raw: task[:4], Start: 0, End: 4}, true
}

// IsCompleted reports whether the task, after optional leading
// whitespace, begins with "x" followed by whitespace.
func IsCompleted(task string) bool {
	i := skipSpace(task, 0)
	return i+1 < len(task) && task[i] == 'x' && isSpace(task[i+1])
}

// CompletionDate returns the span of the "x YYYY-MM-DD" completion
// prefix. Raw covers the marker and the date; Value is the date alone.
func CompletionDate(task string) (Span, bool) {
	i := skipSpace(task, 0)
	if !IsCompleted(task) {
		return Span{}, false
	}
	j := i + 2 // past "x "
	if !isDateAt(task, j) || !boundaryAt(task, j+dateLen) {
		return Span{}, false
	}
	return makeSpan(task, i, j+dateLen, task[j:j+dateLen]), true
}

// CreationDate returns the span of the creation date: the first
// YYYY-MM-DD token after the completion prefix (or after an optional
// priority marker when the task is incomplete).
func CreationDate(task string) (Span, bool) {
	var i int
	switch {
	case IsCompleted(task):
		if cd, ok := CompletionDate(task); ok {
			i = skipSpace(task, cd.End)
		} else {
			i = skipSpace(task, skipSpace(task, 0)+1)
		}
	default:
		if p, ok := Priority(task); ok {
			i = p.End
		} else {
			i = skipSpace(task, 0)
		}
	}
	if !isDateAt(task, i) || !boundaryAt(task, i+dateLen) {
		return Span{}, false
	}
	return makeSpan(task, i, i+dateLen, task[i:i+dateLen]), true
}

const dateLen = len("2006-01-02")

// makeSpan builds a span for task[start:end], widening Raw by one byte
// to absorb a single separating whitespace character before the token.
func makeSpan(task string, start, end int, value string) Span {
	rawStart := start
	if rawStart > 0 && isSpace(task[rawStart-1]) {
		rawStart--
	}
	return Span{
		Value: value,
		Raw:   task[rawStart:end],
		Start: rawStart,
		End:   end,
	}
}

// scanTokens calls fn for every maximal run of non-whitespace bytes.
func scanTokens(task string, fn func(start, end int)) {
	i := 0
	for i < len(task) {
		if isSpace(task[i]) {
			i++
			continue
		}
		start := i
		for i < len(task) && !isSpace(task[i]) {
			i++
		}
		fn(start, i)
	}
}

func skipSpace(task string, i int) int {
	for i < len(task) && isSpace(task[i]) {
		i++
	}
	return i
}

// isDateAt reports whether a YYYY-MM-DD token starts at offset i. The
// check is purely syntactic; calendar validity is out of scope.
func isDateAt(task string, i int) bool {
	if i < 0 || i+dateLen > len(task) {
		return false
	}
	for k, b := range []byte(task[i : i+dateLen]) {
		if k == 4 || k == 7 {
			if b != '-' {
				return false
			}
			continue
		}
		if !isDigit(b) {
			return false
		}
	}
	return true
}

// boundaryAt reports whether offset i ends the task or sits on
// whitespace, so a date token is not a prefix of a longer run.
func boundaryAt(task string, i int) bool {
	return i >= len(task) || isSpace(task[i])
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isUpper(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
