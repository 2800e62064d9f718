package todotxt

import (
	"strings"
	"time"
)

// DateLayout is the todo.txt date format.
const DateLayout = "2006-01-02"

// CompleteOptions controls MarkCompleted.
type CompleteOptions struct {
	// Date is the completion date. The zero value means "today"
	// according to Now.
	Date time.Time
	// OmitDate writes a bare "x " prefix without a completion date.
	OmitDate bool
	// Now supplies the current time when Date is zero. Nil means
	// time.Now; inject a fixed clock for deterministic output.
	Now func() time.Time
}

// MarkCompleted prefixes the task with "x <date> ". Already-completed
// tasks are returned unchanged.
func MarkCompleted(task string, opts CompleteOptions) string {
	if IsCompleted(task) {
		return task
	}
	if opts.OmitDate {
		return "x " + task
	}
	date := opts.Date
	if date.IsZero() {
		now := opts.Now
		if now == nil {
			now = time.Now
		}
		date = now()
	}
	return "x " + date.Format(DateLayout) + " " + task
}

// MarkIncomplete strips a leading "x" marker and its optional completion
// date. Tasks that are not completed are returned unchanged.
func MarkIncomplete(task string) string {
	if !IsCompleted(task) {
		return task
	}
	i := skipSpace(task, 0) + 1 // past "x"
	i = skipSpace(task, i)
	if isDateAt(task, i) && boundaryAt(task, i+dateLen) {
		i = skipSpace(task, i+dateLen)
	}
	return task[i:]
}

// SetPriority sets the task's "(X) " prefix to letter, replacing any
// existing one. An empty letter removes the priority. The letter must be
// a single uppercase A-Z character.
func SetPriority(task string, letter string) string {
	rest := task
	if p, ok := Priority(task); ok {
		rest = strings.TrimLeft(task[p.End:], " \t")
	}
	if letter == "" {
		return rest
	}
	return "(" + letter + ") " + rest
}

// AddContext appends " @name" unless the exact context is already
// present.
func AddContext(task, name string) string {
	return addTag(task, Contexts(task), "@", name)
}

// AddProject appends " +name" unless the exact project is already
// present.
func AddProject(task, name string) string {
	return addTag(task, Projects(task), "+", name)
}

func addTag(task string, existing []Span, marker, name string) string {
	for _, s := range existing {
		if s.Value == name {
			return task
		}
	}
	trimmed := strings.TrimRight(task, " \t")
	if trimmed == "" {
		return marker + name
	}
	return trimmed + " " + marker + name
}

// RemoveContext removes the context named name; absence is a no-op.
func RemoveContext(task, name string) string {
	return removeTag(task, Contexts(task), name)
}

// RemoveProject removes the project named name; absence is a no-op.
func RemoveProject(task, name string) string {
	return removeTag(task, Projects(task), name)
}

func removeTag(task string, spans []Span, name string) string {
	for _, s := range spans {
		if s.Value == name {
			out, err := RemoveSpan(task, s)
			if err != nil {
				return task
			}
			return out
		}
	}
	return task
}

// SetKeyValue sets key to value: an existing key:value token is replaced
// in place, preserving its position; otherwise " key:value" is appended.
func SetKeyValue(task, key, value string) string {
	for _, kv := range KeyValues(task, KeyValueOptions{}) {
		if kv.Key != key {
			continue
		}
		out, err := ReplaceSpan(task, kv.Span, value)
		if err != nil {
			return task
		}
		return out
	}
	trimmed := strings.TrimRight(task, " \t")
	if trimmed == "" {
		return key + ":" + value
	}
	return trimmed + " " + key + ":" + value
}

// RemoveKey removes the key:value token matching key; absence is a
// no-op.
func RemoveKey(task, key string) string {
	for _, kv := range KeyValues(task, KeyValueOptions{AllowEmptyValue: true}) {
		if kv.Key != key {
			continue
		}
		out, err := RemoveSpan(task, kv.Span)
		if err != nil {
			return task
		}
		return out
	}
	return task
}
