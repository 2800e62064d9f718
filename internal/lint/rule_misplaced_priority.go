package lint

import (
	"fmt"

	"github.com/kpumuk/todo-weaver/internal/text"
	"github.com/kpumuk/todo-weaver/todotxt"
)

// MisplacedPriorityRule reports "(X)" markers that do not act as a
// priority because they sit mid-line, usually a priority lost to a
// prepended completion prefix.
type MisplacedPriorityRule struct{}

// ID implements Rule.
func (MisplacedPriorityRule) ID() string { return "misplaced-priority" }

// Description implements Rule.
func (MisplacedPriorityRule) Description() string {
	return "a (X) priority marker only counts at the start of an incomplete task"
}

// Run implements Rule.
func (MisplacedPriorityRule) Run(task string) []Diagnostic {
	var out []Diagnostic

	for start, end := range priorityTokens(task) {
		if start == 0 {
			continue
		}
		msg := "priority marker %q has no effect mid-line"
		if todotxt.IsCompleted(task) {
			msg = "priority marker %q is ignored after the completion prefix"
		}
		out = append(out, Diagnostic{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf(msg, task[start:end]),
			Span:     text.Span{Start: text.ByteOffset(start), End: text.ByteOffset(end)},
		})
	}

	return out
}

// priorityTokens yields the offsets of whitespace-delimited "(X)" tokens.
func priorityTokens(task string) func(yield func(int, int) bool) {
	return func(yield func(int, int) bool) {
		i := 0
		for i < len(task) {
			if task[i] == ' ' || task[i] == '\t' {
				i++
				continue
			}
			start := i
			for i < len(task) && task[i] != ' ' && task[i] != '\t' {
				i++
			}
			if i-start == 3 && task[start] == '(' && task[start+2] == ')' &&
				task[start+1] >= 'A' && task[start+1] <= 'Z' {
				if !yield(start, i) {
					return
				}
			}
		}
	}
}
