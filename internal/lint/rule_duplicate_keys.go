package lint

import (
	"fmt"

	"github.com/kpumuk/todo-weaver/internal/text"
	"github.com/kpumuk/todo-weaver/todotxt"
)

// DuplicateKeyRule reports key:value keys appearing more than once in a
// task; only the first occurrence is addressable by key-based edits.
type DuplicateKeyRule struct{}

// ID implements Rule.
func (DuplicateKeyRule) ID() string { return "duplicate-key" }

// Description implements Rule.
func (DuplicateKeyRule) Description() string {
	return "a key:value key should appear at most once per task"
}

// Run implements Rule.
func (DuplicateKeyRule) Run(task string) []Diagnostic {
	seen := map[string]bool{}
	var out []Diagnostic
	for _, kv := range todotxt.KeyValues(task, todotxt.KeyValueOptions{AllowEmptyValue: true}) {
		if !seen[kv.Key] {
			seen[kv.Key] = true
			continue
		}
		out = append(out, Diagnostic{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("duplicate key %q", kv.Key),
			Span:     text.Span{Start: text.ByteOffset(kv.Start), End: text.ByteOffset(kv.End)},
		})
	}
	return out
}
