package lint

import "github.com/kpumuk/todo-weaver/internal/text"

// TrailingWhitespaceRule reports whitespace at the end of a task line.
type TrailingWhitespaceRule struct{}

// ID implements Rule.
func (TrailingWhitespaceRule) ID() string { return "trailing-whitespace" }

// Description implements Rule.
func (TrailingWhitespaceRule) Description() string {
	return "task lines should not end with whitespace"
}

// Run implements Rule.
func (TrailingWhitespaceRule) Run(task string) []Diagnostic {
	end := len(task)
	start := end
	for start > 0 && (task[start-1] == ' ' || task[start-1] == '\t') {
		start--
	}
	if start == end || start == 0 {
		// Blank lines are legal separators, not lint targets.
		return nil
	}
	return []Diagnostic{{
		Severity: SeverityWarning,
		Message:  "trailing whitespace",
		Span:     text.Span{Start: text.ByteOffset(start), End: text.ByteOffset(end)},
	}}
}
