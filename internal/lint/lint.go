// Package lint provides span-tagged diagnostics for todo.txt task lines.
package lint

import (
	"cmp"
	"slices"

	"github.com/kpumuk/todo-weaver/internal/text"
)

// Severity classifies how actionable a diagnostic is.
type Severity string

// Severity values emitted by lint rules.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a single lint finding with its span inside the task line.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Message  string
	Span     text.Span
}

// Rule is a lint check that can emit diagnostics for one task line.
type Rule interface {
	ID() string
	Description() string
	Run(task string) []Diagnostic
}

// Runner executes lint rules and returns aggregated diagnostics.
type Runner struct {
	rules []Rule
}

// NewRunner builds a lint runner from a rule set.
func NewRunner(rules ...Rule) *Runner {
	return &Runner{rules: slices.Clone(rules)}
}

// NewDefaultRunner builds the default lint rule set.
func NewDefaultRunner() *Runner {
	return NewRunner(
		DateValueRule{},
		DuplicateKeyRule{},
		MisplacedPriorityRule{},
		TrailingWhitespaceRule{},
	)
}

// Run executes all configured rules against one task line and returns a
// sorted diagnostic list.
func (r *Runner) Run(task string) []Diagnostic {
	if r == nil || len(r.rules) == 0 {
		return []Diagnostic{}
	}

	out := make([]Diagnostic, 0, 4)
	for _, rule := range r.rules {
		diags := rule.Run(task)
		for i := range diags {
			if diags[i].Rule == "" {
				diags[i].Rule = rule.ID()
			}
		}
		out = append(out, diags...)
	}

	slices.SortFunc(out, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.Span.Start, b.Span.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Span.End, b.Span.End); c != 0 {
			return c
		}
		return cmp.Compare(a.Rule, b.Rule)
	})

	return out
}
