package lint

import (
	"fmt"
	"time"

	"github.com/kpumuk/todo-weaver/internal/text"
	"github.com/kpumuk/todo-weaver/todotxt"
)

// dateKeys are key:value keys whose values carry todo.txt dates.
var dateKeys = map[string]bool{
	"due": true,
	"t":   true,
}

// DateValueRule reports date-bearing keys whose value is not a valid
// YYYY-MM-DD calendar date.
type DateValueRule struct{}

// ID implements Rule.
func (DateValueRule) ID() string { return "date-value" }

// Description implements Rule.
func (DateValueRule) Description() string {
	return "due: and t: values must be valid YYYY-MM-DD dates"
}

// Run implements Rule.
func (DateValueRule) Run(task string) []Diagnostic {
	var out []Diagnostic
	for _, kv := range todotxt.KeyValues(task, todotxt.KeyValueOptions{AllowEmptyValue: true}) {
		if !dateKeys[kv.Key] {
			continue
		}
		if _, err := time.Parse(todotxt.DateLayout, kv.Value); err == nil {
			continue
		}
		out = append(out, Diagnostic{
			Severity: SeverityError,
			Message:  fmt.Sprintf("%s: value %q is not a YYYY-MM-DD date", kv.Key, kv.Value),
			Span:     text.Span{Start: text.ByteOffset(kv.Start), End: text.ByteOffset(kv.End)},
		})
	}
	return out
}
