package todotxt

import (
	"slices"
	"testing"
)

func TestContextsSpans(t *testing.T) {
	t.Parallel()

	task := "Call Bob @home @phone"
	got := Contexts(task)
	want := []Span{
		{Value: "home", Raw: " @home", Start: 8, End: 14},
		{Value: "phone", Raw: " @phone", Start: 14, End: 21},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Contexts() = %+v, want %+v", got, want)
	}
	if !slices.Equal(Values(got), []string{"home", "phone"}) {
		t.Fatalf("Values() = %v", Values(got))
	}
}

func TestContextsEdgeCases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		task string
		want []string
	}{
		{"at start", "@phone call Bob", []string{"phone"}},
		{"bare marker ignored", "weigh @ the office", nil},
		{"embedded at ignored", "mail bob@example.com", nil},
		{"no contexts", "Buy soil", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Values(Contexts(tc.task)); !slices.Equal(got, tc.want) {
				t.Fatalf("Contexts(%q) values = %v, want %v", tc.task, got, tc.want)
			}
		})
	}
}

func TestProjectsSpans(t *testing.T) {
	t.Parallel()

	task := "+garden Buy soil +chores"
	got := Projects(task)
	want := []Span{
		{Value: "garden", Raw: "+garden", Start: 0, End: 7},
		{Value: "chores", Raw: " +chores", Start: 16, End: 24},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Projects() = %+v, want %+v", got, want)
	}
}

func TestKeyValues(t *testing.T) {
	t.Parallel()

	got := KeyValues("Buy soil due:2025-10-01", KeyValueOptions{})
	if len(got) != 1 {
		t.Fatalf("KeyValues() = %+v, want one span", got)
	}
	kv := got[0]
	if kv.Key != "due" || kv.Value != "2025-10-01" {
		t.Fatalf("KeyValues() = %+v, want due=2025-10-01", kv)
	}
	if kv.Raw != " due:2025-10-01" || kv.Start != 8 || kv.End != 23 {
		t.Fatalf("KeyValues() span = %+v", kv.Span)
	}
}

func TestKeyValuesEmptyValue(t *testing.T) {
	t.Parallel()

	task := "Buy soil due:"
	if got := KeyValues(task, KeyValueOptions{}); len(got) != 0 {
		t.Fatalf("bare key must not match by default, got %+v", got)
	}

	got := KeyValues(task, KeyValueOptions{AllowEmptyValue: true})
	if len(got) != 1 || got[0].Key != "due" || got[0].Value != "" {
		t.Fatalf("KeyValues(AllowEmptyValue) = %+v", got)
	}
	if got[0].Raw != " due:" {
		t.Fatalf("Raw = %q, want %q", got[0].Raw, " due:")
	}

	// Only a trailing bare key may carry an empty value.
	if got := KeyValues("due: later", KeyValueOptions{AllowEmptyValue: true}); len(got) != 0 {
		t.Fatalf("mid-line bare key must not match, got %+v", got)
	}
}

func TestKeyValuesKeyShape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		task string
		want int
	}{
		{"digit in key", "Buy a2b:xyz soil", 0},
		{"missing key", "Buy :value soil", 0},
		{"colon in value", "visit href:http://x", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := KeyValues(tc.task, KeyValueOptions{}); len(got) != tc.want {
				t.Fatalf("KeyValues(%q) = %+v, want %d spans", tc.task, got, tc.want)
			}
		})
	}
}

func TestPriority(t *testing.T) {
	t.Parallel()

	s, ok := Priority("(A) Buy soil")
	if !ok {
		t.Fatal("expected a priority span")
	}
	want := Span{Value: "A", Raw: "(A) ", Start: 0, End: 4}
	if s != want {
		t.Fatalf("Priority() = %+v, want %+v", s, want)
	}

	for _, task := range []string{"Buy soil", "(a) Buy soil", "(A)Buy soil", "Buy (A) soil", "(A)"} {
		if _, ok := Priority(task); ok {
			t.Fatalf("Priority(%q) matched, want no span", task)
		}
	}
}

func TestIsCompleted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		task string
		want bool
	}{
		{"x Buy soil", true},
		{"x 2025-09-25 Buy soil", true},
		{"  x Buy soil", true},
		{"xylophone lessons", false},
		{"Buy soil x", false},
		{"", false},
		{"x", false},
	}

	for _, tc := range cases {
		if got := IsCompleted(tc.task); got != tc.want {
			t.Fatalf("IsCompleted(%q) = %v, want %v", tc.task, got, tc.want)
		}
	}
}

func TestCompletionDate(t *testing.T) {
	t.Parallel()

	s, ok := CompletionDate("x 2025-09-25 Buy soil")
	if !ok {
		t.Fatal("expected a completion date span")
	}
	want := Span{Value: "2025-09-25", Raw: "x 2025-09-25", Start: 0, End: 12}
	if s != want {
		t.Fatalf("CompletionDate() = %+v, want %+v", s, want)
	}

	for _, task := range []string{"x Buy soil", "Buy soil 2025-09-25", "x 2025-09-25x soil"} {
		if _, ok := CompletionDate(task); ok {
			t.Fatalf("CompletionDate(%q) matched, want no span", task)
		}
	}
}

func TestCreationDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		task string
		want Span
		ok   bool
	}{
		{
			"incomplete at start",
			"2025-09-20 Buy soil",
			Span{Value: "2025-09-20", Raw: "2025-09-20", Start: 0, End: 10},
			true,
		},
		{
			"after priority",
			"(A) 2025-09-20 Buy soil",
			Span{Value: "2025-09-20", Raw: " 2025-09-20", Start: 3, End: 14},
			true,
		},
		{
			"after completion prefix",
			"x 2025-09-25 2025-09-20 Buy soil",
			Span{Value: "2025-09-20", Raw: " 2025-09-20", Start: 12, End: 23},
			true,
		},
		{
			// The single date on a completed task is the completion
			// date, not the creation date.
			"single date on completed task",
			"x 2025-09-20 Buy soil",
			Span{},
			false,
		},
		{"no date", "Buy soil", Span{}, false},
		{"date mid-line", "Buy soil by 2025-09-20 ok", Span{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := CreationDate(tc.task)
			if ok != tc.ok {
				t.Fatalf("CreationDate(%q) ok = %v, want %v", tc.task, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("CreationDate(%q) = %+v, want %+v", tc.task, got, tc.want)
			}
		})
	}
}

// Offset correctness: task[Start:End] == Raw for every extractor.
func TestSpanOffsetsMatchSource(t *testing.T) {
	t.Parallel()

	task := "x 2025-09-25 2025-09-20 Call Bob @home @phone +errands due:2025-10-01 t:2025-09-30"

	var spans []Span
	spans = append(spans, Contexts(task)...)
	spans = append(spans, Projects(task)...)
	for _, kv := range KeyValues(task, KeyValueOptions{}) {
		spans = append(spans, kv.Span)
	}
	if s, ok := CompletionDate(task); ok {
		spans = append(spans, s)
	}
	if s, ok := CreationDate(task); ok {
		spans = append(spans, s)
	}
	if len(spans) < 6 {
		t.Fatalf("expected at least 6 spans, got %d: %+v", len(spans), spans)
	}

	for _, s := range spans {
		if s.End-s.Start != len(s.Raw) {
			t.Errorf("span %+v: End-Start = %d, want len(Raw) = %d", s, s.End-s.Start, len(s.Raw))
		}
		if task[s.Start:s.End] != s.Raw {
			t.Errorf("span %+v: task[%d:%d] = %q, want %q", s, s.Start, s.End, task[s.Start:s.End], s.Raw)
		}
	}
}
