package lint

import (
	"strings"
	"testing"

	"github.com/kpumuk/todo-weaver/internal/text"
)

func TestRunnerCleanTask(t *testing.T) {
	t.Parallel()

	got := NewDefaultRunner().Run("(A) 2025-09-20 Buy soil +garden @store due:2025-10-01")
	if len(got) != 0 {
		t.Fatalf("Run() = %+v, want no diagnostics", got)
	}
}

func TestDateValueRule(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		task string
		want int
	}{
		{"valid date", "Buy soil due:2025-10-01", 0},
		{"syntactically off", "Buy soil due:tomorrow", 1},
		{"not a calendar date", "Buy soil due:2025-13-40", 1},
		{"bare key", "Buy soil due:", 1},
		{"threshold key", "Buy soil t:2025-99-01", 1},
		{"unrelated key", "Buy soil rec:weekly", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := DateValueRule{}.Run(tc.task)
			if len(got) != tc.want {
				t.Fatalf("Run(%q) = %+v, want %d diagnostics", tc.task, got, tc.want)
			}
			for _, d := range got {
				if d.Severity != SeverityError {
					t.Fatalf("severity = %q, want %q", d.Severity, SeverityError)
				}
			}
		})
	}
}

func TestDuplicateKeyRule(t *testing.T) {
	t.Parallel()

	got := DuplicateKeyRule{}.Run("Buy soil due:2025-10-01 due:2025-10-02")
	if len(got) != 1 {
		t.Fatalf("Run() = %+v, want one diagnostic", got)
	}
	if !strings.Contains(got[0].Message, `"due"`) {
		t.Fatalf("message = %q, want mention of the duplicate key", got[0].Message)
	}
	// The diagnostic points at the second occurrence.
	if got[0].Span.Start != 23 {
		t.Fatalf("span = %s, want start 23", got[0].Span)
	}
}

func TestMisplacedPriorityRule(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		task string
		want int
	}{
		{"leading priority ok", "(A) Buy soil", 0},
		{"mid-line marker", "Buy (B) soil", 1},
		{"after completion prefix", "x 2025-09-25 (A) Buy soil", 1},
		{"parenthetical word ignored", "Buy (big) soil", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := MisplacedPriorityRule{}.Run(tc.task)
			if len(got) != tc.want {
				t.Fatalf("Run(%q) = %+v, want %d diagnostics", tc.task, got, tc.want)
			}
		})
	}
}

func TestTrailingWhitespaceRule(t *testing.T) {
	t.Parallel()

	got := TrailingWhitespaceRule{}.Run("Buy soil  ")
	if len(got) != 1 {
		t.Fatalf("Run() = %+v, want one diagnostic", got)
	}
	if want := (text.Span{Start: 8, End: 10}); got[0].Span != want {
		t.Fatalf("span = %s, want %s", got[0].Span, want)
	}

	if got := (TrailingWhitespaceRule{}).Run("   "); len(got) != 0 {
		t.Fatalf("blank line flagged: %+v", got)
	}
}

func TestRunnerSortsAndFillsRuleIDs(t *testing.T) {
	t.Parallel()

	got := NewDefaultRunner().Run("x 2025-09-25 (A) Buy soil due:soon ")
	if len(got) != 3 {
		t.Fatalf("Run() = %+v, want 3 diagnostics", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Span.Start < got[i-1].Span.Start {
			t.Fatalf("diagnostics not sorted by span: %+v", got)
		}
	}
	for _, d := range got {
		if d.Rule == "" {
			t.Fatalf("diagnostic missing rule ID: %+v", d)
		}
	}
}
