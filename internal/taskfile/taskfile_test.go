package taskfile

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	l, err := Load(filepath.Join(t.TempDir(), "todo.txt"))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if len(l.Tasks) != 0 {
		t.Fatalf("Load() = %+v, want empty list", l.Tasks)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todo.txt")
	content := "(A) Buy soil +garden\n\nx 2025-09-25 Call Bob @phone\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	want := []string{"(A) Buy soil +garden", "", "x 2025-09-25 Call Bob @phone"}
	if !slices.Equal(l.Tasks, want) {
		t.Fatalf("Load() = %+v, want %+v", l.Tasks, want)
	}

	if err := l.Save(path); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Fatalf("Save() wrote %q, want %q", data, content)
	}
}

func TestLoadStripsCarriageReturns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todo.txt")
	if err := os.WriteFile(path, []byte("Buy soil\r\nCall Bob\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if !slices.Equal(l.Tasks, []string{"Buy soil", "Call Bob"}) {
		t.Fatalf("Load() = %+v", l.Tasks)
	}
}

func TestLineAccessors(t *testing.T) {
	t.Parallel()

	l := &List{Tasks: []string{"a", "b", "c"}}

	if got, ok := l.Line(2); !ok || got != "b" {
		t.Fatalf("Line(2) = %q, %v", got, ok)
	}
	if _, ok := l.Line(0); ok {
		t.Fatal("Line(0) must be out of range")
	}
	if _, ok := l.Line(4); ok {
		t.Fatal("Line(4) must be out of range")
	}

	if !l.SetLine(3, "z") {
		t.Fatal("SetLine(3) failed")
	}
	if !l.Remove(1) {
		t.Fatal("Remove(1) failed")
	}
	if !slices.Equal(l.Tasks, []string{"b", "z"}) {
		t.Fatalf("Tasks = %+v", l.Tasks)
	}
}

func TestArchive(t *testing.T) {
	t.Parallel()

	l := &List{Tasks: []string{
		"x 2025-09-25 Call Bob",
		"Buy soil",
		"",
		"x Water plants",
	}}
	done := &List{Tasks: []string{"x 2025-09-01 Old task"}}

	moved := l.Archive(done)
	if moved != 2 {
		t.Fatalf("Archive() = %d, want 2", moved)
	}
	if !slices.Equal(l.Tasks, []string{"Buy soil", ""}) {
		t.Fatalf("remaining = %+v", l.Tasks)
	}
	wantDone := []string{"x 2025-09-01 Old task", "x 2025-09-25 Call Bob", "x Water plants"}
	if !slices.Equal(done.Tasks, wantDone) {
		t.Fatalf("done = %+v, want %+v", done.Tasks, wantDone)
	}
}
