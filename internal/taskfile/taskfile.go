// Package taskfile reads and writes plain-text todo.txt task files.
package taskfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kpumuk/todo-weaver/todotxt"
)

// List holds the lines of one task file in file order. Line numbers used
// by callers are 1-based.
type List struct {
	Tasks []string
}

// Load reads a task file. A missing file yields an empty list, so first
// use needs no setup step.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &List{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = nil
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &List{Tasks: lines}, nil
}

// Save writes the list back with one task per line and a trailing
// newline.
func (l *List) Save(path string) error {
	var out strings.Builder
	for _, line := range l.Tasks {
		out.WriteString(line)
		out.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(out.String()), 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// Add appends a task line.
func (l *List) Add(line string) {
	l.Tasks = append(l.Tasks, line)
}

// Line returns the 1-based task line n.
func (l *List) Line(n int) (string, bool) {
	if n < 1 || n > len(l.Tasks) {
		return "", false
	}
	return l.Tasks[n-1], true
}

// SetLine replaces the 1-based task line n.
func (l *List) SetLine(n int, line string) bool {
	if n < 1 || n > len(l.Tasks) {
		return false
	}
	l.Tasks[n-1] = line
	return true
}

// Remove deletes the 1-based task line n.
func (l *List) Remove(n int) bool {
	if n < 1 || n > len(l.Tasks) {
		return false
	}
	l.Tasks = append(l.Tasks[:n-1], l.Tasks[n:]...)
	return true
}

// Archive moves every completed task into done, preserving order, and
// returns how many tasks moved. Blank lines are kept in place.
func (l *List) Archive(done *List) int {
	kept := l.Tasks[:0]
	moved := 0
	for _, line := range l.Tasks {
		if todotxt.IsCompleted(line) {
			done.Tasks = append(done.Tasks, line)
			moved++
			continue
		}
		kept = append(kept, line)
	}
	l.Tasks = kept
	return moved
}
