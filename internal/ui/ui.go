// Package ui provides the interactive bubbletea list over a todo.txt file.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kpumuk/todo-weaver/internal/config"
	"github.com/kpumuk/todo-weaver/internal/taskfile"
	"github.com/kpumuk/todo-weaver/todotxt"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	priorityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model over one todo.txt file.
type Model struct {
	list     *taskfile.List
	cfg      config.Config
	todoPath string
	donePath string
	cursor   int
	mode     mode
	input    textinput.Model
	status   string
}

// Run loads the task file and runs the interactive program until quit.
func Run(cfg config.Config) error {
	list, err := taskfile.Load(cfg.TodoFile)
	if err != nil {
		return err
	}

	ti := textinput.New()
	ti.Placeholder = "(A) Water plants @garden due:2025-10-01"
	ti.CharLimit = 256
	ti.Width = 60

	m := Model{
		list:     list,
		cfg:      cfg,
		todoPath: cfg.TodoFile,
		donePath: cfg.DoneFile,
		cursor:   clampCursor(0, len(list.Tasks)),
		input:    ti,
		status:   "Press 'a' to add, space to toggle, 'd' to delete.",
	}

	program := tea.NewProgram(m)
	_, err = program.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != modeList {
			return m.updateInputMode(msg.String(), msg)
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) updateInputMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			m.status = "Task cannot be empty"
			return m, nil
		}
		if m.mode == modeAdd {
			m.list.Add(line)
			m.cursor = clampCursor(len(m.list.Tasks)-1, len(m.list.Tasks))
			m.status = "Added task"
		} else {
			m.list.SetLine(m.cursor+1, line)
			m.status = "Updated task"
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		return m.saved()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case "down", m.cfg.Keys.Down:
		if len(m.list.Tasks) > 0 {
			m.cursor = clampCursor(m.cursor+1, len(m.list.Tasks))
		}
	case "up", m.cfg.Keys.Up:
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.list.Tasks))
		}
	case m.cfg.Keys.Add:
		m.mode = modeAdd
		m.input.Focus()
		m.status = "Add mode: type a task and press Enter"
	case m.cfg.Keys.Edit:
		if len(m.list.Tasks) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		m.mode = modeEdit
		m.input.SetValue(m.list.Tasks[m.cursor])
		m.input.Focus()
		m.status = "Edit mode: adjust the task and press Enter"
	case m.cfg.Keys.Toggle:
		return m.toggleCurrent()
	case m.cfg.Keys.Delete:
		if len(m.list.Tasks) == 0 {
			return m, nil
		}
		m.list.Remove(m.cursor + 1)
		m.cursor = clampCursor(m.cursor, len(m.list.Tasks))
		m.status = "Deleted task"
		return m.saved()
	case m.cfg.Keys.PriorityUp:
		return m.bumpPriority(-1)
	case m.cfg.Keys.PriorityDown:
		return m.bumpPriority(+1)
	case m.cfg.Keys.Archive:
		return m.archive()
	}
	return m, nil
}

func (m Model) toggleCurrent() (tea.Model, tea.Cmd) {
	if len(m.list.Tasks) == 0 {
		return m, nil
	}
	task := m.list.Tasks[m.cursor]
	if todotxt.IsCompleted(task) {
		task = todotxt.MarkIncomplete(task)
	} else {
		task = todotxt.MarkCompleted(task, todotxt.CompleteOptions{})
	}
	m.list.SetLine(m.cursor+1, task)
	m.status = "Toggled task"
	return m.saved()
}

// bumpPriority moves the task's priority letter by delta steps, A being
// the highest. A task without a priority starts at A going up and Z
// going down.
func (m Model) bumpPriority(delta int) (tea.Model, tea.Cmd) {
	if len(m.list.Tasks) == 0 {
		return m, nil
	}
	task := m.list.Tasks[m.cursor]

	letter := byte(0)
	if p, ok := todotxt.Priority(task); ok {
		letter = p.Value[0]
	}
	switch {
	case letter == 0 && delta < 0:
		letter = 'A'
	case letter == 0:
		letter = 'Z'
	default:
		next := int(letter) + delta
		if next < 'A' || next > 'Z' {
			return m, nil
		}
		letter = byte(next)
	}

	m.list.SetLine(m.cursor+1, todotxt.SetPriority(task, string(letter)))
	m.status = fmt.Sprintf("Priority (%c)", letter)
	return m.saved()
}

func (m Model) archive() (tea.Model, tea.Cmd) {
	done, err := taskfile.Load(m.donePath)
	if err != nil {
		m.status = fmt.Sprintf("archive failed: %v", err)
		return m, nil
	}
	moved := m.list.Archive(done)
	if moved == 0 {
		m.status = "Nothing to archive"
		return m, nil
	}
	if err := done.Save(m.donePath); err != nil {
		m.status = fmt.Sprintf("archive failed: %v", err)
		return m, nil
	}
	m.cursor = clampCursor(m.cursor, len(m.list.Tasks))
	m.status = fmt.Sprintf("Archived %d task(s)", moved)
	return m.saved()
}

// saved persists the list and reports failures through the status line.
func (m Model) saved() (tea.Model, tea.Cmd) {
	if err := m.list.Save(m.todoPath); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("todo-weaver"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.todoPath))
	b.WriteString("\n\n")

	if len(m.list.Tasks) == 0 {
		b.WriteString("No tasks yet. Press 'a' to add one.")
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	if m.mode != modeList {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(renderHelp(m.cfg.Keys))

	return b.String()
}

func (m Model) renderTaskList() string {
	var b strings.Builder
	for i, task := range m.list.Tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(renderTask(task))
		b.WriteString("\n")
	}
	return b.String()
}

func renderTask(task string) string {
	if todotxt.IsCompleted(task) {
		return doneStyle.Render(task)
	}
	if p, ok := todotxt.Priority(task); ok {
		return priorityStyle.Render(strings.TrimRight(p.Raw, " ")) + " " + task[p.End:]
	}
	return task
}

func renderHelp(keys config.Keymap) string {
	help := fmt.Sprintf(
		"%s add • %s edit • %s toggle • %s delete • %s/%s priority • %s archive • %s quit",
		keys.Add, keys.Edit, orSpaceName(keys.Toggle), keys.Delete,
		keys.PriorityUp, keys.PriorityDown, keys.Archive, keys.Quit,
	)
	return statusStyle.Render(help)
}

func orSpaceName(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
