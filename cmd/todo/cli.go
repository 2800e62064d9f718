package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kpumuk/todo-weaver/internal/config"
	"github.com/kpumuk/todo-weaver/internal/taskfile"
	"github.com/kpumuk/todo-weaver/todotxt"
)

const (
	exitOK       = 0
	exitUser     = 1
	exitInternal = 3
)

type cliOptions struct {
	configPath string
	todoFile   string
	doneFile   string
	date       string
	noDate     bool
	verbose    bool
	command    string
	args       []string
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	opts, usage, err := parseArgs(args)
	if err != nil {
		writef(stderr, "todo: %v\n\n%s", err, usage)
		return exitInternal
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "todo"})
	if !opts.verbose {
		logger.SetLevel(log.WarnLevel)
	}

	if err := resolveFiles(&opts); err != nil {
		writef(stderr, "todo: %v\n", err)
		return exitInternal
	}

	list, err := taskfile.Load(opts.todoFile)
	if err != nil {
		writef(stderr, "todo: %v\n", err)
		return exitInternal
	}

	app := &app{
		opts:   opts,
		list:   list,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
	return app.dispatch()
}

// resolveFiles fills file paths from the TOML config when flags left
// them empty.
func resolveFiles(opts *cliOptions) error {
	if opts.todoFile != "" && opts.doneFile != "" {
		return nil
	}
	path := opts.configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if opts.todoFile == "" {
		opts.todoFile = cfg.TodoFile
	}
	if opts.doneFile == "" {
		opts.doneFile = cfg.DoneFile
	}
	return nil
}

type app struct {
	opts   cliOptions
	list   *taskfile.List
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

func (a *app) dispatch() int {
	switch a.opts.command {
	case "list":
		return a.cmdList()
	case "add":
		return a.cmdAdd()
	case "do":
		return a.cmdDo()
	case "undo":
		return a.mutateLine(1, func(task string, _ []string) string {
			return todotxt.MarkIncomplete(task)
		})
	case "pri":
		return a.cmdPri()
	case "depri":
		return a.mutateLine(1, func(task string, _ []string) string {
			return todotxt.SetPriority(task, "")
		})
	case "addctx":
		return a.mutateLine(2, func(task string, args []string) string {
			return todotxt.AddContext(task, args[0])
		})
	case "rmctx":
		return a.mutateLine(2, func(task string, args []string) string {
			return todotxt.RemoveContext(task, args[0])
		})
	case "addproj":
		return a.mutateLine(2, func(task string, args []string) string {
			return todotxt.AddProject(task, args[0])
		})
	case "rmproj":
		return a.mutateLine(2, func(task string, args []string) string {
			return todotxt.RemoveProject(task, args[0])
		})
	case "set":
		return a.mutateLine(3, func(task string, args []string) string {
			return todotxt.SetKeyValue(task, args[0], args[1])
		})
	case "unset":
		return a.mutateLine(2, func(task string, args []string) string {
			return todotxt.RemoveKey(task, args[0])
		})
	case "archive":
		return a.cmdArchive()
	default:
		writef(a.stderr, "todo: unknown command %q\n", a.opts.command)
		return exitInternal
	}
}

func (a *app) cmdList() int {
	for i, line := range a.list.Tasks {
		if line == "" || !matchesFilters(line, a.opts.args) {
			continue
		}
		writef(a.stdout, "%d %s\n", i+1, line)
	}
	return exitOK
}

func matchesFilters(task string, filters []string) bool {
	for _, f := range filters {
		switch {
		case strings.HasPrefix(f, "@"):
			if !containsValue(todotxt.Contexts(task), f[1:]) {
				return false
			}
		case strings.HasPrefix(f, "+"):
			if !containsValue(todotxt.Projects(task), f[1:]) {
				return false
			}
		default:
			if !strings.Contains(task, f) {
				return false
			}
		}
	}
	return true
}

func containsValue(spans []todotxt.Span, name string) bool {
	for _, s := range spans {
		if s.Value == name {
			return true
		}
	}
	return false
}

func (a *app) cmdAdd() int {
	if len(a.opts.args) == 0 {
		writef(a.stderr, "todo: add requires the task text\n")
		return exitInternal
	}
	line := strings.Join(a.opts.args, " ")
	a.list.Add(line)
	if code := a.save(); code != exitOK {
		return code
	}
	writef(a.stdout, "%d %s\n", len(a.list.Tasks), line)
	return exitOK
}

func (a *app) cmdDo() int {
	opts := todotxt.CompleteOptions{OmitDate: a.opts.noDate}
	if a.opts.date != "" {
		date, err := time.Parse(todotxt.DateLayout, a.opts.date)
		if err != nil {
			writef(a.stderr, "todo: -date must be a YYYY-MM-DD date\n")
			return exitInternal
		}
		opts.Date = date
	}
	return a.mutateLine(1, func(task string, _ []string) string {
		return todotxt.MarkCompleted(task, opts)
	})
}

func (a *app) cmdPri() int {
	return a.mutateLine(2, func(task string, args []string) string {
		letter := args[0]
		if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
			return task
		}
		return todotxt.SetPriority(task, letter)
	})
}

// mutateLine parses a leading 1-based line number, applies fn to that
// task with the remaining arguments, and saves the file.
func (a *app) mutateLine(argc int, fn func(task string, args []string) string) int {
	if len(a.opts.args) != argc {
		writef(a.stderr, "todo: %s requires %d argument(s)\n", a.opts.command, argc)
		return exitInternal
	}
	n, err := strconv.Atoi(a.opts.args[0])
	if err != nil {
		writef(a.stderr, "todo: %q is not a line number\n", a.opts.args[0])
		return exitInternal
	}
	task, ok := a.list.Line(n)
	if !ok {
		writef(a.stderr, "todo: no task on line %d\n", n)
		return exitUser
	}

	updated := fn(task, a.opts.args[1:])
	if updated == task {
		a.logger.Info("no change", "line", n)
	}
	a.list.SetLine(n, updated)
	if code := a.save(); code != exitOK {
		return code
	}
	writef(a.stdout, "%d %s\n", n, updated)
	return exitOK
}

func (a *app) cmdArchive() int {
	done, err := taskfile.Load(a.opts.doneFile)
	if err != nil {
		writef(a.stderr, "todo: %v\n", err)
		return exitInternal
	}
	moved := a.list.Archive(done)
	if moved == 0 {
		a.logger.Info("nothing to archive")
		return exitOK
	}
	if err := done.Save(a.opts.doneFile); err != nil {
		writef(a.stderr, "todo: %v\n", err)
		return exitInternal
	}
	if code := a.save(); code != exitOK {
		return code
	}
	a.logger.Info("archived tasks", "count", moved, "file", a.opts.doneFile)
	writef(a.stdout, "archived %d task(s)\n", moved)
	return exitOK
}

func (a *app) save() int {
	if err := a.list.Save(a.opts.todoFile); err != nil {
		writef(a.stderr, "todo: %v\n", err)
		return exitInternal
	}
	return exitOK
}

func parseArgs(args []string) (cliOptions, string, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.configPath, "config", "", "config file path (default: per-user config dir)")
	fs.StringVar(&opts.todoFile, "file", "", "todo.txt file path (default: from config)")
	fs.StringVar(&opts.doneFile, "done-file", "", "done.txt file path (default: from config)")
	fs.StringVar(&opts.date, "date", "", "completion date for 'do' as YYYY-MM-DD (default: today)")
	fs.BoolVar(&opts.noDate, "no-date", false, "complete without a completion date")
	fs.BoolVar(&opts.verbose, "verbose", false, "log informational messages")

	usage := cliUsage(fs)
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, usage, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return cliOptions{}, usage, errors.New("a command is required")
	}
	opts.command = rest[0]
	opts.args = rest[1:]
	return opts, usage, nil
}

func cliUsage(fs *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	b.WriteString("  todo [flags] list [filter...]\n")
	b.WriteString("  todo [flags] add TEXT...\n")
	b.WriteString("  todo [flags] do|undo|depri N\n")
	b.WriteString("  todo [flags] pri N LETTER\n")
	b.WriteString("  todo [flags] addctx|rmctx|addproj|rmproj N NAME\n")
	b.WriteString("  todo [flags] set N KEY VALUE\n")
	b.WriteString("  todo [flags] unset N KEY\n")
	b.WriteString("  todo [flags] archive\n\n")
	b.WriteString("Flags:\n")
	fs.VisitAll(func(f *flag.Flag) {
		writef(&b, "  --%s\t%s\n", f.Name, f.Usage)
	})
	return b.String()
}

func writef(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
