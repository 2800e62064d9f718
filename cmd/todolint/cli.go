package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kpumuk/todo-weaver/internal/lint"
)

const (
	exitOK       = 0
	exitIssues   = 1
	exitInternal = 3

	outputFormatText = "text"
	outputFormatJSON = "json"
)

type cliOptions struct {
	stdin          bool
	assumeFilename string
	format         string
	path           string
}

type diagnosticJSON struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	StartCol int    `json:"startCol"`
	EndCol   int    `json:"endCol"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

var defaultLintRunner = lint.NewDefaultRunner()

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	opts, usage, err := parseArgs(args)
	if err != nil {
		writef(stderr, "todolint: %v\n\n%s", err, usage)
		return exitInternal
	}

	lines, name, err := readInput(stdin, opts)
	if err != nil {
		writef(stderr, "todolint: %v\n", err)
		return exitInternal
	}

	diags := collectDiagnostics(lines)
	if len(diags) == 0 {
		return exitOK
	}

	if err := writeDiagnosticsOutput(opts.format, stdout, name, diags); err != nil {
		writef(stderr, "todolint: %v\n", err)
		return exitInternal
	}

	return exitIssues
}

// lineDiagnostic ties a lint diagnostic to its 1-based file line.
type lineDiagnostic struct {
	line int
	diag lint.Diagnostic
}

func collectDiagnostics(lines []string) []lineDiagnostic {
	var out []lineDiagnostic
	for i, task := range lines {
		for _, d := range defaultLintRunner.Run(task) {
			out = append(out, lineDiagnostic{line: i + 1, diag: d})
		}
	}
	return out
}

func writeDiagnosticsOutput(format string, stdout io.Writer, name string, diags []lineDiagnostic) error {
	switch format {
	case outputFormatText:
		for _, ld := range diags {
			writef(stdout, "%s:%d:%d: %s: %s [%s]\n",
				name, ld.line, int(ld.diag.Span.Start)+1,
				ld.diag.Severity, ld.diag.Message, ld.diag.Rule)
		}
		return nil
	case outputFormatJSON:
		out := make([]diagnosticJSON, 0, len(diags))
		for _, ld := range diags {
			out = append(out, diagnosticJSON{
				File:     name,
				Line:     ld.line,
				StartCol: int(ld.diag.Span.Start) + 1,
				EndCol:   int(ld.diag.Span.End) + 1,
				Rule:     ld.diag.Rule,
				Severity: string(ld.diag.Severity),
				Message:  ld.diag.Message,
			})
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func parseArgs(args []string) (cliOptions, string, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("todolint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&opts.stdin, "stdin", false, "read input from stdin")
	fs.StringVar(&opts.assumeFilename, "assume-filename", "", "filename used in diagnostics for stdin input")
	fs.StringVar(&opts.format, "format", outputFormatText, "diagnostic output format: text|json")

	usage := cliUsage(fs)
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, usage, err
	}

	if opts.format != outputFormatText && opts.format != outputFormatJSON {
		return cliOptions{}, usage, errors.New("--format must be one of: text, json")
	}

	rest := fs.Args()
	switch {
	case opts.stdin && len(rest) > 0:
		return cliOptions{}, usage, errors.New("positional file path is not allowed with --stdin")
	case !opts.stdin && len(rest) != 1:
		return cliOptions{}, usage, errors.New("exactly one input file path is required (or use --stdin)")
	}
	if !opts.stdin {
		opts.path = rest[0]
	}
	return opts, usage, nil
}

func cliUsage(fs *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	b.WriteString("  todolint [flags] path/to/todo.txt\n")
	b.WriteString("  todolint --stdin [--assume-filename todo.txt] [flags]\n\n")
	b.WriteString("Flags:\n")
	fs.VisitAll(func(f *flag.Flag) {
		writef(&b, "  --%s\t%s\n", f.Name, f.Usage)
	})
	return b.String()
}

func readInput(stdin io.Reader, opts cliOptions) ([]string, string, error) {
	var data []byte
	var name string
	if opts.stdin {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		data = src
		name = opts.assumeFilename
		if name == "" {
			name = "stdin"
		}
	} else {
		src, err := os.ReadFile(opts.path)
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", opts.path, err)
		}
		data = src
		name = opts.path
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, name, nil
}

func writef(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
