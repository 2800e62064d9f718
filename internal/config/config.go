// Package config loads TOML configuration for the todo-weaver tools.
package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultTodoFileName   = "todo.txt"
	DefaultDoneFileName   = "done.txt"
)

// Keymap holds TUI key bindings.
type Keymap struct {
	Quit         string `toml:"quit"`
	Add          string `toml:"add"`
	Up           string `toml:"up"`
	Down         string `toml:"down"`
	Toggle       string `toml:"toggle"`
	Delete       string `toml:"delete"`
	Edit         string `toml:"edit"`
	Confirm      string `toml:"confirm"`
	Cancel       string `toml:"cancel"`
	PriorityUp   string `toml:"priority_up"`
	PriorityDown string `toml:"priority_down"`
	Archive      string `toml:"archive"`
}

// Config holds the shared configuration for the CLI and TUI.
type Config struct {
	TodoFile string `toml:"todo_file"`
	DoneFile string `toml:"done_file"`
	Keys     Keymap `toml:"keys"`
}

// LoadOrCreate reads the config at path, writing the defaults there
// first if no file exists yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.TodoFile == "" {
		cfg.TodoFile = DefaultTodoFileName
	}
	if cfg.DoneFile == "" {
		cfg.DoneFile = DefaultDoneFileName
	}
	return cfg, nil
}

// ResolveConfigPath returns the per-user config file location, creating
// the parent directory when possible. It falls back to the working
// directory when no user config directory is available.
func ResolveConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	dir := filepath.Join(base, "todo-weaver")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, DefaultConfigFileName)
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		TodoFile: DefaultTodoFileName,
		DoneFile: DefaultDoneFileName,
		Keys: Keymap{
			Quit:         "q",
			Add:          "a",
			Up:           "k",
			Down:         "j",
			Toggle:       " ",
			Delete:       "d",
			Edit:         "e",
			Confirm:      "enter",
			Cancel:       "esc",
			PriorityUp:   "+",
			PriorityDown: "-",
			Archive:      "A",
		},
	}
}
