// Package main provides the todotui entry point.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/kpumuk/todo-weaver/internal/config"
	"github.com/kpumuk/todo-weaver/internal/ui"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "todotui"})

	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		logger.Fatal("load config", "path", configPath, "err", err)
	}

	if err := ui.Run(cfg); err != nil {
		logger.Fatal("run program", "err", err)
	}
}
