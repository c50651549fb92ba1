package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pontoon/internal/config"
	"github.com/lox/pontoon/internal/save"
)

// Globals are the flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"pontoon.hcl" help:"Path to HCL configuration file"`
	SaveFile string `short:"s" help:"Save file path (overrides config)"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	LogFile  string `help:"Log file path (overrides config)"`
}

// loadConfig reads the configuration file and applies flag overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if g.SaveFile != "" {
		cfg.Save.Path = g.SaveFile
	}
	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.UI.LogFile = g.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openLogger logs to the configured file so the terminal stays clean. The
// returned function closes the file.
func openLogger(cfg *config.Config) (*log.Logger, func(), error) {
	f, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "pontoon",
		Level:           cfg.Level(),
	})
	return logger, func() { _ = f.Close() }, nil
}

// setup loads configuration and opens the logger and save store
func (g *Globals) setup() (*config.Config, *log.Logger, *save.Store, func(), error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	store := save.NewStore(cfg.Save.Path, quartz.NewReal(), logger)
	return cfg, logger, store, closeLog, nil
}

// explain adds a hint to save errors the player can fix
func explain(err error, store *save.Store) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, save.ErrNotFound):
		return fmt.Errorf("%w (run `pontoon init` to create %s)", err, store.Path())
	case errors.Is(err, save.ErrCorrupt):
		return fmt.Errorf("%w (%s was likely tampered with)", err, store.Path())
	default:
		return err
	}
}
