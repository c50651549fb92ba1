// Package config loads pontoon.hcl and applies PONTOON_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the configuration file read when no --config flag is given
const DefaultFile = "pontoon.hcl"

// Color modes for UISettings.Color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the complete game configuration
type Config struct {
	Save SaveSettings
	UI   UISettings
}

// SaveSettings locates the save file
type SaveSettings struct {
	Path string `hcl:"path,optional" env:"PONTOON_SAVE_FILE"`
}

// UISettings contains terminal and logging settings
type UISettings struct {
	LogLevel    string `hcl:"log_level,optional" env:"PONTOON_LOG_LEVEL"`
	LogFile     string `hcl:"log_file,optional" env:"PONTOON_LOG_FILE"`
	Color       string `hcl:"color,optional" env:"PONTOON_COLOR"`
	ClearScreen bool   `hcl:"clear_screen,optional" env:"PONTOON_CLEAR_SCREEN"`
	Pause       *bool  `hcl:"pause,optional" env:"PONTOON_PAUSE"`
	TUI         bool   `hcl:"tui,optional" env:"PONTOON_TUI"`
}

// both blocks may be left out of the file
type fileConfig struct {
	Save *SaveSettings `hcl:"save,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	pause := true
	return &Config{
		Save: SaveSettings{
			Path: "save.hcl",
		},
		UI: UISettings{
			LogLevel: "info",
			LogFile:  "pontoon.log",
			Color:    ColorAuto,
			Pause:    &pause,
		},
	}
}

// LoadConfig reads filename, falling back to defaults when it does not exist,
// then applies environment overrides.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	_, err := os.Stat(filename)
	switch {
	case err == nil:
		if err := config.decodeFile(filename); err != nil {
			return nil, err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := ParseEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) decodeFile(filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if fc.Save != nil {
		c.Save = *fc.Save
		if c.Save.Path == "" {
			c.Save.Path = defaults.Save.Path
		}
	}
	if fc.UI != nil {
		c.UI = *fc.UI
		if c.UI.LogLevel == "" {
			c.UI.LogLevel = defaults.UI.LogLevel
		}
		if c.UI.LogFile == "" {
			c.UI.LogFile = defaults.UI.LogFile
		}
		if c.UI.Color == "" {
			c.UI.Color = defaults.UI.Color
		}
		if c.UI.Pause == nil {
			c.UI.Pause = defaults.UI.Pause
		}
	}
	return nil
}

// ParseEnv loads PONTOON_* overrides into target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Save.Path == "" {
		return fmt.Errorf("save path must not be empty")
	}
	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.UI.LogLevel)
	}
	switch c.UI.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q: want auto, always or never", c.UI.Color)
	}
	return nil
}

// Level returns the parsed log level, defaulting to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// PauseAfterResults reports whether play waits for ENTER between the beats of a round
func (c *Config) PauseAfterResults() bool {
	return c.UI.Pause == nil || *c.UI.Pause
}
