// Package config provides YAML-based configuration loading for the viewer.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/peri/internal/palette"
)

// Config contains all user-tunable settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig controls what the viewer draws.
type DisplayConfig struct {
	ColoringMode string `yaml:"coloring_mode"` // Scheme ID or prompt key
	InfoPanel    bool   `yaml:"info_panel"`    // Show details of the selected element
	Mouse        bool   `yaml:"mouse"`         // Enable pointer selection
}

// LoggingConfig controls the log output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`  // Empty selects ~/.peri/peri.log
}

// Mode returns the configured coloring mode.
func (c Config) Mode() (palette.Mode, error) {
	return palette.ParseMode(c.Display.ColoringMode)
}

// LogLevel returns the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(strings.ToLower(strings.TrimSpace(c.Logging.Level)))
}

// Validate checks that every enumerated setting has a known value.
func (c Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("config: display.coloring_mode: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("config: logging.level: %w", err)
	}
	return nil
}
