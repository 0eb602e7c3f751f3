package config

import (
	_ "embed"
)

//go:embed defaults/peri.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			ColoringMode: "none",
			InfoPanel:    true,
			Mouse:        true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
