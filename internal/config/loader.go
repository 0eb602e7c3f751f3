package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Names of the files searched for configuration.
const (
	userDir       = ".peri"
	userFileName  = "config.yaml"
	localFilePath = "configs/peri.yaml"
	logFileName   = "peri.log"
)

// Load reads the configuration.
// Search order: customPath -> ~/.peri/config.yaml -> ./configs/peri.yaml -> embedded default
//
// Only a custom path fails loudly; unreadable files further down the chain
// are skipped. Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := UserPath(userFileName); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(localFilePath); err == nil {
		return cfg, cfg.Validate()
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and decodes one YAML file on top of the defaults.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserPath returns the path of a file in the user's ~/.peri directory, or
// empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDir, filename)
}

// LogPath returns the configured log file, defaulting to ~/.peri/peri.log.
func (c Config) LogPath() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return UserPath(logFileName)
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
