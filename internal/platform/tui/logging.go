package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger with the viewer's prefix and timestamps.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "peri",
		Level:           level,
	})
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *log.Logger {
	return NewLogger(io.Discard, log.FatalLevel)
}

// OpenLogFile opens path for appending, creating its directory.
// The interactive viewer owns the terminal, so it cannot log to stderr.
func OpenLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("tui: empty log path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("tui: cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot open log file: %w", err)
	}
	return f, nil
}
