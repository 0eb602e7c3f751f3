package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("selected", "symbol", "Fe")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "peri") || !strings.Contains(out, "symbol=Fe") {
		t.Errorf("output = %q, want prefix and key/value", out)
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "peri.log")

	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile: %v", err)
	}
	NewLogger(f, log.InfoLevel).Info("first")
	f.Close()

	f, err = OpenLogFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	NewLogger(f, log.InfoLevel).Info("second")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log file not appended: %q", data)
	}
}

func TestOpenLogFileEmptyPath(t *testing.T) {
	if _, err := OpenLogFile(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
