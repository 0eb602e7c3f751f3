package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/config"
	"github.com/vovakirdan/peri/internal/palette"
	"github.com/vovakirdan/peri/internal/platform/tui"
)

// fail prints an error and exits.
func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	os.Exit(1)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("loading config", err)
	}
	return cfg
}

// loadCatalog loads the custom catalog if one was given, else the built-in one.
func loadCatalog() *catalog.Catalog {
	if flagCatalog != "" {
		c, err := catalog.Load(flagCatalog)
		if err != nil {
			fail("loading catalog", err)
		}
		return c
	}

	c, err := catalog.Default()
	if err != nil {
		fail("loading built-in catalog", err)
	}
	return c
}

// logLevel resolves the level from the config and --debug.
func logLevel(cfg config.Config) log.Level {
	if flagDebug {
		return log.DebugLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// cliLogger logs to stderr for the non-interactive commands.
func cliLogger(cfg config.Config) *log.Logger {
	return tui.NewLogger(os.Stderr, logLevel(cfg))
}

// resolveMode picks the coloring mode: flag value if set, else config.
func resolveMode(flagValue string, cfg config.Config) (palette.Mode, error) {
	if flagValue != "" {
		return palette.ParseMode(flagValue)
	}
	return cfg.Mode()
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// theme picks the TUI theme, honoring NO_COLOR.
func theme() tui.Theme {
	if os.Getenv("NO_COLOR") != "" {
		return tui.MonochromeTheme()
	}
	return tui.DefaultTheme()
}
