package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/config"
	"github.com/vovakirdan/peri/internal/core"
	"github.com/vovakirdan/peri/internal/platform/tui"
)

var (
	flagMode    string
	flagSelect  string
	flagLog     string
	flagNoMouse bool
)

func init() {
	rootCmd.Flags().StringVar(&flagMode, "mode", "", "Coloring mode: none, type, electronegativity (default from config)")
	rootCmd.Flags().StringVar(&flagSelect, "select", "", "Symbol to select at start")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "Log file (default: ~/.peri/peri.log)")
	rootCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "Disable mouse selection")
}

func runViewer(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	c := loadCatalog()
	startViewer(cfg, c, flagSelect)
}

// startViewer runs the interactive table until the user quits.
func startViewer(cfg config.Config, c *catalog.Catalog, selectSymbol string) {
	mode, err := resolveMode(flagMode, cfg)
	if err != nil {
		fail("resolving coloring mode", err)
	}

	logger, closeLog := viewerLogger(cfg)
	defer closeLog()

	width, height := terminalSize()
	logger.Info("starting viewer", "mode", mode, "width", width, "height", height)

	opts := tui.Options{
		Config:        core.RuntimeConfig{ScreenW: width, ScreenH: height},
		Mode:          mode,
		Select:        selectSymbol,
		InfoPanel:     cfg.Display.InfoPanel,
		Mouse:         cfg.Display.Mouse && !flagNoMouse,
		Theme:         theme(),
		Logger:        logger,
		ScreenshotDir: config.UserPath("screenshots"),
	}

	if err := tui.Run(c, opts); err != nil {
		logger.Error("viewer failed", "error", err)
		closeLog()
		fail("running viewer", err)
	}
	logger.Info("viewer closed")
}

// viewerLogger opens the log file. The viewer owns the terminal, so when
// the file cannot be opened it logs nowhere rather than to stderr.
func viewerLogger(cfg config.Config) (*log.Logger, func()) {
	path := flagLog
	if path == "" {
		path = cfg.LogPath()
	}

	f, err := tui.OpenLogFile(path)
	if err != nil {
		cliLogger(cfg).Warn("logging disabled", "error", err)
		return tui.DiscardLogger(), func() {}
	}

	var closed bool
	closeFn := func() {
		if !closed {
			closed = true
			f.Close()
		}
	}
	return tui.NewLogger(f, logLevel(cfg)), closeFn
}
