package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/core"
	"github.com/vovakirdan/peri/internal/periodic"
	"github.com/vovakirdan/peri/internal/platform/tui"
)

var (
	flagPrintMode   string
	flagPrintSelect string
	flagWidth       int
	flagHeight      int
	flagColor       string
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Render the table once to stdout",
	Long: `Draw the periodic table once and exit. The size defaults to the
terminal size, or 80x24 when stdout is not a terminal.

Colors are emitted only when stdout is a terminal unless --color=always.

Examples:
  peri print
  peri print --mode type --select Fe
  peri print --width 120 --height 40 > table.txt`,
	Args: cobra.NoArgs,
	Run:  runPrint,
}

func init() {
	printCmd.Flags().StringVar(&flagPrintMode, "mode", "", "Coloring mode (default from config)")
	printCmd.Flags().StringVar(&flagPrintSelect, "select", "", "Symbol to highlight")
	printCmd.Flags().IntVar(&flagWidth, "width", 0, "Width in columns (default: terminal width)")
	printCmd.Flags().IntVar(&flagHeight, "height", 0, "Height in rows (default: terminal height)")
	printCmd.Flags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
}

func runPrint(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := cliLogger(cfg)
	c := loadCatalog()

	mode, err := resolveMode(flagPrintMode, cfg)
	if err != nil {
		fail("resolving coloring mode", err)
	}

	width, height := terminalSize()
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}

	state := periodic.State{Mode: mode}
	if flagPrintSelect != "" {
		i, ok := c.IndexOfSymbol(flagPrintSelect)
		if !ok {
			logger.Warn("unknown element, nothing selected", "symbol", flagPrintSelect)
		} else {
			state.Selection = periodic.Selected(i)
		}
	}

	var styled bool
	switch flagColor {
	case "always":
		styled = true
	case "never":
		styled = false
	case "auto":
		styled = stdoutIsTerminal()
	default:
		fail("parsing --color", fmt.Errorf("unknown value %q", flagColor))
	}

	opts := periodic.DefaultRenderOptions()
	opts.InfoPanel = cfg.Display.InfoPanel
	logger.Debug("printing table", "mode", mode, "width", width, "height", height, "styled", styled)
	writeTable(os.Stdout, c, state, opts, width, height, styled)
}

// writeTable renders the table at the given size and writes it out.
func writeTable(w io.Writer, c *catalog.Catalog, state periodic.State, opts periodic.RenderOptions, width, height int, styled bool) {
	scale := core.FitScale(width, height)
	screen := core.NewScreen(width, height)
	periodic.NewRenderer(c, opts).Render(screen, state, scale)

	// Drop rows below the table so short output stays short.
	rows := height
	if scale > 0 {
		rows = core.Min(core.DrawnHeight(scale), height)
	}
	trimmed := core.NewScreen(width, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < width; x++ {
			trimmed.SetCell(x, y, screen.GetCell(x, y))
		}
	}

	if styled {
		fmt.Fprintln(w, tui.RenderScreen(trimmed))
		return
	}
	fmt.Fprintln(w, trimmed.String())
}
