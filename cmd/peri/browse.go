package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/peri/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the elements as a table",
	Long: `Browse the catalog as a scrollable table grouped by category.
Press enter to open the chosen element in the interactive table.

Controls:
  Up/Down      - Scroll
  Tab/S-Tab    - Next/previous category
  Enter        - Open in the table
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	c := loadCatalog()

	width, height := terminalSize()
	symbol, err := tui.RunBrowser(c, theme(), width, height)
	if err != nil {
		fail("running browser", err)
	}
	if symbol == "" {
		return
	}

	startViewer(cfg, c, symbol)
}
