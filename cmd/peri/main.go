// peri is an interactive periodic table for the terminal.
//
// Usage:
//
//	peri                     - Open the interactive table
//	peri browse              - Browse the elements as a table, enter opens one
//	peri show <symbol>       - Print the details of an element
//	peri list                - List all elements
//	peri print               - Render the table once to stdout
//	peri modes               - List coloring modes
//	peri chart               - Plot a property against atomic number
//	peri config              - Print the effective configuration
//
// Global flags:
//
//	--config <path>   - Use a custom config file
//	--catalog <path>  - Load elements from a CSV file instead of the built-in table
//	--debug           - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagCatalog string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "peri",
	Short: "peri - The periodic table in your terminal",
	Long: `peri shows the periodic table of elements in your terminal.

Run without arguments to open the interactive table.

Controls:
  Arrows/hjkl  - Move the selection
  Esc          - Deselect
  c + n/t/e    - Coloring: none, type, electronegativity
  s + symbol   - Search by symbol (enter to confirm, esc to cancel)
  Mouse click  - Select an element
  ?            - Full help
  Q/Ctrl+C     - Quit

Examples:
  peri
  peri --mode type --select Fe
  peri show na
  peri list --category halogen
  peri print --mode electronegativity --width 120 --height 40`,
	Args: cobra.NoArgs,
	Run:  runViewer,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to an elements CSV (default: built-in)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(configCmd)
}
