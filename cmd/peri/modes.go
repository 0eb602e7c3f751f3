package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/peri/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List coloring modes",
	Long:  `Shows the coloring modes and the key that selects each one after pressing 'c'.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	writeModes(os.Stdout, registry.List())
}

// writeModes prints schemes with their prompt keys.
func writeModes(w io.Writer, schemes []registry.SchemeInfo) {
	if len(schemes) == 0 {
		fmt.Fprintln(w, "No coloring modes available.")
		return
	}

	fmt.Fprintln(w, "Coloring modes:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range schemes {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Fprintf(w, "  %-*s  %-3s  %s\n", maxIDLen, "ID", "Key", "Title")
	fmt.Fprintf(w, "  %-*s  %-3s  %s\n", maxIDLen, "--", "---", "-----")

	for _, s := range schemes {
		fmt.Fprintf(w, "  %-*s  %-3s  %s\n", maxIDLen, s.ID, s.Key, s.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'peri --mode <id>' or press 'c' then the key in the viewer.")
}
