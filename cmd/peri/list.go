package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/peri/internal/catalog"
)

var flagCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all elements",
	Long: `Shows every element of the catalog, optionally filtered by category.

Categories:
  alkali-metal, alkaline-earth-metal, transition-metal,
  post-transition-metal, metalloid, nonmetal, halogen, noble-gas,
  lanthanide, actinide, transactinide

Examples:
  peri list
  peri list --category halogen`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagCategory, "category", "", "Only list elements of this category")
}

func runList(cmd *cobra.Command, args []string) {
	c := loadCatalog()

	elements := c.All()
	if flagCategory != "" {
		cat, ok := catalog.ParseCategory(flagCategory)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", flagCategory)
			os.Exit(1)
		}
		elements = c.InCategory(cat)
	}

	writeList(os.Stdout, elements)
}

// writeList prints elements as an aligned table.
func writeList(w io.Writer, elements []catalog.Element) {
	if len(elements) == 0 {
		fmt.Fprintln(w, "No elements.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range elements {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	// Print header
	fmt.Fprintf(w, "  %3s  %-3s  %-*s  %-9s  %-4s  %s\n", "No", "Sym", maxNameLen, "Name", "Mass", "EN", "Category")
	fmt.Fprintf(w, "  %3s  %-3s  %-*s  %-9s  %-4s  %s\n", "--", "---", maxNameLen, "----", "----", "--", "--------")

	// Print elements
	for _, e := range elements {
		fmt.Fprintf(w, "  %3d  %-3s  %-*s  %-9s  %-4s  %s\n",
			e.Number, e.Symbol, maxNameLen, e.Name, e.MassString(), e.Electronegativity, e.Category)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d elements. Run 'peri show <symbol>' for details.\n", len(elements))
}
