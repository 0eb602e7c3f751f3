package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/palette"
	"github.com/vovakirdan/peri/internal/periodic"
)

var showCmd = &cobra.Command{
	Use:   "show <symbol|number>",
	Short: "Show the details of an element",
	Long: `Print the details of the element with the given symbol or atomic
number. The symbol is matched case-insensitively.

Examples:
  peri show Fe
  peri show og
  peri show 26`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	c := loadCatalog()

	e, ok := lookupElement(c, args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown element %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'peri list' to see all elements.")
		os.Exit(1)
	}

	writeElement(os.Stdout, e)
}

// lookupElement resolves an atomic number or a symbol.
func lookupElement(c *catalog.Catalog, arg string) (catalog.Element, bool) {
	if n, err := strconv.Atoi(strings.TrimSpace(arg)); err == nil {
		return c.ByNumber(n)
	}
	i, ok := c.IndexOfSymbol(arg)
	if !ok {
		return catalog.Element{}, false
	}
	return c.At(i)
}

// writeElement prints the info panel lines followed by grid position and
// the element's colors under each mode.
func writeElement(w io.Writer, e catalog.Element) {
	for _, line := range periodic.InfoLines(e) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, position(e))

	metal := "no"
	if e.Metal {
		metal = "yes"
	}
	fmt.Fprintf(w, "Metal: %s\n", metal)

	fmt.Fprintln(w)
	for _, mode := range []palette.Mode{palette.ModeType, palette.ModeElectronegativity} {
		_, bg := palette.ColorFor(e, mode)
		fmt.Fprintf(w, "%-18s %s\n", palette.Title(mode)+":", bg)
	}
}

// position describes where the element sits in the conventional table.
// The f-block is stored on rows of its own, so it is reported by period.
func position(e catalog.Element) string {
	switch e.Category {
	case catalog.CategoryLanthanide:
		return "Period 6, f-block"
	case catalog.CategoryActinide:
		return "Period 7, f-block"
	}
	return fmt.Sprintf("Group %d, Period %d", e.Group, e.Period)
}
