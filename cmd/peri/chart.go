package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/peri/internal/catalog"
)

var (
	flagProperty    string
	flagChartHeight int
	flagChartWidth  int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Plot an element property against atomic number",
	Long: `Draw an ASCII chart of a property across the catalog.
Elements without a value leave a gap.

Properties:
  electronegativity (default), mass

Examples:
  peri chart
  peri chart --property mass --height 20`,
	Args: cobra.NoArgs,
	Run:  runChart,
}

func init() {
	chartCmd.Flags().StringVar(&flagProperty, "property", "electronegativity", "Property to plot: electronegativity, mass")
	chartCmd.Flags().IntVar(&flagChartHeight, "height", 12, "Chart height in rows")
	chartCmd.Flags().IntVar(&flagChartWidth, "width", 0, "Chart width in columns (default: one per element)")
}

func runChart(cmd *cobra.Command, args []string) {
	c := loadCatalog()

	data, caption, err := propertySeries(c.All(), flagProperty)
	if err != nil {
		fail("building chart", err)
	}
	writeChart(os.Stdout, data, caption, flagChartHeight, flagChartWidth)
}

// propertySeries returns one value per element, NaN where it is missing.
func propertySeries(elements []catalog.Element, property string) ([]float64, string, error) {
	data := make([]float64, len(elements))
	switch property {
	case "electronegativity", "en":
		for i, e := range elements {
			data[i] = math.NaN()
			if e.Electronegativity.Valid {
				data[i] = float64(e.Electronegativity.Value)
			}
		}
		return data, "Pauling electronegativity by atomic number", nil

	case "mass":
		for i, e := range elements {
			data[i] = float64(e.Mass)
		}
		return data, "atomic mass by atomic number", nil
	}
	return nil, "", fmt.Errorf("unknown property %q", property)
}

// writeChart plots data with asciigraph.
func writeChart(w io.Writer, data []float64, caption string, height, width int) {
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	fmt.Fprintln(w, asciigraph.Plot(data, opts...))
}
