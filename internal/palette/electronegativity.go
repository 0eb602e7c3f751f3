package palette

import (
	"strconv"

	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/core"
	"github.com/vovakirdan/peri/internal/registry"
)

// ElectronegativityGradient spans the Pauling scale from pale green through
// green and yellow to red.
var ElectronegativityGradient = core.MustGradient([]core.GradientStop{
	{Position: 0.7, Color: core.RGB{R: 214, G: 251, B: 221}},
	{Position: 1.9, Color: core.RGB{R: 5, G: 246, B: 41}},
	{Position: 2.2, Color: core.RGB{R: 255, G: 232, B: 77}},
	{Position: 4.0, Color: core.RGB{R: 255, G: 6, B: 0}},
}, false)

func init() {
	registry.Register(electronegativityScheme{})
}

type electronegativityScheme struct{}

func (electronegativityScheme) ID() string    { return string(ModeElectronegativity) }
func (electronegativityScheme) Title() string { return "Electronegativity" }
func (electronegativityScheme) Key() string   { return "e" }

func (electronegativityScheme) Colors(e catalog.Element) (core.Color, core.Color) {
	if !e.Electronegativity.Valid {
		return core.ColorDefault, core.ColorDefault
	}
	bg := ElectronegativityGradient.At(e.Electronegativity.Value)
	return core.ColorBlack, core.TrueColor(bg)
}

func (electronegativityScheme) Legend() []registry.LegendEntry {
	stops := ElectronegativityGradient.Stops()
	out := make([]registry.LegendEntry, 0, len(stops))
	for _, s := range stops {
		out = append(out, registry.LegendEntry{
			Label: strconv.FormatFloat(float64(s.Position), 'f', 1, 32),
			FG:    core.ColorBlack,
			BG:    core.TrueColor(s.Color),
		})
	}
	return out
}
