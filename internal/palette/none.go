package palette

import (
	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/core"
	"github.com/vovakirdan/peri/internal/registry"
)

func init() {
	registry.Register(noneScheme{})
}

// noneScheme leaves every cell in the terminal's default colors.
type noneScheme struct{}

func (noneScheme) ID() string    { return string(ModeNone) }
func (noneScheme) Title() string { return "None" }
func (noneScheme) Key() string   { return "n" }

func (noneScheme) Colors(catalog.Element) (core.Color, core.Color) {
	return core.ColorDefault, core.ColorDefault
}

func (noneScheme) Legend() []registry.LegendEntry { return nil }
