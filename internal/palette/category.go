package palette

import (
	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/core"
	"github.com/vovakirdan/peri/internal/registry"
)

func init() {
	registry.Register(typeScheme{})
}

// typeScheme colors cells by chemical family.
type typeScheme struct{}

func (typeScheme) ID() string    { return string(ModeType) }
func (typeScheme) Title() string { return "Type" }
func (typeScheme) Key() string   { return "t" }

func (typeScheme) Colors(e catalog.Element) (core.Color, core.Color) {
	bg, ok := CategoryBackground(e.Category)
	if !ok {
		return core.ColorDefault, core.ColorDefault
	}
	return core.ColorBlack, bg
}

func (typeScheme) Legend() []registry.LegendEntry {
	var out []registry.LegendEntry
	for _, cat := range catalog.AllCategories() {
		if bg, ok := CategoryBackground(cat); ok {
			out = append(out, registry.LegendEntry{Label: cat.String(), FG: core.ColorBlack, BG: bg})
		}
	}
	return out
}

// CategoryBackground returns the background of a category under the type
// scheme. Categories outside the seven-color palette report false and are
// drawn with the terminal defaults.
func CategoryBackground(c catalog.Category) (core.Color, bool) {
	switch c {
	case catalog.CategoryAlkaliMetal:
		return core.ColorRed, true
	case catalog.CategoryAlkalineEarthMetal:
		return core.ColorYellow, true
	case catalog.CategoryTransitionMetal:
		return core.ColorBlue, true
	case catalog.CategoryMetalloid:
		return core.ColorCyan, true
	case catalog.CategoryNonmetal:
		return core.ColorGreen, true
	case catalog.CategoryHalogen:
		return core.ColorBrightYellow, true
	case catalog.CategoryNobleGas:
		return core.ColorMagenta, true
	case catalog.CategoryPostTransitionMetal,
		catalog.CategoryLanthanide,
		catalog.CategoryActinide,
		catalog.CategoryTransactinide:
		return core.ColorDefault, false
	default:
		return core.ColorDefault, false
	}
}
