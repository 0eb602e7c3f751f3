// Package palette implements the coloring modes of the periodic table.
// Each mode is a registry.Scheme registered at init time; ColorFor is the
// single entry point the renderer uses.
package palette

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/core"
	"github.com/vovakirdan/peri/internal/registry"
)

// Mode selects the coloring scheme. Its value is the scheme ID.
type Mode string

const (
	ModeNone              Mode = "none"
	ModeType              Mode = "type"
	ModeElectronegativity Mode = "electronegativity"
)

// ParseMode resolves a scheme ID or prompt key to a Mode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if registry.Exists(s) {
		return Mode(s), nil
	}
	if scheme, ok := registry.ByKey(s); ok {
		return Mode(scheme.ID()), nil
	}
	return "", fmt.Errorf("palette: unknown coloring mode %q", s)
}

// ColorFor returns the foreground and background of an element under a mode.
// An unregistered mode draws with the terminal defaults.
func ColorFor(e catalog.Element, mode Mode) (fg, bg core.Color) {
	scheme, err := registry.Get(string(mode))
	if err != nil {
		return core.ColorDefault, core.ColorDefault
	}
	return scheme.Colors(e)
}

// Title returns the display name of a mode.
func Title(mode Mode) string {
	scheme, err := registry.Get(string(mode))
	if err != nil {
		return string(mode)
	}
	return scheme.Title()
}

// Legend returns the swatches of a mode.
func Legend(mode Mode) []registry.LegendEntry {
	scheme, err := registry.Get(string(mode))
	if err != nil {
		return nil
	}
	return scheme.Legend()
}
