package catalog

import (
	"strconv"

	"github.com/vovakirdan/peri/internal/core"
)

// Electronegativity is an optional Pauling electronegativity value.
type Electronegativity struct {
	Value float32
	Valid bool
}

// String formats the value, or "n/a" when unknown.
func (e Electronegativity) String() string {
	if !e.Valid {
		return "n/a"
	}
	return strconv.FormatFloat(float64(e.Value), 'f', -1, 32)
}

// Element is one immutable row of the periodic table.
// Group and Period are grid coordinates: lanthanides and actinides are
// already moved to periods 8 and 9.
type Element struct {
	Number            uint8
	Symbol            string
	Name              string
	Mass              float32
	Electronegativity Electronegativity
	Metal             bool
	Category          Category
	Group             uint16
	Period            uint16
}

// Cell returns the element's position on the grid.
func (e Element) Cell() core.Cell {
	return core.Cell{Group: int(e.Group), Period: int(e.Period)}
}

// Index returns the element's position in the catalog.
func (e Element) Index() int {
	return int(e.Number) - 1
}

// MassString formats the atomic mass without trailing zeros.
func (e Element) MassString() string {
	return strconv.FormatFloat(float64(e.Mass), 'f', -1, 32)
}
