// Package catalog holds the static periodic table data.
// The catalog is loaded once from an embedded CSV file, validated, and
// indexed by symbol and by grid cell so callers never re-derive indexes
// from atomic numbers.
package catalog

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/peri/internal/core"
)

// Size is the number of elements in a complete catalog.
const Size = 118

// Catalog is an immutable, ordered collection of elements.
// Element i has atomic number i+1.
type Catalog struct {
	elements []Element
	bySymbol map[string]int
	byCell   map[core.Cell]int
}

// New validates the elements and builds the lookup indexes.
func New(elements []Element) (*Catalog, error) {
	if len(elements) != Size {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCount, len(elements), Size)
	}

	c := &Catalog{
		elements: make([]Element, len(elements)),
		bySymbol: make(map[string]int, len(elements)),
		byCell:   make(map[core.Cell]int, len(elements)),
	}
	copy(c.elements, elements)

	for i, e := range c.elements {
		if e.Index() != i {
			return nil, fmt.Errorf("%w: element %d has atomic number %d", ErrMalformed, i+1, e.Number)
		}

		key := symbolKey(e.Symbol)
		if key == "" {
			return nil, fmt.Errorf("%w: element %d has an empty symbol", ErrMalformed, e.Number)
		}
		if prev, dup := c.bySymbol[key]; dup {
			return nil, fmt.Errorf("%w: symbol %q used by elements %d and %d",
				ErrMalformed, e.Symbol, prev+1, e.Number)
		}
		c.bySymbol[key] = i

		cell := e.Cell()
		if prev, dup := c.byCell[cell]; dup {
			return nil, fmt.Errorf("%w: cell %v used by elements %d and %d",
				ErrMalformed, cell, prev+1, e.Number)
		}
		c.byCell[cell] = i
	}

	return c, nil
}

// Len returns the number of elements.
func (c *Catalog) Len() int {
	return len(c.elements)
}

// At returns the element at index i.
func (c *Catalog) At(i int) (Element, bool) {
	if i < 0 || i >= len(c.elements) {
		return Element{}, false
	}
	return c.elements[i], true
}

// All returns a copy of every element in atomic number order.
func (c *Catalog) All() []Element {
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// ByNumber returns the element with the given atomic number.
func (c *Catalog) ByNumber(number int) (Element, bool) {
	return c.At(number - 1)
}

// IndexOfSymbol finds an element by symbol, ignoring case and surrounding
// whitespace.
func (c *Catalog) IndexOfSymbol(symbol string) (int, bool) {
	i, ok := c.bySymbol[symbolKey(symbol)]
	return i, ok
}

// IndexAt returns the index of the element drawn at a grid cell.
func (c *Catalog) IndexAt(cell core.Cell) (int, bool) {
	i, ok := c.byCell[cell]
	return i, ok
}

// InCategory returns the elements of one category in atomic number order.
func (c *Catalog) InCategory(cat Category) []Element {
	var out []Element
	for _, e := range c.elements {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

func symbolKey(symbol string) string {
	return strings.ToLower(strings.TrimSpace(symbol))
}
