package catalog

import "strings"

// Category is the chemical family of an element.
// The set is closed: unknown tags are rejected when the catalog loads.
type Category uint8

const (
	CategoryAlkaliMetal Category = iota
	CategoryAlkalineEarthMetal
	CategoryTransitionMetal
	CategoryPostTransitionMetal
	CategoryMetalloid
	CategoryNonmetal
	CategoryHalogen
	CategoryNobleGas
	CategoryLanthanide
	CategoryActinide
	CategoryTransactinide
	CategoryCount // Sentinel value for iteration
)

// String returns the display name of a category.
func (c Category) String() string {
	switch c {
	case CategoryAlkaliMetal:
		return "Alkali Metal"
	case CategoryAlkalineEarthMetal:
		return "Alkaline Earth Metal"
	case CategoryTransitionMetal:
		return "Transition Metal"
	case CategoryPostTransitionMetal:
		return "Post-transition Metal"
	case CategoryMetalloid:
		return "Metalloid"
	case CategoryNonmetal:
		return "Nonmetal"
	case CategoryHalogen:
		return "Halogen"
	case CategoryNobleGas:
		return "Noble Gas"
	case CategoryLanthanide:
		return "Lanthanide"
	case CategoryActinide:
		return "Actinide"
	case CategoryTransactinide:
		return "Transactinide"
	default:
		return "Unknown"
	}
}

// ParseCategory converts a catalog tag to a Category.
// Matching ignores case, spaces, dashes and underscores, so "Noble Gas",
// "noble-gas" and "noble_gas" are equivalent. The short tag "Metal" used
// by the data file means a post-transition metal.
func ParseCategory(s string) (Category, bool) {
	key := normalizeTag(s)
	if key == "metal" {
		return CategoryPostTransitionMetal, true
	}
	for c := Category(0); c < CategoryCount; c++ {
		if normalizeTag(c.String()) == key {
			return c, true
		}
	}
	return 0, false
}

// AllCategories returns every category in declaration order.
func AllCategories() []Category {
	out := make([]Category, 0, CategoryCount)
	for c := Category(0); c < CategoryCount; c++ {
		out = append(out, c)
	}
	return out
}

func normalizeTag(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
