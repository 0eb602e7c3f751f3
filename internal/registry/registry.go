// Package registry provides a global registry of coloring schemes.
// Schemes register themselves in init() functions, allowing the viewer
// and the CLI to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/core"
)

// Scheme is a color-coding policy for table cells.
// Schemes are stateless; the same instance is shared by every caller.
type Scheme interface {
	// ID returns a unique identifier (e.g., "type", "electronegativity").
	// Used for config files and CLI flags.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Key returns the single key that picks this scheme in the coloring prompt.
	Key() string

	// Colors returns the foreground and background for an element.
	Colors(e catalog.Element) (fg, bg core.Color)

	// Legend describes the colors the scheme uses, for the info panel.
	Legend() []LegendEntry
}

// LegendEntry is one labelled color swatch.
type LegendEntry struct {
	Label string
	FG    core.Color
	BG    core.Color
}

// SchemeInfo contains metadata about a registered scheme.
type SchemeInfo struct {
	ID    string
	Title string
	Key   string
}

var (
	schemes = make(map[string]Scheme)
	byKey   = make(map[string]string)
	mu      sync.RWMutex
)

// Register adds a scheme to the registry.
// Typically called from a scheme's init() function.
// Panics if a scheme with the same ID or prompt key is already registered.
func Register(s Scheme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := schemes[s.ID()]; exists {
		panic(fmt.Sprintf("registry: scheme %q already registered", s.ID()))
	}
	if other, exists := byKey[s.Key()]; exists {
		panic(fmt.Sprintf("registry: key %q of scheme %q already used by %q", s.Key(), s.ID(), other))
	}

	schemes[s.ID()] = s
	byKey[s.Key()] = s.ID()
}

// List returns information about all registered schemes, sorted by ID.
func List() []SchemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SchemeInfo, 0, len(schemes))
	for id, s := range schemes {
		result = append(result, SchemeInfo{
			ID:    id,
			Title: s.Title(),
			Key:   s.Key(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a scheme by its ID.
// Returns an error if the ID is not registered.
func Get(id string) (Scheme, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := schemes[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scheme %q", id)
	}

	return s, nil
}

// ByKey returns the scheme bound to a prompt key.
func ByKey(key string) (Scheme, bool) {
	mu.RLock()
	defer mu.RUnlock()

	id, ok := byKey[key]
	if !ok {
		return nil, false
	}
	return schemes[id], true
}

// Exists checks if a scheme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := schemes[id]
	return ok
}
