package depgraph

import (
	"slices"
	"sort"
)

// Map is the dependency graph store: asset name to ordered list of
// dependency names. Lists keep insertion order and may contain duplicates
// until Optimize is called.
type Map struct {
	Deps map[string][]string `json:"dependencies"`
}

// New creates an empty dependency map.
func New() *Map {
	return &Map{Deps: make(map[string][]string)}
}

// Add appends dependency to asset's list, creating the entry if absent.
// Duplicates are kept; Optimize collapses them later.
func (m *Map) Add(asset, dependency string) {
	m.Deps[asset] = append(m.Deps[asset], dependency)
}

// Remove deletes every occurrence of dependency from asset's list. If the
// list becomes empty the key is dropped entirely, so removal never leaves
// an empty-list entry behind.
func (m *Map) Remove(asset, dependency string) {
	deps, ok := m.Deps[asset]
	if !ok {
		return
	}
	kept := deps[:0]
	for _, d := range deps {
		if d != dependency {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		delete(m.Deps, asset)
		return
	}
	m.Deps[asset] = kept
}

// Dependencies returns a copy of asset's direct outgoing list, or an empty
// slice if the asset has no entry.
func (m *Map) Dependencies(asset string) []string {
	deps, ok := m.Deps[asset]
	if !ok {
		return []string{}
	}
	return slices.Clone(deps)
}

// Dependents returns every asset whose list contains the given name, in
// lexicographic order. No incoming-edge index is kept; this is a full scan.
func (m *Map) Dependents(asset string) []string {
	result := []string{}
	for key, deps := range m.Deps {
		if slices.Contains(deps, asset) {
			result = append(result, key)
		}
	}
	sort.Strings(result)
	return result
}

// sortedKeys returns the map keys in lexicographic order. Traversals and
// exports iterate keys through this so their output is reproducible.
func (m *Map) sortedKeys() []string {
	keys := make([]string, 0, len(m.Deps))
	for key := range m.Deps {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
