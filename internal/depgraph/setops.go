package depgraph

import "strings"

// Merge unions the edges of all input maps into a fresh map by replaying
// every edge through Add, then optimizes the result once. The merged map
// is therefore always normalized even when the inputs were not.
func Merge(maps ...*Map) *Map {
	merged := New()
	for _, m := range maps {
		if m == nil {
			continue
		}
		for _, asset := range m.sortedKeys() {
			for _, dep := range m.Deps[asset] {
				merged.Add(asset, dep)
			}
		}
	}
	merged.Optimize()
	return merged
}

// FilterByName returns a fresh map keeping only entries whose source asset
// name contains at least one of the given substrings, compared
// case-insensitively. Dependency lists of matching sources are copied
// verbatim; targets are not filtered.
func FilterByName(m *Map, substrings []string) *Map {
	filtered := New()
	for asset, deps := range m.Deps {
		lower := strings.ToLower(asset)
		for _, sub := range substrings {
			if strings.Contains(lower, strings.ToLower(sub)) {
				for _, dep := range deps {
					filtered.Add(asset, dep)
				}
				break
			}
		}
	}
	return filtered
}
