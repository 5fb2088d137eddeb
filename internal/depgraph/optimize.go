package depgraph

import "sort"

// Optimize normalizes the map in place: every dependency list is sorted
// and deduplicated (discarding its insertion order), and keys left with an
// empty list are dropped. It returns the number of duplicate entries
// removed. Running it twice changes nothing further and reports zero.
func (m *Map) Optimize() int {
	removed := 0

	for asset, deps := range m.Deps {
		before := len(deps)
		sort.Strings(deps)
		deps = dedupSorted(deps)
		removed += before - len(deps)
		m.Deps[asset] = deps
	}

	for asset, deps := range m.Deps {
		if len(deps) == 0 {
			delete(m.Deps, asset)
		}
	}

	return removed
}

// dedupSorted collapses adjacent duplicates in a sorted slice, in place.
func dedupSorted(s []string) []string {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
