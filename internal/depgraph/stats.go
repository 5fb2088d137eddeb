package depgraph

import "sort"

// mostReferencedDefault is how many ranking entries a full statistics
// snapshot carries.
const mostReferencedDefault = 10

// analyzeTreeDepth is the tree cutoff used by Analyze.
const analyzeTreeDepth = 5

// RefCount is one entry of the most-referenced ranking: an asset and how
// many dependency lists mention it, duplicate edges included.
type RefCount struct {
	Asset string `json:"asset"`
	Count int    `json:"count"`
}

// Statistics is a point-in-time summary of a dependency map against an
// externally supplied roster of all known asset names.
type Statistics struct {
	TotalDependencies  int        `json:"total_dependencies"`
	MaxDepth           int        `json:"max_depth"`
	CircularReferences [][]string `json:"circular_references"`
	OrphanedAssets     []string   `json:"orphaned_assets"`
	MostReferenced     []RefCount `json:"most_referenced"`
}

// Analysis aggregates everything known about a single asset: its direct
// and reverse edges, a bounded dependency tree, and the roster-wide
// statistics snapshot.
type Analysis struct {
	AssetName           string      `json:"asset_name"`
	DirectDependencies  []string    `json:"direct_dependencies"`
	ReverseDependencies []string    `json:"reverse_dependencies"`
	DependencyTree      *Tree       `json:"dependency_tree"`
	Statistics          *Statistics `json:"statistics"`
}

// Orphans returns every roster asset that has neither outgoing edges (not
// a map key) nor incoming edges (mentioned in no list), in roster order.
// The roster is mandatory: the map alone cannot enumerate zero-degree
// assets, it only knows names mentioned in an edge.
func (m *Map) Orphans(allAssets []string) []string {
	referenced := make(map[string]struct{})
	for _, deps := range m.Deps {
		for _, dep := range deps {
			referenced[dep] = struct{}{}
		}
	}

	orphaned := []string{}
	for _, asset := range allAssets {
		if _, hasDeps := m.Deps[asset]; hasDeps {
			continue
		}
		if _, isReferenced := referenced[asset]; isReferenced {
			continue
		}
		orphaned = append(orphaned, asset)
	}
	return orphaned
}

// MostReferenced ranks assets by how many times they appear as a
// dependency target across the whole map, counting duplicate edges, and
// returns at most limit entries. Ties are broken lexicographically so the
// ranking is stable for a given map state.
func (m *Map) MostReferenced(limit int) []RefCount {
	counts := make(map[string]int)
	for _, deps := range m.Deps {
		for _, dep := range deps {
			counts[dep]++
		}
	}

	ranked := make([]RefCount, 0, len(counts))
	for asset, count := range counts {
		ranked = append(ranked, RefCount{Asset: asset, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Asset < ranked[j].Asset
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Statistics computes the full snapshot: cycle list, orphans, top
// referenced assets, total edge count in the map's current normalization
// state, and the maximum dependency depth across the roster.
func (m *Map) Statistics(allAssets []string) *Statistics {
	maxDepth := 0
	for _, asset := range allAssets {
		if d := m.maxDepthFrom(asset); d > maxDepth {
			maxDepth = d
		}
	}

	total := 0
	for _, deps := range m.Deps {
		total += len(deps)
	}

	return &Statistics{
		TotalDependencies:  total,
		MaxDepth:           maxDepth,
		CircularReferences: m.Cycles(),
		OrphanedAssets:     m.Orphans(allAssets),
		MostReferenced:     m.MostReferenced(mostReferencedDefault),
	}
}

// Analyze builds the convenience aggregate for one asset. The tree is cut
// at depth 5, which is plenty for display while keeping pathological
// graphs cheap.
func (m *Map) Analyze(asset string, allAssets []string) *Analysis {
	return &Analysis{
		AssetName:           asset,
		DirectDependencies:  m.Dependencies(asset),
		ReverseDependencies: m.Dependents(asset),
		DependencyTree:      m.BuildTree(asset, analyzeTreeDepth),
		Statistics:          m.Statistics(allAssets),
	}
}
