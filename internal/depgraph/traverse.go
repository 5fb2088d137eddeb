package depgraph

// Tree is one node of a bounded-depth dependency tree. Depth is the
// distance from the query root (0-based). IsCircular marks a node that
// closes a cycle against the path leading to it; such nodes are always
// leaves. Trees are produced fresh per query and never persisted.
type Tree struct {
	Asset        string  `json:"asset"`
	Depth        int     `json:"depth"`
	Dependencies []*Tree `json:"dependencies"`
	IsCircular   bool    `json:"is_circular"`
}

// AllDependencies returns the transitive closure of asset: every name
// reachable by following dependency edges, deduplicated, in
// first-discovery order. A single visited set is shared across the whole
// call, so each asset is expanded at most once no matter how many paths
// reach it; revisits (including cycles) are no-ops. Dangling dependencies
// appear in the result but are not expanded.
//
// The walk uses an explicit frame stack instead of recursion so closure
// depth is not limited by the call stack.
func (m *Map) AllDependencies(asset string) []string {
	type frame struct {
		deps []string
		next int
	}

	visited := make(map[string]struct{})
	listed := make(map[string]struct{})
	result := []string{}

	var stack []frame
	expand := func(name string) {
		if _, seen := visited[name]; seen {
			return
		}
		visited[name] = struct{}{}
		stack = append(stack, frame{deps: m.Deps[name]})
	}
	expand(asset)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.deps) {
			stack = stack[:len(stack)-1]
			continue
		}
		dep := top.deps[top.next]
		top.next++
		if _, ok := listed[dep]; !ok {
			listed[dep] = struct{}{}
			result = append(result, dep)
		}
		expand(dep)
	}
	return result
}

// BuildTree materializes the dependency tree rooted at asset, cut off at
// maxDepth. The visited set is path-local: an asset shared by several
// branches appears once per branch, and only an edge back into the current
// path is flagged circular. Circularity is checked before the depth cutoff,
// so a cycle-closing node is flagged even right at the boundary. With
// maxDepth 0 the root itself comes back as a plain leaf.
//
// Recursion depth is bounded by maxDepth, so the recursive form is safe
// here; the unbounded walks in this package are iterative instead.
func (m *Map) BuildTree(asset string, maxDepth int) *Tree {
	return m.buildTree(asset, 0, maxDepth, make(map[string]struct{}))
}

func (m *Map) buildTree(asset string, depth, maxDepth int, onPath map[string]struct{}) *Tree {
	_, circular := onPath[asset]
	if circular || depth >= maxDepth {
		return &Tree{Asset: asset, Depth: depth, Dependencies: []*Tree{}, IsCircular: circular}
	}

	onPath[asset] = struct{}{}
	deps := m.Deps[asset]
	children := make([]*Tree, 0, len(deps))
	for _, dep := range deps {
		children = append(children, m.buildTree(dep, depth+1, maxDepth, onPath))
	}
	delete(onPath, asset)

	return &Tree{Asset: asset, Depth: depth, Dependencies: children, IsCircular: false}
}

// maxDepthFrom computes the dependency depth of asset: 1 for a leaf,
// 1 + max(child depths) otherwise. The visited set is path-local, and a
// revisit along the current path contributes 0 rather than propagating
// the cycle, so cyclic subgraphs neither recurse forever nor inflate the
// depth. That zero-contribution convention is load-bearing for existing
// consumers; do not change it without changing them.
func (m *Map) maxDepthFrom(asset string) int {
	type frame struct {
		asset string
		deps  []string
		next  int
		best  int
	}

	onPath := map[string]struct{}{asset: {}}
	stack := []frame{{asset: asset, deps: m.Deps[asset]}}
	depth := 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.deps) {
			dep := top.deps[top.next]
			top.next++
			if _, ok := onPath[dep]; ok {
				continue
			}
			onPath[dep] = struct{}{}
			stack = append(stack, frame{asset: dep, deps: m.Deps[dep]})
			continue
		}

		depth = top.best + 1
		delete(onPath, top.asset)
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := &stack[len(stack)-1]
			if depth > parent.best {
				parent.best = depth
			}
		}
	}
	return depth
}
