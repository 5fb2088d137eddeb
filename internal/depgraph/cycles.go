package depgraph

// Cycles finds every cycle reachable in the graph using a three-color
// depth-first search: unvisited, on the active traversal path, and fully
// explored. Hitting an edge into an on-path node records the suffix of the
// current path starting at that node as one cycle. Multiple back-edges
// from one node yield multiple, possibly overlapping entries; cycles are
// not canonicalized or rotation-deduplicated. Fully explored nodes are
// never re-entered, so total work is O(V+E).
//
// Roots are taken in lexicographic key order and dependency lists in
// stored order, so the output is reproducible for a given map state. The
// search runs on an explicit stack to stay safe on deeply chained graphs.
func (m *Map) Cycles() [][]string {
	type frame struct {
		asset string
		deps  []string
		next  int
	}

	cycles := [][]string{}
	visited := make(map[string]struct{})
	onPath := make(map[string]struct{})
	var path []string

	for _, root := range m.sortedKeys() {
		if _, done := visited[root]; done {
			continue
		}
		visited[root] = struct{}{}
		onPath[root] = struct{}{}
		path = append(path[:0], root)
		stack := []frame{{asset: root, deps: m.Deps[root]}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.deps) {
				dep := top.deps[top.next]
				top.next++
				if _, seen := visited[dep]; !seen {
					visited[dep] = struct{}{}
					onPath[dep] = struct{}{}
					path = append(path, dep)
					stack = append(stack, frame{asset: dep, deps: m.Deps[dep]})
					continue
				}
				if _, active := onPath[dep]; active {
					for i, name := range path {
						if name == dep {
							cycle := make([]string, len(path)-i)
							copy(cycle, path[i:])
							cycles = append(cycles, cycle)
							break
						}
					}
				}
				continue
			}
			delete(onPath, top.asset)
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
		}
	}
	return cycles
}
