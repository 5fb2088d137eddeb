package depgraph

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupportedFormat is returned by Export for format names outside
// json, dot, csv, and yaml.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Export renders the map in the named format. The name is matched
// case-insensitively. "yaml" is recognized but answers with a placeholder
// string instead of an error; anything else unknown fails with
// ErrUnsupportedFormat. Export is the only fallible operation in this
// package.
func (m *Map) Export(format string) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling dependency map: %w", err)
		}
		return string(out), nil
	case "dot":
		return m.exportDOT(), nil
	case "csv":
		return m.exportCSV(), nil
	case "yaml":
		return "YAML export not implemented yet", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// exportDOT renders a GraphViz digraph. The node set is the union of all
// keys and all targets, so dangling dependencies get a node statement too.
// One edge statement is written per stored pair, duplicates included when
// the map has not been optimized. Nodes and edge sources are emitted in
// lexicographic order.
func (m *Map) exportDOT() string {
	var dot strings.Builder
	dot.WriteString("digraph AssetDependencies {\n")
	dot.WriteString("    rankdir=LR;\n")
	dot.WriteString("    node [shape=box, style=rounded];\n\n")

	nodes := make(map[string]struct{})
	for asset, deps := range m.Deps {
		nodes[asset] = struct{}{}
		for _, dep := range deps {
			nodes[dep] = struct{}{}
		}
	}
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&dot, "    %q;\n", name)
	}

	dot.WriteString("\n")
	for _, asset := range m.sortedKeys() {
		for _, dep := range m.Deps[asset] {
			fmt.Fprintf(&dot, "    %q -> %q;\n", asset, dep)
		}
	}

	dot.WriteString("}\n")
	return dot.String()
}

// exportCSV renders one Asset,Dependency row per stored pair, duplicates
// included when unnormalized, with sources in lexicographic order.
func (m *Map) exportCSV() string {
	var csv strings.Builder
	csv.WriteString("Asset,Dependency\n")
	for _, asset := range m.sortedKeys() {
		for _, dep := range m.Deps[asset] {
			csv.WriteString(asset)
			csv.WriteString(",")
			csv.WriteString(dep)
			csv.WriteString("\n")
		}
	}
	return csv.String()
}
