package depgraph

import (
	"fmt"
	"strings"
)

// MarkdownReport renders the roster-wide statistics of a map as a markdown
// document for human consumption.
func MarkdownReport(m *Map, allAssets []string) string {
	stats := m.Statistics(allAssets)

	var report strings.Builder
	report.WriteString("# Asset Dependency Report\n\n")
	fmt.Fprintf(&report, "- **Total Dependencies**: %d\n", stats.TotalDependencies)
	fmt.Fprintf(&report, "- **Maximum Depth**: %d\n", stats.MaxDepth)
	fmt.Fprintf(&report, "- **Circular References**: %d\n", len(stats.CircularReferences))
	fmt.Fprintf(&report, "- **Orphaned Assets**: %d\n\n", len(stats.OrphanedAssets))

	if len(stats.MostReferenced) > 0 {
		report.WriteString("## Most Referenced Assets\n\n")
		for _, ref := range stats.MostReferenced {
			fmt.Fprintf(&report, "- **%s**: %d references\n", ref.Asset, ref.Count)
		}
		report.WriteString("\n")
	}

	if len(stats.CircularReferences) > 0 {
		report.WriteString("## Circular Dependencies\n\n")
		for _, cycle := range stats.CircularReferences {
			fmt.Fprintf(&report, "- %s\n", strings.Join(cycle, " -> "))
		}
		report.WriteString("\n")
	}

	if len(stats.OrphanedAssets) > 0 {
		report.WriteString("## Orphaned Assets\n\n")
		for _, asset := range stats.OrphanedAssets {
			fmt.Fprintf(&report, "- %s\n", asset)
		}
	}

	return report.String()
}
