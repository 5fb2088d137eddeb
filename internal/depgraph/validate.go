package depgraph

import (
	"fmt"
	"slices"
	"strings"
)

// Validate runs the lightweight consistency checks and returns one
// human-readable line per finding. It never fails; an empty slice means a
// clean map. Findings are advisory: self-references and cycles are legal
// graph states the caller may still want to surface, and empty lists
// should not exist after normalization.
func (m *Map) Validate() []string {
	issues := []string{}

	for _, asset := range m.sortedKeys() {
		if slices.Contains(m.Deps[asset], asset) {
			issues = append(issues, fmt.Sprintf("Self-reference detected: %s depends on itself", asset))
		}
	}

	for _, cycle := range m.Cycles() {
		issues = append(issues, fmt.Sprintf("Circular dependency detected: %s", strings.Join(cycle, " -> ")))
	}

	for _, asset := range m.sortedKeys() {
		if len(m.Deps[asset]) == 0 {
			issues = append(issues, fmt.Sprintf("Asset %s has empty dependency list", asset))
		}
	}

	return issues
}
