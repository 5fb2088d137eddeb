package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	t.Run("unions edges from all inputs", func(t *testing.T) {
		a := mapOf(map[string][]string{"A": {"B"}})
		b := mapOf(map[string][]string{"C": {"D"}})

		merged := Merge(a, b)

		assert.Equal(t, []string{"B"}, merged.Dependencies("A"))
		assert.Equal(t, []string{"D"}, merged.Dependencies("C"))
	})

	t.Run("normalizes the result", func(t *testing.T) {
		a := mapOf(map[string][]string{"A": {"B"}})
		b := mapOf(map[string][]string{"A": {"B"}})

		merged := Merge(a, b)

		assert.Equal(t, []string{"B"}, merged.Dependencies("A"))
	})

	t.Run("inputs stay untouched", func(t *testing.T) {
		a := mapOf(map[string][]string{"A": {"B", "B"}})

		Merge(a)

		assert.Equal(t, []string{"B", "B"}, a.Dependencies("A"))
	})
}

func TestFilterByName(t *testing.T) {
	m := mapOf(map[string][]string{
		"PlayerMesh":    {"PlayerSkin", "PlayerBones"},
		"EnemyMesh":     {"EnemySkin"},
		"MenuBackdrop":  {"UIShader"},
	})

	t.Run("case-insensitive substring match on sources", func(t *testing.T) {
		filtered := FilterByName(m, []string{"mesh"})

		require.Len(t, filtered.Deps, 2)
		assert.Equal(t, []string{"PlayerSkin", "PlayerBones"}, filtered.Dependencies("PlayerMesh"))
		assert.Equal(t, []string{"EnemySkin"}, filtered.Dependencies("EnemyMesh"))
	})

	t.Run("dependency lists are copied verbatim", func(t *testing.T) {
		// Targets are not filtered even when they miss every substring.
		filtered := FilterByName(m, []string{"backdrop"})
		assert.Equal(t, []string{"UIShader"}, filtered.Dependencies("MenuBackdrop"))
	})

	t.Run("no substrings keeps nothing", func(t *testing.T) {
		filtered := FilterByName(m, nil)
		assert.Empty(t, filtered.Deps)
	})
}

func TestMarkdownReport(t *testing.T) {
	m := mapOf(map[string][]string{
		"A": {"B"},
		"B": {"A"},
	})

	report := MarkdownReport(m, []string{"A", "B", "Orphan"})

	assert.Contains(t, report, "# Asset Dependency Report")
	assert.Contains(t, report, "**Total Dependencies**: 2")
	assert.Contains(t, report, "## Circular Dependencies")
	assert.Contains(t, report, "A -> B")
	assert.Contains(t, report, "## Orphaned Assets")
	assert.Contains(t, report, "- Orphan")
}
