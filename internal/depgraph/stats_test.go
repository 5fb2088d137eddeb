package depgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrphans(t *testing.T) {
	m := mapOf(map[string][]string{"A": {"B"}})

	// A has an outgoing edge, B an incoming one; only X is orphaned.
	assert.Equal(t, []string{"X"}, m.Orphans([]string{"A", "B", "X"}))
}

func TestOrphansKeepRosterOrder(t *testing.T) {
	m := New()
	assert.Equal(t, []string{"Z", "A", "M"}, m.Orphans([]string{"Z", "A", "M"}))
}

func TestMostReferenced(t *testing.T) {
	t.Run("ranking and truncation", func(t *testing.T) {
		m := mapOf(map[string][]string{
			"A": {"B", "C"},
			"D": {"B"},
		})

		ranked := m.MostReferenced(2)
		require.Len(t, ranked, 2)
		assert.Equal(t, RefCount{Asset: "B", Count: 2}, ranked[0])
		assert.Equal(t, RefCount{Asset: "C", Count: 1}, ranked[1])
	})

	t.Run("duplicate edges count twice before optimize", func(t *testing.T) {
		m := mapOf(map[string][]string{"A": {"B", "B"}})
		ranked := m.MostReferenced(5)
		require.Len(t, ranked, 1)
		assert.Equal(t, 2, ranked[0].Count)
	})

	t.Run("ties break lexicographically", func(t *testing.T) {
		m := mapOf(map[string][]string{
			"A": {"Zeta", "Alpha", "Mid"},
		})

		ranked := m.MostReferenced(10)
		assert.Equal(t, []RefCount{
			{Asset: "Alpha", Count: 1},
			{Asset: "Mid", Count: 1},
			{Asset: "Zeta", Count: 1},
		}, ranked)
	})
}

func TestStatistics(t *testing.T) {
	m := mapOf(map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
	})
	roster := []string{"A", "B", "C", "Orphan"}

	stats := m.Statistics(roster)

	assert.Equal(t, 3, stats.TotalDependencies)
	assert.Equal(t, 3, stats.MaxDepth) // A -> B -> C
	assert.Empty(t, stats.CircularReferences)
	assert.Equal(t, []string{"Orphan"}, stats.OrphanedAssets)
	require.NotEmpty(t, stats.MostReferenced)
	assert.Equal(t, RefCount{Asset: "C", Count: 2}, stats.MostReferenced[0])
}

func TestStatisticsCountsRawEdges(t *testing.T) {
	m := mapOf(map[string][]string{"A": {"B", "B"}})

	assert.Equal(t, 2, m.Statistics(nil).TotalDependencies)
	m.Optimize()
	assert.Equal(t, 1, m.Statistics(nil).TotalDependencies)
}

func TestAnalyze(t *testing.T) {
	m := mapOf(map[string][]string{
		"A": {"B"},
		"B": {"C"},
		"X": {"A"},
	})
	roster := []string{"A", "B", "C", "X"}

	analysis := m.Analyze("A", roster)

	assert.Equal(t, "A", analysis.AssetName)
	assert.Equal(t, []string{"B"}, analysis.DirectDependencies)
	assert.Equal(t, []string{"X"}, analysis.ReverseDependencies)
	require.NotNil(t, analysis.Statistics)

	wantTree := &Tree{
		Asset: "A",
		Dependencies: []*Tree{{
			Asset: "B",
			Depth: 1,
			Dependencies: []*Tree{{
				Asset:        "C",
				Depth:        2,
				Dependencies: []*Tree{},
			}},
		}},
	}
	if diff := cmp.Diff(wantTree, analysis.DependencyTree); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}
