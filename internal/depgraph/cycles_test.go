package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycles(t *testing.T) {
	t.Run("acyclic graph has none", func(t *testing.T) {
		m := mapOf(map[string][]string{
			"A": {"B", "C"},
			"B": {"C"},
		})
		assert.Empty(t, m.Cycles())
	})

	t.Run("three-node ring", func(t *testing.T) {
		m := mapOf(map[string][]string{
			"A": {"B"},
			"B": {"C"},
			"C": {"A"},
		})

		cycles := m.Cycles()
		require.Len(t, cycles, 1)
		assert.Equal(t, []string{"A", "B", "C"}, cycles[0])
	})

	t.Run("self-loop is a one-element cycle", func(t *testing.T) {
		m := mapOf(map[string][]string{"A": {"A"}})

		cycles := m.Cycles()
		require.Len(t, cycles, 1)
		assert.Equal(t, []string{"A"}, cycles[0])
	})

	t.Run("two back-edges yield two entries", func(t *testing.T) {
		m := mapOf(map[string][]string{
			"A": {"B"},
			"B": {"A", "C"},
			"C": {"A"},
		})

		cycles := m.Cycles()
		require.Len(t, cycles, 2)
		assert.Equal(t, []string{"A", "B"}, cycles[0])
		assert.Equal(t, []string{"A", "B", "C"}, cycles[1])
	})

	t.Run("resolved once explored", func(t *testing.T) {
		// D reaches the A-B ring, but the ring is already fully
		// explored when D is visited, so no new cycle is recorded.
		m := mapOf(map[string][]string{
			"A": {"B"},
			"B": {"A"},
			"D": {"A"},
		})

		cycles := m.Cycles()
		require.Len(t, cycles, 1)
		assert.Equal(t, []string{"A", "B"}, cycles[0])
	})
}
