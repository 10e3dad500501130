package usecase

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionSetScenario(t *testing.T) {
	s := NewSelectionSet()
	for _, id := range []string{"A", "B", "C", "D"} {
		assert.True(t, s.Add(id))
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, s.IDs())
	assert.True(t, s.Full())

	assert.False(t, s.Add("E"))
	assert.Equal(t, []string{"A", "B", "C", "D"}, s.IDs())

	assert.True(t, s.Remove("B"))
	assert.Equal(t, []string{"A", "C", "D"}, s.IDs())
}

func TestSelectionSetAddIsIdempotent(t *testing.T) {
	s := NewSelectionSet("A", "B")
	assert.False(t, s.Add("A"))
	assert.Equal(t, []string{"A", "B"}, s.IDs())
}

func TestSelectionSetRemoveMissingIsNoop(t *testing.T) {
	s := NewSelectionSet("A")
	assert.False(t, s.Remove("Z"))
	assert.Equal(t, 1, s.Len())
}

func TestSelectionSetIDsIsACopy(t *testing.T) {
	s := NewSelectionSet("A", "B")
	ids := s.IDs()
	ids[0] = "X"
	assert.Equal(t, []string{"A", "B"}, s.IDs())
}

func TestSelectionSetClear(t *testing.T) {
	s := NewSelectionSet("A", "B", "C")
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []string{}, s.IDs())
	assert.True(t, s.Add("A"))
}

func TestSelectionSetInvariantsUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewSelectionSet()
	for i := 0; i < 2000; i++ {
		id := fmt.Sprintf("p%d", rng.Intn(8))
		if rng.Intn(3) == 0 {
			s.Remove(id)
		} else {
			s.Add(id)
		}
		ids := s.IDs()
		if len(ids) > MaxCompare {
			t.Fatalf("step %d: len %d > %d", i, len(ids), MaxCompare)
		}
		seen := map[string]bool{}
		for _, v := range ids {
			if seen[v] {
				t.Fatalf("step %d: duplicate %s in %v", i, v, ids)
			}
			seen[v] = true
		}
	}
}
