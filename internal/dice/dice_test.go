package dice

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollStaysInRange(t *testing.T) {
	roller := New(&Config{Seed: 42})

	for _, sides := range []int{1, 2, 6, 20} {
		for i := 0; i < 500; i++ {
			value := roller.Roll(sides)
			require.GreaterOrEqual(t, value, 1)
			require.LessOrEqual(t, value, sides)
		}
	}
}

func TestRollDefaultsToSixSides(t *testing.T) {
	roller := New(nil)

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		value := roller.Roll(0)
		require.GreaterOrEqual(t, value, 1)
		require.LessOrEqual(t, value, 6)
		seen[value] = true
	}
	assert.Len(t, seen, 6)
}

func TestSeedIsDeterministic(t *testing.T) {
	first := New(&Config{Seed: 7})
	second := New(&Config{Seed: 7})

	for i := 0; i < 50; i++ {
		assert.Equal(t, first.Roll(6), second.Roll(6))
	}
}

func TestConcurrentRolls(t *testing.T) {
	roller := New(&Config{Seed: 1})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				value := roller.Roll(6)
				if value < 1 || value > 6 {
					t.Errorf("roll out of range: %d", value)
				}
			}
		}()
	}
	wg.Wait()
}
