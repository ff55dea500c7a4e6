package routing_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magicmap/routing"
)

// TestFindShortestPath_DuringPenalty runs route queries while the same graph
// is penalized in place. Run with -race.
func TestFindShortestPath_DuringPenalty(t *testing.T) {
	g := park(t)

	const rounds = 2000
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			r, err := routing.FindShortestPath(g, 1, 3)
			if !assert.NoError(t, err) {
				return
			}
			// The hop weights are one consistent snapshot of the 2→3 path.
			if r.Found {
				assert.Equal(t, 100.0, r.Hops[0].Weight)
				assert.Equal(t, r.Distance, r.Hops[0].Weight+r.Hops[1].Weight)
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, err := g.PenalizeInaccessible(float64(routing.BlockedWeight + i))
			if !assert.NoError(t, err) {
				return
			}
		}
	}()
	wg.Wait()

	e, err := g.Edge(2, 3)
	require.NoError(t, err)
	assert.Equal(t, float64(routing.BlockedWeight+rounds-1), e.Weight)
}
