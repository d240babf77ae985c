package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls on a multigraph
// produce unique IDs and every edge is visible afterwards.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	const num = 200
	errs := make(chan error, num)
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge(VertexX, fmt.Sprintf("V%d", id%20), 0)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(VertexX)
	require.NoError(t, err)
	require.Len(t, nbs, num)

	seen := make(map[string]struct{}, num)
	for _, e := range nbs {
		seen[e.ID] = struct{}{}
	}
	require.Len(t, seen, num, "edge IDs must be unique")
}

// TestConcurrentReadersAndWriters mixes queries with mutations; run with -race.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("Base", fmt.Sprintf("V%d", id), float64(id))
		}(i)
		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_ = g.RemoveEdge(e.ID)
			}
		}()
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors("Base")
			_ = g.Vertices()
			_ = g.Stats()
		}()
	}
	wg.Wait()

	require.True(t, g.HasVertex("Base"))
}
