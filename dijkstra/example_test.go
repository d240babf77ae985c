package dijkstra_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/dijkstra"
)

// ExampleDijkstra computes distances on an undirected triangle; the detour
// A→B→C beats the direct A–C edge.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%g dist[B]=%g dist[C]=%g\n", dist["A"], dist["B"], dist["C"])
	fmt.Printf("prev[C]=%s\n", prev["C"])
	// Output:
	// dist[A]=0 dist[B]=1 dist[C]=3
	// prev[C]=B
}

// ExampleShortestPath returns a single path with per-node cumulative costs.
func ExampleShortestPath() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("s", "a", 2)
	_, _ = g.AddEdge("a", "t", 2)
	_, _ = g.AddEdge("s", "t", 5)

	p, ok, err := dijkstra.ShortestPath(context.Background(), g, "s", "t")
	if err != nil || !ok {
		fmt.Println("no path", err)
		return
	}
	fmt.Println(strings.Join(p.NodeIDs, "→"), p.Costs, p.EdgeIDs)
	// Output:
	// s→a→t [0 2 4] [e1 e2]
}
