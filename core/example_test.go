package core_test

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// ExampleGraph builds a small directed multigraph and inspects it.
func ExampleGraph() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())

	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 4)

	fmt.Println("Vertices:", g.Vertices())
	nbs, _ := g.Neighbors("A")
	for _, e := range nbs {
		fmt.Printf("%s %s→%s %.0f\n", e.ID, e.From, e.To, e.Weight)
	}
	fmt.Println("C→B exists?", g.HasEdge("C", "B"))

	// Output:
	// Vertices: [A B C]
	// e1 A→B 2
	// e2 A→B 1
	// C→B exists? false
}
