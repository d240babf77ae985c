// File: api.go
// Role: Read-only accessors for Graph configuration and a statistics snapshot.
// Concurrency: configuration flags are immutable after NewGraph; Stats takes
// muVert then muEdgeAdj (read locks) in the canonical order.

package core

// Directed reports whether new edges default to directed.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph accepts non-zero edge weights.
func (g *Graph) Weighted() bool { return g.weighted }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// MixedEdges reports whether per-edge directedness overrides are honored.
func (g *Graph) MixedEdges() bool { return g.allowMixed }

// Stats returns a snapshot of configuration flags and catalog sizes.
//
// Complexity: O(E) to split directed from undirected edges.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	vc := len(g.vertices)
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := &GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     vc,
		EdgeCount:       len(g.edges),
	}
	for _, e := range g.edges {
		if e.Directed {
			s.DirectedEdgeCount++
		} else {
			s.UndirectedEdgeCount++
		}
	}

	return s
}
