// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency: Clone takes read locks on the source; Clear takes both write locks.

package core

import "sync/atomic"

// Clone returns a deep copy of configuration, vertices, edges and adjacency.
// Edge IDs are preserved and the ID sequence carries over, so edges added to
// the clone never collide with copied ones.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := &Graph{
		directed:      g.directed,
		weighted:      g.weighted,
		allowMulti:    g.allowMulti,
		allowLoops:    g.allowLoops,
		allowMixed:    g.allowMixed,
		vertices:      make(map[string]*Vertex, len(g.vertices)),
		edges:         make(map[string]*Edge, len(g.edges)),
		adjacencyList: make(map[string]map[string]map[string]struct{}, len(g.adjacencyList)),
	}
	atomic.StoreUint64(&c.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: v.ID}
		c.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	for eid, e := range g.edges {
		ne := *e
		c.edges[eid] = &ne
		ensureAdjacency(c, e.From, e.To)
		c.adjacencyList[e.From][e.To][eid] = struct{}{}
		if !e.Directed && e.From != e.To {
			ensureAdjacency(c, e.To, e.From)
			c.adjacencyList[e.To][e.From][eid] = struct{}{}
		}
	}

	return c
}

// Clear removes all vertices and edges and restarts the edge ID sequence.
// Configuration flags are preserved.
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
