// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors, NeighborIDs) and the private helpers
//       that keep adjacencyList consistent with the edge catalog.
// Determinism:
//   - Neighbors() orders edges by opposite endpoint, then by creation order.
//   - NeighborIDs() returns unique IDs in lexicographic order.
// Concurrency:
//   - Queries take muVert then muEdgeAdj read locks.
//   - Helpers assume the caller holds the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns the edges leaving id.
//
// Directed edges are included only when From == id; undirected edges are
// included from either endpoint. Use Opposite to resolve the far end.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d) for d incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil || (e.Directed && e.From != id) {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := out[i].Opposite(id), out[j].Opposite(id)
		if oi != oj {
			return oi < oj
		}

		return EdgeIDLess(out[i].ID, out[j].ID)
	})

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable from id over one edge.
//
// Errors:
//   - Propagated from Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(edges))
	for _, e := range edges {
		nb := e.Opposite(id)
		if len(out) == 0 || out[len(out)-1] != nb {
			out = append(out, nb)
		}
	}

	return out, nil
}

// Opposite returns the endpoint of e that is not id.
// For self-loops, and for ids not on e, it returns e.To.
func (e *Edge) Opposite(id string) string {
	if e.From == id {
		return e.To
	}
	if e.To == id {
		return e.From
	}

	return e.To
}

func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e from from→to and, for undirected non-loops, to→from.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(a, b string) {
		if m := g.adjacencyList[a][b]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[a], b)
			}
		}
	}
	unlink(e.From, e.To)
	if !e.Directed && e.From != e.To {
		unlink(e.To, e.From)
	}
}

// cleanupAdjacency prunes empty inner buckets. Top-level buckets of live
// vertices are kept so AddVertex invariants hold.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if _, live := g.vertices[u]; !live && len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
