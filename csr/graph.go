// File: graph.go
// Role: Frozen compressed-sparse-row view of a core.Graph with dense indices.
// Determinism:
//   - Node indices follow lexicographic vertex ID order.
//   - Relationships of a node are ordered by target index, then by edge
//     creation order; the local key of a relationship is its offset in that
//     order, so keys and targets ascend together.
// Concurrency:
//   - Immutable after FromCore; every method is safe for concurrent use.

package csr

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kpaths/core"
)

var (
	// ErrNilGraph indicates FromCore was called with a nil graph.
	ErrNilGraph = errors.New("csr: graph is nil")

	// ErrUnknownNode indicates an identifier absent from the graph.
	ErrUnknownNode = errors.New("csr: unknown node")
)

// Graph is an immutable adjacency snapshot.
//
// Relationships of node u occupy [offsets[u], offsets[u+1]) in targets,
// weights and edgeIDs.
type Graph struct {
	ids     []string
	index   map[string]int
	offsets []int
	targets []int
	weights []float64
	edgeIDs []string

	multi    bool
	negative bool
	directed bool
}

// FromCore freezes g. Unweighted graphs get unit cost on every relationship.
// Undirected edges appear in the adjacency of both endpoints.
//
// Errors:
//   - ErrNilGraph: g == nil.
//   - errors from core.Graph.Neighbors (wrapped) if g mutates concurrently.
//
// Complexity: O(V log V + E log d).
func FromCore(g *core.Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	ids := g.Vertices()
	out := &Graph{
		ids:      ids,
		index:    make(map[string]int, len(ids)),
		offsets:  make([]int, len(ids)+1),
		multi:    g.Multigraph(),
		directed: g.Directed(),
	}
	for i, id := range ids {
		out.index[id] = i
	}

	weighted := g.Weighted()
	for u, id := range ids {
		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("csr: Neighbors(%s): %w", id, err)
		}
		prev := -1
		for _, e := range edges {
			v, ok := out.index[e.Opposite(id)]
			if !ok {
				return nil, fmt.Errorf("csr: edge %s: %w", e.ID, ErrUnknownNode)
			}
			w := 1.0
			if weighted {
				w = e.Weight
			}
			if w < 0 {
				out.negative = true
			}
			if v == prev {
				out.multi = true
			}
			prev = v
			out.targets = append(out.targets, v)
			out.weights = append(out.weights, w)
			out.edgeIDs = append(out.edgeIDs, e.ID)
		}
		out.offsets[u+1] = len(out.targets)
	}

	return out, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.ids) }

// RelationshipCount returns the number of adjacency entries. An undirected
// edge counts once per endpoint.
func (g *Graph) RelationshipCount() int { return len(g.targets) }

// Degree returns the number of relationships leaving node.
func (g *Graph) Degree(node int) int { return g.offsets[node+1] - g.offsets[node] }

// IsMultiGraph reports whether parallel relationships are permitted or present.
func (g *Graph) IsMultiGraph() bool { return g.multi }

// IsDirected reports the default orientation of the source graph.
func (g *Graph) IsDirected() bool { return g.directed }

// HasNegativeWeights reports whether any relationship has a negative weight.
func (g *Graph) HasNegativeWeights() bool { return g.negative }

// ForEachRelationship calls fn for every relationship leaving node in
// ascending key order, stopping early when fn returns false.
func (g *Graph) ForEachRelationship(node int, fn func(source, target, key int, weight float64) bool) {
	start, end := g.offsets[node], g.offsets[node+1]
	for i := start; i < end; i++ {
		if !fn(node, g.targets[i], i-start, g.weights[i]) {
			return
		}
	}
}

// Relationship returns the target and weight of the relationship with local
// key at source.
func (g *Graph) Relationship(source, key int) (target int, weight float64, ok bool) {
	if source < 0 || source >= len(g.ids) || key < 0 || key >= g.Degree(source) {
		return 0, 0, false
	}
	i := g.offsets[source] + key

	return g.targets[i], g.weights[i], true
}

// ConcurrentCopy returns a handle safe for exclusive use by one goroutine.
// The snapshot is immutable, so copies share backing storage.
func (g *Graph) ConcurrentCopy() *Graph {
	c := *g

	return &c
}

// NodeID returns the vertex identifier of a dense index.
func (g *Graph) NodeID(node int) string { return g.ids[node] }

// Index returns the dense index of a vertex identifier.
func (g *Graph) Index(id string) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return i, nil
}

// EdgeID returns the core edge ID of the relationship with local key at source.
func (g *Graph) EdgeID(source, key int) string {
	return g.edgeIDs[g.offsets[source]+key]
}

// Weight sums relationship weights along a node/key walk; it reports false
// when a key does not lead to the next node.
func (g *Graph) Weight(nodes, keys []int) (float64, bool) {
	if len(keys) != len(nodes)-1 {
		return 0, false
	}
	var total float64
	for i, key := range keys {
		t, w, ok := g.Relationship(nodes[i], key)
		if !ok || t != nodes[i+1] {
			return 0, false
		}
		total += w
	}

	return total, true
}

// MinWeight returns the cheapest relationship weight from source to target,
// or +Inf when none exists.
func (g *Graph) MinWeight(source, target int) float64 {
	best := math.Inf(1)
	g.ForEachRelationship(source, func(_, t, _ int, w float64) bool {
		if t == target && w < best {
			best = w
		}

		return t <= target
	})

	return best
}
