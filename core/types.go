// SPDX-License-Identifier: MIT
// Package core holds the mutable graph that K shortest paths searches run on:
// string vertex IDs, float64 edge weights and sequential edge IDs that stay
// stable for the lifetime of a Graph.
//
// Two RW locks split the state: muVert guards the vertex catalog, muEdgeAdj
// guards edges and adjacency. Code that needs both takes muVert first.
package core

import (
	"errors"
	"sync"
)

var (
	// ErrEmptyVertexID is returned for the empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound is returned when an ID names no vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound is returned when an ID names no edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight is returned for a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed is returned for a self-loop unless WithLoops was set.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed is returned for a parallel edge unless
	// WithMultiEdges was set.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed is returned for a per-edge direction override
	// unless WithMixedEdges was set.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex is a node of the graph. Snapshots order vertices by ID.
type Vertex struct {
	ID string
}

// Edge is a relationship between two vertices. IDs are "e1", "e2", … in
// insertion order; csr snapshots keep that order among parallel edges, and
// path results map relationship keys back to these IDs.
type Edge struct {
	ID       string
	From     string
	To       string
	Weight   float64 // path cost contribution; 0 on unweighted graphs
	Directed bool    // false: traversable in both directions
}

// GraphOption configures a Graph in NewGraph.
type GraphOption func(g *Graph)

// WithDirected sets the direction of edges added without an override.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted enables edge weights. Without it every edge has weight 0 and
// searches count hops.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges allows parallel edges. Searches over such graphs track
// relationships by default so parallel edges yield distinct paths.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops allows self-loops. Loopless path searches never traverse them.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges honors WithEdgeDirected on individual edges.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures a single edge in AddEdge.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the graph's default direction for one edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is a thread-safe in-memory graph. Flags are fixed by NewGraph.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool
	allowMixed bool

	nextEdgeID uint64 // atomic
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacencyList[from][to] is the set of edge IDs leading from→to.
	// Undirected edges appear under both endpoints.
	adjacencyList map[string]map[string]map[string]struct{}
}

// GraphStats summarizes a Graph; the CLI logs it after loading.
type GraphStats struct {
	DirectedDefault bool
	Weighted        bool
	AllowsMulti     bool
	AllowsLoops     bool
	MixedMode       bool

	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}

// NewGraph returns an empty undirected, unweighted graph with loops and
// parallel edges disallowed, then applies opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
