// Package core provides a thread-safe, in-memory Graph used as the
// mutable authoring model for kpaths.
//
// A Graph G = (V,E) is configured once with GraphOption flags:
//
//   - WithDirected: default orientation of new edges.
//   - WithWeighted: permits non-zero float64 weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//   - WithMultiEdges: permits parallel edges (required for edge-identity path tracking).
//   - WithLoops: permits self-loops.
//   - WithMixedEdges: honors per-edge WithEdgeDirected overrides.
//
// Storage uses nested maps, adjacencyList[from][to][edgeID] = struct{}{},
// with edge IDs generated atomically as "e1", "e2", ... so creation order is
// recoverable through EdgeIDLess.
//
// Two RWMutexes split the catalog: muVert guards vertices, muEdgeAdj guards
// edges and adjacency. Writers always lock muVert before muEdgeAdj.
//
// Enumeration is deterministic: Vertices() is sorted, Edges() follows creation
// order, Neighbors() orders by opposite endpoint then creation order. The csr
// package relies on these guarantees when it freezes a Graph for path search.
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph, or NaN
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed mode
package core
