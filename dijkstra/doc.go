// Package dijkstra implements Dijkstra's shortest-path algorithm for graphs
// with non-negative edge weights.
//
// Two layers are provided:
//
//   - Engine: a reusable search over a csr.Graph addressed by dense node
//     indices. It accepts a RelationshipFilter, a set of excluded nodes and an
//     optional target, and keeps its distance/predecessor buffers between
//     runs so repeated searches (one per spur node in Yen's algorithm) only
//     pay for the nodes they touch. Excluded and settled sets are roaring
//     bitmaps; the frontier is a lazy decrease-key binary heap ordered by
//     (distance, node index).
//   - Dijkstra / ShortestPath: convenience entry points over a core.Graph that
//     freeze it into a csr snapshot and run the Engine.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per search.
//   - Space: O(V + E); the heap holds up to E entries under lazy decrease-key.
//
// Options (Dijkstra):
//
//   - Source(id):               required starting vertex.
//   - WithReturnPath():         also return the predecessor map.
//   - WithMaxDistance(x):       stop exploring beyond x (x ≥ 0, panics otherwise).
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are walls (t > 0, panics otherwise).
//   - WithContext(ctx):         cancellation, checked every 1024 heap pops.
//
// Errors (sentinel):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
//     ErrNegativeWeight, ErrBadMaxDistance, ErrBadInfThreshold, ErrNodeOutOfRange.
//
// Unreachable vertices report +Inf distance (see Unreachable).
package dijkstra
