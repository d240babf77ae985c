// Package paths defines Path, the immutable value that flows between the
// shortest-path engine and the K-shortest-paths orchestrator.
//
// A Path stores dense node indices, optional per-source relationship keys and
// cumulative costs. Splitting (SubPath, Slice) and joining (Append) never
// mutate the receiver; rank and spur position live in wrapper types owned by
// the caller.
//
// Identity is structural: Equal and Key consider node indices and
// relationship keys only. Compare adds cost and hop count in front of that to
// produce a deterministic total order.
package paths
