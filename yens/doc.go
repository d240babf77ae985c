// Package yens computes the K shortest loopless paths between two vertices
// using Yen's algorithm with Lawler's deviation resumption, parallelized
// across spur nodes.
//
// What:
//
//   - Rank 0 is the plain shortest path. Each later rank is the cheapest
//     deviation of an accepted path that is not already accepted.
//   - A deviation at spur index i keeps the first i+1 nodes of the previous
//     path (the root), forbids the relationships that earlier accepted paths
//     with the same root took out of the spur node, excludes the root nodes
//     before the spur node, and searches spur node → target.
//   - Lawler: after a candidate with spur index s is accepted, the next round
//     only deviates at indices ≥ s; earlier deviations are already queued.
//
// How:
//
//   - A fixed pool of Concurrency workers is started once per Compute and
//     reused for every round. Workers claim spur indices from a shared atomic
//     cursor; each owns a dijkstra.Engine over csr.Graph.ConcurrentCopy.
//   - Candidates go into a deduplicating queue that persists across rounds.
//     It is open for concurrent Add during a round and sealed for Pop after
//     the round barrier.
//   - The queue pops by (cost, hop count, node indices, relationship keys), so
//     the output is the same for every Concurrency value.
//   - On multigraphs the filter forbids individual relationships (ByEdgeID)
//     and paths carry relationship keys; on simple graphs it forbids target
//     nodes (ByTargetNode).
//
// Entry points:
//
//   - KShortest(ctx, *core.Graph, opts...): freezes the graph and runs.
//   - New(*csr.Graph, Config) + Compute(ctx): for callers that already hold
//     a snapshot and dense indices.
//
// Options (KShortest):
//
//   - Source(id), Target(id):        required endpoints.
//   - WithK(k):                      number of paths (k ≥ 1).
//   - WithConcurrency(n):            number of spur workers (n ≥ 1).
//   - WithTrackRelationships(bool):  override the multigraph default.
//   - WithProgressTracker(t):        progress callbacks.
//   - WithLogger(l):                 structured logs.
//
// Cancellation:
//
//   - Cancelling ctx stops the workers and returns the ranks accepted so far
//     with Result.Cancelled set and a nil error.
//
// Telemetry:
//
//   - Spans "yens.Compute" and "yens.round" and the yens_* metrics are
//     emitted through the global OpenTelemetry providers.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrEmptySource, ErrEmptyTarget, ErrVertexNotFound,
//     ErrBadK, ErrBadConcurrency, ErrOptionViolation,
//     dijkstra.ErrNegativeWeight.
package yens
