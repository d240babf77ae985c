package dijkstra

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/csr"
	"github.com/katalvlaran/kpaths/paths"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//   - dist: vertex ID → minimum distance, +Inf when unreachable.
//   - prev: vertex ID → predecessor on one shortest path ("" for the source and
//     unreachable vertices); nil unless WithReturnPath is set.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge may carry a negative weight (ErrNegativeWeight).
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	snap, err := csr.FromCore(g)
	if err != nil {
		return nil, nil, fmt.Errorf("dijkstra: %w", err)
	}
	src, err := snap.Index(cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, err)
	}

	eng, err := NewEngine(snap, NoTarget)
	if err != nil {
		return nil, nil, err
	}
	eng.WithSourceNode(src).WithMaxDistance(cfg.MaxDistance).WithInfEdgeThreshold(cfg.InfEdgeThreshold)

	ctx := cfg.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if _, _, err = eng.Compute(ctx); err != nil {
		return nil, nil, err
	}

	n := snap.NodeCount()
	dist := make(map[string]float64, n)
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, n)
	}
	for v := 0; v < n; v++ {
		id := snap.NodeID(v)
		dist[id] = eng.Distance(v)
		if prev == nil {
			continue
		}
		prev[id] = ""
		if p, ok := eng.Predecessor(v); ok {
			prev[id] = snap.NodeID(p)
		}
	}

	return dist, prev, nil
}

// ShortestPath returns the single cheapest path from source to target,
// with relationship keys recorded.
//
// Errors:
//   - ErrEmptySource, ErrEmptyTarget, ErrNilGraph, ErrVertexNotFound,
//     ErrNegativeWeight.
//   - ctx.Err() on cancellation.
//
// The boolean is false when target is unreachable.
func ShortestPath(ctx context.Context, g *core.Graph, source, target string) (paths.PathResult, bool, error) {
	if source == "" {
		return paths.PathResult{}, false, ErrEmptySource
	}
	if target == "" {
		return paths.PathResult{}, false, ErrEmptyTarget
	}
	if g == nil {
		return paths.PathResult{}, false, ErrNilGraph
	}
	snap, err := csr.FromCore(g)
	if err != nil {
		return paths.PathResult{}, false, fmt.Errorf("dijkstra: %w", err)
	}
	s, err := snap.Index(source)
	if err != nil {
		return paths.PathResult{}, false, fmt.Errorf("%w: %v", ErrVertexNotFound, err)
	}
	t, err := snap.Index(target)
	if err != nil {
		return paths.PathResult{}, false, fmt.Errorf("%w: %v", ErrVertexNotFound, err)
	}

	eng, err := NewEngine(snap, t)
	if err != nil {
		return paths.PathResult{}, false, err
	}
	p, ok, err := eng.WithSourceNode(s).WithTrackRelationships(true).Compute(ctx)
	if err != nil || !ok {
		return paths.PathResult{}, false, err
	}

	return p.Result(0, snap), true, nil
}

// Unreachable reports whether d denotes an unreachable vertex in Dijkstra output.
func Unreachable(d float64) bool { return math.IsInf(d, 1) }
