// File: yens.go
// Role: Orchestrator for K shortest loopless paths (Yen with Lawler's
//       deviation resumption) and the KShortest convenience entry point.
// Determinism:
//   - Output is identical for every Concurrency value: each round's candidate
//     set depends only on the previous path and the accepted list, and the
//     queue pops by a total order.
// Concurrency:
//   - Compute is not reentrant on one *Yens; distinct values may run in parallel.

package yens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/csr"
	"github.com/katalvlaran/kpaths/dijkstra"
	"github.com/katalvlaran/kpaths/paths"
)

// Yens computes the K shortest loopless paths between two nodes of a csr.Graph.
type Yens struct {
	g       *csr.Graph
	cfg     Config
	logger  *slog.Logger
	tracker ProgressTracker
}

// New validates cfg against g.
//
// Errors:
//   - ErrNilGraph, ErrBadK, ErrBadConcurrency.
//   - ErrVertexNotFound: source or target index outside g.
//   - dijkstra.ErrNegativeWeight: g carries a negative weight.
func New(g *csr.Graph, cfg Config) (*Yens, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.K < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadK, cfg.K)
	}
	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadConcurrency, cfg.Concurrency)
	}
	n := g.NodeCount()
	if cfg.SourceNode < 0 || cfg.SourceNode >= n {
		return nil, fmt.Errorf("%w: source index %d", ErrVertexNotFound, cfg.SourceNode)
	}
	if cfg.TargetNode < 0 || cfg.TargetNode >= n {
		return nil, fmt.Errorf("%w: target index %d", ErrVertexNotFound, cfg.TargetNode)
	}
	if g.HasNegativeWeights() {
		return nil, fmt.Errorf("yens: %w", dijkstra.ErrNegativeWeight)
	}

	y := &Yens{g: g, cfg: cfg, logger: cfg.Logger, tracker: cfg.Tracker}
	if y.logger == nil {
		y.logger = slog.New(slog.DiscardHandler)
	}
	if y.tracker == nil {
		y.tracker = NoopTracker{}
	}

	return y, nil
}

// Compute runs the search.
//
// Implementation:
//   - Stage 1: Shortest path source→target; none means an empty result.
//   - Stage 2: Start Concurrency workers once.
//   - Stage 3: For k = 1..K-1, open the queue, let the workers deviate from
//     accepted[k-1] starting at the cursor, seal the queue after the barrier,
//     pop the cheapest candidate, rewind the cursor to its spur index and
//     accept it. An empty queue ends the search early.
//
// Cancellation of ctx is not an error: Compute returns the paths accepted so
// far with Result.Cancelled set.
//
// Errors:
//   - internal engine or queue faults, wrapped with the round number.
func (y *Yens) Compute(ctx context.Context) (*Result, error) {
	started := time.Now()
	res := &Result{RunID: uuid.NewString(), Graph: y.g}
	ctx, span := startComputeSpan(ctx, res.RunID, y.cfg, y.g.NodeCount())
	defer span.End()

	log := y.logger.With("run_id", res.RunID)
	log.Debug("yens: start",
		"source", y.g.NodeID(y.cfg.SourceNode),
		"target", y.g.NodeID(y.cfg.TargetNode),
		"k", y.cfg.K,
		"concurrency", y.cfg.Concurrency,
		"track_relationships", y.cfg.TrackRelationships,
	)
	y.tracker.Start(y.cfg.K)

	err := y.run(ctx, res, log)
	setComputeSpanResult(span, len(res.Paths), res.Cancelled, err)
	recordComputeMetrics(ctx, time.Since(started), len(res.Paths), res.Cancelled, err == nil)
	if err != nil {
		log.Error("yens: failed", "error", err, "accepted", len(res.Paths))
		return nil, err
	}
	y.tracker.Finish(len(res.Paths), res.Cancelled)
	log.Debug("yens: done", "paths", len(res.Paths), "rounds", res.Rounds,
		"spur_searches", res.SpurSearches, "cancelled", res.Cancelled,
		"elapsed", time.Since(started))

	return res, nil
}

func (y *Yens) run(ctx context.Context, res *Result, log *slog.Logger) error {
	first, err := dijkstra.NewEngine(y.g, y.cfg.TargetNode)
	if err != nil {
		return fmt.Errorf("yens: %w", err)
	}
	p, found, err := first.WithSourceNode(y.cfg.SourceNode).
		WithTrackRelationships(y.cfg.TrackRelationships).
		Compute(ctx)
	switch {
	case isCancellation(err):
		res.Cancelled = true
		return nil
	case err != nil:
		return fmt.Errorf("yens: first path: %w", err)
	case !found:
		log.Debug("yens: target unreachable")
		return nil
	}

	accepted := []paths.Path{p}
	res.Paths = append(res.Paths, RankedPath{Rank: 0, Path: p})
	if y.cfg.K == 1 {
		return nil
	}

	cursor := &spurCursor{}
	queue := newCandidateQueue()
	workers := make([]*spurWorker, y.cfg.Concurrency)
	for i := range workers {
		if workers[i], err = newSpurWorker(i, y.g, y.cfg, cursor, queue, y.tracker); err != nil {
			return err
		}
	}
	pool := startPool(ctx, workers)
	defer func() { _ = pool.stop() }()

	for k := 1; k < y.cfg.K; k++ {
		if ctx.Err() != nil {
			res.Cancelled = true
			return nil
		}
		previous := accepted[k-1]

		rctx, rspan := startRoundSpan(ctx, k, cursor.Peek(), previous.NodeCount()-1)
		queue.open()
		st, err := pool.runRound(roundTask{round: k, previous: previous, accepted: accepted})
		queue.seal()
		res.SpurSearches += st.spurSearches
		recordRoundMetrics(rctx, st.spurSearches, st.candidates)
		if err != nil {
			rspan.RecordError(err)
			rspan.End()
			return fmt.Errorf("yens: round %d: %w", k, err)
		}
		if ctx.Err() != nil {
			rspan.End()
			res.Cancelled = true
			return nil
		}

		c, ok, err := queue.Pop()
		rspan.End()
		if err != nil {
			return fmt.Errorf("yens: round %d: %w", k, err)
		}
		res.Rounds++
		y.tracker.RoundFinished(k, y.cfg.K, ok)
		if !ok {
			log.Debug("yens: candidates exhausted", "round", k)
			return nil
		}

		cursor.Reset(c.spurIndex)
		accepted = append(accepted, c.path)
		res.Paths = append(res.Paths, RankedPath{Rank: k, Path: c.path, SpurIndex: c.spurIndex})
	}

	return nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// KShortest freezes g and computes the K shortest loopless paths between
// the Source and Target options.
//
// Relationship tracking defaults to true for multigraphs.
//
// Errors:
//   - ErrOptionViolation (joined with ErrBadK / ErrBadConcurrency).
//   - ErrEmptySource, ErrEmptyTarget, ErrNilGraph, ErrVertexNotFound.
//   - dijkstra.ErrNegativeWeight.
func KShortest(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Source == "" {
		return nil, ErrEmptySource
	}
	if o.Target == "" {
		return nil, ErrEmptyTarget
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	snap, err := csr.FromCore(g)
	if err != nil {
		return nil, fmt.Errorf("yens: %w", err)
	}
	src, err := snap.Index(o.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, o.Source)
	}
	dst, err := snap.Index(o.Target)
	if err != nil {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, o.Target)
	}

	cfg := DefaultConfig(snap, src, dst)
	cfg.K = o.K
	cfg.Concurrency = o.Concurrency
	if o.TrackRelationships != nil {
		cfg.TrackRelationships = *o.TrackRelationships
	}
	cfg.Tracker = o.Tracker
	cfg.Logger = o.Logger

	y, err := New(snap, cfg)
	if err != nil {
		return nil, err
	}

	return y.Compute(ctx)
}
