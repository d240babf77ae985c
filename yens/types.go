package yens

import (
	"errors"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/kpaths/csr"
	"github.com/katalvlaran/kpaths/paths"
)

// Sentinel errors returned by the yens package.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("yens: graph is nil")

	// ErrEmptySource indicates that no source vertex was given.
	ErrEmptySource = errors.New("yens: source vertex ID is empty")

	// ErrEmptyTarget indicates that no target vertex was given.
	ErrEmptyTarget = errors.New("yens: target vertex ID is empty")

	// ErrVertexNotFound indicates a source or target absent from the graph.
	ErrVertexNotFound = errors.New("yens: vertex not found")

	// ErrBadK indicates K < 1.
	ErrBadK = errors.New("yens: k must be at least 1")

	// ErrBadConcurrency indicates a worker count < 1.
	ErrBadConcurrency = errors.New("yens: concurrency must be at least 1")

	// ErrOptionViolation wraps an invalid value passed to an Option.
	ErrOptionViolation = errors.New("yens: invalid option")

	// ErrQueueSealed indicates an Add after the candidate queue was sealed.
	ErrQueueSealed = errors.New("yens: candidate queue is sealed")

	// ErrQueueOpen indicates a Pop while the candidate queue still accepts writes.
	ErrQueueOpen = errors.New("yens: candidate queue is open")
)

// Config fully describes one computation over a csr.Graph.
type Config struct {
	// SourceNode and TargetNode are dense csr indices.
	SourceNode int
	TargetNode int

	// K is the number of paths requested (≥ 1).
	K int

	// Concurrency is the number of spur workers (≥ 1).
	Concurrency int

	// TrackRelationships records relationship keys on paths and selects the
	// ByEdgeID filter strategy. It must be true for graphs with parallel
	// relationships.
	TrackRelationships bool

	// Tracker receives progress callbacks; nil means NoopTracker.
	Tracker ProgressTracker

	// Logger receives structured logs; nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a Config for g with K=1, one worker per CPU and
// relationship tracking enabled exactly when g is a multigraph.
func DefaultConfig(g *csr.Graph, source, target int) Config {
	return Config{
		SourceNode:         source,
		TargetNode:         target,
		K:                  1,
		Concurrency:        runtime.GOMAXPROCS(0),
		TrackRelationships: g != nil && g.IsMultiGraph(),
	}
}

// Options configures KShortest, which works with vertex IDs of a core.Graph.
type Options struct {
	Source      string
	Target      string
	K           int
	Concurrency int

	// TrackRelationships overrides the multigraph-based default when non-nil.
	TrackRelationships *bool

	Tracker ProgressTracker
	Logger  *slog.Logger

	err error
}

// Option represents a functional option for configuring KShortest.
type Option func(*Options)

// Source sets the start vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the destination vertex ID.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithK sets the number of paths to compute. k < 1 is recorded as an
// ErrOptionViolation.
func WithK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.fail(ErrBadK)
			return
		}
		o.K = k
	}
}

// WithConcurrency sets the number of spur workers. n < 1 is recorded as an
// ErrOptionViolation.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(ErrBadConcurrency)
			return
		}
		o.Concurrency = n
	}
}

// WithTrackRelationships forces relationship tracking on or off.
func WithTrackRelationships(track bool) Option {
	return func(o *Options) { o.TrackRelationships = &track }
}

// WithProgressTracker installs progress callbacks.
func WithProgressTracker(t ProgressTracker) Option {
	return func(o *Options) { o.Tracker = t }
}

// WithLogger installs a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = errors.Join(ErrOptionViolation, err)
	}
}

// DefaultOptions returns Options with K=1 and one worker per CPU.
func DefaultOptions() Options {
	return Options{K: 1, Concurrency: runtime.GOMAXPROCS(0)}
}

// RankedPath is an accepted path with its position in the result.
type RankedPath struct {
	Rank int
	Path paths.Path
	// SpurIndex is the position in the previous rank where Path deviates;
	// the next round resumes there. 0 for rank 0.
	SpurIndex int
}

// Result is the outcome of a computation.
//
// Paths is ordered by rank with non-decreasing total cost. When Cancelled is
// true it holds the ranks accepted before cancellation.
type Result struct {
	Paths     []RankedPath
	Cancelled bool
	RunID     string

	// Graph is the snapshot the paths index into.
	Graph *csr.Graph

	// Rounds is the number of completed deviation rounds.
	Rounds int
	// SpurSearches is the number of shortest-path searches run by workers.
	SpurSearches int64
}

// PathResults converts the ranked paths into their external shape, mapping
// indices back through r.Graph.
func (r *Result) PathResults() []paths.PathResult {
	out := make([]paths.PathResult, len(r.Paths))
	for i, rp := range r.Paths {
		out[i] = rp.Path.Result(rp.Rank, r.Graph)
	}

	return out
}
