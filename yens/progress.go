package yens

import (
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// ProgressTracker observes a computation. SpurSearch is called from worker
// goroutines concurrently; the other hooks run on the orchestrator goroutine.
type ProgressTracker interface {
	// Start is called once before the first path is searched.
	Start(k int)
	// SpurSearch is called after every spur search.
	SpurSearch(round, spurIndex int, found bool)
	// RoundFinished is called after round k accepted a path, or found none.
	RoundFinished(round, k int, accepted bool)
	// Finish is called once with the number of paths returned.
	Finish(found int, cancelled bool)
}

// NoopTracker ignores every event.
type NoopTracker struct{}

func (NoopTracker) Start(int) {}
func (NoopTracker) SpurSearch(int, int, bool) {}
func (NoopTracker) RoundFinished(int, int, bool) {}
func (NoopTracker) Finish(int, bool) {}

// LogTracker reports progress through slog. Per-spur messages are logged at
// debug level and throttled so large searches do not flood the log.
type LogTracker struct {
	logger  *slog.Logger
	limiter *rate.Limiter
}

// NewLogTracker returns a tracker that logs to l and emits at most spursPerSec
// spur-search messages per second. spursPerSec ≤ 0 disables them.
func NewLogTracker(l *slog.Logger, spursPerSec float64) *LogTracker {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	t := &LogTracker{logger: l}
	if spursPerSec > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(spursPerSec), 1)
	}

	return t
}

func (t *LogTracker) Start(k int) {
	t.logger.Info("Yens :: Start", "k", k, "at", time.Now().UTC())
}

func (t *LogTracker) SpurSearch(round, spurIndex int, found bool) {
	if t.limiter != nil && t.limiter.Allow() {
		t.logger.Debug("Dijkstra for spur node", "round", round, "spur_index", spurIndex, "found", found)
	}
}

func (t *LogTracker) RoundFinished(round, k int, accepted bool) {
	t.logger.Info("Yens :: round", "progress", formatRound(round, k), "accepted", accepted)
}

func (t *LogTracker) Finish(found int, cancelled bool) {
	t.logger.Info("Yens :: Finished", "paths", found, "cancelled", cancelled)
}

func formatRound(round, k int) string {
	return "k " + strconv.Itoa(round+1) + " of " + strconv.Itoa(k)
}
