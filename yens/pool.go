// File: pool.go
// Role: Fixed worker pool reused across rounds.
// Concurrency:
//   - One goroutine per worker, started once and supervised by an errgroup.
//   - Each round is dispatched on per-worker channels and joined on a
//     WaitGroup barrier; no worker outlives stop().
//   - The first worker error cancels the pool context so peers stop claiming.

package yens

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

type poolJob struct {
	task roundTask
	wg   *sync.WaitGroup
}

type workerPool struct {
	ctx     context.Context
	group   *errgroup.Group
	inboxes []chan poolJob

	mu    sync.Mutex
	stats roundStats
	err   error
}

// startPool launches one goroutine per worker.
func startPool(ctx context.Context, workers []*spurWorker) *workerPool {
	group, gctx := errgroup.WithContext(ctx)
	p := &workerPool{
		ctx:     gctx,
		group:   group,
		inboxes: make([]chan poolJob, len(workers)),
	}
	for i, w := range workers {
		inbox := make(chan poolJob, 1)
		p.inboxes[i] = inbox
		group.Go(func() error {
			for job := range inbox {
				st, err := w.runRound(gctx, job.task)
				p.record(st, err)
				job.wg.Done()
				if err != nil {
					return err
				}
			}
			return nil
		})
	}

	return p
}

func (p *workerPool) record(st roundStats, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats.spurSearches += st.spurSearches
	p.stats.candidates += st.candidates
	if err != nil && p.err == nil {
		p.err = err
	}
}

// runRound hands task to every worker and blocks until all of them have
// drained the cursor. It returns the round's counters and the first worker
// error, if any.
func (p *workerPool) runRound(task roundTask) (roundStats, error) {
	p.mu.Lock()
	p.stats = roundStats{}
	p.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(len(p.inboxes))
	for _, inbox := range p.inboxes {
		inbox <- poolJob{task: task, wg: &wg}
	}
	wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stats, p.err
}

// stop closes the inboxes and waits for every worker goroutine to exit.
func (p *workerPool) stop() error {
	for _, inbox := range p.inboxes {
		close(inbox)
	}

	return p.group.Wait()
}
