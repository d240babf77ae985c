// File: candidates.go
// Role: Deduplicating min-priority queue of candidate paths.
// Determinism:
//   - Pop returns the minimum by paths.Compare, a total order, so the winner
//     does not depend on the order in which workers enqueued.
//   - A duplicate keeps the smaller spur index.
// Concurrency:
//   - OPEN phase: Add from any number of goroutines; Pop rejected.
//   - SEALED phase: Pop from a single reader; Add rejected.

package yens

import (
	"container/heap"
	"sync"

	"github.com/katalvlaran/kpaths/paths"
)

// candidate is a deviation path and the index at which it left its parent.
type candidate struct {
	path      paths.Path
	spurIndex int
}

type queuePhase uint8

const (
	phaseOpen queuePhase = iota
	phaseSealed
)

// candidateQueue keeps candidates across rounds; only the winner of each
// round is removed.
type candidateQueue struct {
	mu    sync.Mutex
	phase queuePhase
	items candidateHeap
	byKey map[string]*candidate
}

func newCandidateQueue() *candidateQueue {
	return &candidateQueue{byKey: make(map[string]*candidate)}
}

// open switches to the concurrent-write phase.
func (q *candidateQueue) open() {
	q.mu.Lock()
	q.phase = phaseOpen
	q.mu.Unlock()
}

// seal switches to the single-reader phase.
func (q *candidateQueue) seal() {
	q.mu.Lock()
	q.phase = phaseSealed
	q.mu.Unlock()
}

// Add enqueues c unless a structurally equal path is already queued.
// It reports whether c was inserted.
//
// Errors:
//   - ErrQueueSealed: called outside the OPEN phase.
func (q *candidateQueue) Add(c candidate) (bool, error) {
	key := c.path.Key()

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.phase != phaseOpen {
		return false, ErrQueueSealed
	}
	if prev, dup := q.byKey[key]; dup {
		if c.spurIndex < prev.spurIndex {
			prev.spurIndex = c.spurIndex
		}
		return false, nil
	}
	item := &c
	q.byKey[key] = item
	heap.Push(&q.items, item)

	return true, nil
}

// Pop removes and returns the minimum candidate.
//
// Errors:
//   - ErrQueueOpen: called during the OPEN phase.
func (q *candidateQueue) Pop() (candidate, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.phase != phaseSealed {
		return candidate{}, false, ErrQueueOpen
	}
	if len(q.items) == 0 {
		return candidate{}, false, nil
	}
	item := heap.Pop(&q.items).(*candidate)
	delete(q.byKey, item.path.Key())

	return *item, true, nil
}

// Len returns the number of queued candidates.
func (q *candidateQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// IsEmpty reports whether no candidate is queued.
func (q *candidateQueue) IsEmpty() bool { return q.Len() == 0 }

type candidateHeap []*candidate

func (h candidateHeap) Len() int { return len(h) }
func (h candidateHeap) Less(i, j int) bool {
	return paths.Compare(h[i].path, h[j].path) < 0
}
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x any) { *h = append(*h, x.(*candidate)) }
func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
