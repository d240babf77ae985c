package yens

import "sync/atomic"

// spurCursor hands out spur indices to workers. Claim is the only
// synchronization between workers inside a round; Reset is called by the
// orchestrator between rounds, never concurrently with Claim.
type spurCursor struct {
	next atomic.Int64
}

// Claim returns the next unclaimed index and advances the cursor.
func (c *spurCursor) Claim() int {
	return int(c.next.Add(1) - 1)
}

// Reset rewinds or advances the cursor so the next Claim returns to.
// Resetting to a candidate's spur index skips deviations already explored.
func (c *spurCursor) Reset(to int) {
	c.next.Store(int64(to))
}

// Peek returns the index the next Claim would return.
func (c *spurCursor) Peek() int {
	return int(c.next.Load())
}
