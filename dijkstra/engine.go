// File: engine.go
// Role: Reusable single-pair shortest-path engine over a csr.Graph.
// Determinism:
//   - The heap orders by (distance, node index); relaxation only accepts
//     strictly shorter distances, so equal-cost ties resolve to the first
//     relationship seen in ascending key order.
// Concurrency:
//   - An Engine is owned by one goroutine. Several engines may share one
//     csr.Graph snapshot.

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/kpaths/csr"
	"github.com/katalvlaran/kpaths/paths"
)

// NoTarget makes Compute run to exhaustion instead of stopping at a target.
const NoTarget = -1

// cancelCheckInterval is the number of heap pops between context checks.
const cancelCheckInterval = 1024

// RelationshipFilter vetoes relationships during relaxation. It is called for
// every relationship leaving an expanded node, in ascending key order, before
// any other admission check. Returning false skips the relationship.
type RelationshipFilter func(source, target, key int) bool

// Engine runs Dijkstra searches and keeps its buffers between runs, so a
// worker performing many spur searches allocates only on its first run.
//
// Excluded nodes (WithVisited) are never entered; they survive Compute and are
// cleared by ResetTraversalState.
type Engine struct {
	g      *csr.Graph
	target int
	source int

	filter  RelationshipFilter
	track   bool
	maxDist float64
	wall    float64

	excluded *roaring.Bitmap
	settled  *roaring.Bitmap

	dist     []float64
	prevNode []int
	prevKey  []int
	touched  []int
	pq       nodePQ
}

// NewEngine prepares an engine over g that stops when target is settled.
// Pass NoTarget to compute distances to every reachable node.
//
// Errors:
//   - ErrNilGraph: g == nil.
//   - ErrNegativeWeight: g carries a negative relationship weight.
//   - ErrNodeOutOfRange: target is neither NoTarget nor a node of g.
func NewEngine(g *csr.Graph, target int) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.HasNegativeWeights() {
		return nil, ErrNegativeWeight
	}
	n := g.NodeCount()
	if target != NoTarget && (target < 0 || target >= n) {
		return nil, fmt.Errorf("%w: target %d of %d", ErrNodeOutOfRange, target, n)
	}

	e := &Engine{
		g:        g,
		target:   target,
		maxDist:  math.Inf(1),
		wall:     math.Inf(1),
		excluded: roaring.New(),
		settled:  roaring.New(),
		dist:     make([]float64, n),
		prevNode: make([]int, n),
		prevKey:  make([]int, n),
	}
	for i := range e.dist {
		e.dist[i] = math.Inf(1)
		e.prevNode[i] = -1
	}

	return e, nil
}

// WithSourceNode sets the node the next Compute starts from.
func (e *Engine) WithSourceNode(node int) *Engine {
	e.source = node
	return e
}

// WithRelationshipFilter installs f; nil removes the filter.
func (e *Engine) WithRelationshipFilter(f RelationshipFilter) *Engine {
	e.filter = f
	return e
}

// WithVisited excludes nodes from every following Compute until ResetTraversalState.
func (e *Engine) WithVisited(nodes ...int) *Engine {
	for _, n := range nodes {
		e.excluded.Add(uint32(n))
	}
	return e
}

// WithTrackRelationships records relationship keys on returned paths.
func (e *Engine) WithTrackRelationships(track bool) *Engine {
	e.track = track
	return e
}

// WithMaxDistance stops exploring beyond max.
func (e *Engine) WithMaxDistance(max float64) *Engine {
	e.maxDist = max
	return e
}

// WithInfEdgeThreshold treats relationships with weight ≥ threshold as absent.
func (e *Engine) WithInfEdgeThreshold(threshold float64) *Engine {
	e.wall = threshold
	return e
}

// ResetTraversalState clears excluded nodes and all search buffers.
// The source, filter and tracking flag are kept.
func (e *Engine) ResetTraversalState() {
	e.excluded.Clear()
	e.resetSearch()
}

func (e *Engine) resetSearch() {
	for _, n := range e.touched {
		e.dist[n] = math.Inf(1)
		e.prevNode[n] = -1
	}
	e.touched = e.touched[:0]
	e.settled.Clear()
	e.pq = e.pq[:0]
}

// Compute searches from the configured source.
//
// With a target it returns the shortest path and true, or false when the
// target is unreachable. With NoTarget it returns the single-node source path
// and true; use Distance and PathTo to read the full tree.
//
// Errors:
//   - ErrNodeOutOfRange: source outside the graph.
//   - ctx.Err(): the context was cancelled (checked every 1024 pops).
//
// Complexity: O((V + E) log V) per call, with buffers reused across calls.
func (e *Engine) Compute(ctx context.Context) (paths.Path, bool, error) {
	if e.source < 0 || e.source >= len(e.dist) {
		return paths.Path{}, false, fmt.Errorf("%w: source %d", ErrNodeOutOfRange, e.source)
	}
	e.resetSearch()
	if e.excluded.Contains(uint32(e.source)) {
		return paths.Path{}, false, nil
	}

	e.setDist(e.source, 0, -1, -1)
	heap.Push(&e.pq, nodeItem{node: e.source, dist: 0})

	pops := 0
	for e.pq.Len() > 0 {
		if pops++; pops%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return paths.Path{}, false, err
			}
		}

		item := heap.Pop(&e.pq).(nodeItem)
		u := item.node
		if e.settled.Contains(uint32(u)) || item.dist > e.dist[u] {
			continue
		}
		if item.dist > e.maxDist {
			break
		}
		e.settled.Add(uint32(u))
		if u == e.target {
			return e.PathTo(u)
		}
		e.relax(u, item.dist)
	}

	if e.target == NoTarget {
		return paths.Single(e.source, e.track), true, nil
	}

	return paths.Path{}, false, nil
}

func (e *Engine) relax(u int, du float64) {
	e.g.ForEachRelationship(u, func(source, v, key int, w float64) bool {
		if e.filter != nil && !e.filter(source, v, key) {
			return true
		}
		if w >= e.wall || e.excluded.Contains(uint32(v)) || e.settled.Contains(uint32(v)) {
			return true
		}
		nd := du + w
		if nd > e.maxDist || nd >= e.dist[v] {
			return true
		}
		e.setDist(v, nd, u, key)
		heap.Push(&e.pq, nodeItem{node: v, dist: nd})

		return true
	})
}

func (e *Engine) setDist(v int, d float64, from, key int) {
	if math.IsInf(e.dist[v], 1) {
		e.touched = append(e.touched, v)
	}
	e.dist[v] = d
	e.prevNode[v] = from
	e.prevKey[v] = key
}

// Distance returns the settled distance of node from the last Compute,
// or +Inf when it was not reached.
func (e *Engine) Distance(node int) float64 {
	if node < 0 || node >= len(e.dist) || !e.settled.Contains(uint32(node)) {
		return math.Inf(1)
	}

	return e.dist[node]
}

// Predecessor returns the node preceding node on its shortest path.
func (e *Engine) Predecessor(node int) (int, bool) {
	if node < 0 || node >= len(e.dist) || !e.settled.Contains(uint32(node)) || e.prevNode[node] < 0 {
		return -1, false
	}

	return e.prevNode[node], true
}

// PathTo rebuilds the shortest path from the source to a settled node.
func (e *Engine) PathTo(node int) (paths.Path, bool, error) {
	if node < 0 || node >= len(e.dist) || !e.settled.Contains(uint32(node)) {
		return paths.Path{}, false, nil
	}

	n := 1
	for v := node; e.prevNode[v] >= 0; v = e.prevNode[v] {
		n++
	}
	nodes := make([]int, n)
	costs := make([]float64, n)
	var keys []int
	if e.track {
		keys = make([]int, n-1)
	}
	for i, v := n-1, node; i >= 0; i, v = i-1, e.prevNode[v] {
		nodes[i] = v
		costs[i] = e.dist[v]
		if e.track && i > 0 {
			keys[i-1] = e.prevKey[v]
		}
	}

	p, err := paths.New(nodes, keys, costs)
	if err != nil {
		return paths.Path{}, false, fmt.Errorf("dijkstra: rebuild path to %d: %w", node, err)
	}

	return p, true, nil
}

// nodeItem is a heap entry; stale entries are skipped on pop (lazy decrease-key).
type nodeItem struct {
	node int
	dist float64
}

// nodePQ is a min-heap ordered by (dist, node).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node < pq[j].node
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
