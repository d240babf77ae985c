// File: path.go
// Role: Immutable path value: node indices, optional edge keys, cumulative costs.
// Determinism: Compare defines a total order used for reproducible tie-breaking.
// Concurrency: Path values are never mutated after construction and may be
// shared freely across goroutines.

package paths

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for path construction and access.
var (
	// ErrIndexOutOfRange indicates a position outside the valid range of a path.
	ErrIndexOutOfRange = errors.New("paths: index out of range")

	// ErrMalformedPath indicates inconsistent node, edge or cost slices.
	ErrMalformedPath = errors.New("paths: malformed path")
)

// Path is an ordered walk through dense node indices.
//
// Invariants:
//   - len(nodes) ≥ 1 and len(costs) == len(nodes).
//   - costs[0] == 0 and costs is non-decreasing.
//   - when edges are tracked, len(edges) == len(nodes)-1; edges[i] is the
//     local relationship key from nodes[i] to nodes[i+1].
//
// The zero value is not a valid path; construct with New or Single.
type Path struct {
	nodes   []int
	edges   []int
	costs   []float64
	tracked bool
}

// New validates and returns a Path. Pass edges == nil for a path that does not
// track relationships. The slices are retained; callers must not modify them.
//
// Errors:
//   - ErrMalformedPath: any invariant listed on Path is violated.
func New(nodes, edges []int, costs []float64) (Path, error) {
	if len(nodes) == 0 {
		return Path{}, fmt.Errorf("%w: no nodes", ErrMalformedPath)
	}
	if len(costs) != len(nodes) {
		return Path{}, fmt.Errorf("%w: %d costs for %d nodes", ErrMalformedPath, len(costs), len(nodes))
	}
	if costs[0] != 0 {
		return Path{}, fmt.Errorf("%w: first cost %v, want 0", ErrMalformedPath, costs[0])
	}
	for i := 1; i < len(costs); i++ {
		if costs[i] < costs[i-1] {
			return Path{}, fmt.Errorf("%w: cost decreases at %d", ErrMalformedPath, i)
		}
	}
	if edges != nil && len(edges) != len(nodes)-1 {
		return Path{}, fmt.Errorf("%w: %d edges for %d nodes", ErrMalformedPath, len(edges), len(nodes))
	}

	return Path{nodes: nodes, edges: edges, costs: costs, tracked: edges != nil}, nil
}

// Single returns the one-node path at node with zero cost.
func Single(node int, trackEdges bool) Path {
	p := Path{nodes: []int{node}, costs: []float64{0}, tracked: trackEdges}
	if trackEdges {
		p.edges = []int{}
	}

	return p
}

// NodeCount returns the number of nodes on the path.
func (p Path) NodeCount() int { return len(p.nodes) }

// TotalCost returns the cumulative cost at the last node.
func (p Path) TotalCost() float64 {
	if len(p.costs) == 0 {
		return 0
	}

	return p.costs[len(p.costs)-1]
}

// TracksEdges reports whether relationship keys are recorded.
func (p Path) TracksEdges() bool { return p.tracked }

// First returns the first node index.
func (p Path) First() int { return p.nodes[0] }

// Last returns the last node index.
func (p Path) Last() int { return p.nodes[len(p.nodes)-1] }

// Node returns the node index at position i.
func (p Path) Node(i int) (int, error) {
	if i < 0 || i >= len(p.nodes) {
		return 0, fmt.Errorf("%w: node %d of %d", ErrIndexOutOfRange, i, len(p.nodes))
	}

	return p.nodes[i], nil
}

// Edge returns the relationship key between positions i and i+1.
func (p Path) Edge(i int) (int, error) {
	if !p.tracked || i < 0 || i >= len(p.edges) {
		return 0, fmt.Errorf("%w: edge %d of %d", ErrIndexOutOfRange, i, len(p.edges))
	}

	return p.edges[i], nil
}

// Cost returns the cumulative cost at position i.
func (p Path) Cost(i int) (float64, error) {
	if i < 0 || i >= len(p.costs) {
		return 0, fmt.Errorf("%w: cost %d of %d", ErrIndexOutOfRange, i, len(p.costs))
	}

	return p.costs[i], nil
}

// Nodes returns a copy of the node indices.
func (p Path) Nodes() []int { return append([]int(nil), p.nodes...) }

// Edges returns a copy of the relationship keys, or nil when untracked.
func (p Path) Edges() []int {
	if !p.tracked {
		return nil
	}

	return append([]int{}, p.edges...)
}

// Costs returns a copy of the cumulative costs.
func (p Path) Costs() []float64 { return append([]float64(nil), p.costs...) }

// SubPath returns the prefix holding the first i nodes, i-1 edges and i costs.
//
// Errors:
//   - ErrIndexOutOfRange: unless 1 ≤ i ≤ NodeCount().
//
// Complexity: O(1); the prefix shares backing arrays with p.
func (p Path) SubPath(i int) (Path, error) {
	if i < 1 || i > len(p.nodes) {
		return Path{}, fmt.Errorf("%w: prefix length %d of %d", ErrIndexOutOfRange, i, len(p.nodes))
	}
	sub := Path{nodes: p.nodes[:i:i], costs: p.costs[:i:i], tracked: p.tracked}
	if p.tracked {
		sub.edges = p.edges[: i-1 : i-1]
	}

	return sub, nil
}

// Slice returns the nodes in positions [from, to) as a new path whose costs
// are rebased to start at zero.
//
// Errors:
//   - ErrIndexOutOfRange: unless 0 ≤ from < to ≤ NodeCount().
func (p Path) Slice(from, to int) (Path, error) {
	if from < 0 || to > len(p.nodes) || from >= to {
		return Path{}, fmt.Errorf("%w: slice [%d,%d) of %d", ErrIndexOutOfRange, from, to, len(p.nodes))
	}
	base := p.costs[from]
	costs := make([]float64, to-from)
	for i := range costs {
		costs[i] = p.costs[from+i] - base
	}
	out := Path{nodes: append([]int(nil), p.nodes[from:to]...), costs: costs, tracked: p.tracked}
	if p.tracked {
		out.edges = append([]int{}, p.edges[from:to-1]...)
	}

	return out, nil
}

// Append concatenates other onto p. other must start at p's last node and
// both paths must agree on edge tracking.
//
// Costs of other are shifted by p.TotalCost(). The join node appears once.
//
// Append panics when the precondition is violated; callers only join a root
// with a spur that was searched from the root's last node.
func (p Path) Append(other Path) Path {
	if len(p.nodes) == 0 || len(other.nodes) == 0 || p.Last() != other.First() {
		panic(fmt.Sprintf("paths: Append join mismatch (%v then %v)", p.nodes, other.nodes))
	}
	if p.tracked != other.tracked {
		panic("paths: Append edge-tracking mismatch")
	}

	n := len(p.nodes) + len(other.nodes) - 1
	nodes := make([]int, 0, n)
	nodes = append(nodes, p.nodes...)
	nodes = append(nodes, other.nodes[1:]...)

	offset := p.TotalCost()
	costs := make([]float64, 0, n)
	costs = append(costs, p.costs...)
	for _, c := range other.costs[1:] {
		costs = append(costs, c+offset)
	}

	out := Path{nodes: nodes, costs: costs, tracked: p.tracked}
	if p.tracked {
		edges := make([]int, 0, n-1)
		edges = append(edges, p.edges...)
		out.edges = append(edges, other.edges...)
	}

	return out
}

// Matches reports whether p and other agree on their first i node indices.
// A path shorter than i never matches.
func (p Path) Matches(other Path, i int) bool {
	if i < 0 || i > len(p.nodes) || i > len(other.nodes) {
		return false
	}
	for j := 0; j < i; j++ {
		if p.nodes[j] != other.nodes[j] {
			return false
		}
	}

	return true
}

// MatchesExactly is Matches plus agreement on the first i-1 relationship keys.
// When either path does not track edges it is equivalent to Matches.
func (p Path) MatchesExactly(other Path, i int) bool {
	if !p.Matches(other, i) {
		return false
	}
	if !p.tracked || !other.tracked {
		return true
	}
	for j := 0; j < i-1; j++ {
		if p.edges[j] != other.edges[j] {
			return false
		}
	}

	return true
}

// Equal reports structural equality over node indices and relationship keys.
// Costs do not participate.
func (p Path) Equal(other Path) bool {
	if len(p.nodes) != len(other.nodes) || p.tracked != other.tracked {
		return false
	}

	return p.MatchesExactly(other, len(p.nodes))
}

// Key returns a compact string usable as a map key; equal paths yield equal keys.
func (p Path) Key() string {
	buf := make([]byte, 0, 2*(len(p.nodes)+len(p.edges))+2)
	buf = binary.AppendUvarint(buf, uint64(len(p.nodes)))
	for _, n := range p.nodes {
		buf = binary.AppendUvarint(buf, uint64(n))
	}
	for _, e := range p.edges {
		buf = binary.AppendUvarint(buf, uint64(e))
	}

	return string(buf)
}

// IsSimple reports whether no node index occurs twice.
func (p Path) IsSimple() bool {
	seen := make(map[int]struct{}, len(p.nodes))
	for _, n := range p.nodes {
		if _, dup := seen[n]; dup {
			return false
		}
		seen[n] = struct{}{}
	}

	return true
}

// Compare orders paths by total cost, then node count, then node indices
// lexicographically, then relationship keys lexicographically.
// It returns -1, 0 or +1.
func Compare(a, b Path) int {
	switch ca, cb := a.TotalCost(), b.TotalCost(); {
	case ca < cb:
		return -1
	case ca > cb:
		return 1
	}
	if c := compareInts(a.nodes, b.nodes); c != 0 {
		return c
	}

	return compareInts(a.edges, b.edges)
}

// compareInts orders shorter slices first, then lexicographically.
func compareInts(a, b []int) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

// String renders the path as "0-2-3 (5)" for logs and test failures.
func (p Path) String() string {
	var sb strings.Builder
	for i, n := range p.nodes {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteString(" (")
	sb.WriteString(strconv.FormatFloat(p.TotalCost(), 'g', -1, 64))
	sb.WriteByte(')')

	return sb.String()
}
