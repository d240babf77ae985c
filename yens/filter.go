package yens

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/kpaths/paths"
)

// FilterStrategy selects what identifies a forbidden relationship at the spur node.
type FilterStrategy uint8

const (
	// ByTargetNode forbids every relationship from the spur node to a given
	// neighbor. Correct only when no parallel relationships exist.
	ByTargetNode FilterStrategy = iota

	// ByEdgeID forbids individual relationships by local key, so parallel
	// relationships to the same neighbor stay usable.
	ByEdgeID
)

func (s FilterStrategy) String() string {
	if s == ByEdgeID {
		return "by-edge-id"
	}

	return "by-target-node"
}

// relationshipFilter blocks the relationships that earlier accepted paths
// took out of the current spur node.
//
// Forbidden keys are sorted once per spur search; ValidRelationship then
// scans them with a cursor that only moves forward. csr enumerates a node's
// relationships with ascending keys and ascending targets, which is what
// keeps the forward scan exact.
type relationshipFilter struct {
	strategy  FilterStrategy
	spurNode  int
	forbidden []int
	pos       int
}

func newRelationshipFilter(s FilterStrategy) *relationshipFilter {
	return &relationshipFilter{strategy: s, spurNode: -1}
}

// SetFilter starts a new spur search at spurNode and drops previous keys.
func (f *relationshipFilter) SetFilter(spurNode int) {
	f.spurNode = spurNode
	f.forbidden = f.forbidden[:0]
	f.pos = 0
}

// AddBlockingNeighbor forbids the step p takes out of position index.
// p must continue past index, and must track relationships under ByEdgeID;
// anything else is an internal-consistency fault and panics.
func (f *relationshipFilter) AddBlockingNeighbor(p paths.Path, index int) {
	var (
		v   int
		err error
	)
	if f.strategy == ByEdgeID {
		v, err = p.Edge(index)
	} else {
		v, err = p.Node(index + 1)
	}
	if err != nil {
		panic(fmt.Sprintf("yens: %s filter cannot block step %d of %s: %v", f.strategy, index, p, err))
	}
	f.forbidden = append(f.forbidden, v)
}

// Prepare sorts and deduplicates the forbidden keys and rewinds the scan.
func (f *relationshipFilter) Prepare() {
	slices.Sort(f.forbidden)
	f.forbidden = slices.Compact(f.forbidden)
	f.pos = 0
}

// ValidRelationship reports whether the search may use the relationship.
// Relationships leaving any node other than the spur node are always valid.
func (f *relationshipFilter) ValidRelationship(source, target, key int) bool {
	if source != f.spurNode {
		return true
	}
	v := target
	if f.strategy == ByEdgeID {
		v = key
	}
	for f.pos < len(f.forbidden) && f.forbidden[f.pos] < v {
		f.pos++
	}

	return f.pos >= len(f.forbidden) || f.forbidden[f.pos] != v
}
