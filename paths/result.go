package paths

// IDMapper resolves dense indices back to the identifiers of the source graph.
// csr.Graph implements it.
type IDMapper interface {
	NodeID(node int) string
	EdgeID(source, key int) string
}

// PathResult is the external shape of a ranked path.
//
// RelationshipKeys are the per-source local relationship offsets (nil when
// edges are untracked); EdgeIDs are the same relationships resolved to the
// identifiers of the source graph.
type PathResult struct {
	Index            int       `json:"index"`
	SourceNode       string    `json:"sourceNode"`
	TargetNode       string    `json:"targetNode"`
	TotalCost        float64   `json:"totalCost"`
	NodeIDs          []string  `json:"nodeIds"`
	RelationshipKeys []int     `json:"relationshipKeys,omitempty"`
	EdgeIDs          []string  `json:"edgeIds,omitempty"`
	Costs            []float64 `json:"costs"`
}

// Result converts p into a PathResult ranked at index.
func (p Path) Result(index int, m IDMapper) PathResult {
	r := PathResult{
		Index:      index,
		SourceNode: m.NodeID(p.First()),
		TargetNode: m.NodeID(p.Last()),
		TotalCost:  p.TotalCost(),
		NodeIDs:    make([]string, len(p.nodes)),
		Costs:      p.Costs(),
	}
	for i, n := range p.nodes {
		r.NodeIDs[i] = m.NodeID(n)
	}
	if p.tracked {
		r.RelationshipKeys = p.Edges()
		r.EdgeIDs = make([]string, len(p.edges))
		for i, key := range p.edges {
			r.EdgeIDs[i] = m.EdgeID(p.nodes[i], key)
		}
	}

	return r
}
