package loader

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

var (
	// ErrEmptyDocument indicates a document with neither vertices nor edges.
	ErrEmptyDocument = errors.New("loader: empty document")

	// ErrBadEdge indicates an edge core rejected or one with a missing endpoint.
	ErrBadEdge = errors.New("loader: bad edge")

	// ErrUnknownFormat indicates a file extension loader cannot decode.
	ErrUnknownFormat = errors.New("loader: unknown format")
)

// Document is the serialized form of a graph.
type Document struct {
	Directed   bool           `json:"directed" yaml:"directed"`
	Weighted   bool           `json:"weighted" yaml:"weighted"`
	Multigraph bool           `json:"multigraph" yaml:"multigraph"`
	Loops      bool           `json:"loops" yaml:"loops"`
	Vertices   []string       `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Edges      []DocumentEdge `json:"edges" yaml:"edges"`
}

// DocumentEdge is one edge of a Document.
type DocumentEdge struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Graph builds a core.Graph from d. Edges are added in document order, so
// edge IDs e1, e2, … follow it.
//
// Errors:
//   - ErrEmptyDocument: no vertices and no edges.
//   - ErrBadEdge (joined with the core error): an edge core rejects.
func (d Document) Graph() (*core.Graph, error) {
	if len(d.Vertices) == 0 && len(d.Edges) == 0 {
		return nil, ErrEmptyDocument
	}

	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if d.Multigraph {
		opts = append(opts, core.WithMultiEdges())
	}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("loader: vertex %q: %w", id, err)
		}
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w #%d %q→%q: %w", ErrBadEdge, i, e.From, e.To, err)
		}
	}

	return g, nil
}
