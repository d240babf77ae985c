package loader

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/kpaths/core"
)

// DefaultCypher reads every relationship with an optional numeric weight
// property. Vertices are identified by their "id" property, falling back to
// the internal element ID.
const DefaultCypher = `MATCH (s)-[r]->(t)
RETURN coalesce(toString(s.id), elementId(s)) AS source,
       coalesce(toString(t.id), elementId(t)) AS target,
       coalesce(r.weight, 1.0) AS weight
ORDER BY source, target`

// Query describes what FromNeo4j reads and how it shapes the graph.
type Query struct {
	// Cypher must return the columns source, target and weight.
	// Empty means DefaultCypher.
	Cypher string
	Params map[string]any

	Directed   bool
	Multigraph bool
}

// FromNeo4j runs q through c and builds a weighted core.Graph from the rows.
// Rows are added in the order returned, so edge IDs follow it.
//
// Errors:
//   - ErrEmptyDocument: the query returned no rows.
//   - ErrBadEdge: a row lacks a column or carries a non-numeric weight, or
//     core rejects the edge.
//   - the client error, wrapped.
func FromNeo4j(ctx context.Context, c Client, q Query) (*core.Graph, error) {
	cypher := q.Cypher
	if cypher == "" {
		cypher = DefaultCypher
	}
	res, err := c.ExecuteRead(ctx, cypher, q.Params)
	if err != nil {
		return nil, fmt.Errorf("loader: neo4j read: %w", err)
	}
	if len(res.Records) == 0 {
		return nil, ErrEmptyDocument
	}

	doc := Document{Directed: q.Directed, Weighted: true, Multigraph: q.Multigraph, Loops: true}
	doc.Edges = make([]DocumentEdge, 0, len(res.Records))
	for i, rec := range res.Records {
		e, err := recordEdge(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadEdge, i, err)
		}
		doc.Edges = append(doc.Edges, e)
	}

	return doc.Graph()
}

func recordEdge(rec Record) (DocumentEdge, error) {
	from, err := idValue(rec, "source")
	if err != nil {
		return DocumentEdge{}, err
	}
	to, err := idValue(rec, "target")
	if err != nil {
		return DocumentEdge{}, err
	}
	e := DocumentEdge{From: from, To: to, Weight: 1}

	switch w := rec["weight"].(type) {
	case nil:
	case float64:
		e.Weight = w
	case int64:
		e.Weight = float64(w)
	case int:
		e.Weight = float64(w)
	default:
		return DocumentEdge{}, fmt.Errorf("weight has type %T", w)
	}

	return e, nil
}

func idValue(rec Record, key string) (string, error) {
	switch v := rec[key].(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("empty %s", key)
		}
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int:
		return strconv.Itoa(v), nil
	case nil:
		return "", fmt.Errorf("missing %s", key)
	default:
		return "", fmt.Errorf("%s has type %T", key, v)
	}
}
