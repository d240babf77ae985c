// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// api.go - BuildGraph and the Constructor type.
//
// Contract:
//   - BuildGraph creates the graph, resolves options and runs constructors in order.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel-wrapped errors and never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// Constructor applies a deterministic mutation to g using the resolved cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies
// cons in order. The first constructor error is returned wrapped as
// "BuildGraph: %w"; the partially built graph is discarded.
//
// Errors:
//   - ErrConstructFailed: a nil constructor.
//   - any sentinel returned by a constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge inserts u→v with the next configured weight.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight(g.Weighted())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
