// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_parallel.go - Parallel(from, to, m): a bundle of parallel edges.
//
// Contract:
//   - m ≥ 1 (else ErrTooFewVertices).
//   - m > 1 requires g.Multigraph() (else ErrUnsupportedGraphMode).
//   - from and to are literal vertex IDs, created when missing; the ID
//     scheme does not apply.
//   - Edges are emitted in order, so with IntegerWeightFn or a custom
//     WeightFn the i-th parallel edge gets the i-th drawn weight.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

const (
	methodParallel = "Parallel"
	minParallel    = 1
)

// Parallel returns a Constructor that adds m edges from→to.
func Parallel(from, to string, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < minParallel {
			return fmt.Errorf("%s: m=%d < min=%d: %w", methodParallel, m, minParallel, ErrTooFewVertices)
		}
		if m > 1 && !g.Multigraph() {
			return fmt.Errorf("%s: m=%d on a simple graph: %w", methodParallel, m, ErrUnsupportedGraphMode)
		}
		for i := 0; i < m; i++ {
			if err := addEdge(g, cfg, methodParallel, from, to); err != nil {
				return err
			}
		}

		return nil
	}
}
