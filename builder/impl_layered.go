// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// impl_layered.go - Layered(layers, width): source, layers of width vertices, sink.
//
// Contract:
//   - layers ≥ 1 and width ≥ 1 (else ErrTooFewVertices).
//   - IDs: source is idFn(0), layer l vertex i is idFn(1 + l*width + i),
//     sink is idFn(1 + layers*width).
//   - Edges: source → every vertex of layer 0; full bipartite links between
//     consecutive layers; every vertex of the last layer → sink.
//   - Every source→sink path has layers+1 hops and width^layers such paths
//     exist, which makes the graph a dense K-shortest-paths workload.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

const (
	methodLayered = "Layered"
	minLayered    = 1
)

// Layered returns a Constructor for a layered DAG between a source and a sink.
func Layered(layers, width int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if layers < minLayered || width < minLayered {
			return fmt.Errorf("%s: layers=%d, width=%d (each must be ≥ %d): %w",
				methodLayered, layers, width, minLayered, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodLayered, layers*width+2)
		if err != nil {
			return err
		}
		source, sink := ids[0], ids[len(ids)-1]
		layer := func(l int) []string { return ids[1+l*width : 1+(l+1)*width] }

		for _, v := range layer(0) {
			if err = addEdge(g, cfg, methodLayered, source, v); err != nil {
				return err
			}
		}
		for l := 0; l+1 < layers; l++ {
			for _, u := range layer(l) {
				for _, v := range layer(l + 1) {
					if err = addEdge(g, cfg, methodLayered, u, v); err != nil {
						return err
					}
				}
			}
		}
		for _, u := range layer(layers - 1) {
			if err = addEdge(g, cfg, methodLayered, u, sink); err != nil {
				return err
			}
		}

		return nil
	}
}
