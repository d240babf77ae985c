// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// config.go - resolved builder configuration and its defaults.
//
// Defaults:
//   - idFn     = DefaultIDFn      ("0","1","2",...)
//   - rng      = nil              (stochastic constructors require WithSeed/WithRand)
//   - weightFn = DefaultWeightFn  (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig is passed by value to every Constructor.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight, or 0 for unweighted graphs where core
// rejects anything else.
func (c builderConfig) weight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}
