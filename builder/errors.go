// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach the method name and the
// offending parameters with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, layers, width,
// multiplicity) below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates a constructor incompatible with the graph
// mode, e.g. Parallel on a graph without multi-edges.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
