// Package builder provides deterministic graph fixtures for tests,
// benchmarks and the kpaths CLI.
//
// Every constructor is a Constructor closure applied by BuildGraph to a fresh
// core.Graph. Constructors validate their parameters, honor the core mode
// flags (directed, weighted, multigraph, loops) and never panic; option
// constructors (WithX) panic on meaningless input.
//
// Topologies:
//
//   - Path(n):              0-1-…-(n-1), one edge per consecutive pair.
//   - Complete(n):          every pair connected (both directions if directed).
//   - Grid(rows, cols):     orthogonal lattice with "r,c" IDs.
//   - RandomSparse(n, p):   Erdős–Rényi style, each admissible pair with probability p.
//   - Parallel(from, to, m): m parallel edges between two vertices (multigraph only).
//   - Layered(layers, width): source → layers of width vertices → sink, full
//     bipartite links between neighbor layers; a DAG with many equal-hop routes.
//
// Options:
//
//   - WithIDScheme(fn) / WithSymbolIDs() / WithSymbNumb(prefix) / WithDefaultIDs().
//   - WithSeed(seed) / WithRand(r):  RNG for stochastic constructors and weights.
//   - WithWeightFn(fn):              edge weights for weighted graphs
//     (DefaultWeightFn, ConstantWeightFn, UniformWeightFn, IntegerWeightFn).
//
// Determinism: the same graph options, builder options, seed and constructor
// order produce identical graphs, including edge IDs.
package builder
