// Package kpaths computes the K shortest loopless paths between two vertices
// of a weighted graph, using Yen's algorithm with Lawler's deviation
// resumption and a parallel spur search.
//
// Layout:
//
//	core/       mutable Graph, Vertex and Edge types guarded by RW locks
//	csr/        immutable compressed adjacency snapshot with dense indices
//	paths/      Path value type, ordering and ID resolution
//	dijkstra/   reusable single-source engine with relationship filters
//	yens/       the K shortest paths orchestrator and its worker pool
//	builder/    deterministic graph constructors for tests and benchmarks
//	loader/     graph documents (YAML/JSON, gzip/zstd/lz4) and Neo4j import
//	cmd/kpaths  command-line front end
//
// Quick start:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	_, _ = g.AddEdge("a", "b", 1)
//	res, err := yens.KShortest(ctx, g, yens.Source("a"), yens.Target("b"), yens.WithK(5))
//
// The root package holds documentation only.
package kpaths
