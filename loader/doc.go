// Package loader turns external graph sources into core.Graph values.
//
// Sources:
//
//   - FromFile / FromReader: YAML or JSON edge-list documents, optionally
//     gzip (".gz"), zstd (".zst") or lz4 (".lz4") compressed.
//   - FromNeo4j: rows of (source, target, weight) returned by a Cypher
//     query through a Client. NewNeo4jClient talks Bolt through the official
//     driver; MemoryClient serves canned rows in tests.
//
// Document shape:
//
//	directed: true
//	weighted: true
//	multigraph: false
//	vertices: [a, b, c]
//	edges:
//	  - {from: a, to: b, weight: 1.5}
//	  - {from: b, to: c, weight: 2}
//
// Vertices listed without edges are kept. When weighted is false every edge
// weight must be omitted or zero.
package loader
