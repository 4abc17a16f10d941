// Package converters moves positioned graphs and cycle results in and out of
// YAML documents.
//
// A graph document lists vertex positions in index order followed by the
// undirected edge list:
//
//	vertices:
//	  - {x: 0.1, y: 0.1}
//	  - {x: 0.9, y: 0.1}
//	edges:
//	  - [0, 1]
//
// Decode validates every vertex and edge through core.Draft, so a decoded
// graph satisfies the same invariants as one produced by the builder package.
package converters
