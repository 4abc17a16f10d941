// Package core defines the Graph store used by every girth package: a fixed,
// ordered set of positioned vertices and a symmetric, loop-free adjacency
// relation kept as one bitset row per vertex.
//
// What
//
//   - Vertices are dense indices 0..Order()-1, stable for the lifetime of the Graph.
//   - Each vertex carries a Point in the unit square; positions are only consulted
//     by ClosestVertexTo, never by the cycle algorithms.
//   - Adjacency is undirected and simple: HasEdge(u,v) == HasEdge(v,u) and
//     HasEdge(v,v) == false for every u, v.
//
// Lifecycle
//
//	A Graph is immutable. Topology is staged on a Draft (AddVertex/AddEdge) and
//	sealed with Draft.Freeze, or validated from a boolean matrix with FromMatrix.
//	Because nothing mutates a frozen Graph, concurrent readers need no locking.
//
// Errors
//
//   - ErrVertexNotFound     index outside [0, Order()).
//   - ErrLoopNotAllowed     AddEdge(v, v) or a true diagonal in FromMatrix.
//   - ErrMultiEdgeNotAllowed AddEdge on an already connected pair.
//   - ErrAsymmetric         FromMatrix with adj[i][j] != adj[j][i].
//   - ErrDimensionMismatch  FromMatrix with a non-square matrix or wrong point count.
//   - ErrPointOutOfRange    a coordinate outside [0,1] (or NaN).
//
// Complexity (V = Order(), E = Size())
//
//   - Neighbors:       O(V/64 + d)
//   - HasEdge:         O(1)
//   - ClosestVertexTo: O(V)
//   - Edges/Stats:     O(V²/64 + E)
package core
