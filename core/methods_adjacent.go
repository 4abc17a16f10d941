// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood and edge-level queries over the bitset rows.
// Determinism:
//   - Neighbors() and Edges() enumerate in ascending index order.

package core

import "fmt"

// Neighbors returns the vertices adjacent to v in ascending order.
// The returned slice is freshly allocated.
//
// Errors:
//   - ErrVertexNotFound if v is out of range.
//
// Complexity: O(V/64 + d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): order %d: %w", v, g.Order(), ErrVertexNotFound)
	}

	row := g.rows[v]
	out := make([]int, 0, row.Count())
	for i, ok := row.NextSet(0); ok; i, ok = row.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out, nil
}

// EachNeighbor calls fn for every neighbor of v in ascending order until fn
// returns false. Unlike Neighbors it allocates nothing, which matters on the
// per-pointer-event query path. An out-of-range v visits nothing.
func (g *Graph) EachNeighbor(v int, fn func(u int) bool) {
	if !g.HasVertex(v) {
		return
	}
	row := g.rows[v]
	for i, ok := row.NextSet(0); ok; i, ok = row.NextSet(i + 1) {
		if !fn(int(i)) {
			return
		}
	}
}

// HasEdge reports whether {u,v} is an edge. Out-of-range indices yield false.
func (g *Graph) HasEdge(u, v int) bool {
	return g.HasVertex(u) && g.HasVertex(v) && g.rows[u].Test(uint(v))
}

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return g.size }

// Edges returns every edge once as [u, v] with u < v, ordered by u then v.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.size)
	for u, row := range g.rows {
		for v, ok := row.NextSet(uint(u + 1)); ok; v, ok = row.NextSet(v + 1) {
			out = append(out, [2]int{u, int(v)})
		}
	}

	return out
}

// AdjacencyMatrix returns a fresh V×V boolean copy of the adjacency relation,
// suitable for drawing. Mutating it does not affect g.
//
// Complexity: O(V²).
func (g *Graph) AdjacencyMatrix() [][]bool {
	n := g.Order()
	out := make([][]bool, n)
	for u, row := range g.rows {
		out[u] = make([]bool, n)
		for v, ok := row.NextSet(0); ok; v, ok = row.NextSet(v + 1) {
			out[u][v] = true
		}
	}

	return out
}

// Stats produces a snapshot of vertex/edge counts, isolated vertices,
// maximum degree and edge density.
func (g *Graph) Stats() GraphStats {
	st := GraphStats{VertexCount: g.Order(), EdgeCount: g.size}
	for _, row := range g.rows {
		d := int(row.Count())
		if d == 0 {
			st.IsolatedCount++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}
	if n := st.VertexCount; n > 1 {
		st.Density = float64(st.EdgeCount) * 2 / (float64(n) * float64(n-1))
	}

	return st
}
