// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex-level queries (Order, Point, Points, Degree, HasVertex).
// Determinism:
//   - Vertex order is insertion order and never changes.

package core

import "fmt"

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.points) }

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.points) }

// Point returns the position of vertex v.
//
// Errors:
//   - ErrVertexNotFound if v is out of range.
func (g *Graph) Point(v int) (Point, error) {
	if !g.HasVertex(v) {
		return Point{}, fmt.Errorf("Point(%d): order %d: %w", v, g.Order(), ErrVertexNotFound)
	}

	return g.points[v], nil
}

// Points returns a copy of all vertex positions, indexed by vertex.
func (g *Graph) Points() []Point {
	out := make([]Point, len(g.points))
	copy(out, g.points)

	return out
}

// Degree returns the number of neighbors of v.
//
// Errors:
//   - ErrVertexNotFound if v is out of range.
//
// Complexity: O(V/64) popcount.
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("Degree(%d): order %d: %w", v, g.Order(), ErrVertexNotFound)
	}

	return int(g.rows[v].Count()), nil
}
