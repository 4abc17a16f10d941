// SPDX-License-Identifier: MIT
//
// File: spatial.go
// Role: Nearest-vertex lookup used by pointer-driven collaborators.

package core

import "math"

// ClosestVertexTo returns the vertex whose position minimizes the Euclidean
// distance to (x, y), or None when the Graph has no vertices.
//
// The scan is linear with a strict '<', so on equal distances the lowest
// index wins. Query coordinates are not restricted to the unit square.
//
// Complexity: O(V).
func (g *Graph) ClosestVertexTo(x, y float64) int {
	best := None
	bestDist := math.Inf(1)
	for i, p := range g.points {
		if d := math.Hypot(y-p.Y, x-p.X); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}
