// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Point, Graph and GraphStats declarations plus core sentinel errors.

package core

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an index outside [0, Order()).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the pair is already connected.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrAsymmetric indicates adj[i][j] != adj[j][i] in a supplied matrix.
	ErrAsymmetric = errors.New("core: adjacency matrix is not symmetric")

	// ErrDimensionMismatch indicates a non-square matrix or a point count that
	// does not match the matrix order.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrPointOutOfRange indicates a coordinate outside the unit square.
	ErrPointOutOfRange = errors.New("core: point outside unit square")
)

// None is the vertex index returned when no vertex qualifies
// (e.g. ClosestVertexTo on an empty Graph).
const None = -1

// Unit-square bounds for vertex positions.
const (
	coordMin = 0.0
	coordMax = 1.0
)

// Point is a vertex position in the unit square.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// inUnitSquare reports whether both coordinates lie in [0,1].
// NaN fails both comparisons and is rejected.
func (p Point) inUnitSquare() bool {
	return p.X >= coordMin && p.X <= coordMax && p.Y >= coordMin && p.Y <= coordMax
}

// Graph is an immutable undirected simple graph over positioned vertices.
//
// rows[v] has bit u set iff {u,v} is an edge; rows are kept mirrored so that
// rows[u].Test(v) == rows[v].Test(u) always holds.
type Graph struct {
	points []Point          // vertex index → position
	rows   []*bitset.BitSet // vertex index → adjacency row
	size   int              // number of undirected edges
}

// GraphStats is a read-only snapshot of a Graph's shape.
type GraphStats struct {
	VertexCount   int     // Order()
	EdgeCount     int     // Size()
	IsolatedCount int     // vertices with degree 0
	MaxDegree     int     // largest row population
	Density       float64 // 2E / (V(V-1)); 0 when V < 2
}
