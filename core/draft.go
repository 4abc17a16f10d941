// SPDX-License-Identifier: MIT
//
// File: draft.go
// Role: Mutable staging area (Draft) and the two ways of producing a Graph:
//       Draft.Freeze and FromMatrix.
// Policy:
//   - Only Draft mutates topology; a frozen Graph never changes.
//   - Every AddEdge mirrors onto both rows, so symmetry holds by construction.

package core

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Draft collects vertices and edges before a Graph is sealed.
// A Draft is not safe for concurrent use.
type Draft struct {
	points []Point
	rows   []*bitset.BitSet
	size   int
}

// NewDraft returns an empty Draft with room for capacity vertices.
func NewDraft(capacity int) *Draft {
	if capacity < 0 {
		capacity = 0
	}

	return &Draft{
		points: make([]Point, 0, capacity),
		rows:   make([]*bitset.BitSet, 0, capacity),
	}
}

// AddVertex appends a vertex at p and returns its index.
// Rows of existing vertices grow lazily: bitset.Set extends on demand.
//
// Errors:
//   - ErrPointOutOfRange if p lies outside [0,1]².
func (d *Draft) AddVertex(p Point) (int, error) {
	if !p.inUnitSquare() {
		return None, fmt.Errorf("AddVertex(%g,%g): %w", p.X, p.Y, ErrPointOutOfRange)
	}
	d.points = append(d.points, p)
	d.rows = append(d.rows, bitset.New(0))

	return len(d.points) - 1, nil
}

// AddEdge connects u and v in both directions.
//
// Errors:
//   - ErrVertexNotFound if either index is out of range.
//   - ErrLoopNotAllowed if u == v.
//   - ErrMultiEdgeNotAllowed if the pair is already connected.
func (d *Draft) AddEdge(u, v int) error {
	if !d.has(u) || !d.has(v) {
		return fmt.Errorf("AddEdge(%d,%d): order %d: %w", u, v, len(d.points), ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if d.rows[u].Test(uint(v)) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	d.rows[u].Set(uint(v))
	d.rows[v].Set(uint(u))
	d.size++

	return nil
}

// HasEdge reports whether u and v are already connected in the Draft.
func (d *Draft) HasEdge(u, v int) bool {
	return d.has(u) && d.has(v) && d.rows[u].Test(uint(v))
}

// Order returns the number of staged vertices.
func (d *Draft) Order() int { return len(d.points) }

// Size returns the number of staged edges.
func (d *Draft) Size() int { return d.size }

// Freeze seals the Draft into a Graph. The Graph owns copies of the staged
// rows, so later edits to the Draft never leak into it.
//
// Complexity: O(V²/64) to copy rows.
func (d *Draft) Freeze() *Graph {
	n := len(d.points)
	g := &Graph{
		points: make([]Point, n),
		rows:   make([]*bitset.BitSet, n),
		size:   d.size,
	}
	copy(g.points, d.points)
	for i, row := range d.rows {
		g.rows[i] = row.Clone()
	}

	return g
}

func (d *Draft) has(v int) bool { return v >= 0 && v < len(d.points) }

// FromMatrix validates a boolean adjacency matrix and its vertex positions and
// returns the equivalent Graph.
//
// Stage 1 (Validate shape): len(points) == len(adj) and every row has len(adj) cells.
// Stage 2 (Validate relation): adj[i][i] == false and adj[i][j] == adj[j][i].
// Stage 3 (Execute): stage vertices and the upper triangle on a Draft, then Freeze.
//
// Errors: ErrDimensionMismatch, ErrLoopNotAllowed, ErrAsymmetric, ErrPointOutOfRange.
//
// Complexity: O(V²).
func FromMatrix(points []Point, adj [][]bool) (*Graph, error) {
	n := len(adj)
	if len(points) != n {
		return nil, fmt.Errorf("FromMatrix: %d points for %d rows: %w", len(points), n, ErrDimensionMismatch)
	}
	for i, row := range adj {
		if len(row) != n {
			return nil, fmt.Errorf("FromMatrix: row %d has %d cells, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
	}

	d := NewDraft(n)
	for _, p := range points {
		if _, err := d.AddVertex(p); err != nil {
			return nil, fmt.Errorf("FromMatrix: %w", err)
		}
	}
	for i := 0; i < n; i++ {
		if adj[i][i] {
			return nil, fmt.Errorf("FromMatrix: diagonal %d: %w", i, ErrLoopNotAllowed)
		}
		for j := i + 1; j < n; j++ {
			if adj[i][j] != adj[j][i] {
				return nil, fmt.Errorf("FromMatrix: cell (%d,%d): %w", i, j, ErrAsymmetric)
			}
			if !adj[i][j] {
				continue
			}
			if err := d.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("FromMatrix: %w", err)
			}
		}
	}

	return d.Freeze(), nil
}
