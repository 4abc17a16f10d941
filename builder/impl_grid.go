// SPDX-License-Identifier: MIT
// Package: girth/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex r*cols+c (relative to the first staged one) sits at row r, col c.
//   • For each cell in row-major order emit Right then Bottom if present.
//
// Complexity: O(rows*cols) vertices + O(rows*cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/girth/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Any grid with rows, cols ≥ 2 has girth 4.
func Grid(rows, cols int) Constructor {
	return func(d *core.Draft, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base := d.Order()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p := core.Point{X: gridCoord(cfg, c, cols), Y: gridCoord(cfg, r, rows)}
				if _, err := d.AddVertex(p); err != nil {
					return fmt.Errorf("%s: AddVertex(%d,%d): %w", MethodGrid, r, c, err)
				}
			}
		}
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(d, MethodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(d, MethodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
