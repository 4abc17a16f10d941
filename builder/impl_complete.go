// SPDX-License-Identifier: MIT
// Package: girth/builder
//
// impl_complete.go — Complete(n), CompleteBipartite(n1, n2) and Empty(n).
//
// Contract:
//   • Complete: n ≥ 1, edges for i asc, j > i.
//   • CompleteBipartite: n1, n2 ≥ 1; left side staged first (left column),
//     right side after it (right column). Shortest cycle is 4 when both ≥ 2.
//   • Empty: n ≥ 0 isolated ring vertices.
//
// Complexity: Complete O(n²), CompleteBipartite O(n1·n2), Empty O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/girth/core"
)

// Complete returns a Constructor for the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(d *core.Draft, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		base, err := addRing(d, cfg, MethodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(d, MethodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *core.Draft, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}
		left := d.Order()
		for i := 0; i < n1; i++ {
			p := core.Point{X: cfg.margin, Y: gridCoord(cfg, i, n1)}
			if _, err := d.AddVertex(p); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", MethodCompleteBipartite, left+i, err)
			}
		}
		right := d.Order()
		for j := 0; j < n2; j++ {
			p := core.Point{X: 1 - cfg.margin, Y: gridCoord(cfg, j, n2)}
			if _, err := d.AddVertex(p); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", MethodCompleteBipartite, right+j, err)
			}
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := connect(d, MethodCompleteBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Empty returns a Constructor that stages n isolated vertices.
func Empty(n int) Constructor {
	return func(d *core.Draft, cfg builderConfig) error {
		if err := validateMin(MethodEmpty, n, 0); err != nil {
			return err
		}
		_, err := addRing(d, cfg, MethodEmpty, n)

		return err
	}
}
