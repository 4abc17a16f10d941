// SPDX-License-Identifier: MIT
// Package: girth/builder
//
// impl_cycle.go — implementation of Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3, Path: n ≥ 2 (else ErrTooFewVertices).
//   • Vertices on a circle in ascending index order.
//   • Edges emitted i—(i+1) for i asc; Cycle closes with (n-1)—0.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/girth/core"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *core.Draft, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		base, err := addRing(d, cfg, MethodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(d, MethodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds a simple path P_n. A path is acyclic,
// which makes it the canonical "no cycle" fixture.
func Path(n int) Constructor {
	return func(d *core.Draft, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		base, err := addRing(d, cfg, MethodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = connect(d, MethodPath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
