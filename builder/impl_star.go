// SPDX-License-Identifier: MIT
// Package: girth/builder
//
// impl_star.go — Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star: n ≥ 2; hub is the first staged vertex, leaves on the ring.
//   • Wheel: n ≥ 4; rim C_{n-1} is staged first, hub last (center of the box).
//
// Complexity: O(n) vertices + O(n) edges (Wheel: 2(n-1)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/girth/core"
)

var center = core.Point{X: 0.5, Y: 0.5}

// Star returns a Constructor that builds a star: one hub joined to n-1 leaves.
func Star(n int) Constructor {
	return func(d *core.Draft, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		hub, err := d.AddVertex(center)
		if err != nil {
			return fmt.Errorf("%s: hub: %w", MethodStar, err)
		}
		base, err := addRing(d, cfg, MethodStar, n-1)
		if err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err = connect(d, MethodStar, hub, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} plus a hub joined to
// every rim vertex. Every vertex of a wheel lies on a triangle.
func Wheel(n int) Constructor {
	return func(d *core.Draft, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		base := d.Order()
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		hub, err := d.AddVertex(center)
		if err != nil {
			return fmt.Errorf("%s: hub: %w", MethodWheel, err)
		}
		for i := 0; i < n-1; i++ {
			if err = connect(d, MethodWheel, hub, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
