// Package builder provides internal helper functions used by Constructor
// implementations: vertex placement and bulk edge emission.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method tag for uniform reporting.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/girth/core"
)

// circlePoint places index i of n evenly on the circle inscribed in the
// placement box, starting at 12 o'clock and running clockwise on screen.
func circlePoint(cfg builderConfig, i, n int) core.Point {
	r := cfg.span() / 2
	theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2

	return core.Point{X: 0.5 + r*math.Cos(theta), Y: 0.5 + r*math.Sin(theta)}
}

// gridCoord spreads index i of n evenly across the placement box; a single
// slot sits in the middle.
func gridCoord(cfg builderConfig, i, n int) float64 {
	if n == 1 {
		return 0.5
	}

	return cfg.margin + cfg.span()*float64(i)/float64(n-1)
}

// randomPoint draws x then y uniformly from the placement box.
func randomPoint(cfg builderConfig) core.Point {
	x := cfg.margin + cfg.span()*cfg.rng.Float64()
	y := cfg.margin + cfg.span()*cfg.rng.Float64()

	return core.Point{X: x, Y: y}
}

// addRing stages n vertices on a circle and returns the index of the first.
func addRing(d *core.Draft, cfg builderConfig, method string, n int) (int, error) {
	base := d.Order()
	for i := 0; i < n; i++ {
		if _, err := d.AddVertex(circlePoint(cfg, i, n)); err != nil {
			return core.None, fmt.Errorf("%s: AddVertex(%d): %w", method, base+i, err)
		}
	}

	return base, nil
}

// connect adds the edge {u,v} with method context.
func connect(d *core.Draft, method string, u, v int) error {
	if err := d.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
