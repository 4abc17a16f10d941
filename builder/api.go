// SPDX-License-Identifier: MIT
// Package: girth/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Stages a Draft, resolves cfg,
//     runs cons in order, freezes the result.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/girth/core"
)

// Constructor applies a deterministic topology to a Draft using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before staging anything and return sentinel errors.
//   - Append vertices after those already staged (compose, never overwrite).
//   - Preserve determinism for the same config and call order.
type Constructor func(d *core.Draft, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order to a fresh Draft and freezes it.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor + O(V²/64) freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := core.NewDraft(0)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return d.Freeze(), nil
}

// NewRandom builds a random graph of n positioned vertices where each
// unordered pair is connected with probability density.
//
// A clock-seeded source is installed first, so callers that pass WithSeed or
// WithRand override it and get reproducible graphs.
//
// Errors (wrapped): ErrTooFewVertices for n < 0, ErrInvalidProbability for
// density ∉ [0,1].
func NewRandom(n int, density float64, opts ...BuilderOption) (*core.Graph, error) {
	bopts := make([]BuilderOption, 0, len(opts)+1)
	bopts = append(bopts, WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))))
	bopts = append(bopts, opts...)

	return BuildGraph(bopts, RandomSparse(n, density))
}
