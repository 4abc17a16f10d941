// SPDX-License-Identifier: MIT
// Package: girth/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil            (pure/deterministic unless seeded)
//   • margin = DefaultMargin  (positions kept inside [0.1, 0.9]²)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Distance kept from the unit-square border when placing vertices.
	margin float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		margin: DefaultMargin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// span is the side length of the placement box.
func (c builderConfig) span() float64 { return 1 - 2*c.margin }
