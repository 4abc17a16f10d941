// SPDX-License-Identifier: MIT
// Package: girth/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: each unordered pair {i,j}, i≠j, is connected
//     independently with probability p and mirrored onto both rows.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices); n == 0 stages nothing.
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability); never clamped.
//   - cfg.rng must be non-nil when n > 0 (positions are always random).
//
// Determinism (fixed seed ⇒ identical graph):
//   - Positions first: for i asc draw x then y.
//   - Then one trial per pair in order i asc, j asc with j < i.
//   - A pair connects iff rng.Float64() < p, so p=0 never and p=1 always connects.
//
// Complexity:
//   - Time: O(n) positions + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/girth/core"
)

// RandomSparse returns a Constructor that samples a random graph over n
// randomly positioned vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(d *core.Draft, cfg builderConfig) error {
		// 1) Validate parameters (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomSparse, n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Stage all vertices at random positions.
		base := d.Order()
		for i := 0; i < n; i++ {
			if _, err := d.AddVertex(randomPoint(cfg)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", MethodRandomSparse, base+i, err)
			}
		}

		// 3) One Bernoulli trial per unordered pair, lower triangle order.
		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				if rng.Float64() >= p {
					continue
				}
				if err := connect(d, MethodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
