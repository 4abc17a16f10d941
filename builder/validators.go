// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each helper wraps the matching sentinel with the method tag so callers can
// branch with errors.Is and still read which constructor failed.
package builder

import "fmt"

// validateMin ensures that got ≥ min, otherwise ErrTooFewVertices.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails both comparisons and is rejected too.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
