// Package tsp - validation shared by all four solvers.
//
// Every public solver calls validateProblem first, so a malformed request
// fails fast with a sentinel instead of yielding a silently wrong route.
// Nothing here logs or panics.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/matrix"
)

// validateProblem verifies the distance table and the (home, targets) pair,
// then returns the table as plain rows for the hot loops.
//
// Contract:
//   - dist non-nil, square, finite, non-negative, zero diagonal, symmetric
//     within symTol (matrix errors are wrapped with ErrInvalidInput).
//   - 0 ≤ home < n.
//   - every target in [0, n), distinct, and != home. Empty targets is valid.
//
// Complexity: O(n²) time, O(n²) space for the row copy.
func validateProblem(dist matrix.Matrix, home int, targets []int) ([][]float64, error) {
	if err := matrix.ValidateDistance(dist, symTol); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var n = dist.Rows()
	if err := validateTargets(n, home, targets); err != nil {
		return nil, err
	}

	rows, err := matrix.ToRows(dist)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return rows, nil
}

// validateTargets checks home range and that targets is a set of distinct,
// in-range, non-home indices.
//
// Complexity: O(n + k) time, O(n) space.
func validateTargets(n int, home int, targets []int) error {
	if home < 0 || home >= n {
		return fmt.Errorf("home=%d, n=%d: %w", home, n, ErrHomeOutOfRange)
	}
	seen := make([]bool, n)

	var (
		i int
		t int
	)
	for i = 0; i < len(targets); i++ {
		t = targets[i]
		if t < 0 || t >= n {
			return fmt.Errorf("targets[%d]=%d, n=%d: %w", i, t, n, ErrTargetOutOfRange)
		}
		if t == home {
			return fmt.Errorf("targets[%d]=%d: %w", i, t, ErrTargetIsHome)
		}
		if seen[t] {
			return fmt.Errorf("targets[%d]=%d: %w", i, t, ErrDuplicateTarget)
		}
		seen[t] = true
	}

	return nil
}
