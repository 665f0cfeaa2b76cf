// Package tsp - dispatcher over the four route strategies.
//
// Solve is the single entry point that maps an Algorithm tag to its solver.
// The caller picks the strategy; nothing here swaps one implementation for
// another behind the caller's back.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/salesman/matrix"
)

// Solve validates the request and runs the solver selected by algo.
//
// Contracts:
//   - dist is a symmetric, zero-diagonal, non-negative n×n table.
//   - home ∈ [0, n); targets are distinct, in range, and exclude home.
//
// Errors: ErrUnsupportedAlgorithm for an unknown algo, otherwise whatever
// the selected solver returns (see types.go).
//
// Complexity: per algorithm, see Algorithm.Complexity and EstimateOps.
func Solve(algo Algorithm, dist matrix.Matrix, home int, targets []int) (Result, error) {
	switch algo {
	case BruteForce:
		return TSPBruteForce(dist, home, targets)

	case Recursive:
		return TSPRecursive(dist, home, targets)

	case NearestNeighbor:
		return TSPNearestNeighbor(dist, home, targets)

	case HeldKarp:
		return TSPHeldKarp(dist, home, targets)

	default:
		return Result{}, fmt.Errorf("Solve(%s): %w", algo, ErrUnsupportedAlgorithm)
	}
}
