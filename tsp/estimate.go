package tsp

import (
	"fmt"
	"math"
)

// EstimateOps returns the approximate number of elementary steps algo
// performs for k targets. It is a planning figure for callers deciding
// whether to run an exponential strategy at all, not a timing model.
//
//	BruteForce:      k! · k          (every permutation, summed)
//	Recursive:       Σ_{j=1..k} k!/(k−j)!  (nodes of the branch tree)
//	NearestNeighbor: k²
//	HeldKarp:        k² · 2ᵏ
//
// Negative k is treated as 0. Results are float64 so large k saturates to
// +Inf instead of overflowing.
func EstimateOps(algo Algorithm, k int) float64 {
	if k < 0 {
		k = 0
	}
	var fk = float64(k)

	switch algo {
	case BruteForce:
		return factorial(k) * math.Max(fk, 1)

	case Recursive:
		var (
			nodes float64
			level = 1.0
			j     int
		)
		for j = 1; j <= k; j++ {
			level *= float64(k - j + 1) // k!/(k−j)!
			nodes += level
		}

		return math.Max(nodes, 1)

	case NearestNeighbor:
		return math.Max(fk*fk, 1)

	case HeldKarp:
		return math.Max(fk*fk*math.Exp2(fk), 1)

	default:
		return math.Inf(1)
	}
}

// CheckBudget returns ErrInfeasibleSize when EstimateOps(algo, k) exceeds
// budget. A budget ≤ 0 means unlimited. Solvers never call it themselves:
// guarding is the caller's decision.
func CheckBudget(algo Algorithm, k int, budget float64) error {
	if budget <= 0 {
		return nil
	}
	if ops := EstimateOps(algo, k); ops > budget {
		return fmt.Errorf("%s with k=%d needs ~%.3g ops, budget %.3g: %w", algo, k, ops, budget, ErrInfeasibleSize)
	}

	return nil
}

// factorial returns k! as float64 (+Inf past ~170).
func factorial(k int) float64 {
	var (
		f = 1.0
		i int
	)
	for i = 2; i <= k; i++ {
		f *= float64(i)
	}

	return f
}
