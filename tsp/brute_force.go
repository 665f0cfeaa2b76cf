package tsp

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/salesman/matrix"
)

// TSPBruteForce finds the optimal closed route by scoring every
// permutation of targets.
//
// Each candidate [home, perm..., home] is scored like the reported cost
// (edge weights added smallest first) and the first permutation (in
// lexicographic order of input positions) that reaches the minimum wins;
// later ties never replace it.
//
// With k == len(targets) == 0 the route is [home, home] with cost 0.
//
// Errors: ErrInvalidInput and its specific sentinels from validation.
//
// Time complexity:   O(k!·k)
// Memory complexity: O(k)
func TSPBruteForce(dist matrix.Matrix, home int, targets []int) (Result, error) {
	d, err := validateProblem(dist, home, targets)
	if err != nil {
		return Result{}, fmt.Errorf("TSPBruteForce: %w", err)
	}
	start := time.Now()

	return finish(BruteForce, d, bruteForceRoute(d, home, targets), start), nil
}

// bruteForceRoute walks all permutations of positions 0..k-1 and keeps the
// cheapest candidate route.
func bruteForceRoute(d [][]float64, home int, targets []int) []int {
	var k = len(targets)
	best := closedRoute(home, targets)
	if k == 0 {
		return best
	}

	perm := make([]int, k) // positions into targets, starts sorted
	cand := make([]int, k+2)
	cand[0], cand[k+1] = home, home

	var (
		bestCost = math.Inf(1)
		cost     float64
		weights  = make([]float64, 0, k+1)
		i        int
	)
	for i = 0; i < k; i++ {
		perm[i] = i
	}
	for {
		for i = 0; i < k; i++ {
			cand[i+1] = targets[perm[i]]
		}
		weights = edgeWeights(d, cand, weights)
		cost = sortedSum(weights)
		if cost < bestCost {
			bestCost = cost
			copy(best, cand)
		}
		if !nextPermutation(perm) {
			break
		}
	}

	return best
}
