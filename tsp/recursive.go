package tsp

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/salesman/matrix"
)

// TSPRecursive finds the optimal closed route with the plain recursion
//
//	best(cur, ∅)   = dist[cur][home]
//	best(cur, rem) = min over nxt ∈ rem of dist[cur][nxt] + best(nxt, rem − {nxt})
//
// evaluated from best(home, targets). Nothing is memoized: every branch is
// expanded, so the work matches brute force while the shape of the search
// (a tree of sub-problems rather than a flat list of permutations) differs.
// Candidates are tried in input order and only a strictly cheaper branch
// replaces the current best.
//
// With k == 0 the route is [home, home] with cost 0.
//
// Time complexity:   O(k!) branch evaluations (Σ k!/(k−j)! nodes)
// Memory complexity: O(k²) along the active recursion path
func TSPRecursive(dist matrix.Matrix, home int, targets []int) (Result, error) {
	d, err := validateProblem(dist, home, targets)
	if err != nil {
		return Result{}, fmt.Errorf("TSPRecursive: %w", err)
	}
	start := time.Now()

	s := recursiveSearch{
		d:       d,
		home:    home,
		targets: targets,
		used:    make([]bool, len(targets)),
	}
	_, tail := s.best(home, len(targets))

	return finish(Recursive, d, append([]int{home}, tail...), start), nil
}

// recursiveSearch carries the read-only problem plus the in-use marks of
// the current branch. It lives for a single TSPRecursive call.
type recursiveSearch struct {
	d       [][]float64
	home    int
	targets []int
	used    []bool // used[i] ⇔ targets[i] is already on the current path
}

// best returns the cheapest cost from cur through the remaining unused
// targets back to home, together with that path (excluding cur, ending
// with home).
func (s *recursiveSearch) best(cur int, remaining int) (float64, []int) {
	if remaining == 0 {
		return s.d[cur][s.home], []int{s.home}
	}

	var (
		bestCost = math.Inf(1)
		bestTail []int
		cost     float64
		tail     []int
	)
	for i, nxt := range s.targets {
		if s.used[i] {
			continue
		}
		s.used[i] = true
		cost, tail = s.best(nxt, remaining-1)
		s.used[i] = false

		cost += s.d[cur][nxt]
		if cost < bestCost {
			bestCost = cost
			bestTail = append([]int{nxt}, tail...)
		}
	}

	return bestCost, bestTail
}
