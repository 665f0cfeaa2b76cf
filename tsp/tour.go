// Package tsp - route utilities that operate purely on index sequences.
//
// Provided helpers:
//   - ValidateRoute: enforce the closed-route invariants for (home, targets).
//   - EqualRoutes: element-wise route equality.
//   - nextPermutation: lexicographic successor, the brute-force enumerator.
package tsp

import "fmt"

// ValidateRoute enforces the route invariants:
//
//	len(route) == len(targets)+2, route[0] == route[last] == home,
//	and route[1:last] visits every target exactly once and nothing else.
//
// The targets themselves are assumed valid (distinct, non-home); use it
// after a solver call or to check a player-built route against the
// request that produced the comparison.
//
// Complexity: O(k) time and space.
func ValidateRoute(route []int, home int, targets []int) error {
	var k = len(targets)
	if len(route) != k+2 {
		return fmt.Errorf("ValidateRoute: len=%d, want %d: %w", len(route), k+2, ErrInvalidRoute)
	}
	if route[0] != home || route[k+1] != home {
		return fmt.Errorf("ValidateRoute: route must start and end at %d, got %d..%d: %w", home, route[0], route[k+1], ErrInvalidRoute)
	}

	want := make(map[int]bool, k)
	for _, t := range targets {
		want[t] = false
	}

	var (
		i       int
		v       int
		visited bool
		ok      bool
	)
	for i = 1; i <= k; i++ {
		v = route[i]
		visited, ok = want[v]
		if !ok {
			return fmt.Errorf("ValidateRoute: route[%d]=%d is not a target: %w", i, v, ErrInvalidRoute)
		}
		if visited {
			return fmt.Errorf("ValidateRoute: route[%d]=%d repeats a city: %w", i, v, ErrInvalidRoute)
		}
		want[v] = true
	}

	return nil
}

// EqualRoutes reports whether a and b hold the same cities in the same order.
// Complexity: O(len(a)).
func EqualRoutes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// nextPermutation rearranges p into its lexicographic successor and
// reports whether one existed. Starting from the sorted identity it visits
// all k! orders exactly once, in the same order as Python's
// itertools.permutations over positions.
//
// Complexity: O(k) worst case, O(1) amortized.
func nextPermutation(p []int) bool {
	var i = len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	var j = len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
