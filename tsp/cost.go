// Package tsp - cost utilities shared by exact and heuristic solvers.
//
// Every solver reports its cost through routeCost on the final route.
// Edge weights are added in ascending order, so a route and its reverse
// (the same edges on a symmetric table) produce bit-identical totals no
// matter which orientation a strategy found.
package tsp

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/salesman/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// RouteCost sums dist along route[i]→route[i+1].
// Unlike the solvers it does not require route to be a tour over a given
// target set (see ValidateRoute for that); it only requires a valid table
// and in-range indices. Used to score a player-proposed route.
//
// Errors: matrix sentinels wrapped with ErrInvalidInput for a bad table,
// ErrInvalidRoute for len(route) < 2 or an out-of-range index.
//
// Complexity: O(n²) validation + O(m log m) for m = len(route)-1 edges.
func RouteCost(dist matrix.Matrix, route []int) (float64, error) {
	if err := matrix.ValidateDistance(dist, symTol); err != nil {
		return 0, fmt.Errorf("RouteCost: %w: %w", ErrInvalidInput, err)
	}
	if len(route) < 2 {
		return 0, fmt.Errorf("RouteCost: len(route)=%d < 2: %w", len(route), ErrInvalidRoute)
	}

	var (
		n   = dist.Rows()
		w   = make([]float64, 0, len(route)-1)
		v   float64
		err error
		i   int
	)
	for i = 0; i < len(route); i++ {
		if route[i] < 0 || route[i] >= n {
			return 0, fmt.Errorf("RouteCost: route[%d]=%d, n=%d: %w", i, route[i], n, ErrInvalidRoute)
		}
	}
	for i = 0; i+1 < len(route); i++ {
		if v, err = dist.At(route[i], route[i+1]); err != nil {
			return 0, fmt.Errorf("RouteCost: %w: %w", ErrInvalidInput, err)
		}
		w = append(w, v)
	}

	return round1e9(sortedSum(w)), nil
}

// routeCost sums the edges of route over validated rows, smallest first.
// No checks: callers guarantee indices are in range.
//
// Complexity: O(m log m) for m = len(route)-1 edges.
func routeCost(d [][]float64, route []int) float64 {
	return sortedSum(edgeWeights(d, route, make([]float64, 0, len(route))))
}

// edgeWeights appends the weights of route's consecutive edges to buf[:0].
func edgeWeights(d [][]float64, route []int, buf []float64) []float64 {
	buf = buf[:0]
	for i := 0; i+1 < len(route); i++ {
		buf = append(buf, d[route[i]][route[i+1]])
	}

	return buf
}

// sortedSum sorts w in place and adds it up in ascending order. The total
// depends only on the multiset of weights, never on their order.
func sortedSum(w []float64) float64 {
	slices.Sort(w)
	var sum float64
	for _, x := range w {
		sum += x
	}

	return sum
}

// closedRoute returns [home, interior..., home] in a fresh slice.
func closedRoute(home int, interior []int) []int {
	route := make([]int, len(interior)+2)
	route[0] = home
	copy(route[1:], interior)
	route[len(route)-1] = home

	return route
}

// finish stamps a route with its rounded cost and the time since start.
func finish(algo Algorithm, d [][]float64, route []int, start time.Time) Result {
	return Result{
		Algorithm: algo,
		Route:     route,
		Cost:      round1e9(routeCost(d, route)),
		Elapsed:   time.Since(start),
	}
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
