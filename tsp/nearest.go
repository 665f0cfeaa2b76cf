package tsp

import (
	"fmt"
	"time"

	"github.com/katalvlaran/salesman/matrix"
)

// TSPNearestNeighbor builds a route greedily: from home, repeatedly move to
// the closest not-yet-visited target, then return home.
//
// Ties are broken by the smaller city index, so the result does not depend
// on the order of targets. The cost is never below the optimum, but no
// approximation ratio holds: distances need not satisfy the triangle
// inequality.
//
// With k == 0 the route is [home, home] with cost 0.
//
// Time complexity:   O(k²)
// Memory complexity: O(k)
func TSPNearestNeighbor(dist matrix.Matrix, home int, targets []int) (Result, error) {
	d, err := validateProblem(dist, home, targets)
	if err != nil {
		return Result{}, fmt.Errorf("TSPNearestNeighbor: %w", err)
	}
	start := time.Now()

	var (
		k       = len(targets)
		visited = make([]bool, k)
		route   = make([]int, 0, k+2)
		cur     = home
		step    int
		pick    int
		i       int
	)
	route = append(route, home)
	for step = 0; step < k; step++ {
		pick = -1
		for i = 0; i < k; i++ {
			if visited[i] {
				continue
			}
			if pick < 0 || closer(d[cur], targets[i], targets[pick]) {
				pick = i
			}
		}
		visited[pick] = true
		cur = targets[pick]
		route = append(route, cur)
	}
	route = append(route, home)

	return finish(NearestNeighbor, d, route, start), nil
}

// closer reports whether candidate a beats incumbent b from the row of the
// current city: strictly nearer, or equally near with a smaller index.
func closer(row []float64, a, b int) bool {
	if row[a] != row[b] {
		return row[a] < row[b]
	}

	return a < b
}
