package tsp

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/salesman/matrix"
)

// TSPHeldKarp solves the route exactly with the Held–Karp bitmask dynamic
// program over the k targets (home is not part of the mask).
//
// Let t_0..t_{k-1} be the targets in input order.
// dp[mask][last] = minimum cost of a path that starts at home, has visited
// exactly the targets whose bits are set in mask, and ends at t_last.
//
//	base:       dp[1<<i][i] = dist[home][t_i]
//	transition: dp[mask|1<<nxt][nxt] = min(…, dp[mask][last] + dist[t_last][t_nxt])
//	answer:     min over last of dp[full][last] + dist[t_last][home]
//
// Masks, last and nxt are scanned in ascending order and only a strictly
// cheaper value replaces a table entry, so ties resolve deterministically.
// The route is rebuilt from a parent table instead of storing a path per
// state.
//
// With k == 0 the route is [home, home] with cost 0. k > MaxHeldKarpTargets
// returns ErrInfeasibleSize.
//
// Time complexity:  O(k² · 2ᵏ)
// Memory complexity: O(k · 2ᵏ)
func TSPHeldKarp(dist matrix.Matrix, home int, targets []int) (Result, error) {
	d, err := validateProblem(dist, home, targets)
	if err != nil {
		return Result{}, fmt.Errorf("TSPHeldKarp: %w", err)
	}
	if len(targets) > MaxHeldKarpTargets {
		return Result{}, fmt.Errorf("TSPHeldKarp: k=%d > %d: %w", len(targets), MaxHeldKarpTargets, ErrInfeasibleSize)
	}
	start := time.Now()

	return finish(HeldKarp, d, heldKarpRoute(d, home, targets), start), nil
}

// heldKarpRoute fills the dp/parent tables and unwinds the best route.
// Tables are flat: state (mask, last) lives at mask*k + last.
func heldKarpRoute(d [][]float64, home int, targets []int) []int {
	var k = len(targets)
	if k == 0 {
		return closedRoute(home, nil)
	}

	// --- 1. Allocate DP and parent tables ---
	var (
		size    = 1 << k
		allMask = size - 1
		dp      = make([]float64, size*k)
		parent  = make([]int, size*k)
		i       int
	)
	for i = range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1 // no predecessor
	}

	// --- 2. Base case: home → t_i ---
	for i = 0; i < k; i++ {
		dp[(1<<i)*k+i] = d[home][targets[i]]
	}

	// --- 3. Extend every reachable (mask, last) by one unvisited target ---
	var (
		mask, last, nxt int
		next            int
		cur, cand       float64
		row             []float64
	)
	for mask = 1; mask <= allMask; mask++ {
		for last = 0; last < k; last++ {
			if mask&(1<<last) == 0 {
				continue // last not in subset
			}
			cur = dp[mask*k+last]
			if math.IsInf(cur, 1) {
				continue
			}
			row = d[targets[last]]
			for nxt = 0; nxt < k; nxt++ {
				if mask&(1<<nxt) != 0 {
					continue // already visited
				}
				next = (mask|1<<nxt)*k + nxt
				cand = cur + row[targets[nxt]]
				if cand < dp[next] {
					dp[next] = cand
					parent[next] = last
				}
			}
		}
	}

	// --- 4. Close the route by returning home ---
	var (
		bestCost = math.Inf(1)
		bestLast = -1
		total    float64
	)
	for last = 0; last < k; last++ {
		total = dp[allMask*k+last] + d[targets[last]][home]
		if total < bestCost {
			bestCost = total
			bestLast = last
		}
	}

	// --- 5. Unwind parents from the full mask back to a single target ---
	route := make([]int, k+2)
	route[0], route[k+1] = home, home
	mask = allMask
	last = bestLast
	for i = k; i >= 1; i-- {
		route[i] = targets[last]
		prev := parent[mask*k+last]
		mask ^= 1 << last
		last = prev
	}

	return route
}
