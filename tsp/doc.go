// Package tsp computes minimum-cost closed routes that leave a fixed home
// city, visit every city of a target set exactly once, and return home.
//
// Four strategies share one contract (dist, home, targets) → Result:
//
//   - TSPBruteForce: exhaustive permutation search, O(k!·k) time, O(k) memory.
//   - TSPRecursive: unmemoized best(cur, remaining) recursion, O(k!) branches.
//   - TSPNearestNeighbor: greedy closest-unvisited walk, ties by index, O(k²).
//     Never below the optimum, no bounded approximation ratio.
//   - TSPHeldKarp: bitmask subset dynamic programming, O(k²·2ᵏ) time,
//     O(k·2ᵏ) memory.
//
// The three exact solvers always agree on Cost; they may return different
// routes only when several routes tie. Solve dispatches on an Algorithm
// tag, EstimateOps/CheckBudget help callers refuse large k up front, and
// RouteCost/ValidateRoute score and check a route proposed by a player.
//
// Distances come from a matrix.Matrix that must be square, finite,
// non-negative, symmetric and zero on the diagonal. The triangle
// inequality is not required. All functions are pure and synchronous:
// no I/O, no logging, no shared state.
package tsp
