// Package salesman is the route-optimization core of a Travelling Salesman
// round: given a symmetric distance table, a home city and a set of target
// cities, find the shortest closed route that leaves home, visits every
// target once and comes back.
//
// Four strategies are implemented side by side so their answers and costs
// can be compared:
//
//	Brute Force        exhaustive permutations           O(n!)
//	Recursive          unmemoized branch evaluation      O(n!)
//	Nearest Neighbour  greedy closest-unvisited walk     O(n^2)
//	Held-Karp (DP)     bitmask subset dynamic program    O(n^2 * 2^n)
//
// Layout:
//
//	matrix/        distance table container and its validators
//	tsp/           the four solvers, Solve dispatch, route cost and checks
//	game/          city labels, Compare/Aggregator, player grading, rounds
//	report/        lipgloss tables and the YAML/JSON round report
//	config/        viper configuration for the CLI
//	cmd/tspround/  cobra CLI: play a round, estimate solver cost
//
// Quick start:
//
//	dist, _ := matrix.NewDenseFrom([][]float64{
//		{0, 10, 15, 20},
//		{10, 0, 35, 25},
//		{15, 35, 0, 30},
//		{20, 25, 30, 0},
//	})
//	res, _ := tsp.TSPHeldKarp(dist, 0, []int{1, 2, 3})
//	fmt.Println(res.Route, res.Cost) // [0 2 3 1 0] 80
package salesman
