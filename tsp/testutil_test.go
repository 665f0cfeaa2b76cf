// Package tsp_test provides lightweight helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/salesman/matrix"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// cityA..cityD index the classic four-city table.
	cityA = 0
	cityB = 1
	cityC = 2
	cityD = 3

	// fourCityOptimum is the exact optimum for home A, targets {B,C,D}.
	fourCityOptimum = 80.0

	// seedDet is the base seed for randomized property tests.
	seedDet = int64(20240917)
)

// fourCity returns the A,B,C,D table:
// A–B=10, A–C=15, A–D=20, B–C=35, B–D=25, C–D=30.
func fourCity(t testing.TB) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom([][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	require.NoError(t, err)

	return m
}

// randomSymmetric draws an n×n symmetric table with integer distances in
// [lo, hi], zero diagonal. Independent draws break the triangle inequality
// on purpose.
func randomSymmetric(t testing.TB, rng *rand.Rand, n, lo, hi int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			require.NoError(t, m.SetSymmetric(i, j, float64(lo+rng.Intn(hi-lo+1))))
		}
	}

	return m
}

// randomFractional builds an n×n symmetric table with off-diagonal values
// drawn from [scale/2, 3·scale/2).
func randomFractional(t testing.TB, rng *rand.Rand, n int, scale float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			require.NoError(t, m.SetSymmetric(i, j, scale*(0.5+rng.Float64())))
		}
	}

	return m
}

// pickTargets returns k distinct indices in [0,n) excluding home, in a
// random order.
func pickTargets(rng *rand.Rand, n, home, k int) []int {
	pool := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != home {
			pool = append(pool, i)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	return pool[:k]
}

// requireRoute asserts the closed-route invariants on res.
func requireRoute(t testing.TB, res tsp.Result, home int, targets []int) {
	t.Helper()
	require.Len(t, res.Route, len(targets)+2)
	require.NoError(t, tsp.ValidateRoute(res.Route, home, targets))
}

// solverFunc is the shared signature of the four public solvers.
type solverFunc func(matrix.Matrix, int, []int) (tsp.Result, error)

// allSolvers lists every solver with its tag for table-driven tests.
var allSolvers = []struct {
	algo tsp.Algorithm
	fn   solverFunc
}{
	{tsp.BruteForce, tsp.TSPBruteForce},
	{tsp.Recursive, tsp.TSPRecursive},
	{tsp.NearestNeighbor, tsp.TSPNearestNeighbor},
	{tsp.HeldKarp, tsp.TSPHeldKarp},
}
