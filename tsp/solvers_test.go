package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/salesman/matrix"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolvers_FourCity pins cost and route for every strategy on the
// classic table. Brute force and recursion keep the first optimum in
// input order; Held-Karp keeps the first optimum in mask order.
func TestSolvers_FourCity(t *testing.T) {
	targets := []int{cityB, cityC, cityD}
	want := map[tsp.Algorithm][]int{
		tsp.BruteForce:      {cityA, cityB, cityD, cityC, cityA},
		tsp.Recursive:       {cityA, cityB, cityD, cityC, cityA},
		tsp.NearestNeighbor: {cityA, cityB, cityD, cityC, cityA},
		tsp.HeldKarp:        {cityA, cityC, cityD, cityB, cityA},
	}

	for _, s := range allSolvers {
		s := s
		t.Run(s.algo.String(), func(t *testing.T) {
			res, err := s.fn(fourCity(t), cityA, targets)
			require.NoError(t, err)
			requireRoute(t, res, cityA, targets)
			assert.Equal(t, s.algo, res.Algorithm)
			assert.Equal(t, want[s.algo], res.Route)
			assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
			if s.algo.Exact() {
				assert.Equal(t, fourCityOptimum, res.Cost)
			} else {
				assert.GreaterOrEqual(t, res.Cost, fourCityOptimum)
			}
		})
	}
}

// TestSolvers_EmptyTargets: k=0 is a valid degenerate case for all four.
func TestSolvers_EmptyTargets(t *testing.T) {
	for _, s := range allSolvers {
		for _, targets := range [][]int{nil, {}} {
			res, err := s.fn(fourCity(t), cityC, targets)
			require.NoError(t, err, s.algo.String())
			assert.Equal(t, []int{cityC, cityC}, res.Route, s.algo.String())
			assert.Zero(t, res.Cost, s.algo.String())
		}
	}
}

// TestSolvers_SingleTarget: k=1 costs dist[home][x] + dist[x][home].
func TestSolvers_SingleTarget(t *testing.T) {
	for _, s := range allSolvers {
		res, err := s.fn(fourCity(t), cityD, []int{cityB})
		require.NoError(t, err)
		assert.Equal(t, []int{cityD, cityB, cityD}, res.Route, s.algo.String())
		assert.Equal(t, 50.0, res.Cost, s.algo.String())
	}
}

// TestSolvers_Deterministic: identical inputs yield identical results.
func TestSolvers_Deterministic(t *testing.T) {
	targets := []int{cityD, cityB, cityC}
	for _, s := range allSolvers {
		first, err := s.fn(fourCity(t), cityA, targets)
		require.NoError(t, err)
		second, err := s.fn(fourCity(t), cityA, targets)
		require.NoError(t, err)
		assert.Equal(t, first.Route, second.Route, s.algo.String())
		assert.Equal(t, first.Cost, second.Cost, s.algo.String())
	}
}

// TestSolvers_DoNotMutateInput guards the caller's targets slice.
func TestSolvers_DoNotMutateInput(t *testing.T) {
	for _, s := range allSolvers {
		targets := []int{cityD, cityC, cityB}
		_, err := s.fn(fourCity(t), cityA, targets)
		require.NoError(t, err)
		assert.Equal(t, []int{cityD, cityC, cityB}, targets, s.algo.String())
	}
}

// TestSolvers_InvalidInput: every structural violation fails fast with
// ErrInvalidInput plus its specific sentinel.
func TestSolvers_InvalidInput(t *testing.T) {
	asym := fourCity(t)
	require.NoError(t, asym.Set(cityA, cityB, 11))
	diag := fourCity(t)
	require.NoError(t, diag.Set(cityC, cityC, 1))
	neg := fourCity(t)
	require.NoError(t, neg.SetSymmetric(cityB, cityC, -3))
	nan := fourCity(t)
	require.NoError(t, nan.SetSymmetric(cityB, cityC, math.NaN()))
	rect, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	tests := []struct {
		name    string
		dist    matrix.Matrix
		home    int
		targets []int
		wantErr error
	}{
		{"nil matrix", nil, cityA, []int{cityB}, matrix.ErrNilMatrix},
		{"non-square", rect, cityA, []int{cityB}, matrix.ErrNonSquare},
		{"asymmetric", asym, cityA, []int{cityB}, matrix.ErrAsymmetry},
		{"diagonal", diag, cityA, []int{cityB}, matrix.ErrNonZeroDiagonal},
		{"negative", neg, cityA, []int{cityB}, matrix.ErrNegative},
		{"nan", nan, cityA, []int{cityB}, matrix.ErrNaNInf},
		{"home out of range", fourCity(t), 4, []int{cityB}, tsp.ErrHomeOutOfRange},
		{"negative home", fourCity(t), -1, nil, tsp.ErrHomeOutOfRange},
		{"target out of range", fourCity(t), cityA, []int{cityB, 7}, tsp.ErrTargetOutOfRange},
		{"target is home", fourCity(t), cityA, []int{cityB, cityA}, tsp.ErrTargetIsHome},
		{"duplicate target", fourCity(t), cityA, []int{cityC, cityB, cityC}, tsp.ErrDuplicateTarget},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range allSolvers {
				_, err := s.fn(tc.dist, tc.home, tc.targets)
				require.ErrorIs(t, err, tsp.ErrInvalidInput, s.algo.String())
				require.ErrorIs(t, err, tc.wantErr, s.algo.String())
			}
		})
	}
}

// TestSolve_Dispatch routes each tag to its solver and rejects unknown tags.
func TestSolve_Dispatch(t *testing.T) {
	for _, s := range allSolvers {
		direct, err := s.fn(fourCity(t), cityA, []int{cityB, cityC, cityD})
		require.NoError(t, err)
		viaSolve, err := tsp.Solve(s.algo, fourCity(t), cityA, []int{cityB, cityC, cityD})
		require.NoError(t, err)
		assert.Equal(t, direct.Algorithm, viaSolve.Algorithm)
		assert.Equal(t, direct.Route, viaSolve.Route)
		assert.Equal(t, direct.Cost, viaSolve.Cost)
	}

	_, err := tsp.Solve(tsp.Algorithm(42), fourCity(t), cityA, nil)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}

// TestHeldKarp_TooManyTargets hits the addressable-table cap without
// allocating: validation happens on a table large enough to name the targets.
func TestHeldKarp_TooManyTargets(t *testing.T) {
	n := tsp.MaxHeldKarpTargets + 2
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	targets := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		targets = append(targets, i)
	}

	_, err = tsp.TSPHeldKarp(m, 0, targets)
	require.ErrorIs(t, err, tsp.ErrInfeasibleSize)
}
