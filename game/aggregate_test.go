package game_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/salesman/game"
	"github.com/katalvlaran/salesman/matrix"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_FourCity(t *testing.T) {
	cmp := compareFourCity(t)

	assert.Equal(t, "A", cmp.Home)
	assert.Equal(t, []string{"B", "C", "D"}, cmp.Targets)
	assert.Equal(t, 80.0, cmp.Optimal)
	assert.Equal(t, tsp.HeldKarp, cmp.OptimalBy)
	assert.Empty(t, cmp.Skipped)
	require.Len(t, cmp.Results, 4)

	want := map[tsp.Algorithm][]string{
		tsp.BruteForce:      {"A", "B", "D", "C", "A"},
		tsp.Recursive:       {"A", "B", "D", "C", "A"},
		tsp.NearestNeighbor: {"A", "B", "D", "C", "A"},
		tsp.HeldKarp:        {"A", "C", "D", "B", "A"},
	}
	ordered := cmp.Ordered()
	require.Len(t, ordered, 4)
	for i, algo := range tsp.Algorithms() {
		r := ordered[i]
		assert.Equal(t, algo, r.Algorithm)
		assert.Equal(t, want[algo], r.Route, algo.String())
		assert.Equal(t, 80.0, r.Distance, algo.String())
		assert.Equal(t, algo.Complexity(), r.Complexity)
		assert.GreaterOrEqual(t, r.Seconds(), 0.0)
	}

	hk, ok := cmp.Result(tsp.HeldKarp)
	require.True(t, ok)
	assert.Equal(t, "O(n^2 * 2^n)", hk.Complexity)
}

func TestCompare_EmptyTargets(t *testing.T) {
	cmp, err := game.Compare(fourCity(t), abcd, "C", nil)
	require.NoError(t, err)
	for _, r := range cmp.Ordered() {
		assert.Equal(t, []string{"C", "C"}, r.Route, r.Algorithm.String())
		assert.Zero(t, r.Distance)
	}
	assert.Zero(t, cmp.Optimal)
}

func TestCompare_InvalidRequest(t *testing.T) {
	bad := fourCity(t)
	require.NoError(t, bad.Set(0, 1, 99))

	tests := []struct {
		name    string
		dist    matrix.Matrix
		labels  game.Labels
		home    string
		targets []string
		wantErr error
	}{
		{"nil table", nil, abcd, "A", []string{"B"}, matrix.ErrNilMatrix},
		{"label count", fourCity(t), game.MustLabels("A", "B"), "A", []string{"B"}, tsp.ErrInvalidInput},
		{"unknown home", fourCity(t), abcd, "Z", []string{"B"}, game.ErrUnknownLabel},
		{"unknown target", fourCity(t), abcd, "A", []string{"B", "Q"}, game.ErrUnknownLabel},
		{"home in targets", fourCity(t), abcd, "A", []string{"B", "A"}, tsp.ErrTargetIsHome},
		{"duplicate target", fourCity(t), abcd, "A", []string{"C", "B", "C"}, tsp.ErrDuplicateTarget},
		{"asymmetric table", bad, abcd, "A", []string{"B"}, matrix.ErrAsymmetry},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cmp, err := game.Compare(tc.dist, tc.labels, tc.home, tc.targets)
			require.Nil(t, cmp)
			require.ErrorIs(t, err, tsp.ErrInvalidInput)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestAggregator_Budget: with k=3 the estimates are BF 18, Rec 15, NN 9,
// HK 72. A budget of 16 keeps Recursive as the only exact solver.
func TestAggregator_Budget(t *testing.T) {
	var buf bytes.Buffer
	agg := game.NewAggregator(
		game.WithOpsBudget(16),
		game.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
	)
	cmp, err := agg.Compare(fourCity(t), abcd, "A", []string{"B", "C", "D"})
	require.NoError(t, err)

	assert.Len(t, cmp.Results, 2)
	require.Len(t, cmp.Skipped, 2)
	assert.ErrorIs(t, cmp.Skipped[tsp.BruteForce], tsp.ErrInfeasibleSize)
	assert.ErrorIs(t, cmp.Skipped[tsp.HeldKarp], tsp.ErrInfeasibleSize)
	assert.Equal(t, tsp.Recursive, cmp.OptimalBy)
	assert.Equal(t, 80.0, cmp.Optimal)

	logs := buf.String()
	assert.Equal(t, 2, strings.Count(logs, "over budget"))
	assert.Equal(t, 2, strings.Count(logs, "solver finished"))

	_, err = game.NewAggregator(game.WithOpsBudget(10)).
		Compare(fourCity(t), abcd, "A", []string{"B", "C", "D"})
	require.ErrorIs(t, err, tsp.ErrInfeasibleSize)
}

func TestAggregator_Algorithms(t *testing.T) {
	agg := game.NewAggregator(game.WithAlgorithms(tsp.HeldKarp, tsp.NearestNeighbor, tsp.HeldKarp))
	cmp, err := agg.Compare(fourCity(t), abcd, "A", []string{"B", "C", "D"})
	require.NoError(t, err)
	ordered := cmp.Ordered()
	require.Len(t, ordered, 2)
	assert.Equal(t, tsp.NearestNeighbor, ordered[0].Algorithm)
	assert.Equal(t, tsp.HeldKarp, ordered[1].Algorithm)

	_, err = game.NewAggregator(game.WithAlgorithms(tsp.NearestNeighbor)).
		Compare(fourCity(t), abcd, "A", []string{"B"})
	require.ErrorIs(t, err, game.ErrNoExactSolver)
}

func TestAggregator_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { game.WithOpsBudget(-1) })
	assert.Panics(t, func() { game.WithAlgorithms() })
	assert.Panics(t, func() { game.WithAlgorithms(tsp.Algorithm(9)) })
}

// TestCompare_ExactAgreeOnRandomRounds cross-checks exact solvers through
// the label layer on generated boards.
func TestCompare_ExactAgreeOnRandomRounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r, err := game.NewRound(game.WithSeed(seed))
		require.NoError(t, err)
		targets, err := r.PickTargets(6)
		require.NoError(t, err)

		cmp, err := game.Compare(r.Dist, r.Labels, r.Home, targets)
		require.NoError(t, err)
		for _, res := range cmp.Ordered() {
			if res.Algorithm.Exact() {
				assert.InDelta(t, cmp.Optimal, res.Distance, 1e-9, "seed %d %s", seed, res.Algorithm)
			} else {
				assert.GreaterOrEqual(t, res.Distance, cmp.Optimal-1e-9)
			}
			g, err := cmp.Grade(res.Route)
			require.NoError(t, err)
			assert.Equal(t, res.Distance, g.Distance)
		}
	}
}
