package game_test

import (
	"testing"

	"github.com/katalvlaran/salesman/game"
	"github.com/katalvlaran/salesman/matrix"
	"github.com/stretchr/testify/require"
)

// abcd labels the classic four-city table.
var abcd = game.MustLabels("A", "B", "C", "D")

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

// compareFourCity runs the default aggregator for home A, targets B,C,D.
func compareFourCity(t testing.TB) *game.Comparison {
	t.Helper()
	cmp, err := game.Compare(fourCity(t), abcd, "A", []string{"B", "C", "D"})
	require.NoError(t, err)

	return cmp
}
