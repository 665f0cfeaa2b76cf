// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the distance-table validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/salesman/matrix"
	"github.com/stretchr/testify/require"
)

// fourCity is the textbook A,B,C,D table: symmetric, zero diagonal, and
// deliberately not a metric closure.
func fourCity(t *testing.T) *matrix.Dense {
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

// TestValidateSquareNonNil covers nil, non-square and square inputs.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", (*matrix.Dense)(nil), matrix.ErrNilMatrix},
		{"2x3", rect, matrix.ErrNonSquare},
		{"4x4", fourCity(t), nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateDistance walks every rejection branch of the composite check.
func TestValidateDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(m *matrix.Dense)
		wantErr error
	}{
		{"valid", func(*matrix.Dense) {}, nil},
		{"nan", func(m *matrix.Dense) { _ = m.SetSymmetric(0, 1, math.NaN()) }, matrix.ErrNaNInf},
		{"inf", func(m *matrix.Dense) { _ = m.SetSymmetric(2, 3, math.Inf(1)) }, matrix.ErrNaNInf},
		{"negative", func(m *matrix.Dense) { _ = m.SetSymmetric(1, 3, -1) }, matrix.ErrNegative},
		{"diagonal", func(m *matrix.Dense) { _ = m.Set(2, 2, 5) }, matrix.ErrNonZeroDiagonal},
		{"asymmetric", func(m *matrix.Dense) { _ = m.Set(0, 3, 21) }, matrix.ErrAsymmetry},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := fourCity(t)
			tc.mutate(m)
			err := matrix.ValidateDistance(m, 1e-9)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSymmetric_Tolerance accepts drift inside tol and rejects bad tol.
func TestValidateSymmetric_Tolerance(t *testing.T) {
	t.Parallel()

	m := fourCity(t)
	require.NoError(t, m.Set(0, 1, 10+1e-12))
	require.NoError(t, matrix.ValidateSymmetric(m, 1e-9))
	require.NoError(t, matrix.ValidateSymmetric(m, -1e-9))
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 0), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
}
