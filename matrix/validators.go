// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the structural checks a distance table must
//    pass before any solver reads it.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Scans run in fixed i→j order, so the first reported violation is stable.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // typed nil
	}

	return nil
}

// ValidateSquare checks Rows == Cols and Rows > 0.
// Assumes m is non-nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	if m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateFiniteNonNegative rejects NaN, ±Inf and negative entries.
// Assumes m is non-nil.
// Complexity: O(r*c).
func ValidateFiniteNonNegative(m Matrix) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFiniteNonNegative", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFiniteNonNegative: a[%d][%d]", i, j), ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateFiniteNonNegative: a[%d][%d]=%g", i, j, v), ErrNegative)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |a_ii| ≤ tol for every i.
// Assumes m is square and non-nil.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateZeroDiagonal", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		i   int
		v   float64
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return validatorErrorf("ValidateZeroDiagonal", err)
		}
		if math.Abs(v) > tol {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal: a[%d][%d]=%g", i, i, v), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks |a_ij - a_ji| ≤ tol for all i<j.
// A negative tol is taken by absolute value; NaN/Inf tol is ErrNaNInf.
// Complexity: O(n²) over the strict upper triangle.
func ValidateSymmetric(m Matrix, tol float64) error {
	if m == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSymmetric", ErrNonSquare)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: a[%d][%d]=%g a[%d][%d]=%g", i, j, aij, j, i, aji), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistance is the composite check for a symmetric distance table:
// NotNil → Square → FiniteNonNegative → ZeroDiagonal → Symmetric.
// The triangle inequality is deliberately not checked.
// Complexity: O(n²).
func ValidateDistance(m Matrix, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateFiniteNonNegative(m); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateZeroDiagonal(m, tol); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}

	return nil
}
