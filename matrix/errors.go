// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions in this package return these sentinels, optionally wrapped
// with method context via fmt.Errorf("ctx: %w", ErrX). Callers match them
// with errors.Is. Nothing in this package panics on user-triggered input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows is returned by NewDenseFrom when input rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals |a_ij - a_ji| > tol for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNonZeroDiagonal signals |a_ii| > tol for some i.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within tolerance")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry where distances are required.
	ErrNegative = errors.New("matrix: negative entry")
)
