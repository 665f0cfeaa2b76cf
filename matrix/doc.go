// Package matrix holds the distance tables the route solvers read.
//
// The package provides:
//
//   - Matrix, a minimal read/write interface (Rows, Cols, At, Set, Clone).
//   - Dense, a flat row-major implementation with bounds-checked access,
//     plus NewDenseFrom for literal tables and SetSymmetric for producers.
//   - Validators for the distance-table contract: square, finite,
//     non-negative, zero diagonal, symmetric within a tolerance.
//   - ToRows, a one-shot copy into [][]float64 for hot loops.
//
// The triangle inequality is never assumed: tables produced by independent
// random draws routinely violate it.
package matrix
