// SPDX-License-Identifier: MIT

// Package matrix holds the square result tables of all-pairs shortest-path
// computations and an independent Floyd–Warshall solver.
//
// Types:
//
//   - Distances: n×n core.Distance, row-major; zero value entries are
//     unreachable.
//   - Predecessors: n×n vertex indices, row-major; core.NoVertex means none.
//
// Both expose At/Set (bounds-checked, error-returning), Row (aliasing slice
// for row-by-row producers), Size and Equal.
//
// Algorithms:
//
//   - FloydWarshall(g): O(n³) dense APSP with fixed k → i → j order and
//     negative-cycle detection on the diagonal. Used to cross-check Johnson's
//     output (the CLI's -verify flag and the johnson tests).
//
// Errors:
//
//	ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrGraphNil, ErrNegativeCycle.
package matrix
