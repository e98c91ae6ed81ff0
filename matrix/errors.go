// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with context via
// %w); callers match them with errors.Is. Accessors never panic on
// user-supplied indices.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested size is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different sizes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNegativeCycle indicates that Floyd-Warshall produced a negative
	// diagonal entry, i.e. some vertex lies on a negative cycle.
	ErrNegativeCycle = errors.New("matrix: negative cycle detected")
)

// matrixErrorf prefixes err with an operation tag, keeping the sentinel for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
