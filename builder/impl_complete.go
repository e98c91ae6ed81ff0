// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_complete.go — implementation of Complete(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every ordered pair (i,j), i≠j, row by row: i asc, then j asc.
//
// Complexity:
//   • Time: O(n²). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/apsp/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete directed graph on n vertices without loops.
// It is the dense worst case for every all-pairs solver.
func Complete(n int, opts ...BuilderOption) (*core.Graph, error) {
	if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
		return nil, err
	}

	return build(methodComplete, n, newBuilderConfig(opts...), func(_ builderConfig, add emitter) error {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := add(i, j); err != nil {
					return err
				}
			}
		}

		return nil
	})
}
