// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_cycle.go — implementation of Cycle(n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i → (i+1)%n for i = 0..n-1 in that order.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/apsp/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the directed ring 0 → 1 → … → n-1 → 0.
// The total cycle weight is the sum of the emitted weights, so a negative
// WithConstantWeight yields a negative cycle.
func Cycle(n int, opts ...BuilderOption) (*core.Graph, error) {
	if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
		return nil, err
	}

	return build(methodCycle, n, newBuilderConfig(opts...), func(_ builderConfig, add emitter) error {
		for i := 0; i < n; i++ {
			if err := add(i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	})
}
