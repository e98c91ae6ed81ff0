// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) → i for i = 1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/apsp/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds the directed chain 0 → 1 → … → n-1. Being acyclic, it never
// holds a negative cycle whatever the weights.
func Path(n int, opts ...BuilderOption) (*core.Graph, error) {
	if err := validateMin(methodPath, n, minPathNodes); err != nil {
		return nil, err
	}

	return build(methodPath, n, newBuilderConfig(opts...), func(_ builderConfig, add emitter) error {
		for i := 1; i < n; i++ {
			if err := add(i-1, i); err != nil {
				return err
			}
		}

		return nil
	})
}
