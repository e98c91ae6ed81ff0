// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model:
//   - Erdős–Rényi-like digraph: each ordered pair (i,j), i≠j, is included
//     independently with probability p. No self-loops, no parallel edges.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required for 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//
// Determinism:
//   - Trial order is i asc, then j asc; fixed seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples a directed graph over n vertices with independent
// edge probability p.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*core.Graph, error) {
	if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
		return nil, err
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
	}

	return build(methodRandomSparse, n, cfg, func(cfg builderConfig, add emitter) error {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				// Deterministic edge set for p ∈ {0,1} without an RNG.
				if cfg.rng == nil {
					if p == probMax {
						if err := add(i, j); err != nil {
							return err
						}
					}
					continue
				}
				if cfg.rng.Float64() < p {
					if err := add(i, j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}
