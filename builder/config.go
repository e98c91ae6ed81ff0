// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// config.go — internal configuration, deterministic defaults and the shared
// build loop every constructor runs through.
//
// Deterministic defaults:
//   • rng       = nil                    (pure unless seeded)
//   • weightFn  = DefaultWeightFn        (constant DefaultEdgeWeight)
//   • shift     = 0                      (no potential shift)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/apsp/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Potentials are drawn from [-shift, shift]; 0 disables shifting.
	shift int64
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// emitter adds one u→v edge with the configured weight policy.
type emitter func(u, v int) error

// constructor emits the topology of a generator through add.
type constructor func(cfg builderConfig, add emitter) error

// build allocates an n-vertex graph and runs fn against it.
//
// When shifting is enabled, a potential h is drawn per vertex before any
// weight, and every emitted weight w becomes w + h(u) − h(v). Cycle sums are
// unchanged, so a generator that cannot produce a negative cycle still cannot,
// while individual edges may turn negative.
func build(method string, n int, cfg builderConfig, fn constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, builderErrorf(method, "NewGraph(%d): %w", n, err)
	}

	var h []int64
	if cfg.shift > 0 {
		if cfg.rng == nil {
			return nil, builderErrorf(method, "potential shift: %w", ErrNeedRandSource)
		}
		h = make([]int64, n)
		for v := range h {
			h[v] = cfg.rng.Int63n(2*cfg.shift+1) - cfg.shift
		}
	}

	add := func(u, v int) error {
		w := cfg.weightFn(cfg.rng)
		if h != nil {
			w += h[u] - h[v]
		}
		if err := g.AddEdge(u, v, w); err != nil {
			return builderErrorf(method, "AddEdge(%d→%d, w=%d): %w: %w", u, v, w, ErrConstructFailed, err)
		}

		return nil
	}

	if err := fn(cfg, add); err != nil {
		return nil, err
	}

	return g, nil
}

// validateMin returns ErrTooFewVertices when n < min.
func validateMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
