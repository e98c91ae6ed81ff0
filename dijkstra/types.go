// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on reweighted integer graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices when every reduced edge cost
// w' = w + h(u) − h(v) is non-negative. With h ≡ 0 this is the classic
// algorithm on non-negative weights.
//
// Options:
//
//	– Source:         index of the starting vertex (must lie in [0, V)).
//	– WithPotentials: potential vector h used to reweight every edge.
//	– WithStrategy:   StrategyLinearScan (default, O(V²+E)) or StrategyHeap
//	                  (O((V+E) log V)); both select vertices in the same order.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source vertex is outside [0, V).
//	– ErrBadPotentials  if h is shorter than V or holds an unreachable entry.
//	– ErrNegativeWeight if some reduced edge cost is negative.
//	– ErrBadStrategy    if WithStrategy receives an unknown value.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadPotentials indicates a potential vector that cannot reweight the graph:
	// fewer than V entries, or an unreachable entry for a vertex in [0, V).
	ErrBadPotentials = errors.New("dijkstra: invalid potential vector")

	// ErrNegativeWeight indicates that a negative (reduced) edge cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadStrategy indicates an unknown Strategy value.
	ErrBadStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy selects how the next vertex to settle is found.
//
// StrategyLinearScan – scan every unvisited vertex; O(V) per selection.
// StrategyHeap       – lazy-decrease-key binary heap; O(log V) per operation.
//
// Both strategies settle vertices in exactly the same order: the smallest
// tentative distance first and, among equal distances, the highest index.
type Strategy int

const (
	// StrategyLinearScan is the dense-graph strategy and the default.
	StrategyLinearScan Strategy = iota

	// StrategyHeap suits sparse graphs.
	StrategyHeap
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyLinearScan:
		return "linear"
	case StrategyHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source     – starting vertex index. Default 0.
// Potentials – reweighting vector; nil means h ≡ 0.
// Strategy   – vertex selection strategy. Default StrategyLinearScan.
type Options struct {
	Source     int             // The index of the source vertex
	Potentials []core.Distance // Reweighting potentials, nil for none
	Strategy   Strategy        // Vertex selection strategy
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
// Panics if v < 0.
func Source(v int) Option {
	if v < 0 {
		panic("dijkstra: Source: vertex must be non-negative")
	}

	return func(o *Options) {
		o.Source = v
	}
}

// WithPotentials reweights every edge (u, v, w) to w + h(u) − h(v).
// h must hold a finite entry for every vertex of the searched graph; extra
// trailing entries (such as a virtual source) are ignored. The slice is read,
// never modified.
func WithPotentials(h []core.Distance) Option {
	return func(o *Options) {
		o.Potentials = h
	}
}

// WithStrategy selects the vertex selection strategy.
// Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	if s != StrategyLinearScan && s != StrategyHeap {
		panic(ErrBadStrategy.Error())
	}

	return func(o *Options) {
		o.Strategy = s
	}
}

// ParseStrategy maps "linear" or "heap" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "linear", "":
		return StrategyLinearScan, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStrategy, name)
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source vertex.
//
// Defaults:
//   - Source:     <as passed> (validated in Dijkstra).
//   - Potentials: nil (no reweighting).
//   - Strategy:   StrategyLinearScan.
func DefaultOptions(source int) Options {
	return Options{
		Source:   source,
		Strategy: StrategyLinearScan,
	}
}
