// Package bellmanford defines sentinel errors and configuration options for
// the Bellman-Ford single-source shortest-path algorithm.
//
// Options:
//
//	– Source: index of the starting vertex (must lie in [0, V)).
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source vertex is outside [0, V).
//	– ErrNegativeCycle  if a negative-weight cycle is reachable from the source.
package bellmanford

import "errors"

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is outside [0, V).
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates that an edge could still be relaxed after
	// V-1 full rounds, i.e. a negative-weight cycle is reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")
)

// Options configures the behavior of BellmanFord.
//
// Source – starting vertex index. Default 0.
type Options struct {
	Source int // The index of the source vertex
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// Source sets the starting vertex index.
// Panics if v < 0, since no graph has a negative vertex.
func Source(v int) Option {
	if v < 0 {
		panic("bellmanford: Source: vertex must be non-negative")
	}

	return func(o *Options) {
		o.Source = v
	}
}

// DefaultOptions returns Options initialized with the given source vertex.
func DefaultOptions(source int) Options {
	return Options{Source: source}
}
