package johnson

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/apsp/bellmanford"
	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/dijkstra"
	"github.com/katalvlaran/apsp/matrix"
)

// Sentinel errors returned by Johnson and Reconstruct.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Johnson.
	ErrNilGraph = errors.New("johnson: graph is nil")

	// ErrNegativeCycle aborts a run: the graph contains a negative-weight cycle
	// and shortest distances are undefined. It is the same value as
	// bellmanford.ErrNegativeCycle, so errors.Is matches either name.
	ErrNegativeCycle = bellmanford.ErrNegativeCycle

	// ErrVertexNotFound indicates a source or target outside [0, V).
	ErrVertexNotFound = errors.New("johnson: vertex not found")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("johnson: target unreachable from source")

	// ErrBrokenChain indicates a predecessor row that does not lead back to
	// the source (a cycle or a foreign chain).
	ErrBrokenChain = errors.New("johnson: broken predecessor chain")
)

// Options configures a Johnson run.
//
// Logger   – receives progress records; default discards.
// Strategy – Dijkstra vertex selection strategy; default StrategyLinearScan.
type Options struct {
	Logger   *slog.Logger
	Strategy dijkstra.Strategy
}

// Option represents a functional option for configuring Johnson.
type Option func(*Options)

// WithLogger sets the logger for progress records. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("johnson: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// WithStrategy selects the Dijkstra strategy used for every row.
// Panics on an unknown strategy.
func WithStrategy(s dijkstra.Strategy) Option {
	if s != dijkstra.StrategyLinearScan && s != dijkstra.StrategyHeap {
		panic(dijkstra.ErrBadStrategy.Error())
	}

	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns the defaults: a discarding logger and the
// linear-scan strategy.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Strategy: dijkstra.StrategyLinearScan,
	}
}

// Result holds the immutable outputs of a successful run.
//
// Dist holds real (un-reweighted) distances; Prev holds, for row i, the
// predecessor of each vertex on a shortest path from i. Potentials is the
// vector h over the augmented graph (length V+1, the last entry is the
// virtual source).
type Result struct {
	Dist       *matrix.Distances
	Prev       *matrix.Predecessors
	Potentials []core.Distance
}

// Size returns V.
func (r *Result) Size() int { return r.Dist.Size() }

// Distance returns the real shortest distance from i to j.
func (r *Result) Distance(i, j int) (core.Distance, error) {
	d, err := r.Dist.At(i, j)
	if err != nil {
		return core.Distance{}, fmt.Errorf("%w: (%d,%d)", ErrVertexNotFound, i, j)
	}

	return d, nil
}

// Path returns the vertex sequence of a shortest path from i to j.
// See Reconstruct for the error contract.
func (r *Result) Path(i, j int) ([]int, error) {
	row, err := r.Prev.Row(i)
	if err != nil {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, i)
	}

	return Reconstruct(row, i, j)
}
