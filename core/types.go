// Package core defines the central Graph and Edge types for dense,
// integer-indexed directed graphs, together with the Distance value used by
// every shortest-path algorithm in this module.
//
// A Graph is created once with a fixed vertex count V; vertices are the
// integers [0, V). Edges are appended per source vertex and kept in insertion
// order, so every traversal is reproducible.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with V < 0.
//	ErrInvalidVertex       - an edge endpoint lies outside [0, V).
//	ErrWeightOutOfRange    - |weight| exceeds MaxAbsWeight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was called with a negative vertex count.
	ErrNegativeVertexCount = errors.New("core: vertex count is negative")

	// ErrInvalidVertex indicates an operation referenced a vertex outside [0, V).
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrWeightOutOfRange indicates an edge weight whose magnitude exceeds MaxAbsWeight.
	ErrWeightOutOfRange = errors.New("core: edge weight out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// NoVertex marks the absence of a vertex in predecessor tables.
const NoVertex = -1

// MaxAbsWeight bounds the magnitude of a single edge weight.
//
// Any simple path has at most V-1 edges, so every path cost stays within
// (V-1)·MaxAbsWeight, which fits in int64 for any V below 2^32. Potentials
// and reweighted costs are bounded by the same argument (a reduced cost is at
// most three such terms).
const MaxAbsWeight int64 = 1<<31 - 1

// Edge is a directed, weighted connection From → To.
//
// Parallel edges between the same endpoints are independent entries.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the signed cost of traversing the edge.
	Weight int64
}

// String renders the edge as "u→v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Weight)
}

// arc is the adjacency-list payload: the source is implied by the bucket.
type arc struct {
	to     int
	weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeCapacity preallocates room for roughly n edges spread over all
// vertices. It is a hint only; the graph grows as needed.
// Panics if n < 0.
func WithEdgeCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithEdgeCapacity: n must be non-negative")
	}

	return func(g *Graph) { g.capHint = n }
}

// WithoutLoops rejects self-loops (u→u) with ErrLoopNotAllowed.
// Loops are accepted by default: a non-negative loop never shortens a path,
// and a negative one is reported as a negative cycle.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// Graph is a directed graph over the vertices [0, V) with ordered outgoing
// edge lists.
//
// The vertex count is fixed at construction. mu guards adj and edgeCount so a
// Graph may be filled and read from different goroutines; algorithms in this
// module only read it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool
	capHint    int

	// Storage
	n         int     // vertex count, immutable
	edgeCount int     // total number of arcs
	adj       [][]arc // adj[u] = outgoing arcs of u in insertion order
}

// NewGraph creates an empty Graph with v vertices and no edges.
// By default self-loops are allowed.
// Complexity: O(V).
func NewGraph(v int, opts ...GraphOption) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, v)
	}

	g := &Graph{
		allowLoops: true,
		n:          v,
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	g.adj = make([][]arc, v)
	if g.capHint > 0 && v > 0 {
		per := g.capHint / v
		if per > 0 {
			for u := range g.adj {
				g.adj[u] = make([]arc, 0, per)
			}
		}
	}

	return g, nil
}

// MustGraph is like NewGraph but panics on error. Intended for tests and
// package-level fixtures where V is a constant.
func MustGraph(v int, opts ...GraphOption) *Graph {
	g, err := NewGraph(v, opts...)
	if err != nil {
		panic(err)
	}

	return g
}
