// File: methods_clone.go
// Role: Cloning and augmentation of graph instances.
// Determinism:
//   - Clone and Augment copy buckets in vertex order and keep insertion order.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, vertex count and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		capHint:    g.capHint,
		n:          g.n,
		edgeCount:  g.edgeCount,
		adj:        make([][]arc, g.n),
	}
	for u, bucket := range g.adj {
		if len(bucket) == 0 {
			continue
		}
		clone.adj[u] = append(make([]arc, 0, len(bucket)), bucket...)
	}

	return clone
}

// Augment returns a new graph with V+1 vertices holding every edge of g plus
// a zero-weight edge from the new vertex V to each vertex in [0, V), and the
// index of that virtual source. No edge enters the virtual source.
//
// The original graph is not modified. The virtual source's edges are added
// in ascending target order.
//
// Complexity: O(V + E).
func (g *Graph) Augment() (*Graph, int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.n
	aug := &Graph{
		allowLoops: true,
		n:          g.n + 1,
		edgeCount:  g.edgeCount + g.n,
		adj:        make([][]arc, g.n+1),
	}
	for u, bucket := range g.adj {
		if len(bucket) == 0 {
			continue
		}
		aug.adj[u] = append(make([]arc, 0, len(bucket)), bucket...)
	}

	virtual := make([]arc, g.n)
	for v := 0; v < g.n; v++ {
		virtual[v] = arc{to: v, weight: 0}
	}
	aug.adj[src] = virtual

	return aug, src
}
