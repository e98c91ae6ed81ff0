// File: api.go
// Role: Read-only getters and a statistics snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Vertex count and flags are immutable after construction and need no lock.

package core

// VertexCount returns V. Vertices are the integers [0, V).
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// HasVertex reports whether v lies in [0, V).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Looped reports whether self-loops are accepted by AddEdge.
func (g *Graph) Looped() bool { return g.allowLoops }

// GraphStats is a snapshot of the graph's size and weight profile.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	NegativeEdges int   // edges with Weight < 0
	SelfLoops     int   // edges with From == To
	MinWeight     int64 // 0 when the graph has no edges
	MaxWeight     int64 // 0 when the graph has no edges
}

// Stats produces a deterministic snapshot of size and weight statistics.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{VertexCount: g.n, EdgeCount: g.edgeCount}
	first := true
	for u, bucket := range g.adj {
		for _, a := range bucket {
			if a.weight < 0 {
				s.NegativeEdges++
			}
			if a.to == u {
				s.SelfLoops++
			}
			if first || a.weight < s.MinWeight {
				s.MinWeight = a.weight
			}
			if first || a.weight > s.MaxWeight {
				s.MaxWeight = a.weight
			}
			first = false
		}
	}

	return s
}
