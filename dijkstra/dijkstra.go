// Package dijkstra implements Dijkstra's shortest-path algorithm on
// integer-weighted directed graphs, optionally reweighted by a potential
// vector so that graphs with negative edges can be searched once the
// potentials make every reduced cost non-negative.
//
// Complexity:
//
//   - StrategyLinearScan: O(V² + E) time, O(V) space.
//   - StrategyHeap:       O((V + E) log V) time, O(V + E) space.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all reduced edge costs (O(E)) and fail fast
//     on a negative one.
//   - Selection picks the smallest tentative distance; ties go to the highest
//     vertex index. Both strategies honor this, so their outputs are identical.
//   - At most V-1 vertices are settled: the last one cannot improve any other.
//   - Distances are returned in reduced space; callers holding h recover true
//     costs as d(s,v) − h(s) + h(v).
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

// Dijkstra computes shortest reduced distances from the source vertex
// (Options.Source) to all vertices of g.
//
// Returns:
//
//   - dist: dist[v] is the reduced distance from Source, or core.Infinity()
//     when v is unreachable.
//   - prev: prev[v] is the predecessor of v on one shortest path, or
//     core.NoVertex for the source and unreachable vertices.
//   - err:  error if inputs are invalid or a negative reduced cost exists.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain Source (ErrVertexNotFound).
//  3. Potentials, when given, must cover [0, V) with finite values (ErrBadPotentials).
//  4. No reduced edge cost may be negative (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) ([]core.Distance, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate Source exists in the graph
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 4) Validate potentials cover every vertex with a finite value.
	n := g.VertexCount()
	h := cfg.Potentials
	if h != nil {
		if len(h) < n {
			return nil, nil, fmt.Errorf("%w: %d entries for %d vertices", ErrBadPotentials, len(h), n)
		}
		for v := 0; v < n; v++ {
			if h[v].IsInf() {
				return nil, nil, fmt.Errorf("%w: vertex %d is unreachable", ErrBadPotentials, v)
			}
		}
	}

	r := &runner{
		g:       g,
		n:       n,
		h:       h,
		dist:    make([]core.Distance, n), // zero Distance is unreachable
		prev:    make([]int, n),
		visited: make([]bool, n),
	}

	// 5) Pre-scan all edges for negative reduced costs.
	if err := r.checkReducedCosts(); err != nil {
		return nil, nil, err
	}

	// 6) Run the selected strategy.
	r.init(cfg.Source)
	switch cfg.Strategy {
	case StrategyHeap:
		r.processHeap(cfg.Source)
	default:
		r.processLinear()
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph     // The input graph; read-only within Dijkstra.
	n       int             // Vertex count.
	h       []core.Distance // Potentials, nil for none.
	dist    []core.Distance // dist[v] = current best reduced distance from Source.
	prev    []int           // prev[v] = predecessor on the shortest path.
	visited []bool          // visited[v] = distance of v is final.
	pq      nodePQ          // Min-heap for StrategyHeap.
}

// reduced returns w + h(u) − h(v).
func (r *runner) reduced(u, v int, w int64) int64 {
	if r.h == nil {
		return w
	}

	return w + r.h[u].Int64() - r.h[v].Int64()
}

// checkReducedCosts fails with ErrNegativeWeight on the first negative reduced cost.
func (r *runner) checkReducedCosts() error {
	for u := 0; u < r.n; u++ {
		for v, w := range r.g.EdgesFrom(u) {
			if rw := r.reduced(u, v, w); rw < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%d reduced=%d", ErrNegativeWeight, u, v, w, rw)
			}
		}
	}

	return nil
}

// init sets dist(source)=0 and every predecessor to NoVertex.
func (r *runner) init(source int) {
	for v := range r.prev {
		r.prev[v] = core.NoVertex
	}
	r.dist[source] = core.Finite(0)
}

// processLinear settles up to V-1 vertices, each found by a full scan.
func (r *runner) processLinear() {
	for count := 0; count < r.n-1; count++ {
		u := r.selectMin()
		if u == core.NoVertex {
			break // nothing reachable remains
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// selectMin returns the unvisited vertex with the smallest finite tentative
// distance, or NoVertex. The "≤" comparison lets a later (higher) index
// replace an equal best, so the highest index wins ties.
func (r *runner) selectMin() int {
	best := core.NoVertex
	var bestDist core.Distance
	for v := 0; v < r.n; v++ {
		if r.visited[v] || r.dist[v].IsInf() {
			continue
		}
		if best == core.NoVertex || r.dist[v].LessOrEqual(bestDist) {
			best = v
			bestDist = r.dist[v]
		}
	}

	return best
}

// relax examines each edge leaving u and improves unvisited neighbors.
//
// Assumes r.dist[u] is finite and final.
func (r *runner) relax(u int) {
	du := r.dist[u]
	var cand core.Distance
	for v, w := range r.g.EdgesFrom(u) {
		if r.visited[v] {
			continue
		}
		cand = du.Add(r.reduced(u, v, w))
		if !cand.Less(r.dist[v]) {
			continue
		}
		r.dist[v] = cand
		r.prev[v] = u
		if r.pq != nil {
			heap.Push(&r.pq, &nodeItem{id: v, dist: cand.Int64()})
		}
	}
}

// processHeap settles vertices through a lazy-decrease-key heap: improved
// vertices are pushed again and stale entries are skipped when popped.
func (r *runner) processHeap(source int) {
	r.pq = make(nodePQ, 0, r.n)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	settled := 0
	for r.pq.Len() > 0 && settled < r.n-1 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] || item.dist != r.dist[u].Int64() {
			continue // stale entry
		}
		r.visited[u] = true
		settled++
		r.relax(u)
	}
}

// nodeItem represents a vertex and its tentative reduced distance.
type nodeItem struct {
	id   int   // vertex index
	dist int64 // reduced distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, then by id
// descending, which reproduces the linear scan's tie-break.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less: smaller dist first; on equal dist the higher index first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id > pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
