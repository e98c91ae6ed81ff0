package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/apsp/bfs"
	"github.com/katalvlaran/apsp/core"
)

// ExampleBFS finds the fewest-hop route, which differs from the cheapest one.
func ExampleBFS() {
	g := core.MustGraph(5)
	// Route 1: 0→1→2→4 with large negative weights.
	_ = g.AddEdge(0, 1, -10)
	_ = g.AddEdge(1, 2, -10)
	_ = g.AddEdge(2, 4, -10)
	// Route 2: 0→3→4, expensive but shorter in hops.
	_ = g.AddEdge(0, 3, 50)
	_ = g.AddEdge(3, 4, 50)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(4)
	fmt.Println("order:", res.Order)
	fmt.Println("path:", path)
	// Output:
	// order: [0 1 3 2 4]
	// path: [0 3 4]
}

// ExampleReachable shows the reachability vector of a directed graph.
func ExampleReachable() {
	g := core.MustGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(2, 0, 1)

	r, _ := bfs.Reachable(g, 0)
	fmt.Println(r)
	// Output:
	// [true true false false]
}
