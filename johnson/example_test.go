// Package johnson_test provides examples for the all-pairs solver.
package johnson_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/johnson"
)

// ExampleJohnson shows a negative edge making the long route cheaper than the
// direct one.
func ExampleJohnson() {
	g := core.MustGraph(4)
	_ = g.AddEdge(0, 1, -5)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 3)
	_ = g.AddEdge(0, 3, 10)

	res, err := johnson.Johnson(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := res.Distance(0, 3)
	path, _ := res.Path(0, 3)
	fmt.Println("distance:", d)
	fmt.Println("path:", path)
	d, _ = res.Distance(3, 0)
	fmt.Println("back:", d)
	// Output:
	// distance: 0
	// path: [0 1 2 3]
	// back: INF
}

// ExampleJohnson_negativeCycle shows the abort path.
func ExampleJohnson_negativeCycle() {
	g := core.MustGraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 0, -3)

	res, err := johnson.Johnson(g)
	fmt.Println(errors.Is(err, johnson.ErrNegativeCycle), res == nil)
	// Output:
	// true true
}

// ExampleReconstruct walks a predecessor row by hand.
func ExampleReconstruct() {
	prev := []int{core.NoVertex, 0, 1, core.NoVertex}
	path, _ := johnson.Reconstruct(prev, 0, 2)
	fmt.Println(path)

	_, err := johnson.Reconstruct(prev, 0, 3)
	fmt.Println(errors.Is(err, johnson.ErrNoPath))
	// Output:
	// [0 1 2]
	// true
}
