package astar_test

import (
	"fmt"

	"github.com/joonaspessi/path-finding/astar"
	"github.com/joonaspessi/path-finding/grid"
)

// ExampleSearch runs a full search on a small grid with a wall column
// forcing a single possible route.
func ExampleSearch() {
	g, _ := grid.New(3, 3)
	g.Set(1, 0, grid.Wall)
	g.Set(1, 1, grid.Wall)

	s := astar.New(grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2})
	for s.Step(g) {
	}

	fmt.Println("found:", s.Found())
	fmt.Println("path:", s.Path())
	// Output:
	// found: true
	// path: [0,0 0,1 0,2 1,2 2,2]
}

// ExampleSearch_shortest shows that the heuristic never sacrifices
// optimality on an open grid.
func ExampleSearch_shortest() {
	g, _ := grid.New(4, 4)

	s := astar.New(grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 3})
	for s.Step(g) {
	}

	fmt.Println("found:", s.Found())
	fmt.Println("length:", len(s.Path()))
	// Output:
	// found: true
	// length: 7
}
