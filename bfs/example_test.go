package bfs_test

import (
	"fmt"

	"github.com/joonaspessi/path-finding/bfs"
	"github.com/joonaspessi/path-finding/grid"
)

// ExampleSearch drives a breadth-first search across an open 3×3 grid one
// step at a time, the way a rendering driver would, and prints the result.
func ExampleSearch() {
	g, err := grid.New(3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s := bfs.New(grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2})
	steps := 0
	for s.Step(g) {
		steps++
	}

	fmt.Println("found:", s.Found())
	fmt.Println("path:", s.Path())
	// Output:
	// found: true
	// path: [0,0 1,0 2,0 2,1 2,2]
}

// ExampleSearch_noPath shows a search draining naturally when the end is
// walled off: no error, just finished with no path.
func ExampleSearch_noPath() {
	g, _ := grid.New(4, 4)
	// wall off the bottom-right corner
	g.Set(2, 3, grid.Wall)
	g.Set(3, 2, grid.Wall)

	s := bfs.New(grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 3})
	for s.Step(g) {
	}

	fmt.Println("finished:", s.Finished())
	fmt.Println("found:", s.Found())
	fmt.Println("path length:", len(s.Path()))
	// Output:
	// finished: true
	// found: false
	// path length: 0
}
