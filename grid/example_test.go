package grid_test

import (
	"fmt"

	"github.com/joonaspessi/path-finding/grid"
)

// ExampleGrid_Neighbors shows the window-scan enumeration order and the
// trimming of out-of-bounds neighbors at a corner.
func ExampleGrid_Neighbors() {
	g, _ := grid.New(3, 3)

	fmt.Println(g.Neighbors(1, 1))
	fmt.Println(g.Neighbors(0, 0))
	// Output:
	// [1,0 0,1 2,1 1,2]
	// [1,0 0,1]
}

// ExampleGrid_Get shows the bounded read contract: out-of-bounds coordinates
// report absence instead of failing.
func ExampleGrid_Get() {
	g, _ := grid.New(2, 2)
	g.Set(1, 1, grid.Wall)

	c, ok := g.Get(1, 1)
	fmt.Println(c, ok)
	c, ok = g.Get(5, 5)
	fmt.Println(c, ok)
	// Output:
	// Wall true
	// Empty false
}
