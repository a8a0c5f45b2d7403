package grid

// Grid is a fixed-size rectangular matrix of Cell tags.
// Width and Height are immutable after construction; cells[y][x] holds the
// tag at column x, row y (row-major).
type Grid struct {
	width, height int
	cells         [][]Cell
}

// New constructs an all-Empty grid of the given dimensions.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]Cell, width)
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell tag at (x,y) and whether the coordinate is in bounds.
// Out-of-bounds reads report (Empty, false) rather than failing.
// Complexity: O(1).
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Empty, false
	}

	return g.cells[y][x], true
}

// Set overwrites the cell at (x,y). Out-of-bounds writes are a silent no-op,
// never an error. Complexity: O(1).
func (g *Grid) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.cells[y][x] = c
	}
}

// Neighbors returns the up-to-4 orthogonally adjacent in-bounds coordinates
// of (x,y), in window-scan order: up, left, right, down.
// Complexity: O(1).
func (g *Grid) Neighbors(x, y int) []Point {
	neighbors := make([]Point, 0, 4)
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			neighbors = append(neighbors, Point{X: nx, Y: ny})
		}
	}

	return neighbors
}

// Find returns the first cell tagged c in row-major scan order.
// The second return is false when no such cell exists.
// Complexity: O(W×H).
func (g *Grid) Find(c Cell) (Point, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == c {
				return Point{X: x, Y: y}, true
			}
		}
	}

	return Point{}, false
}

// Clear resets every cell to Empty, keeping the dimensions.
// Complexity: O(W×H).
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y][x] = Empty
		}
	}
}
