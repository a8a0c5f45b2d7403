// Package grid defines the cell tags, coordinate type, and sentinel errors
// shared by the grid substrate.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
)

// Cell tags a single grid position.
type Cell uint8

const (
	// Empty is a traversable floor cell. Zero value of Cell.
	Empty Cell = iota
	// Wall is an impassable cell.
	Wall
	// Start marks the search origin. At most one per grid is expected;
	// the grid itself does not enforce this (the editing collaborator does).
	Start
	// End marks the search goal. Same single-instance expectation as Start.
	End
)

// String returns a human-readable tag name.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Point is a grid coordinate. It is comparable and safe to use as a map key.
type Point struct {
	X, Y int
}

// String formats the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// neighborOffsets lists the four axis-aligned offsets in the order produced
// by scanning the 3×3 window row by row and filtering out diagonals:
// up, left, right, down. Traversal code relies on this order being stable.
var neighborOffsets = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
