// Package pathfind - shared types for the search variants.
package pathfind

import (
	"fmt"

	"github.com/joonaspessi/path-finding/grid"
)

// NodeState is the per-position visualization tag recorded by a search.
// For most variants the progression is monotonic
// (Unvisited → InQueue → Visited), except that cost-based variants may
// re-tag a position InQueue with an updated cost before it is finalized.
type NodeState uint8

const (
	// Unvisited is the default state of every position. Zero value.
	Unvisited NodeState = iota
	// InQueue marks a discovered position waiting in the frontier.
	InQueue
	// Visited marks a finalized position; it never leaves this set.
	Visited
	// Path marks a position on the reconstructed start→end backbone.
	Path
)

// String returns a human-readable tag name.
func (s NodeState) String() string {
	switch s {
	case Unvisited:
		return "Unvisited"
	case InQueue:
		return "InQueue"
	case Visited:
		return "Visited"
	case Path:
		return "Path"
	default:
		return fmt.Sprintf("NodeState(%d)", uint8(s))
	}
}

// Algorithm is the uniform incremental-execution contract implemented by
// every search variant. One instance is bound to immutable start and end
// coordinates for the lifetime of one search; the external driver constructs
// it, calls Step repeatedly, and reads per-cell state and the final path.
type Algorithm interface {
	// Step performs exactly one frontier-pop-and-expand operation against g
	// and reports whether the search should continue. It never blocks and
	// does a bounded amount of work (one pop plus at most 4 expansions).
	// A finished search is a no-op returning false.
	Step(g *grid.Grid) bool

	// NodeStateAt returns the visualization tag last recorded for (x,y),
	// or Unvisited if none was.
	NodeStateAt(x, y int) NodeState

	// Path returns the start→end positions inclusive once a path was found,
	// and an empty slice otherwise.
	Path() []grid.Point

	// Finished reports whether the search reached its terminal state.
	Finished() bool

	// Found reports whether the end position was reached before exhaustion.
	// Only meaningful once Finished is true.
	Found() bool

	// Name returns the variant's display label.
	Name() string
}
