package dfs

import (
	"github.com/joonaspessi/path-finding/grid"
	"github.com/joonaspessi/path-finding/pathfind"
)

// Search is one depth-first search bound to immutable start and end
// positions. Mutated only through Step; read-only once finished.
// Not safe for concurrent use.
type Search struct {
	stack   []grid.Point
	visited map[grid.Point]bool
	parents map[grid.Point]grid.Point
	states  map[grid.Point]pathfind.NodeState
	start   grid.Point
	end     grid.Point

	finished bool
	found    bool
}

var _ pathfind.Algorithm = (*Search)(nil)

// New constructs a depth-first search from start to end.
// The frontier is seeded with start, tagged InQueue.
func New(start, end grid.Point) *Search {
	s := &Search{
		stack:   make([]grid.Point, 0, 16),
		visited: make(map[grid.Point]bool),
		parents: make(map[grid.Point]grid.Point),
		states:  make(map[grid.Point]pathfind.NodeState),
		start:   start,
		end:     end,
	}
	s.stack = append(s.stack, start)
	s.states[start] = pathfind.InQueue

	return s
}

// Step pops one position from the LIFO frontier and expands its neighbors.
// Returns false once the search is finished.
func (s *Search) Step(g *grid.Grid) bool {
	if s.finished {
		return false
	}

	if len(s.stack) == 0 {
		s.finished = true
		return false
	}
	current := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	s.visited[current] = true
	s.states[current] = pathfind.Visited

	if current == s.end {
		s.finished = true
		s.found = true
		pathfind.MarkPath(s.states, s.parents, s.start, s.end)

		return false
	}

	for _, n := range g.Neighbors(current.X, current.Y) {
		if c, ok := g.Get(n.X, n.Y); ok && c == grid.Wall {
			continue
		}
		if s.visited[n] {
			continue
		}

		// Duplicates on the stack are fine; only the first discoverer
		// records the parent link.
		if _, seen := s.parents[n]; !seen {
			s.parents[n] = current
		}
		s.stack = append(s.stack, n)
		s.states[n] = pathfind.InQueue
	}

	return true
}

// NodeStateAt returns the visualization tag last recorded for (x,y).
func (s *Search) NodeStateAt(x, y int) pathfind.NodeState {
	return s.states[grid.Point{X: x, Y: y}]
}

// Path returns the start→end sequence once found, or an empty slice.
func (s *Search) Path() []grid.Point {
	if !s.found {
		return nil
	}

	return pathfind.ReconstructPath(s.parents, s.start, s.end)
}

// Finished reports whether the search reached its terminal state.
func (s *Search) Finished() bool { return s.finished }

// Found reports whether end was reached before frontier exhaustion.
func (s *Search) Found() bool { return s.found }

// Name returns the display label.
func (s *Search) Name() string { return "DFS" }
