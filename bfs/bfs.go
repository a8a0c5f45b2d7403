package bfs

import (
	"github.com/joonaspessi/path-finding/grid"
	"github.com/joonaspessi/path-finding/pathfind"
)

// Search is one breadth-first search bound to immutable start and end
// positions. It is mutated only through Step and becomes read-only once
// finished. Not safe for concurrent use; the driver owns one instance at
// a time.
type Search struct {
	queue   []grid.Point
	visited map[grid.Point]bool
	parents map[grid.Point]grid.Point
	states  map[grid.Point]pathfind.NodeState
	start   grid.Point
	end     grid.Point

	finished bool
	found    bool
}

// compile-time contract check
var _ pathfind.Algorithm = (*Search)(nil)

// New constructs a breadth-first search from start to end.
// The frontier is seeded with start, tagged InQueue.
func New(start, end grid.Point) *Search {
	s := &Search{
		queue:   make([]grid.Point, 0, 16),
		visited: make(map[grid.Point]bool),
		parents: make(map[grid.Point]grid.Point),
		states:  make(map[grid.Point]pathfind.NodeState),
		start:   start,
		end:     end,
	}
	s.queue = append(s.queue, start)
	s.states[start] = pathfind.InQueue

	return s
}

// Step pops one position from the FIFO frontier and expands its neighbors.
// Returns false once the search is finished: either the frontier drained
// without reaching end (found=false), or end was dequeued (found=true and
// the Path overlay is recorded).
func (s *Search) Step(g *grid.Grid) bool {
	if s.finished {
		return false
	}

	if len(s.queue) == 0 {
		s.finished = true
		return false
	}
	current := s.queue[0]
	s.queue = s.queue[1:]

	// stale entry; the step is consumed but the search continues
	if s.visited[current] {
		return true
	}

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
		// already queued; enqueueing again would duplicate work
		if s.states[n] == pathfind.InQueue {
			continue
		}

		s.parents[n] = current
		s.queue = append(s.queue, n)
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
func (s *Search) Name() string { return "BFS" }
