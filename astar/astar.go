package astar

import (
	"container/heap"
	"math"

	"github.com/joonaspessi/path-finding/grid"
	"github.com/joonaspessi/path-finding/pathfind"
)

// Search is one A* search bound to immutable start and end positions.
// Mutated only through Step; read-only once finished.
// Not safe for concurrent use.
type Search struct {
	gCosts  map[grid.Point]int
	visited map[grid.Point]bool
	parents map[grid.Point]grid.Point
	states  map[grid.Point]pathfind.NodeState
	pq      nodePQ
	start   grid.Point
	end     grid.Point

	finished bool
	found    bool
}

var _ pathfind.Algorithm = (*Search)(nil)

// New constructs an A* search from start to end.
// The frontier is seeded with start at g=0, f=h(start,end), tagged InQueue.
func New(start, end grid.Point) *Search {
	s := &Search{
		gCosts:  make(map[grid.Point]int),
		visited: make(map[grid.Point]bool),
		parents: make(map[grid.Point]grid.Point),
		states:  make(map[grid.Point]pathfind.NodeState),
		pq:      make(nodePQ, 0, 16),
		start:   start,
		end:     end,
	}
	heap.Init(&s.pq)
	s.gCosts[start] = 0
	heap.Push(&s.pq, &nodeItem{
		position: start,
		gCost:    0,
		fCost:    pathfind.Manhattan(start, end),
	})
	s.states[start] = pathfind.InQueue

	return s
}

// Step pops the minimum-f frontier entry and relaxes its neighbors.
// Stale entries referring to already-finalized positions are discarded here,
// consuming the step. Returns false once the search is finished.
func (s *Search) Step(g *grid.Grid) bool {
	if s.finished {
		return false
	}

	if s.pq.Len() == 0 {
		s.finished = true
		return false
	}
	current := heap.Pop(&s.pq).(*nodeItem)
	pos := current.position

	// stale duplicate from a lazy decrease-key; skip it
	if s.visited[pos] {
		return true
	}

	s.visited[pos] = true
	s.states[pos] = pathfind.Visited

	if pos == s.end {
		s.finished = true
		s.found = true
		pathfind.MarkPath(s.states, s.parents, s.start, s.end)

		return false
	}

	currentG := s.gCostTo(pos)
	for _, n := range g.Neighbors(pos.X, pos.Y) {
		if c, ok := g.Get(n.X, n.Y); ok && c == grid.Wall {
			continue
		}
		if s.visited[n] {
			continue
		}

		newG := currentG + 1
		if newG < s.gCostTo(n) {
			s.gCosts[n] = newG
			s.parents[n] = pos
			heap.Push(&s.pq, &nodeItem{
				position: n,
				gCost:    newG,
				fCost:    newG + pathfind.Manhattan(n, s.end),
			})
			s.states[n] = pathfind.InQueue
		}
	}

	return true
}

// gCostTo returns the best-known cost from start, or MaxInt when unknown.
func (s *Search) gCostTo(p grid.Point) int {
	if g, ok := s.gCosts[p]; ok {
		return g
	}

	return math.MaxInt
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
func (s *Search) Name() string { return "A*" }

// nodeItem is one frontier entry: a position with the accumulated cost g and
// priority key f = g + h it was pushed with. Stale entries remain in the
// heap and are ignored on pop.
type nodeItem struct {
	position grid.Point
	gCost    int
	fCost    int
}

// nodePQ is a min-heap of *nodeItem ordered by ascending fCost;
// ties prefer the larger gCost (deeper along an equally short path).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller f, then by larger g among equal f.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].fCost != pq[j].fCost {
		return pq[i].fCost < pq[j].fCost
	}

	return pq[i].gCost > pq[j].gCost
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element, per container/heap's contract.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
