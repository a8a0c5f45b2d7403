package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joonaspessi/path-finding/grid"
	"github.com/joonaspessi/path-finding/pathfind"
)

func TestManhattan_KnownDistances(t *testing.T) {
	assert.Equal(t, 4, pathfind.Manhattan(grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2}))
	assert.Equal(t, 0, pathfind.Manhattan(grid.Point{X: 3, Y: 3}, grid.Point{X: 3, Y: 3}))
	assert.Equal(t, 7, pathfind.Manhattan(grid.Point{X: 1, Y: 5}, grid.Point{X: 4, Y: 9}))
}

func TestManhattan_Symmetry(t *testing.T) {
	for _, pair := range [][2]grid.Point{
		{{X: 0, Y: 0}, {X: 2, Y: 2}},
		{{X: 5, Y: 1}, {X: 0, Y: 7}},
		{{X: 9, Y: 9}, {X: 9, Y: 0}},
		{{X: 3, Y: 4}, {X: 3, Y: 4}},
	} {
		a, b := pair[0], pair[1]
		assert.Equal(t, pathfind.Manhattan(a, b), pathfind.Manhattan(b, a),
			"heuristic must be symmetric for %v and %v", a, b)
	}
}

func TestReconstructPath_Chain(t *testing.T) {
	start := grid.Point{X: 0, Y: 0}
	end := grid.Point{X: 2, Y: 0}
	parents := map[grid.Point]grid.Point{
		{X: 1, Y: 0}: start,
		{X: 2, Y: 0}: {X: 1, Y: 0},
	}

	path := pathfind.ReconstructPath(parents, start, end)
	assert.Equal(t, []grid.Point{start, {X: 1, Y: 0}, end}, path)
}

func TestReconstructPath_StartEqualsEnd(t *testing.T) {
	p := grid.Point{X: 1, Y: 1}
	path := pathfind.ReconstructPath(map[grid.Point]grid.Point{}, p, p)
	assert.Equal(t, []grid.Point{p}, path)
}

func TestReconstructPath_BrokenChainStopsEarly(t *testing.T) {
	start := grid.Point{X: 0, Y: 0}
	end := grid.Point{X: 3, Y: 0}
	// Chain is missing the link below (2,0); the walk must terminate
	// instead of looping, and the result still begins at start.
	parents := map[grid.Point]grid.Point{
		{X: 3, Y: 0}: {X: 2, Y: 0},
	}

	path := pathfind.ReconstructPath(parents, start, end)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	assert.Len(t, path, 3)
}

func TestReconstructPath_CyclicChainStopsEarly(t *testing.T) {
	start := grid.Point{X: 0, Y: 0}
	end := grid.Point{X: 3, Y: 0}
	other := grid.Point{X: 2, Y: 0}
	// The chain loops between two positions and never reaches start; the
	// walk must terminate once a position repeats.
	parents := map[grid.Point]grid.Point{
		end:   other,
		other: end,
	}

	path := pathfind.ReconstructPath(parents, start, end)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	assert.Len(t, path, 3)
}

func TestMarkPath_OverlaysBackbone(t *testing.T) {
	start := grid.Point{X: 0, Y: 0}
	end := grid.Point{X: 0, Y: 2}
	mid := grid.Point{X: 0, Y: 1}
	parents := map[grid.Point]grid.Point{
		mid: start,
		end: mid,
	}
	states := map[grid.Point]pathfind.NodeState{
		start: pathfind.Visited,
		mid:   pathfind.Visited,
		end:   pathfind.Visited,
	}

	pathfind.MarkPath(states, parents, start, end)
	assert.Equal(t, pathfind.Path, states[start])
	assert.Equal(t, pathfind.Path, states[mid])
	assert.Equal(t, pathfind.Path, states[end])
}

func TestMarkPath_CyclicChainStopsEarly(t *testing.T) {
	start := grid.Point{X: 0, Y: 0}
	end := grid.Point{X: 3, Y: 0}
	other := grid.Point{X: 2, Y: 0}
	parents := map[grid.Point]grid.Point{
		end:   other,
		other: end,
	}
	states := map[grid.Point]pathfind.NodeState{}

	pathfind.MarkPath(states, parents, start, end)
	assert.Equal(t, pathfind.Path, states[start])
	assert.Equal(t, pathfind.Path, states[end])
	assert.Equal(t, pathfind.Path, states[other])
}

func TestNodeStateString(t *testing.T) {
	assert.Equal(t, "Unvisited", pathfind.Unvisited.String())
	assert.Equal(t, "InQueue", pathfind.InQueue.String())
	assert.Equal(t, "Visited", pathfind.Visited.String())
	assert.Equal(t, "Path", pathfind.Path.String())
}
