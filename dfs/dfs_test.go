package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joonaspessi/path-finding/dfs"
	"github.com/joonaspessi/path-finding/grid"
	"github.com/joonaspessi/path-finding/pathfind"
)

func drive(t *testing.T, alg pathfind.Algorithm, g *grid.Grid) {
	t.Helper()
	for i := 0; alg.Step(g); i++ {
		if i > 100000 {
			t.Fatal("search did not terminate")
		}
	}
	assert.True(t, alg.Finished())
}

func assertValidPath(t *testing.T, path []grid.Point, start, end grid.Point) {
	t.Helper()
	assert.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, pathfind.Manhattan(path[i-1], path[i]),
			"path positions %v and %v must be 4-adjacent", path[i-1], path[i])
	}
}

func TestSearch_FreshState(t *testing.T) {
	s := dfs.New(grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2})

	assert.False(t, s.Finished())
	assert.False(t, s.Found())
	assert.Empty(t, s.Path())
	assert.Equal(t, pathfind.InQueue, s.NodeStateAt(0, 0))
	assert.Equal(t, pathfind.Unvisited, s.NodeStateAt(2, 2))
}

func TestSearch_OpenGridFindsSomePath(t *testing.T) {
	g, err := grid.New(3, 3)
	assert.NoError(t, err)
	start, end := grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2}

	s := dfs.New(start, end)
	drive(t, s, g)

	assert.True(t, s.Found())
	path := s.Path()
	assertValidPath(t, path, start, end)
	// Depth-first gives no optimality guarantee, only validity: at least
	// the Manhattan bound of 5 positions.
	assert.GreaterOrEqual(t, len(path), 5)
	assert.NotEqual(t, pathfind.Unvisited, s.NodeStateAt(start.X, start.Y))
}

func TestSearch_DuplicatesOnStackKeepFirstParent(t *testing.T) {
	// Open 3×3 with the end two cells to the right: the dive down the left
	// column pushes (1,1) three separate times before it is popped, each
	// later push leaving the first-recorded parent alone. The reconstructed
	// path follows the dive, not the direct route.
	g, _ := grid.New(3, 3)
	start, end := grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 0}

	s := dfs.New(start, end)
	drive(t, s, g)

	assert.True(t, s.Found())
	assert.Equal(t, []grid.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
		{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0},
	}, s.Path())
}

func TestSearch_EnclosedEnd(t *testing.T) {
	g, _ := grid.New(5, 5)
	end := grid.Point{X: 3, Y: 3}
	for _, p := range g.Neighbors(end.X, end.Y) {
		g.Set(p.X, p.Y, grid.Wall)
	}

	s := dfs.New(grid.Point{X: 0, Y: 0}, end)
	drive(t, s, g)

	assert.True(t, s.Finished())
	assert.False(t, s.Found())
	assert.Empty(t, s.Path())
}

func TestSearch_StepAfterFinishedIsNoOp(t *testing.T) {
	g, _ := grid.New(3, 3)
	s := dfs.New(grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2})
	drive(t, s, g)

	pathBefore := s.Path()
	assert.False(t, s.Step(g))
	assert.Equal(t, pathBefore, s.Path())
	assert.True(t, s.Found())
}

func TestSearch_StartEqualsEnd(t *testing.T) {
	g, _ := grid.New(3, 3)
	p := grid.Point{X: 1, Y: 1}

	s := dfs.New(p, p)
	assert.False(t, s.Step(g))
	assert.True(t, s.Found())
	assert.Equal(t, []grid.Point{p}, s.Path())
}

func TestSearch_Name(t *testing.T) {
	s := dfs.New(grid.Point{}, grid.Point{})
	assert.Equal(t, "DFS", s.Name())
}
