package cavegen

import (
	"math/rand"

	"github.com/joonaspessi/path-finding/grid"
)

// Generator builds cave-like maps on a grid in place. Construct it with New;
// a Generator carries no mutable state of its own and may be reused for any
// number of grids.
type Generator struct {
	opts Options
}

// New constructs a Generator, applying any number of functional Options.
// Returns ErrBadWallChance or ErrBadSmoothing for invalid configuration.
func New(opts ...Option) (*Generator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Generator{opts: o}, nil
}

// Generate runs the four generation phases against g, all drawing from a
// single stream seeded by Options.Seed. The grid is mutated in place; there
// is no return value. If pruning leaves no floor cells, Start and End stay
// unset and the grid is un-searchable.
func (gen *Generator) Generate(g *grid.Grid) {
	rng := rngFromSeed(gen.opts.Seed)

	gen.randomFill(g, rng)
	for i := 0; i < gen.opts.SmoothingPasses; i++ {
		gen.smooth(g)
	}
	gen.keepLargestRegion(g)
	gen.placeEndpoints(g, rng)
}

// randomFill forces every border cell to Wall and rolls each interior cell
// in row-major order: Wall with probability WallChance, Empty otherwise.
func (gen *Generator) randomFill(g *grid.Grid, rng *rand.Rand) {
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				g.Set(x, y, grid.Wall)
				continue
			}
			if rng.Float64() < gen.opts.WallChance {
				g.Set(x, y, grid.Wall)
			} else {
				g.Set(x, y, grid.Empty)
			}
		}
	}
}

// countWallNeighbors counts Wall cells in the full 3×3 window around (x,y).
// The window includes (x,y) itself, and every out-of-bounds cell counts as a
// Wall. The smoothing thresholds below are tuned to exactly this window, so
// it must not be replaced with a Moore-neighborhood-only count.
func countWallNeighbors(g *grid.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c, ok := g.Get(x+dx, y+dy)
			if !ok || c == grid.Wall {
				count++
			}
		}
	}

	return count
}

// smooth runs one cellular-automata pass over the interior: a cell with ≥5
// walls in its window becomes Wall, with <4 becomes Empty, with exactly 4
// stays unchanged. The pass writes in place during the same scan, so later
// cells see neighbors already updated earlier in the pass.
func (gen *Generator) smooth(g *grid.Grid) {
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			switch walls := countWallNeighbors(g, x, y); {
			case walls >= 5:
				g.Set(x, y, grid.Wall)
			case walls < 4:
				g.Set(x, y, grid.Empty)
			}
		}
	}
}

// findRegions partitions Empty cells into 4-connected components, discovered
// in row-major scan order via breadth-first flood fill.
func (gen *Generator) findRegions(g *grid.Grid) [][]grid.Point {
	visited := make(map[grid.Point]bool)
	var regions [][]grid.Point

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if c, _ := g.Get(x, y); c != grid.Empty {
				continue
			}
			p := grid.Point{X: x, Y: y}
			if visited[p] {
				continue
			}
			regions = append(regions, floodFill(g, p, visited))
		}
	}

	return regions
}

// floodFill collects the 4-connected Empty region containing start.
func floodFill(g *grid.Grid, start grid.Point, visited map[grid.Point]bool) []grid.Point {
	var region []grid.Point
	queue := []grid.Point{start}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if visited[p] {
			continue
		}
		if c, _ := g.Get(p.X, p.Y); c != grid.Empty {
			continue
		}

		visited[p] = true
		region = append(region, p)
		queue = append(queue, g.Neighbors(p.X, p.Y)...)
	}

	return region
}

// keepLargestRegion converts every Empty region except the largest to Wall.
// Ties go to the region discovered first in row-major scan order.
func (gen *Generator) keepLargestRegion(g *grid.Grid) {
	regions := gen.findRegions(g)
	if len(regions) == 0 {
		return
	}

	largest := 0
	for i := 1; i < len(regions); i++ {
		if len(regions[i]) > len(regions[largest]) {
			largest = i
		}
	}

	for i, region := range regions {
		if i == largest {
			continue
		}
		for _, p := range region {
			g.Set(p.X, p.Y, grid.Wall)
		}
	}
}

// findFurthest runs an unweighted breadth-first traversal over Empty cells
// from the given position and returns the last cell dequeued. This is an
// approximation of a farthest node, not exact eccentricity: the result is
// whichever cell completes the traversal last under the traversal's own
// ordering.
func findFurthest(g *grid.Grid, from grid.Point) grid.Point {
	visited := map[grid.Point]bool{from: true}
	queue := []grid.Point{from}
	furthest := from

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		furthest = p

		for _, n := range g.Neighbors(p.X, p.Y) {
			if visited[n] {
				continue
			}
			if c, _ := g.Get(n.X, n.Y); c != grid.Empty {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return furthest
}

// placeEndpoints resets any pre-existing Start/End to Empty, collects all
// floor cells in row-major order, and places new endpoints via the
// double-sweep diameter heuristic: a uniformly random floor cell seeds the
// first sweep, whose result becomes Start and seeds the second sweep, whose
// result becomes End. With zero floor cells it leaves both unset. With
// exactly one floor cell both sweeps land on it and the End write overwrites
// the Start write, leaving an End but no Start; callers already treat a
// Start-less grid as un-searchable.
func (gen *Generator) placeEndpoints(g *grid.Grid, rng *rand.Rand) {
	var floor []grid.Point
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, _ := g.Get(x, y)
			if c == grid.Empty {
				floor = append(floor, grid.Point{X: x, Y: y})
			}
			if c == grid.Start || c == grid.End {
				g.Set(x, y, grid.Empty)
				floor = append(floor, grid.Point{X: x, Y: y})
			}
		}
	}

	if len(floor) == 0 {
		return
	}

	seed := floor[rng.Intn(len(floor))]
	far1 := findFurthest(g, seed)
	far2 := findFurthest(g, far1)

	g.Set(far1.X, far1.Y, grid.Start)
	g.Set(far2.X, far2.Y, grid.End)
}
