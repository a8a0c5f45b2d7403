// Package pathfinding is a toolkit for generating cave-like grid maps and
// watching classic search algorithms solve them, one step at a time.
//
// 🚀 What is path-finding?
//
//	A small, deterministic library that brings together:
//		• Grid primitives: bounded cells (floor, wall, start, end) with
//		  4-neighbor enumeration
//		• Cave generation: seeded random fill, cellular-automata smoothing,
//		  largest-region pruning and far-apart endpoint placement
//		• Stepwise searches: BFS, DFS, Dijkstra and A*, all advancing one
//		  node per Step so every expansion can be observed
//		• Rendering: plain image.Image snapshots of terrain and search
//		  state, ready for PNG encoding
//
// ✨ Why choose path-finding?
//
//   - Deterministic – every cave and every search replays exactly from a seed
//   - Uniform API – all four searches share one Algorithm interface, so they
//     swap freely
//   - Observable – per-cell node states (frontier, visited, path) at any
//     point mid-search
//
// Everything is organized under focused subpackages:
//
//	grid/     — the Grid, Cell and Point primitives
//	cavegen/  — seeded cave generation
//	pathfind/ — the Algorithm contract, node states & path reconstruction
//	bfs/      — breadth-first search
//	dfs/      — depth-first search
//	dijkstra/ — uniform-cost search
//	astar/    — A* with the Manhattan heuristic
//	render/   — image.Image snapshots of grids and searches
//
// Quick example:
//
//	g, _ := grid.New(80, 50)
//	gen, _ := cavegen.New(cavegen.WithSeed(42))
//	gen.Generate(g)
//
//	start, _ := g.Find(grid.Start)
//	end, _ := g.Find(grid.End)
//	s := astar.New(start, end)
//	for s.Step(g) {
//	}
//	fmt.Println(s.Found(), s.Path())
//
// See each subpackage's doc.go for details, options and errors.
package pathfinding
