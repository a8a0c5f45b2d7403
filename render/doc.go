// Package render draws caves and search progress as standard image.Image
// values, one pixel per cell, suitable for saving as PNG or scaling up for
// inspection.
//
// What
//
//	Snapshot wraps a grid.Grid and (optionally) a pathfind.Algorithm and
//	implements image.Image. The base layer shows terrain (floor, wall,
//	start, end); the overlay shows the algorithm's per-cell NodeState
//	(frontier, visited, final path). Start and end always stay visible on
//	top of the overlay.
//
// Why
//
//	A stepwise search is easiest to debug by looking at it. Emitting plain
//	image.Image values keeps the package free of any UI dependency: the
//	caller decides whether to encode a PNG, composite frames, or scale up.
//
// Usage
//
//	snap, err := render.NewSnapshot(g, alg)
//	if err != nil { ... }
//	img, err := snap.Scaled(8) // 8x8 pixels per cell
//	png.Encode(w, img)
//
// Errors
//
//   - ErrNilGrid     - NewSnapshot called without a grid.
//   - ErrBadCellSize - Scaled called with a non-positive cell size.
package render
