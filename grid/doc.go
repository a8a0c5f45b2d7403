// Package grid provides a fixed-size 2D occupancy grid of tagged cells,
// the shared substrate for cave generation and pathfinding.
//
// What:
//
//   - Grid wraps a rectangular matrix of Cell tags (Empty, Wall, Start, End).
//   - Bounded reads and writes: out-of-bounds reads report absence,
//     out-of-bounds writes are silently ignored.
//   - Neighbors enumerates the orthogonally adjacent in-bounds coordinates
//     (4-connectivity, no diagonals).
//
// Why:
//
//   - Pathfinding visualizers: one grid drives generation, editing and search.
//   - Procedural maps: cave generators mutate the grid in place.
//
// Complexity:
//
//   - New:       O(W×H) time and memory.
//   - Get/Set:   O(1).
//   - Neighbors: O(1) (at most 4 results).
//   - Find:      O(W×H).
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//
// The bounded read/write contract is deliberate: editing collaborators probe
// coordinates derived from continuous input (pointer position), which may
// legitimately fall outside the grid.
package grid
