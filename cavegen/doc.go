// Package cavegen procedurally builds cave-like maps on a grid.Grid using
// cellular-automata smoothing over a seeded random fill.
//
// What:
//
//   - Generator mutates a grid in place through four phases driven by one
//     seeded pseudo-random stream:
//     1. random fill    — border forced to Wall, interior Wall with
//     probability WallChance, drawn in row-major order;
//     2. smoothing      — repeated neighbor-count passes over the full 3×3
//     window (out-of-bounds counts as Wall);
//     3. region pruning — only the largest 4-connected Empty region survives,
//     every other region becomes Wall;
//     4. endpoints      — Start and End placed at the two ends of a
//     double-sweep breadth-first diameter approximation.
//
// Why:
//
//   - Pathfinding visualizers need organic, connected maps with interesting
//     corridors; the double sweep puts the endpoints far apart so searches
//     have something to do.
//
// Determinism:
//
//   - Identical seed, configuration, and prior grid state produce a
//     byte-identical output grid. The stream is a pure function of the seed;
//     no system entropy is consulted.
//
// Complexity:
//
//   - Generate: O(W×H × (1 + SmoothingPasses)) time, O(W×H) memory.
//
// Options:
//
//   - WithWallChance(p):      fill probability in [0,1] (default 0.45).
//   - WithSmoothingPasses(n): number of smoothing passes, n ≥ 0 (default 1).
//   - WithSeed(s):            stream seed; 0 selects the fixed default.
//
// Errors:
//
//   - ErrBadWallChance: WallChance outside [0,1].
//   - ErrBadSmoothing:  negative SmoothingPasses.
//
// A grid whose largest region is empty (no floor at all) is left without
// Start and End; callers must treat such a grid as un-searchable.
package cavegen
