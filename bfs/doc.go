// Package bfs implements stepwise breadth-first search over a grid.Grid.
//
// What:
//
//   - Search explores positions in increasing edge-count distance from the
//     start, one frontier pop per Step call, and records per-position
//     visualization state for an external rendering driver.
//
// Why:
//
//   - On a unit-cost 4-connected grid the FIFO frontier preserves discovery
//     order, so the first time the end is finalized the reconstructed path
//     has the minimum number of edges.
//
// Frontier discipline:
//
//   - A neighbor enters the queue only if it is neither finalized nor already
//     tagged InQueue, so the queue never holds duplicates.
//
// Complexity:
//
//   - Step:         O(1) amortized (one pop, at most 4 expansions).
//   - Full search:  O(W×H) time, O(W×H) memory.
//
// See pathfind.Algorithm for the shared lifecycle contract.
package bfs
