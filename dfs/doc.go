// Package dfs implements stepwise depth-first search over a grid.Grid.
//
// What:
//
//   - Search dives along one corridor at a time using a LIFO frontier,
//     one stack pop per Step call, recording per-position visualization
//     state for an external rendering driver.
//
// Why:
//
//   - Depth-first order makes for a distinctive visualization: long probes
//     and backtracking instead of an expanding ring. It finds some path,
//     not a shortest one.
//
// Frontier discipline:
//
//   - Unlike bfs, duplicates ARE allowed on the stack: a position may be
//     pushed several times before it is popped and finalized. The parent
//     link is recorded only by the first discoverer (first-writer-wins),
//     so later pushes never rewire the reconstruction tree.
//
// Complexity:
//
//   - Step:        O(1) amortized.
//   - Full search: O(W×H) time, O(W×H) memory (stack may hold duplicates).
//
// See pathfind.Algorithm for the shared lifecycle contract.
package dfs
