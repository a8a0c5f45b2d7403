// Package pathfind defines the incremental-execution contract shared by the
// grid search algorithms (bfs, dfs, dijkstra, astar) and the helpers they
// have in common.
//
// What:
//
//   - NodeState tags each grid position for visualization:
//     Unvisited → InQueue → Visited, with Path overlaid on the final backbone.
//   - Algorithm is the uniform interface every search variant implements:
//     one frontier-pop-and-expand per Step call, driven by an external caller.
//   - Manhattan is the admissible 4-connectivity heuristic used by A*.
//   - ReconstructPath and MarkPath walk a parent map backward from the goal.
//
// Why:
//
//   - Stepwise visualization: the driver paces the search one discrete step
//     at a time and reads per-cell state back between steps.
//   - Interchangeability: all four variants expose identical lifecycle and
//     query operations, so the driver swaps them freely.
//
// Lifecycle:
//
//	Running (initial) → Finished (terminal). A finished search is read-only;
//	Step becomes a no-op returning false. Searches with no reachable goal
//	drain their frontier naturally and finish with Found() == false.
//
// The parent map is a flat tree rooted at the start position. Reconstruction
// walks it defensively: a broken chain terminates the walk early rather than
// looping; it never fails and never hangs.
package pathfind
