// Package astar implements stepwise A* search over a grid.Grid.
//
// What:
//
//   - Search finalizes positions in increasing f = g + h order, where g is
//     the accumulated cost from start and h is the Manhattan distance to the
//     end. One heap pop per Step call, with per-position visualization state
//     recorded for an external rendering driver.
//
// Why:
//
//   - Manhattan distance is admissible and consistent on unit-cost
//     4-connected grids, so A* finalizes the end with an optimal path while
//     expanding far fewer positions than bfs or dijkstra.
//
// Frontier discipline:
//
//   - Same lazy decrease-key scheme as dijkstra: relaxation pushes a fresh
//     entry, stale entries are discarded on pop against the finalized set.
//   - Ties on equal f prefer the entry with the larger g: among equally
//     promising positions, the one farther along its path wins. This keeps
//     traversal order deterministic and biases expansion toward the goal.
//
// Complexity:
//
//   - Step:        O(log N) for the heap pop plus at most 4 relaxations.
//   - Full search: O(W×H log(W×H)) time worst case, O(W×H) memory.
//
// See pathfind.Algorithm for the shared lifecycle contract.
package astar
