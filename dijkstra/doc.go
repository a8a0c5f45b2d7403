// Package dijkstra implements stepwise uniform-cost search (Dijkstra's
// algorithm) over a grid.Grid.
//
// What:
//
//   - Search finalizes positions in increasing accumulated path cost using a
//     min-heap frontier, one heap pop per Step call, recording per-position
//     visualization state for an external rendering driver.
//
// Why:
//
//   - All grid edges cost 1 here, so uniform-cost order matches breadth-first
//     order; the variant exists to visualize priority-frontier bookkeeping
//     (best-known costs, relaxation, stale entries) side by side with bfs.
//
// Frontier discipline:
//
//   - "Lazy decrease-key": relaxing a position pushes a fresh heap entry and
//     leaves any stale entry in place; stale entries are discarded when
//     popped, checked against the finalized set before anything else.
//   - The heap key is the accumulated cost itself, so the cost-based
//     tie-break used by astar collapses here; traversal order stays
//     reproducible because heap operations are deterministic for a fixed
//     push/pop sequence.
//
// Complexity:
//
//   - Step:        O(log N) for the heap pop plus at most 4 relaxations.
//   - Full search: O(W×H log(W×H)) time, O(W×H) memory.
//
// See pathfind.Algorithm for the shared lifecycle contract.
package dijkstra
