package pathfind

import "github.com/joonaspessi/path-finding/grid"

// Manhattan returns |a.X−b.X| + |a.Y−b.Y|, the edge-count lower bound between
// two positions under 4-directional unit-cost movement. It is admissible and
// consistent on such grids, and symmetric in its arguments.
// Complexity: O(1).
func Manhattan(a, b grid.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// ReconstructPath walks parents backward from end until start and returns the
// start→end sequence inclusive. A malformed chain — a missing link or a cycle
// that never reaches start — stops the walk early, and the partial sequence
// still begins at start; this is a defensive fallback, not an expected path.
// Complexity: O(L) where L is the path length.
func ReconstructPath(parents map[grid.Point]grid.Point, start, end grid.Point) []grid.Point {
	path := make([]grid.Point, 0, len(parents)+1)
	seen := make(map[grid.Point]bool)
	current := end
	for current != start {
		if seen[current] {
			break
		}
		seen[current] = true
		path = append(path, current)
		parent, ok := parents[current]
		if !ok {
			break
		}
		current = parent
	}
	path = append(path, start)
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// MarkPath overlays the Path tag on every position of the parent chain from
// end back to start, including both endpoints. It shares ReconstructPath's
// defensive early stop on a missing link or a cycle.
// Complexity: O(L).
func MarkPath(states map[grid.Point]NodeState, parents map[grid.Point]grid.Point, start, end grid.Point) {
	seen := make(map[grid.Point]bool)
	current := end
	for current != start {
		if seen[current] {
			break
		}
		seen[current] = true
		states[current] = Path
		parent, ok := parents[current]
		if !ok {
			break
		}
		current = parent
	}
	states[start] = Path
}
