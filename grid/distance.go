package grid

// StepDistance returns the exact number of unit moves on the shortest
// walkable path from `from` to `to`, found by exhaustive BFS over the grid.
// Both endpoints must be walkable; otherwise, or when the cells are
// disconnected, ErrNoPath is returned.
//
// Behavior:
//  1. Seed a FIFO queue with `from` at distance 0.
//  2. Pop cells in order, pushing every unseen walkable neighbor at d+1.
//  3. Stop as soon as `to` is dequeued.
//
// Complexity: O(W·H) time, O(W·H) memory for the distance table.
func (g *Grid) StepDistance(from, to Coord) (int, error) {
	if !g.IsWalkable(from) || !g.IsWalkable(to) {
		return 0, ErrNoPath
	}

	dist := make([]int, g.width*g.height)
	for i := range dist {
		dist[i] = -1
	}
	dist[g.index(from)] = 0

	queue := []int{g.index(from)}
	target := g.index(to)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == target {
			return dist[u], nil
		}
		for _, n := range g.WalkableNeighbors(g.coordinate(u)) {
			v := g.index(n)
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return 0, ErrNoPath
}
