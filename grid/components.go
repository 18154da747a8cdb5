package grid

// ConnectedComponents finds all contiguous regions of walkable cells under
// 4-connectivity. Components are returned in row-major order of their first
// cell; cells inside a component are in BFS discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Coord {
	seen := make([]bool, g.width*g.height)
	var comps [][]Coord

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c0 := Coord{X: x, Y: y}
			if !g.IsWalkable(c0) || seen[g.index(c0)] {
				continue
			}
			// BFS to collect component
			queue := []Coord{c0}
			seen[g.index(c0)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range g.WalkableNeighbors(queue[qi]) {
					if i := g.index(n); !seen[i] {
						seen[i] = true
						queue = append(queue, n)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Component returns the index into ConnectedComponents of the region holding
// c, or -1 when c is not walkable.
func (g *Grid) Component(c Coord) int {
	if !g.IsWalkable(c) {
		return -1
	}
	for i, comp := range g.ConnectedComponents() {
		for _, cc := range comp {
			if cc == c {
				return i
			}
		}
	}

	return -1
}

// Connected reports whether a walkable path joins a and b. It ignores
// per-mover costs: only Wall blocks.
func (g *Grid) Connected(a, b Coord) bool {
	ca := g.Component(a)
	return ca >= 0 && ca == g.Component(b)
}
