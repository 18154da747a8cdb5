package grid

// Grid is a rectangular table of terrain kinds. Width and height are fixed at
// construction; cells change only through SetTerrain.
// A Grid is not safe for concurrent mutation; concurrent readers are fine.
type Grid struct {
	width, height int
	cells         [][]Terrain
	offsets       [4]Coord
}

// New builds a Grid from raw terrain indices. It deep-copies the input,
// pads short rows with Wall and stores unknown values as Wall.
// Returns ErrEmptyGrid when there are no rows or every row is empty.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	w := 0
	for _, row := range values {
		if len(row) > w {
			w = len(row)
		}
	}
	if len(values) == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]Terrain, len(values))
	for y, row := range values {
		cells[y] = make([]Terrain, w) // zero value is Wall: short rows are padded
		for x, v := range row {
			if t := Terrain(v); t.Valid() {
				cells[y][x] = t
			}
		}
	}

	return newGrid(cells), nil
}

func newGrid(cells [][]Terrain) *Grid {
	g := &Grid{
		width:  len(cells[0]),
		height: len(cells),
		cells:  cells,
	}
	// neighbor order is part of the contract: up, down, left, right
	for i, d := range Directions() {
		dx, dy := d.Delta()
		g.offsets[i] = Coord{X: dx, Y: dy}
	}

	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// TerrainAt returns the terrain at c. Out-of-bounds reads return (Wall, false).
func (g *Grid) TerrainAt(c Coord) (Terrain, bool) {
	if !g.InBounds(c) {
		return Wall, false
	}

	return g.cells[c.Y][c.X], true
}

// IsWalkable reports whether c is inside the grid and not a Wall.
// It never fails: out-of-bounds coordinates are simply not walkable.
func (g *Grid) IsWalkable(c Coord) bool {
	t, ok := g.TerrainAt(c)
	return ok && t != Wall
}

// SetTerrain replaces the terrain at c.
// Returns ErrOutOfBounds or ErrInvalidTerrain; the grid is unchanged on error.
func (g *Grid) SetTerrain(c Coord, t Terrain) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if !t.Valid() {
		return ErrInvalidTerrain
	}
	g.cells[c.Y][c.X] = t

	return nil
}

// WalkableNeighbors returns the walkable cells adjacent to c in the order
// up, down, left, right.
func (g *Grid) WalkableNeighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, o := range g.offsets {
		n := Coord{X: c.X + o.X, Y: c.Y + o.Y}
		if g.IsWalkable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Neighbors returns every in-bounds cell adjacent to c with its terrain,
// walls included, in the order up, down, left, right.
func (g *Grid) Neighbors(c Coord) []Cell {
	out := make([]Cell, 0, 4)
	for _, o := range g.offsets {
		n := Coord{X: c.X + o.X, Y: c.Y + o.Y}
		if t, ok := g.TerrainAt(n); ok {
			out = append(out, Cell{Coord: n, Terrain: t})
		}
	}

	return out
}

// CountWalkable returns how many of the four neighbors of c are walkable.
func (g *Grid) CountWalkable(c Coord) int {
	n := 0
	for _, o := range g.offsets {
		if g.IsWalkable(Coord{X: c.X + o.X, Y: c.Y + o.Y}) {
			n++
		}
	}

	return n
}

// Rows returns a copy of the grid as raw terrain indices.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.height)
	for y := range g.cells {
		out[y] = make([]int, g.width)
		for x, t := range g.cells[y] {
			out[y][x] = int(t)
		}
	}

	return out
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]Terrain, g.height)
	for y := range g.cells {
		cells[y] = make([]Terrain, g.width)
		copy(cells[y], g.cells[y])
	}

	return newGrid(cells)
}

// index maps c to a row-major index: y*Width + x.
func (g *Grid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// coordinate converts a row-major index back to a Coord.
func (g *Grid) coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}
