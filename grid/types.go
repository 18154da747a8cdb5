package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Terrain is the kind of a single grid cell.
type Terrain int

const (
	// Wall is never walkable, for any mover.
	Wall Terrain = iota
	Road
	Mountain
	Land
	Water
	Sand
	Forest
	Swamp
	Snow

	terrainCount
)

var terrainNames = [...]string{
	Wall:     "WALL",
	Road:     "ROAD",
	Mountain: "MOUNTAIN",
	Land:     "LAND",
	Water:    "WATER",
	Sand:     "SAND",
	Forest:   "FOREST",
	Swamp:    "SWAMP",
	Snow:     "SNOW",
}

// Terrains lists every terrain kind in index order.
func Terrains() []Terrain {
	out := make([]Terrain, 0, terrainCount)
	for t := Wall; t < terrainCount; t++ {
		out = append(out, t)
	}

	return out
}

// Valid reports whether t is one of the known kinds.
func (t Terrain) Valid() bool { return t >= Wall && t < terrainCount }

// String returns the upper-case terrain name, or "Terrain(n)" for unknown values.
func (t Terrain) String() string {
	if !t.Valid() {
		return "Terrain(" + strconv.Itoa(int(t)) + ")"
	}

	return terrainNames[t]
}

// MarshalText encodes the terrain by name.
func (t Terrain) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTerrain, int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText accepts a terrain name or its decimal index.
func (t *Terrain) UnmarshalText(b []byte) error {
	v, err := ParseTerrain(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// ParseTerrain resolves a case-insensitive terrain name or a decimal index.
func ParseTerrain(s string) (Terrain, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if t := Terrain(n); t.Valid() {
			return t, nil
		}
		return Wall, fmt.Errorf("%w: %d", ErrInvalidTerrain, n)
	}
	for i, name := range terrainNames {
		if strings.EqualFold(name, s) {
			return Terrain(i), nil
		}
	}

	return Wall, fmt.Errorf("%w: %q", ErrInvalidTerrain, s)
}

// Coord is a cell position: X is the column, Y the row.
// It is comparable and used directly as a map key.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Step returns the coordinate one move away in direction d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns |dx| + |dy| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell pairs a coordinate with the terrain stored there.
type Cell struct {
	Coord   Coord
	Terrain Terrain
}

// Direction is a cardinal move. The zero value None tags root nodes.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions returns the canonical neighbor order: up, down, left, right.
func Directions() []Direction { return []Direction{Up, Down, Left, Right} }

// Delta returns the coordinate change of d. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the inverse move: Up<->Down, Left<->Right.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

// DirectionBetween returns the move that takes from to to, or None when the
// two cells are not orthogonally adjacent. It is the inverse of Coord.Step.
func DirectionBetween(from, to Coord) Direction {
	switch (Coord{X: to.X - from.X, Y: to.Y - from.Y}) {
	case Coord{X: 0, Y: -1}:
		return Up
	case Coord{X: 0, Y: 1}:
		return Down
	case Coord{X: -1, Y: 0}:
		return Left
	case Coord{X: 1, Y: 0}:
		return Right
	}
	return None
}

// String returns "UP", "DOWN", "LEFT", "RIGHT" or "NONE".
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return "NONE"
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText accepts UP/DOWN/LEFT/RIGHT in any case.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// ParseDirection resolves a case-insensitive direction name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UP", "U":
		return Up, nil
	case "DOWN", "D":
		return Down, nil
	case "LEFT", "L":
		return Left, nil
	case "RIGHT", "R":
		return Right, nil
	}

	return None, fmt.Errorf("grid: unknown direction %q", s)
}

// ParseDirections parses a comma-separated action order such as "up,left,down,right".
func ParseDirections(s string) ([]Direction, error) {
	var out []Direction
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseDirection(part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}
