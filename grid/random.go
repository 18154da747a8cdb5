package grid

import (
	"fmt"
	"math/rand"
)

// Random builds a width×height grid in which each cell is walkable with
// probability open. A walkable cell takes one of kinds, chosen uniformly;
// with no kinds every walkable cell is Road.
// Returns ErrEmptyGrid for a non-positive size, ErrOpenRatio when open is
// outside [0, 1] and ErrInvalidTerrain when kinds holds Wall or an unknown kind.
// The same rng state always yields the same grid.
func Random(rng *rand.Rand, width, height int, open float64, kinds ...Terrain) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if open < 0 || open > 1 {
		return nil, fmt.Errorf("%w: %g", ErrOpenRatio, open)
	}
	if len(kinds) == 0 {
		kinds = []Terrain{Road}
	}
	for _, t := range kinds {
		if t == Wall || !t.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidTerrain, int(t))
		}
	}

	cells := make([][]Terrain, height)
	for y := range cells {
		cells[y] = make([]Terrain, width)
		for x := range cells[y] {
			if rng.Float64() < open {
				cells[y][x] = kinds[rng.Intn(len(kinds))]
			}
		}
	}

	return newGrid(cells), nil
}
