package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid was used for a mutation.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidTerrain indicates a terrain value outside the known kinds.
	ErrInvalidTerrain = errors.New("grid: invalid terrain kind")
	// ErrParse indicates a grid file token that is not an integer.
	ErrParse = errors.New("grid: malformed grid data")
	// ErrOpenRatio indicates a Random open ratio outside [0, 1].
	ErrOpenRatio = errors.New("grid: open ratio must lie in [0, 1]")
	// ErrNoPath indicates no walkable path exists between two cells.
	ErrNoPath = errors.New("grid: no path between cells")
)
