package problem

import "errors"

// Sentinel errors for problem construction.
var (
	// ErrNilGrid is returned when New receives a nil grid.
	ErrNilGrid = errors.New("problem: grid is nil")

	// ErrMissingStart is returned when no start coordinate was supplied.
	ErrMissingStart = errors.New("problem: start coordinate not set")

	// ErrMissingGoal is returned when no goal coordinate was supplied.
	ErrMissingGoal = errors.New("problem: goal coordinate not set")

	// ErrOutOfBounds is returned when the start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("problem: coordinate outside grid")

	// ErrNotWalkable is returned when the start or goal is a WALL cell.
	ErrNotWalkable = errors.New("problem: coordinate is a wall")

	// ErrInvalidCost is returned for a cost table entry that is neither
	// Impassable nor ≥ 1.
	ErrInvalidCost = errors.New("problem: invalid terrain cost")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("problem: invalid option supplied")
)
