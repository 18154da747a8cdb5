package costmatrix

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/problem"
)

// Sentinel errors returned by Build.
var (
	ErrNoAgents        = errors.New("costmatrix: no agents")
	ErrNoGoals         = errors.New("costmatrix: no goals")
	ErrDuplicateName   = errors.New("costmatrix: duplicate name")
	ErrMissingLeg      = errors.New("costmatrix: missing leg")
	ErrOptionViolation = errors.New("costmatrix: invalid option supplied")
)

// Start is the origin name of every agent's own starting cell.
const Start = "START"

// Point is a named cell: a goal or the exit.
type Point struct {
	Name string     `json:"name" yaml:"name"`
	At   grid.Coord `json:"at" yaml:"at"`
}

// Key addresses one ordered leg.
type Key struct {
	From, To string
}

// Entry is the result of one leg search.
type Entry struct {
	// Node is the terminal node of the cheapest route; nil when unreachable.
	Node *problem.Node
	// Cost is the route cost, or -1 when unreachable.
	Cost int
	// Reachable is false when the agent cannot make the trip at all.
	Reachable bool
}

// Path returns the coordinates of the leg, or nil when unreachable.
func (e Entry) Path() []grid.Coord {
	if !e.Reachable || e.Node == nil {
		return nil
	}
	return e.Node.Coords()
}

// Matrix is one agent's legs.
type Matrix map[Key]Entry

// Unreachable is the Entry of a leg the agent cannot make.
func Unreachable() Entry { return Entry{Cost: -1} }

// CostOnly is a reachable Entry without a route, for matrices that were
// computed elsewhere.
func CostOnly(cost int) Entry { return Entry{Cost: cost, Reachable: true} }

// Options configures Build.
type Options struct {
	// Workers bounds the number of concurrent searches. Default GOMAXPROCS.
	Workers int

	err error
}

// Option configures Build.
type Option func(*Options)

// DefaultOptions returns Workers = runtime.GOMAXPROCS(0).
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds concurrency; n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
