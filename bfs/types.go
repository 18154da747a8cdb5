package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/questpath/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrProblemNil is returned if a nil problem pointer is passed.
	ErrProblemNil = errors.New("bfs: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell joins the frontier.
	// Receives the cell and its depth in steps from the start.
	OnEnqueue func(c grid.Coord, depth int)

	// OnVisit is called when a cell is expanded. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c grid.Coord, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Coord, int) {},
		OnVisit:   func(grid.Coord, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Coord, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on expansion; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c grid.Coord, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
