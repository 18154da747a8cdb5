package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/questpath/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrProblemNil indicates that a nil *problem.Problem was passed.
	ErrProblemNil = errors.New("astar: problem is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Options configures the behavior of Search.
//
// Ctx      – cancellation; checked before every expansion.
// MaxCost  – optional cap on accumulated cost (0 disables the cap).
// OnExpand – called with the cell, its accumulated cost and its estimate
//
//	whenever a node is expanded. Returning an error aborts the search.
type Options struct {
	Ctx      context.Context
	MaxCost  int
	OnExpand func(c grid.Coord, cost, estimate int) error

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options struct with:
//   - Ctx:      context.Background()
//   - MaxCost:  0 (no cap)
//   - OnExpand: nil
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithMaxCost caps the accumulated path cost explored.
// Must pass a non-negative value; 0 means no cap.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithOnExpand installs a hook called on every expansion.
func WithOnExpand(fn func(c grid.Coord, cost, estimate int) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}
