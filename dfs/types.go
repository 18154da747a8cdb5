package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/questpath/grid"
)

var (
	// ErrProblemNil is returned when a nil problem is passed to DFS, DLS or IDS.
	ErrProblemNil = errors.New("dfs: problem is nil")

	// ErrNoActions indicates that no action order was declared. Depth-first
	// strategies generate children strictly in that order and cannot run
	// without it.
	ErrNoActions = errors.New("dfs: action order not set")

	// ErrOptionViolation is returned when an invalid Option or limit is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrDepthBound is returned by IDS when the caller-supplied MaxDepth was
	// exceeded before the search settled.
	ErrDepthBound = errors.New("dfs: depth bound exceeded")
)

// Option configures optional behavior of DFS, DLS and IDS.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for depth-first strategies.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked before every expansion.
	Ctx context.Context

	// Actions is the move priority: children are generated strictly in this
	// order. Required.
	Actions []grid.Direction

	// StartDepth is the first limit tried by IDS. Default 0.
	StartDepth int

	// Increment is added to the limit after every CUTOFF in IDS. Default 1.
	Increment int

	// MaxDepth, if > 0, bounds the IDS limit. Default 0 (unbounded).
	MaxDepth int

	// OnVisit, if non-nil, is invoked when a node is entered (pre-order).
	// Returning an error aborts the search with that error.
	OnVisit func(c grid.Coord, depth int) error

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - no action order (must be supplied)
//   - IDS limits 0, 1, 2, ... without bound
//   - no hook
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:        context.Background(),
		StartDepth: 0,
		Increment:  1,
		MaxDepth:   0,
	}
}

// WithContext sets the Context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithActions declares the move priority. Every entry must be a cardinal
// direction and appear at most once.
func WithActions(actions ...grid.Direction) Option {
	return func(o *DFSOptions) {
		seen := make(map[grid.Direction]bool, len(actions))
		for _, a := range actions {
			if a < grid.Up || a > grid.Right {
				o.err = fmt.Errorf("%w: invalid action %v", ErrOptionViolation, a)
				return
			}
			if seen[a] {
				o.err = fmt.Errorf("%w: duplicate action %v", ErrOptionViolation, a)
				return
			}
			seen[a] = true
		}
		o.Actions = append([]grid.Direction(nil), actions...)
	}
}

// WithStartDepth sets the first IDS limit (≥ 0).
func WithStartDepth(d int) Option {
	return func(o *DFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: StartDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.StartDepth = d
	}
}

// WithIncrement sets the IDS limit step (≥ 1).
func WithIncrement(inc int) Option {
	return func(o *DFSOptions) {
		if inc < 1 {
			o.err = fmt.Errorf("%w: Increment must be positive (%d)", ErrOptionViolation, inc)
			return
		}
		o.Increment = inc
	}
}

// WithMaxDepth bounds the IDS limit.
//
//	d > 0: give up once the limit would exceed d
//	d == 0: explicit no bound
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *DFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(c grid.Coord, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// build applies opts over the defaults and validates the result.
func build(opts []Option) (DFSOptions, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if len(o.Actions) == 0 {
		return o, ErrNoActions
	}

	return o, nil
}
