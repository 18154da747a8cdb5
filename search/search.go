package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/questpath/astar"
	"github.com/katalvlaran/questpath/bfs"
	"github.com/katalvlaran/questpath/dfs"
	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/problem"
)

var (
	// ErrUnknownAlgorithm is returned for an Algorithm outside the known set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrNoDepthLimit is returned when DLS is requested without WithDepthLimit.
	ErrNoDepthLimit = errors.New("search: depth limit not set")

	// ErrProblemNil is returned when Run receives a nil problem.
	ErrProblemNil = errors.New("search: problem is nil")
)

// Algorithm names a search strategy.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	DLS
	IDS
	AStar
)

var algorithmNames = [...]string{
	BFS:   "BFS",
	DFS:   "DFS",
	DLS:   "DLS",
	IDS:   "IDS",
	AStar: "ASTAR",
}

// Algorithms lists every strategy.
func Algorithms() []Algorithm { return []Algorithm{BFS, DFS, DLS, IDS, AStar} }

func (a Algorithm) String() string {
	if a < BFS || a > AStar {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// MarshalText encodes the algorithm by name.
func (a Algorithm) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText accepts any name ParseAlgorithm accepts.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// NeedsActions reports whether the strategy requires an action order.
func (a Algorithm) NeedsActions() bool { return a == DFS || a == DLS || a == IDS }

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BFS", "BREADTH-FIRST":
		return BFS, nil
	case "DFS", "DEPTH-FIRST":
		return DFS, nil
	case "DLS", "DEPTH-LIMITED":
		return DLS, nil
	case "IDS", "IDDFS", "ITERATIVE-DEEPENING":
		return IDS, nil
	case "ASTAR", "A*", "HEURISTIC":
		return AStar, nil
	}

	return BFS, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Options collects the parameters any strategy may need. Fields that do
// not apply to the chosen Algorithm are ignored.
type Options struct {
	Ctx        context.Context
	Actions    []grid.Direction
	DepthLimit *int
	StartDepth int
	Increment  int
	MaxDepth   int
	MaxCost    int
}

// Option configures Run.
type Option func(*Options)

// DefaultOptions returns background context, IDS from depth 0 by 1, no caps.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Increment: 1}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithActions sets the move priority for DFS, DLS and IDS.
func WithActions(actions ...grid.Direction) Option {
	return func(o *Options) { o.Actions = actions }
}

// WithDepthLimit sets the DLS limit.
func WithDepthLimit(limit int) Option {
	return func(o *Options) { o.DepthLimit = &limit }
}

// WithStartDepth sets the first IDS limit.
func WithStartDepth(d int) Option {
	return func(o *Options) { o.StartDepth = d }
}

// WithIncrement sets the IDS limit step.
func WithIncrement(inc int) Option {
	return func(o *Options) { o.Increment = inc }
}

// WithMaxDepth bounds IDS.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithMaxCost caps A* exploration.
func WithMaxCost(c int) Option {
	return func(o *Options) { o.MaxCost = c }
}

// Run executes kind on p. Option validation is delegated to the strategy
// package, so its sentinels (dfs.ErrNoActions, dfs.ErrOptionViolation, ...)
// surface unchanged.
func Run(p *problem.Problem, kind Algorithm, opts ...Option) (problem.Solution, error) {
	if p == nil {
		return problem.Solution{}, ErrProblemNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case BFS:
		return bfs.BFS(p, bfs.WithContext(o.Ctx))
	case DFS:
		return dfs.DFS(p, dfs.WithContext(o.Ctx), dfs.WithActions(o.Actions...))
	case DLS:
		if o.DepthLimit == nil {
			return problem.Solution{}, ErrNoDepthLimit
		}
		return dfs.DLS(p, *o.DepthLimit, dfs.WithContext(o.Ctx), dfs.WithActions(o.Actions...))
	case IDS:
		return dfs.IDS(p,
			dfs.WithContext(o.Ctx),
			dfs.WithActions(o.Actions...),
			dfs.WithStartDepth(o.StartDepth),
			dfs.WithIncrement(o.Increment),
			dfs.WithMaxDepth(o.MaxDepth),
		)
	case AStar:
		return astar.Search(p, astar.WithContext(o.Ctx), astar.WithMaxCost(o.MaxCost))
	}

	return problem.Solution{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, kind)
}
