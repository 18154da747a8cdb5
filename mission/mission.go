package mission

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/questpath/agent"
	"github.com/katalvlaran/questpath/assign"
	"github.com/katalvlaran/questpath/costmatrix"
	"github.com/katalvlaran/questpath/genetic"
	"github.com/katalvlaran/questpath/grid"
)

// Sentinel errors returned by Plan and the decoders.
var (
	ErrNilGrid          = errors.New("mission: grid is nil")
	ErrUnknownStrategy  = errors.New("mission: unknown strategy")
	ErrOptionViolation  = errors.New("mission: invalid option supplied")
	ErrInvalidMission   = errors.New("mission: invalid mission document")
	ErrStrategyMismatch = errors.New("mission: exhaustive strategy needs as many agents as goals")
)

// Strategy selects the assignment method.
type Strategy string

const (
	// Auto uses Exhaustive when agents and goals match in number and the
	// count is at most assign.MaxExhaustive, Genetic otherwise.
	Auto Strategy = "auto"
	// Exhaustive gives every agent exactly one goal (package assign).
	Exhaustive Strategy = "exhaustive"
	// Genetic lets agents take any number of goals (package genetic).
	Genetic Strategy = "genetic"
)

// ParseStrategy resolves a case-insensitive strategy name; "" means Auto.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", Auto:
		return Auto, nil
	case Exhaustive, "assign":
		return Exhaustive, nil
	case Genetic, "ga":
		return Genetic, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Mission is one planning session: a map, the movers, the goals they must
// cover and the exit they all leave through.
type Mission struct {
	Grid   *grid.Grid
	Agents []agent.Agent
	Goals  []costmatrix.Point
	Exit   costmatrix.Point
	// Strategy is the strategy named by the mission file; WithStrategy wins.
	Strategy Strategy
}

// Route is one agent's itinerary.
type Route struct {
	Agent string   `json:"agent"`
	Goals []string `json:"goals"`
	Cost  int      `json:"cost"`
	// Path is start → goals → exit with shared junction cells listed once;
	// nil when a leg is unreachable. An agent without goals stays on its start.
	Path []grid.Coord `json:"path"`
}

// Result is the outcome of a planning session.
type Result struct {
	Strategy Strategy `json:"strategy"`
	Routes   []Route  `json:"routes"`
	Cost     int      `json:"cost"`
	Feasible bool     `json:"feasible"`
	// Generations is the number of genetic generations run (0 for Exhaustive).
	Generations int `json:"generations,omitempty"`
}

// Options configures Plan.
type Options struct {
	Strategy     Strategy
	Workers      int
	Genetic      []genetic.Option
	OnGeneration func(genetic.Stats)

	err error
}

// Option configures Plan.
type Option func(*Options)

// DefaultOptions returns the mission's own strategy (Auto if unset),
// default cost-matrix workers and default genetic parameters.
func DefaultOptions() Options { return Options{} }

// WithStrategy forces a strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if _, err := ParseStrategy(string(s)); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Strategy = s
	}
}

// WithWorkers bounds the concurrent searches of the cost-matrix build.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithGeneticOptions passes options through to genetic.Optimize.
func WithGeneticOptions(opts ...genetic.Option) Option {
	return func(o *Options) { o.Genetic = append(o.Genetic, opts...) }
}

// WithOnGeneration observes every genetic generation.
func WithOnGeneration(fn func(genetic.Stats)) Option {
	return func(o *Options) { o.OnGeneration = fn }
}

// Plan builds the cost matrix for m, assigns goals with the selected
// strategy and materializes every agent's itinerary.
//
// Under Auto, an exhaustive problem with no feasible one-to-one assignment
// falls back to Genetic, which may hand several goals to one agent.
func Plan(ctx context.Context, m Mission, opts ...Option) (*Result, error) {
	// 1) Options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if m.Grid == nil {
		return nil, ErrNilGrid
	}
	strategy := o.Strategy
	if strategy == "" {
		s, err := ParseStrategy(string(m.Strategy))
		if err != nil {
			return nil, err
		}
		strategy = s
	}

	// 2) Cost matrix
	var cmOpts []costmatrix.Option
	if o.Workers > 0 {
		cmOpts = append(cmOpts, costmatrix.WithWorkers(o.Workers))
	}
	set, err := costmatrix.Build(ctx, m.Grid, m.Agents, m.Goals, m.Exit, cmOpts...)
	if err != nil {
		return nil, err
	}

	// 3) Assignment
	exhaustive := len(m.Agents) == len(m.Goals) && len(m.Goals) <= assign.MaxExhaustive
	switch strategy {
	case Exhaustive:
		if len(m.Agents) != len(m.Goals) {
			return nil, fmt.Errorf("%w: %d agents, %d goals", ErrStrategyMismatch, len(m.Agents), len(m.Goals))
		}
		return planExhaustive(set)
	case Auto:
		if exhaustive {
			p, err := planExhaustive(set)
			if !errors.Is(err, assign.ErrInfeasible) {
				return p, err
			}
		}
	}

	return planGenetic(ctx, set, o)
}

func planExhaustive(set *costmatrix.Set) (*Result, error) {
	a, err := assign.Solve(set)
	if err != nil {
		return nil, err
	}
	names := a.GoalNames(set)
	routes := make([]Route, len(names))
	for i, ag := range set.Agents() {
		routes[i] = Route{Agent: ag.Name, Goals: []string{names[i]}, Cost: a.Costs[i]}
	}

	return finish(set, Exhaustive, routes, 0), nil
}

func planGenetic(ctx context.Context, set *costmatrix.Set, o Options) (*Result, error) {
	gopts := append([]genetic.Option{genetic.WithContext(ctx)}, o.Genetic...)
	if o.OnGeneration != nil {
		gopts = append(gopts, genetic.WithOnGeneration(o.OnGeneration))
	}
	res, err := genetic.Optimize(set, gopts...)
	if err != nil {
		return nil, err
	}
	routes := make([]Route, len(res.Routes))
	for i, r := range res.Routes {
		routes[i] = Route{Agent: r.Agent, Goals: r.Goals, Cost: r.Cost}
	}

	return finish(set, Genetic, routes, res.Generations), nil
}

// finish materializes paths and totals the plan.
func finish(set *costmatrix.Set, s Strategy, routes []Route, generations int) *Result {
	p := &Result{Strategy: s, Routes: routes, Feasible: true, Generations: generations}
	for i := range p.Routes {
		r := &p.Routes[i]
		r.Path = Itinerary(set, r.Agent, r.Goals)
		if r.Path == nil {
			p.Feasible = false
		}
		p.Cost += r.Cost
	}

	return p
}
