package genetic

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by Optimize.
var (
	ErrNilCosts        = errors.New("genetic: nil cost set")
	ErrOptionViolation = errors.New("genetic: invalid option supplied")
)

// UnreachableCost is charged for every leg an agent cannot make, so that
// infeasible chromosomes sort after every feasible one without being dropped.
const UnreachableCost = 1 << 20

// Options configures Optimize.
type Options struct {
	Ctx            context.Context
	Generations    int
	PopulationSize int
	Survivors      int
	MaxMutations   int
	Seed           int64
	OnGeneration   func(Stats)

	err error
}

// Option is a functional option for Optimize.
type Option func(*Options)

// DefaultOptions returns 30 generations of 10 individuals, 6 survivors per
// generation, 1..3 mutations per offspring and seed 0 (reproducible).
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Generations:    30,
		PopulationSize: 10,
		Survivors:      6,
		MaxMutations:   3,
	}
}

func positive(o *Options, name string, n int, dst *int) {
	if n < 1 {
		o.err = fmt.Errorf("%w: %s must be ≥ 1 (%d)", ErrOptionViolation, name, n)
		return
	}
	*dst = n
}

// WithGenerations sets the generation budget (≥ 1).
func WithGenerations(n int) Option {
	return func(o *Options) { positive(o, "generations", n, &o.Generations) }
}

// WithPopulationSize sets the size each generation is refilled to (≥ 1).
func WithPopulationSize(n int) Option {
	return func(o *Options) { positive(o, "population size", n, &o.PopulationSize) }
}

// WithSurvivors sets how many individuals survive selection (≥ 1).
func WithSurvivors(n int) Option {
	return func(o *Options) { positive(o, "survivors", n, &o.Survivors) }
}

// WithMaxMutations bounds the mutations applied to one offspring (≥ 1).
func WithMaxMutations(n int) Option {
	return func(o *Options) { positive(o, "max mutations", n, &o.MaxMutations) }
}

// WithSeed fixes the random stream. Equal seeds give equal results.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithContext sets the cancellation context, checked once per generation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnGeneration registers a hook called after each selection step.
func WithOnGeneration(fn func(Stats)) Option {
	return func(o *Options) { o.OnGeneration = fn }
}

// Stats describes one finished generation.
type Stats struct {
	// Generation counts from 1.
	Generation int `json:"generation"`
	// Discarded is the number of inconsistent chromosomes dropped.
	Discarded int `json:"discarded"`
	// Best is the lowest cost among the survivors.
	Best int `json:"best"`
	// Mean is the mean survivor cost.
	Mean float64 `json:"mean"`
	// Survivors are the individuals carried into the next generation,
	// cheapest first.
	Survivors []Chromosome `json:"-"`
}

// Route is one agent's decoded goal sequence.
type Route struct {
	Agent string   `json:"agent"`
	Goals []string `json:"goals"`
	Cost  int      `json:"cost"`
}

// Result is the best individual found.
type Result struct {
	Routes []Route `json:"routes"`
	Cost   int     `json:"cost"`
	// Fitness is Cost divided by the total cost of the final survivors.
	Fitness float64 `json:"fitness"`
	// Feasible is false when the best plan still needs an unreachable leg.
	Feasible    bool       `json:"feasible"`
	Generations int        `json:"generations"`
	Best        Chromosome `json:"-"`
}
