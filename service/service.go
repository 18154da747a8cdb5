package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/questpath/agent"
	"github.com/katalvlaran/questpath/dfs"
	"github.com/katalvlaran/questpath/genetic"
	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/mission"
	"github.com/katalvlaran/questpath/problem"
	"github.com/katalvlaran/questpath/search"
)

var (
	// ErrInvalidRequest marks errors caused by the request itself.
	ErrInvalidRequest = errors.New("service: invalid request")

	// ErrGridFile is returned for a mission document that names a grid file.
	// Documents reach the service from remote clients, so grids must be inline.
	ErrGridFile = errors.New("service: grid_file is not accepted, send the grid inline")
)

// Service is the operation set exposed by every transport.
type Service interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
	Plan(ctx context.Context, req PlanRequest, onGeneration func(genetic.Stats)) (*mission.Result, error)
	Species() []SpeciesInfo
	Inspect(gridText string) (*GridInfo, error)
}

// Option configures New.
type Option func(*service)

// WithWorkers bounds the concurrent searches of one mission's cost matrix.
func WithWorkers(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithMaxDepth is the IDS ceiling applied when a request sets none, so that
// a request for an unreachable goal cannot run forever.
func WithMaxDepth(d int) Option {
	return func(s *service) {
		if d >= 0 {
			s.maxDepth = d
		}
	}
}

type service struct {
	workers  int
	maxDepth int
}

// New returns the default Service implementation.
func New(opts ...Option) Service {
	s := &service{maxDepth: 4096}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}

func loadGrid(text string) (*grid.Grid, error) {
	if strings.TrimSpace(text) == "" {
		return nil, invalid(errors.New("grid is empty"))
	}
	g, err := grid.Load(strings.NewReader(text))
	if err != nil {
		return nil, invalid(err)
	}

	return g, nil
}

// Search runs one route search.
func (s *service) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	// 1) Decode the request
	g, err := loadGrid(req.Grid)
	if err != nil {
		return nil, err
	}
	alg := search.AStar
	if req.Algorithm != "" {
		if alg, err = search.ParseAlgorithm(req.Algorithm); err != nil {
			return nil, invalid(err)
		}
	}
	mover, err := mission.AgentDoc{
		Name:    "searcher",
		Species: req.Species,
		Costs:   req.Costs,
		Start:   req.Start,
		Actions: req.Actions,
	}.Agent()
	if err != nil {
		return nil, invalid(err)
	}
	p, err := mover.Problem(g, req.Start, req.Goal, problem.WithEnhanced(req.Enhanced))
	if err != nil {
		return nil, invalid(err)
	}

	// 2) Run
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithActions(mover.Actions...),
		search.WithMaxDepth(s.maxDepth),
	}
	if req.DepthLimit != nil {
		opts = append(opts, search.WithDepthLimit(*req.DepthLimit))
	}
	if req.Increment > 0 {
		opts = append(opts, search.WithIncrement(req.Increment))
	}
	if req.MaxDepth > 0 {
		opts = append(opts, search.WithMaxDepth(req.MaxDepth))
	}
	sol, err := search.Run(p, alg, opts...)
	if err != nil && !errors.Is(err, dfs.ErrDepthBound) {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, invalid(err)
	}

	// 3) Encode
	return &SearchResult{
		Algorithm:      alg.String(),
		Status:         sol.Status,
		Path:           sol.Path(),
		Actions:        sol.Node.Actions(),
		Cost:           sol.Cost(),
		Steps:          sol.Steps(),
		Expanded:       sol.Expanded,
		DecisionPoints: p.DecisionPoints(),
		Reachable:      g.Connected(req.Start, req.Goal),
	}, nil
}

// Plan decodes and plans a mission.
func (s *service) Plan(ctx context.Context, req PlanRequest, onGeneration func(genetic.Stats)) (*mission.Result, error) {
	if req.Mission.GridFile != "" {
		return nil, invalid(ErrGridFile)
	}
	m, err := req.Mission.Mission("")
	if err != nil {
		return nil, invalid(err)
	}

	var opts []mission.Option
	if req.Strategy != "" {
		st, err := mission.ParseStrategy(req.Strategy)
		if err != nil {
			return nil, invalid(err)
		}
		opts = append(opts, mission.WithStrategy(st))
	}
	if s.workers > 0 {
		opts = append(opts, mission.WithWorkers(s.workers))
	}
	var gopts []genetic.Option
	if req.Seed != 0 {
		gopts = append(gopts, genetic.WithSeed(req.Seed))
	}
	if req.Generations > 0 {
		gopts = append(gopts, genetic.WithGenerations(req.Generations))
	}
	if req.PopulationSize > 0 {
		gopts = append(gopts, genetic.WithPopulationSize(req.PopulationSize))
	}
	opts = append(opts, mission.WithGeneticOptions(gopts...))
	if onGeneration != nil {
		opts = append(opts, mission.WithOnGeneration(onGeneration))
	}

	res, err := mission.Plan(ctx, m, opts...)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, invalid(err)
	}

	return res, nil
}

// Species lists the catalog in name order.
func (s *service) Species() []SpeciesInfo {
	var out []SpeciesInfo
	for _, sp := range agent.Catalog() {
		ct, err := sp.Costs()
		if err != nil {
			continue
		}
		info := SpeciesInfo{Name: string(sp), Costs: make(map[string]mission.Cost, len(ct))}
		for t, c := range ct {
			info.Costs[t.String()] = mission.Cost(c)
		}
		out = append(out, info)
	}

	return out
}

// Inspect summarizes a grid given in the text format.
func (s *service) Inspect(gridText string) (*GridInfo, error) {
	g, err := loadGrid(gridText)
	if err != nil {
		return nil, err
	}

	info := &GridInfo{
		Width:      g.Width(),
		Height:     g.Height(),
		Components: len(g.ConnectedComponents()),
		Terrain:    make(map[string]int),
	}
	for y, row := range g.Rows() {
		for x, v := range row {
			t := grid.Terrain(v)
			info.Terrain[t.String()]++
			if t == grid.Wall {
				continue
			}
			info.Walkable++
			if g.CountWalkable(grid.Coord{X: x, Y: y}) >= 3 {
				info.Junctions++
			}
		}
	}

	return info, nil
}
