package costmatrix

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/questpath/agent"
	"github.com/katalvlaran/questpath/astar"
	"github.com/katalvlaran/questpath/grid"
)

// Set holds the matrices of every agent of one planning session.
type Set struct {
	agents  []agent.Agent
	goals   []Point
	exit    Point
	byAgent map[string]Matrix
}

type task struct {
	agent    int
	key      Key
	from, to grid.Coord
}

// Build computes every agent's legs between START, the goals and the exit.
// The returned Set keeps the agent and goal order of the input.
func Build(ctx context.Context, g *grid.Grid, agents []agent.Agent, goals []Point, exit Point, opts ...Option) (*Set, error) {
	// 1) Options and input validation
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(agents) == 0 {
		return nil, ErrNoAgents
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}
	if err := checkNames(agents, goals, exit); err != nil {
		return nil, err
	}

	// 2) Enumerate the legs
	tasks := plan(agents, goals, exit)
	results := make([]Entry, len(tasks))

	// 3) Fan out, one Problem per search
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i := range tasks {
		eg.Go(func() error {
			tk := tasks[i]
			p, err := agents[tk.agent].Problem(g, tk.from, tk.to)
			if err != nil {
				return fmt.Errorf("costmatrix: %s %s→%s: %w", agents[tk.agent].Name, tk.key.From, tk.key.To, err)
			}
			sol, err := astar.Search(p, astar.WithContext(ctx))
			if err != nil {
				return err
			}
			if sol.Found() {
				results[i] = Entry{Node: sol.Node, Cost: sol.Cost(), Reachable: true}
			} else {
				results[i] = Unreachable()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 4) Assemble per-agent matrices
	s := &Set{
		agents:  append([]agent.Agent(nil), agents...),
		goals:   append([]Point(nil), goals...),
		exit:    exit,
		byAgent: make(map[string]Matrix, len(agents)),
	}
	for _, a := range agents {
		s.byAgent[a.Name] = make(Matrix, len(goals)*(len(goals)+1))
	}
	for i, tk := range tasks {
		s.byAgent[agents[tk.agent].Name][tk.key] = results[i]
	}

	return s, nil
}

// NewSet assembles a Set from matrices computed elsewhere. Every leg that
// Build would compute must be present; extra legs are kept.
func NewSet(agents []agent.Agent, goals []Point, exit Point, legs map[string]Matrix) (*Set, error) {
	if len(agents) == 0 {
		return nil, ErrNoAgents
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}
	if err := checkNames(agents, goals, exit); err != nil {
		return nil, err
	}

	s := &Set{
		agents:  append([]agent.Agent(nil), agents...),
		goals:   append([]Point(nil), goals...),
		exit:    exit,
		byAgent: make(map[string]Matrix, len(agents)),
	}
	for _, a := range agents {
		s.byAgent[a.Name] = make(Matrix)
		for k, e := range legs[a.Name] {
			s.byAgent[a.Name][k] = e
		}
	}
	for _, tk := range plan(agents, goals, exit) {
		name := agents[tk.agent].Name
		if _, ok := s.byAgent[name][tk.key]; !ok {
			return nil, fmt.Errorf("%w: %s %s→%s", ErrMissingLeg, name, tk.key.From, tk.key.To)
		}
	}

	return s, nil
}

func checkNames(agents []agent.Agent, goals []Point, exit Point) error {
	seen := make(map[string]bool, len(agents))
	for _, a := range agents {
		if seen[a.Name] {
			return fmt.Errorf("%w: agent %q", ErrDuplicateName, a.Name)
		}
		seen[a.Name] = true
	}

	points := map[string]bool{Start: true}
	for _, p := range append(append([]Point(nil), goals...), exit) {
		if points[p.Name] {
			return fmt.Errorf("%w: point %q", ErrDuplicateName, p.Name)
		}
		points[p.Name] = true
	}

	return nil
}

func plan(agents []agent.Agent, goals []Point, exit Point) []task {
	n := len(goals)
	out := make([]task, 0, len(agents)*(n*n+n))
	for ai, a := range agents {
		for _, gl := range goals {
			out = append(out, task{agent: ai, key: Key{Start, gl.Name}, from: a.Start, to: gl.At})
		}
		for _, from := range goals {
			for _, to := range goals {
				if from.Name != to.Name {
					out = append(out, task{agent: ai, key: Key{from.Name, to.Name}, from: from.At, to: to.At})
				}
			}
			out = append(out, task{agent: ai, key: Key{from.Name, exit.Name}, from: from.At, to: exit.At})
		}
	}

	return out
}

// Agents returns the agents in input order.
func (s *Set) Agents() []agent.Agent { return s.agents }

// Goals returns the goals in input order.
func (s *Set) Goals() []Point { return s.goals }

// Exit returns the shared exit point.
func (s *Set) Exit() Point { return s.exit }

// Matrix returns the legs of the named agent.
func (s *Set) Matrix(agentName string) (Matrix, bool) {
	m, ok := s.byAgent[agentName]
	return m, ok
}

// Entry returns one leg; ok is false when the leg was never computed.
func (s *Set) Entry(agentName, from, to string) (Entry, bool) {
	m, ok := s.byAgent[agentName]
	if !ok {
		return Entry{}, false
	}
	e, ok := m[Key{from, to}]
	return e, ok
}

// Leg returns the cost of one leg and whether the agent can make it.
func (s *Set) Leg(agentName, from, to string) (int, bool) {
	e, ok := s.Entry(agentName, from, to)
	if !ok || !e.Reachable {
		return 0, false
	}
	return e.Cost, true
}

// Path returns the coordinates of one leg, or nil.
func (s *Set) Path(agentName, from, to string) []grid.Coord {
	e, ok := s.Entry(agentName, from, to)
	if !ok {
		return nil
	}
	return e.Path()
}
