package agent

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/problem"
)

// ErrEmptyName is returned by New for an agent without a name.
var ErrEmptyName = errors.New("agent: name is empty")

// DefaultActions is the move priority used when none is declared:
// up, down, left, right.
func DefaultActions() []grid.Direction { return grid.Directions() }

// Agent is one mover: identity, start cell, cost table and move priority.
type Agent struct {
	Name    string
	Species Species // empty for agents with hand-written costs
	Start   grid.Coord
	Costs   problem.CostTable
	Actions []grid.Direction
}

// Option configures New.
type Option func(*Agent) error

// WithSpecies takes the cost table from the catalog entry s.
func WithSpecies(s Species) Option {
	return func(a *Agent) error {
		ct, err := s.Costs()
		if err != nil {
			return err
		}
		a.Species, a.Costs = s, ct
		return nil
	}
}

// WithCosts sets an explicit cost table, overriding any species table.
func WithCosts(ct problem.CostTable) Option {
	return func(a *Agent) error {
		if err := ct.Validate(); err != nil {
			return err
		}
		a.Costs = ct.Clone()
		return nil
	}
}

// WithActions sets the move priority used by depth-first strategies.
func WithActions(actions ...grid.Direction) Option {
	return func(a *Agent) error {
		if len(actions) == 0 {
			return fmt.Errorf("agent: empty action order")
		}
		a.Actions = append([]grid.Direction(nil), actions...)
		return nil
	}
}

// New builds an agent starting at start. Without WithSpecies or WithCosts it
// moves at unit cost over every walkable terrain.
func New(name string, start grid.Coord, opts ...Option) (Agent, error) {
	if name == "" {
		return Agent{}, ErrEmptyName
	}
	a := Agent{Name: name, Start: start, Actions: DefaultActions()}
	for _, opt := range opts {
		if err := opt(&a); err != nil {
			return Agent{}, fmt.Errorf("agent %q: %w", name, err)
		}
	}

	return a, nil
}

// Problem formulates the route from → to for this agent over g.
// Extra problem options (enhanced mode, tree recorder) are appended.
func (a Agent) Problem(g *grid.Grid, from, to grid.Coord, opts ...problem.Option) (*problem.Problem, error) {
	base := []problem.Option{
		problem.WithStart(from),
		problem.WithGoal(to),
		problem.WithCosts(a.Costs),
	}

	return problem.New(g, append(base, opts...)...)
}

// String returns "name(SPECIES)@(x,y)".
func (a Agent) String() string {
	sp := string(a.Species)
	if sp == "" {
		sp = "custom"
	}
	return fmt.Sprintf("%s(%s)@%s", a.Name, sp, a.Start)
}
