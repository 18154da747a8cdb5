package dfs

import (
	"fmt"

	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/problem"
)

// dfsWalker encapsulates state during a depth-first search.
type dfsWalker struct {
	p        *problem.Problem
	opts     DFSOptions
	explored map[grid.Coord]int // cell → shallowest depth it was entered at
	expanded int
}

// DFS performs recursive depth-first graph search on p. Children are
// generated strictly in the order of the declared actions and every cell is
// entered at most once, so the first path found in that order is returned;
// it is not necessarily the shortest.
// Returns ErrProblemNil, ErrNoActions, ErrOptionViolation, ctx.Err() or a
// hook error.
func DFS(p *problem.Problem, opts ...Option) (problem.Solution, error) {
	// 1. Validate input and options
	if p == nil {
		return problem.Solution{}, ErrProblemNil
	}
	o, err := build(opts)
	if err != nil {
		return problem.Solution{}, err
	}

	// 2. Seed the explored set with the root
	w := newWalker(p, o)
	root := p.Initial()
	w.explored[root.Coord] = 0

	// 3. Recurse
	goal, err := w.traverse(root)
	sol := problem.Solution{Status: problem.Failure, Expanded: w.expanded}
	if err != nil {
		return sol, err
	}
	if goal != nil {
		sol.Status, sol.Node = problem.Success, goal
	}

	return sol, nil
}

func newWalker(p *problem.Problem, o DFSOptions) *dfsWalker {
	return &dfsWalker{
		p:        p,
		opts:     o,
		explored: make(map[grid.Coord]int, p.Grid().Width()*p.Grid().Height()),
	}
}

// enter runs the per-node prologue shared by DFS and DLS: cancellation
// check and pre-order hook.
func (w *dfsWalker) enter(n *problem.Node) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n.Coord, n.Depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook at %s: %w", n.Coord, err)
		}
	}

	return nil
}

// traverse visits n and recurses into unexplored children in action order.
// It returns the goal node, or nil on a dead end.
func (w *dfsWalker) traverse(n *problem.Node) (*problem.Node, error) {
	// 1. Cancellation and hook
	if err := w.enter(n); err != nil {
		return nil, err
	}

	// 2. Goal test on entry
	if w.p.IsGoal(n) {
		return n, nil
	}
	w.expanded++

	// 3. Children in the declared order; mark explored at generation
	for _, a := range w.opts.Actions {
		child := w.p.Child(n, a)
		if child == nil {
			continue
		}
		if _, seen := w.explored[child.Coord]; seen {
			continue
		}
		w.explored[child.Coord] = child.Depth

		goal, err := w.traverse(child)
		if err != nil || goal != nil {
			return goal, err
		}
	}

	// 4. Dead end
	return nil, nil
}
