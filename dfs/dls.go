package dfs

import (
	"fmt"

	"github.com/katalvlaran/questpath/problem"
)

// DLS performs depth-limited search: DFS that never expands a node deeper
// than limit steps. It returns
//
//	SUCCESS  with a goal node at depth ≤ limit,
//	CUTOFF   when the limit, not exhaustion, stopped the search,
//	FAILURE  when every reachable cell was exhausted within the limit.
//
// A cell already entered is re-entered only through a strictly shallower
// path, so a goal within the limit is never hidden behind a deeper visit.
// Returns ErrOptionViolation for limit < 0.
func DLS(p *problem.Problem, limit int, opts ...Option) (problem.Solution, error) {
	if p == nil {
		return problem.Solution{}, ErrProblemNil
	}
	if limit < 0 {
		return problem.Solution{}, fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, limit)
	}
	o, err := build(opts)
	if err != nil {
		return problem.Solution{}, err
	}

	return dls(p, limit, o)
}

func dls(p *problem.Problem, limit int, o DFSOptions) (problem.Solution, error) {
	w := newWalker(p, o)
	root := p.Initial()
	w.explored[root.Coord] = 0

	goal, status, err := w.limited(root, limit)
	sol := problem.Solution{Status: status, Expanded: w.expanded}
	if err != nil {
		return sol, err
	}
	if status == problem.Success {
		sol.Node = goal
	}

	return sol, nil
}

// limited is the recursive step of DLS. CUTOFF from any child is remembered
// across the whole action loop so it is never confused with FAILURE.
func (w *dfsWalker) limited(n *problem.Node, limit int) (*problem.Node, problem.Status, error) {
	// 1. Cancellation and hook
	if err := w.enter(n); err != nil {
		return nil, problem.Failure, err
	}

	// 2. Goal test, then the limit
	if w.p.IsGoal(n) {
		return n, problem.Success, nil
	}
	if n.Depth >= limit {
		return nil, problem.Cutoff, nil
	}
	w.expanded++

	// 3. Children in the declared order
	cutoff := false
	for _, a := range w.opts.Actions {
		child := w.p.Child(n, a)
		if child == nil {
			continue
		}
		// a corridor slide may jump past the limit in one move
		if child.Depth > limit {
			cutoff = true
			continue
		}
		if d, seen := w.explored[child.Coord]; seen && d <= child.Depth {
			continue
		}
		w.explored[child.Coord] = child.Depth

		goal, status, err := w.limited(child, limit)
		if err != nil {
			return nil, problem.Failure, err
		}
		switch status {
		case problem.Success:
			return goal, problem.Success, nil
		case problem.Cutoff:
			cutoff = true
		}
	}

	// 4. Limit reached somewhere below, or a true dead end
	if cutoff {
		return nil, problem.Cutoff, nil
	}
	return nil, problem.Failure, nil
}

// IDS performs iterative-deepening search: DLS with limits StartDepth,
// StartDepth+Increment, ... with a fresh explored set per attempt.
// It returns SUCCESS or FAILURE only; CUTOFF never escapes.
//
// Without WithMaxDepth the loop ends on SUCCESS, on FAILURE (the reachable
// region was exhausted within the limit) or on context cancellation.
// With WithMaxDepth(d), a limit beyond d yields FAILURE and ErrDepthBound.
// Expanded counts nodes over all attempts.
func IDS(p *problem.Problem, opts ...Option) (problem.Solution, error) {
	if p == nil {
		return problem.Solution{}, ErrProblemNil
	}
	o, err := build(opts)
	if err != nil {
		return problem.Solution{}, err
	}

	total := 0
	for limit := o.StartDepth; ; limit += o.Increment {
		if o.MaxDepth > 0 && limit > o.MaxDepth {
			return problem.Solution{Status: problem.Failure, Expanded: total},
				fmt.Errorf("%w: limit %d > %d", ErrDepthBound, limit, o.MaxDepth)
		}

		p.Reset()
		sol, err := dls(p, limit, o)
		total += sol.Expanded
		sol.Expanded = total
		if err != nil {
			sol.Status = problem.Failure
			return sol, err
		}
		if sol.Status != problem.Cutoff {
			return sol, nil
		}
	}
}
