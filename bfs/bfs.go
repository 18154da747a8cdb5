package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/problem"
)

// walker encapsulates mutable BFS state.
type walker struct {
	p     *problem.Problem
	opts  BFSOptions
	ctx   context.Context
	queue []*problem.Node
	seen  map[grid.Coord]struct{}
	sol   problem.Solution
}

// BFS runs breadth-first search on p, applying any number of functional
// Options. The returned Solution is SUCCESS with the shallowest goal node,
// or FAILURE once every reachable cell has been expanded.
// Returns ErrProblemNil, ErrOptionViolation, ctx.Err() on cancellation, or
// any user-supplied hook error.
func BFS(p *problem.Problem, opts ...Option) (problem.Solution, error) {
	if p == nil {
		return problem.Solution{}, ErrProblemNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return problem.Solution{}, o.err
	}

	n := p.Grid().Width() * p.Grid().Height()
	w := &walker{
		p:     p,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]*problem.Node, 0, n),
		seen:  make(map[grid.Coord]struct{}, n),
	}

	// The start may already be the goal
	root := p.Initial()
	if p.IsGoal(root) {
		return problem.Solution{Status: problem.Success, Node: root}, nil
	}
	w.enqueue(root)

	return w.loop()
}

// enqueue marks n seen, calls OnEnqueue and appends it to the frontier.
func (w *walker) enqueue(n *problem.Node) {
	w.seen[n.Coord] = struct{}{}
	w.opts.OnEnqueue(n.Coord, n.Depth)
	w.queue = append(w.queue, n)
}

// loop processes the frontier until success, exhaustion, error or cancellation.
func (w *walker) loop() (problem.Solution, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return w.sol, w.ctx.Err()
		default:
		}

		node := w.queue[0]
		w.queue[0] = nil
		w.queue = w.queue[1:]

		if err := w.opts.OnVisit(node.Coord, node.Depth); err != nil {
			return w.sol, fmt.Errorf("bfs: OnVisit error at %s: %w", node.Coord, err)
		}
		w.sol.Expanded++

		for _, child := range w.p.Expand(node) {
			if _, ok := w.seen[child.Coord]; ok {
				continue
			}
			// goal test at generation
			if w.p.IsGoal(child) {
				w.sol.Status = problem.Success
				w.sol.Node = child
				return w.sol, nil
			}
			w.enqueue(child)
		}
	}

	w.sol.Status = problem.Failure
	return w.sol, nil
}
