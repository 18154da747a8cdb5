package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/problem"
)

// Search runs A* on p using the problem's cost table.
//
// Returns:
//
//   - SUCCESS with the cheapest goal node, accepted when popped.
//   - FAILURE when the frontier empties (or MaxCost cuts it) first.
//   - err: ErrProblemNil, ErrOptionViolation, ctx.Err() or a hook error.
//
// Preconditions and validation (in order):
//  1. p must be non-nil (ErrProblemNil).
//  2. Options must be valid (ErrOptionViolation).
func Search(p *problem.Problem, opts ...Option) (problem.Solution, error) {
	// 1) Validate problem
	if p == nil {
		return problem.Solution{}, ErrProblemNil
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return problem.Solution{}, cfg.err
	}

	// 3) Prepare runner
	n := p.Grid().Width() * p.Grid().Height()
	r := &runner{
		p:      p,
		opts:   cfg,
		best:   make(map[grid.Coord]int, n),
		closed: make(map[grid.Coord]bool, n),
		pq:     make(nodePQ, 0, n),
	}

	// 4) Seed with the root and run the main loop
	r.init()
	return r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	p      *problem.Problem
	opts   Options
	best   map[grid.Coord]int  // best known accumulated cost per cell
	closed map[grid.Coord]bool // cells already expanded
	pq     nodePQ              // min-heap keyed by f, FIFO on ties
	seq    int                 // insertion counter for tie-breaking
	sol    problem.Solution
}

// init pushes the root with g = 0.
func (r *runner) init() {
	root := r.p.Initial()
	r.best[root.Coord] = 0
	heap.Init(&r.pq)
	r.push(problem.HeuristicNode{Node: root, Estimate: r.p.Heuristic(root.Coord)})
}

func (r *runner) push(h problem.HeuristicNode) {
	heap.Push(&r.pq, &nodeItem{node: h, seq: r.seq})
	r.seq++
}

// process pops the cheapest entry until the goal is popped or the heap empties.
func (r *runner) process() (problem.Solution, error) {
	for r.pq.Len() > 0 {
		// 1) Cancellation check
		select {
		case <-r.opts.Ctx.Done():
			return r.sol, r.opts.Ctx.Err()
		default:
		}

		// 2) Pop and drop stale entries
		item := heap.Pop(&r.pq).(*nodeItem)
		cur := item.node
		if r.closed[cur.Coord] || cur.Cost > r.best[cur.Coord] {
			continue
		}

		// 3) Goal accepted on pop
		if r.p.IsGoal(cur.Node) {
			r.sol.Status = problem.Success
			r.sol.Node = cur.Node
			return r.sol, nil
		}

		// 4) Respect the cost cap: nothing cheaper remains
		if r.opts.MaxCost > 0 && cur.Priority() > r.opts.MaxCost {
			break
		}

		// 5) Expand
		r.closed[cur.Coord] = true
		r.sol.Expanded++
		if r.opts.OnExpand != nil {
			if err := r.opts.OnExpand(cur.Coord, cur.Cost, cur.Estimate); err != nil {
				return r.sol, fmt.Errorf("astar: OnExpand hook at %s: %w", cur.Coord, err)
			}
		}
		r.relax(cur)
	}

	r.sol.Status = problem.Failure
	return r.sol, nil
}

// relax pushes every successor whose accumulated cost improves on the best
// known one. Impassable cells never appear among the successors.
func (r *runner) relax(cur problem.HeuristicNode) {
	for _, s := range r.p.Successors(cur.Node) {
		if r.closed[s.Coord] {
			continue
		}
		if r.opts.MaxCost > 0 && s.Cost > r.opts.MaxCost {
			continue
		}
		if b, ok := r.best[s.Coord]; ok && s.Cost >= b {
			continue
		}
		r.best[s.Coord] = s.Cost
		r.push(s)
	}
}

// nodeItem is a heap entry; seq breaks ties on priority in insertion order.
type nodeItem struct {
	node problem.HeuristicNode
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by (priority, seq).
// Outdated entries remain in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pi, pj := pq[i].node.Priority(), pq[j].node.Priority(); pi != pj {
		return pi < pj
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
