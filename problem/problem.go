package problem

import (
	"fmt"

	"github.com/katalvlaran/questpath/grid"
)

// Option configures a Problem via functional arguments.
// Invalid values are recorded and surfaced by New.
type Option func(*Options)

// Options holds the parameters of a Problem.
type Options struct {
	// Start is the initial cell; required.
	Start *grid.Coord
	// Goal is the target cell; required.
	Goal *grid.Coord
	// Costs is the mover's cost table; nil means unit costs.
	Costs CostTable
	// Enhanced enables corridor sliding in Expand and Child.
	Enhanced bool
	// Tree, if non-nil, records every generated node.
	Tree *Tree

	err error
}

// DefaultOptions returns unit costs, plain expansion and no tree recorder.
// Start and Goal have no default.
func DefaultOptions() Options {
	return Options{}
}

// WithStart sets the initial cell.
func WithStart(c grid.Coord) Option {
	return func(o *Options) { o.Start = &c }
}

// WithGoal sets the goal cell.
func WithGoal(c grid.Coord) Option {
	return func(o *Options) { o.Goal = &c }
}

// WithCosts sets the mover's per-terrain cost table. The table is copied.
func WithCosts(ct CostTable) Option {
	return func(o *Options) {
		if err := ct.Validate(); err != nil {
			o.err = err
			return
		}
		o.Costs = ct.Clone()
	}
}

// WithEnhanced toggles corridor sliding.
func WithEnhanced(on bool) Option {
	return func(o *Options) { o.Enhanced = on }
}

// WithTree attaches a search-tree recorder.
func WithTree(t *Tree) Option {
	return func(o *Options) {
		if t == nil {
			o.err = fmt.Errorf("%w: nil tree recorder", ErrOptionViolation)
			return
		}
		o.Tree = t
	}
}

// Problem is a route-finding problem over one grid for one mover.
type Problem struct {
	g        *grid.Grid
	start    grid.Coord
	goal     grid.Coord
	costs    CostTable
	enhanced bool
	tree     *Tree

	explored      map[grid.Coord]struct{}
	exploredOrder []grid.Coord
	decisions     map[grid.Coord]struct{}
	decisionOrder []grid.Coord
}

// New builds a Problem over g.
// Start and goal must be in bounds and not WALL; terrain the cost table marks
// Impassable is allowed and simply leaves the goal unreachable.
// Returns ErrNilGrid, ErrMissingStart, ErrMissingGoal, ErrOutOfBounds,
// ErrNotWalkable, ErrInvalidCost or ErrOptionViolation.
func New(g *grid.Grid, opts ...Option) (*Problem, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Start == nil {
		return nil, ErrMissingStart
	}
	if o.Goal == nil {
		return nil, ErrMissingGoal
	}
	if !g.InBounds(*o.Start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, *o.Start)
	}
	if !g.InBounds(*o.Goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrOutOfBounds, *o.Goal)
	}
	if !g.IsWalkable(*o.Start) {
		return nil, fmt.Errorf("%w: start %s", ErrNotWalkable, *o.Start)
	}
	if !g.IsWalkable(*o.Goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrNotWalkable, *o.Goal)
	}

	p := &Problem{
		g:        g,
		start:    *o.Start,
		goal:     *o.Goal,
		costs:    o.Costs,
		enhanced: o.Enhanced,
		tree:     o.Tree,
	}
	p.Reset()

	return p, nil
}

// Grid returns the underlying grid.
func (p *Problem) Grid() *grid.Grid { return p.g }

// Start returns the initial cell.
func (p *Problem) Start() grid.Coord { return p.start }

// Goal returns the goal cell.
func (p *Problem) Goal() grid.Coord { return p.goal }

// Costs returns the mover's cost table (nil for unit costs).
func (p *Problem) Costs() CostTable { return p.costs }

// Enhanced reports whether corridor sliding is on.
func (p *Problem) Enhanced() bool { return p.enhanced }

// Tree returns the attached recorder, or nil.
func (p *Problem) Tree() *Tree { return p.tree }

// Reset clears the cells recorded by enhanced expansion.
func (p *Problem) Reset() {
	p.explored = make(map[grid.Coord]struct{})
	p.exploredOrder = nil
	p.decisions = make(map[grid.Coord]struct{})
	p.decisionOrder = nil
}

// Initial returns a fresh root node at the start cell. When a Tree is
// attached it is reset to that root.
func (p *Problem) Initial() *Node {
	root := &Node{Coord: p.start}
	if p.tree != nil {
		p.tree.Reset(root)
	}

	return root
}

// IsGoal compares coordinates only.
func (p *Problem) IsGoal(n *Node) bool { return n != nil && n.Coord == p.goal }

// Passable reports whether the mover can stand on c.
func (p *Problem) Passable(c grid.Coord) bool {
	_, ok := p.StepCost(c)
	return ok
}

// StepCost returns the cost of entering c and whether it is allowed.
func (p *Problem) StepCost(c grid.Coord) (int, bool) {
	t, ok := p.g.TerrainAt(c)
	if !ok {
		return 0, false
	}

	return p.costs.Cost(t)
}

// Heuristic is the Manhattan distance from c to the goal scaled by the
// mover's cheapest step. It never overestimates.
func (p *Problem) Heuristic(c grid.Coord) int {
	return c.Manhattan(p.goal) * p.costs.MinCost()
}

// Expand returns one child per passable neighbor of n in the order
// up, down, left, right. In enhanced mode each child slides along the
// corridor it enters.
func (p *Problem) Expand(n *Node) []*Node {
	out := make([]*Node, 0, 4)
	for _, d := range grid.Directions() {
		if c := p.Child(n, d); c != nil {
			out = append(out, c)
		}
	}

	return out
}

// Child returns the node reached from n by action d, or nil when the target
// cell is not passable (or, in enhanced mode, the corridor loops back to n).
func (p *Problem) Child(n *Node, d grid.Direction) *Node {
	next := n.Coord.Step(d)
	if d == grid.None || next == n.Coord {
		return nil
	}
	child := p.step(n, next)
	if child == nil {
		return nil
	}
	if p.enhanced {
		return p.slide(n, child)
	}

	return child
}

// Successors returns the cost-weighted children of n over every
// terrain-adjacent cell, skipping cells the mover cannot enter.
// Corridor sliding does not apply.
func (p *Problem) Successors(n *Node) []HeuristicNode {
	out := make([]HeuristicNode, 0, 4)
	for _, cell := range p.g.Neighbors(n.Coord) {
		cost, ok := p.costs.Cost(cell.Terrain)
		if !ok {
			continue
		}
		child := &Node{
			Coord:  cell.Coord,
			Cost:   n.Cost + cost,
			Depth:  n.Depth + 1,
			Action: grid.DirectionBetween(n.Coord, cell.Coord),
			Parent: n,
		}
		p.record(child)
		out = append(out, HeuristicNode{Node: child, Estimate: p.Heuristic(cell.Coord)})
	}

	return out
}

// Explored returns the corridor cells passed over by enhanced expansion,
// in discovery order.
func (p *Problem) Explored() []grid.Coord {
	return append([]grid.Coord(nil), p.exploredOrder...)
}

// WasExplored reports whether c was passed over by enhanced expansion.
func (p *Problem) WasExplored(c grid.Coord) bool {
	_, ok := p.explored[c]
	return ok
}

// DecisionPoints returns the cells with three or more passable neighbors
// where enhanced expansion stopped, in discovery order.
func (p *Problem) DecisionPoints() []grid.Coord {
	return append([]grid.Coord(nil), p.decisionOrder...)
}

// step builds the child of n at the adjacent cell next, or nil.
func (p *Problem) step(n *Node, next grid.Coord) *Node {
	cost, ok := p.StepCost(next)
	if !ok {
		return nil
	}
	child := &Node{
		Coord:  next,
		Cost:   n.Cost + cost,
		Depth:  n.Depth + 1,
		Action: grid.DirectionBetween(n.Coord, next),
		Parent: n,
	}
	p.record(child)

	return child
}

// passableNeighbors lists passable cells adjacent to c, up, down, left, right.
func (p *Problem) passableNeighbors(c grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, 4)
	for _, d := range grid.Directions() {
		if n := c.Step(d); p.Passable(n) {
			out = append(out, n)
		}
	}

	return out
}

// slide follows the corridor entered by child until a cell that is the goal,
// a dead end or a decision point. Intermediate cells are chained as nodes.
// Returns nil when the corridor leads back to origin.
func (p *Problem) slide(origin, child *Node) *Node {
	cur := child
	seen := map[grid.Coord]struct{}{origin.Coord: {}}
	for {
		if cur.Coord == p.goal {
			return cur
		}
		nbrs := p.passableNeighbors(cur.Coord)
		if len(nbrs) != 2 {
			if len(nbrs) > 2 {
				p.markDecision(cur.Coord)
			}
			return cur
		}

		// 1) corridor cell: continue away from where we came from
		next := nbrs[0]
		if next == cur.Parent.Coord {
			next = nbrs[1]
		}
		// 2) a loop back to the origin (or onto itself) is no move at all
		if _, ok := seen[next]; ok {
			return nil
		}
		seen[cur.Coord] = struct{}{}
		p.markExplored(cur.Coord)

		// 3) chain an intermediate node so the path stays contiguous
		stepped := p.step(cur, next)
		if stepped == nil {
			return cur
		}
		cur = stepped
	}
}

func (p *Problem) record(n *Node) {
	if p.tree != nil {
		p.tree.Record(n)
	}
}

func (p *Problem) markExplored(c grid.Coord) {
	if _, ok := p.explored[c]; ok {
		return
	}
	p.explored[c] = struct{}{}
	p.exploredOrder = append(p.exploredOrder, c)
}

func (p *Problem) markDecision(c grid.Coord) {
	if _, ok := p.decisions[c]; ok {
		return
	}
	p.decisions[c] = struct{}{}
	p.decisionOrder = append(p.decisionOrder, c)
}
