package problem

import (
	"fmt"

	"github.com/katalvlaran/questpath/grid"
)

// Node is one state in a search tree. Nodes are immutable once created and
// reference only their parent, so a solution path is recovered by walking
// Parent links back to the root.
type Node struct {
	// Coord is the state identity.
	Coord grid.Coord
	// Cost is the accumulated path cost from the root.
	Cost int
	// Depth is the number of single-cell steps from the root.
	Depth int
	// Action is the move that produced this node; None for the root.
	Action grid.Direction
	// Parent is nil only for the root.
	Parent *Node
}

// Path returns the nodes from the root to n, inclusive.
func (n *Node) Path() []*Node {
	if n == nil {
		return nil
	}
	out := make([]*Node, n.Depth+1)
	i := n.Depth
	for cur := n; cur != nil && i >= 0; cur = cur.Parent {
		out[i] = cur
		i--
	}

	return out[i+1:]
}

// Coords returns the coordinate sequence from the root to n.
func (n *Node) Coords() []grid.Coord {
	path := n.Path()
	out := make([]grid.Coord, len(path))
	for i, p := range path {
		out[i] = p.Coord
	}

	return out
}

// Actions returns the moves that lead from the root to n.
func (n *Node) Actions() []grid.Direction {
	path := n.Path()
	if len(path) < 2 {
		return nil
	}
	out := make([]grid.Direction, 0, len(path)-1)
	for _, p := range path[1:] {
		out = append(out, p.Action)
	}

	return out
}

// String describes n and its parent state.
func (n *Node) String() string {
	if n == nil {
		return "Node<nil>"
	}
	if n.Parent == nil {
		return fmt.Sprintf("Node<%s cost=%d root>", n.Coord, n.Cost)
	}

	return fmt.Sprintf("Node<%s cost=%d %s from %s>", n.Coord, n.Cost, n.Action, n.Parent.Coord)
}

// HeuristicNode extends Node with an estimate of the remaining cost.
// Heuristic nodes compare only by Priority.
type HeuristicNode struct {
	*Node
	// Estimate is the Manhattan distance to the goal scaled by the mover's
	// cheapest step.
	Estimate int
}

// Priority is accumulated cost plus estimate.
func (h HeuristicNode) Priority() int { return h.Cost + h.Estimate }

// Less orders heuristic nodes by priority only.
func (h HeuristicNode) Less(o HeuristicNode) bool { return h.Priority() < o.Priority() }
