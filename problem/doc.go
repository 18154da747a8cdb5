// Package problem formulates route finding on a grid.Grid as a state-space
// search problem shared by the bfs, dfs and astar packages.
//
// What:
//
//   - Problem binds a Grid, a start cell, a goal cell and an optional
//     per-terrain CostTable describing one mover.
//   - Expand and Child generate successor Nodes in the fixed order
//     up, down, left, right, each tagged with the Direction that produced it.
//   - Successors generates cost-weighted successors for heuristic search.
//   - Solution is the tagged result every search returns:
//     SUCCESS with a terminal Node, FAILURE or CUTOFF.
//   - Tree optionally records parent→children edges for diagnostic printing.
//
// Enhanced expansion:
//
//	With WithEnhanced(true), a move into a corridor cell (exactly two passable
//	neighbors) keeps sliding along the corridor until it reaches a decision
//	point, a dead end or the goal. Every intermediate cell still gets its own
//	Node in the parent chain, so Node.Path stays a contiguous walk and
//	Node.Depth keeps counting single steps. Intermediate cells are recorded
//	in Explored, decision points in DecisionPoints. A corridor that loops back
//	to the origin cell is dropped.
//
// Costs:
//
//	A nil CostTable means unit cost on every walkable terrain. Otherwise a
//	missing entry or Impassable forbids the terrain for this mover. WALL is
//	impassable regardless of the table. Finite costs must be ≥ 1 so that the
//	Manhattan estimate never overestimates.
//
// Concurrency:
//
//	A Problem accumulates explored cells and decision points as a side effect
//	of enhanced expansion. It is not safe for concurrent use; build one
//	Problem per goroutine.
//
// Errors:
//
//   - ErrNilGrid:         New called with a nil grid.
//   - ErrMissingStart:    no WithStart option.
//   - ErrMissingGoal:     no WithGoal option.
//   - ErrOutOfBounds:     start or goal outside the grid.
//   - ErrInvalidCost:     a finite cost below 1 or a negative value other than Impassable.
//   - ErrOptionViolation: other invalid options.
package problem
