// Package astar implements heuristic best-first (A*) search over a
// problem.Problem with per-terrain movement costs.
//
// The frontier is a min-heap ordered by f = g + h, where g is the accumulated
// terrain cost and h is the Manhattan distance to the goal scaled by the
// mover's cheapest step. Successors are every terrain-adjacent cell the mover
// can enter; a cell whose cost is Impassable for this mover is never pushed,
// let alone expanded.
//
// Complexity:
//
//   - Time:  O(N log N) for N walkable cells.
//   - Each cell is expanded at most once (closed set).
//   - Each improvement pushes a duplicate entry (lazy decrease-key).
//   - Space: O(N) for the best-cost map, closed set and heap.
//
// Notes on implementation choices:
//
//   - The goal is accepted when it is popped, not when it is generated, so the
//     first goal popped is optimal: every finite cost is ≥ 1 and the scaled
//     Manhattan estimate never overestimates.
//   - Ties on f are broken by insertion order (FIFO) for reproducible paths.
//   - Stale heap entries are skipped when popped.
//   - WithMaxCost stops exploration once the cheapest frontier entry would
//     exceed the cap; the result is then FAILURE.
//
// Options:
//
//   - WithContext(ctx)    cancellation, checked before every expansion.
//   - WithMaxCost(c)      cap on accumulated cost (0 = no cap).
//   - WithOnExpand(fn)    hook on every expansion; error aborts.
//
// Errors (sentinel):
//
//   - ErrProblemNil       if the problem pointer is nil.
//   - ErrOptionViolation  if MaxCost < 0 or the context is nil.
//
// Example usage:
//
//	p, _ := problem.New(g,
//	    problem.WithStart(s), problem.WithGoal(t),
//	    problem.WithCosts(problem.CostTable{grid.Land: 1, grid.Water: problem.Impassable}),
//	)
//	sol, err := astar.Search(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol.Status, sol.Cost())
package astar
