// Package bfs provides breadth-first search over a problem.Problem,
// returning the shallowest route from the start cell to the goal cell.
//
// What
//
//   - Explores cells in non-decreasing step count from the start.
//   - Keeps a FIFO frontier and a coordinate-keyed seen set, so every cell is
//     generated at most once.
//   - Tests for the goal when a child is generated, not when it is dequeued,
//     and returns the shallowest solution immediately.
//   - Supports functional hooks:
//   - OnEnqueue (after a cell joins the frontier)
//   - OnVisit   (when a cell is expanded; may abort with an error)
//
// Why
//
//   - Shortest path in edge count on an unweighted grid in O(W·H).
//   - Independent oracle for the other strategies: IDS must agree with BFS
//     on SUCCESS/FAILURE, A* with unit costs on path length.
//
// Determinism
//
//	Children are generated in the fixed order up, down, left, right, so the
//	returned path is fully reproducible.
//
// Complexity (N = walkable cells)
//
//   - Time:   O(N)
//   - Memory: O(N) for the frontier and seen set
//
// Usage
//
//	p, _ := problem.New(g, problem.WithStart(s), problem.WithGoal(t))
//	sol, err := bfs.BFS(p, bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrProblemNil, ErrOptionViolation, ctx.Err() or a hook error
//	}
//	if sol.Found() {
//	    fmt.Println(sol.Path())
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks.
//   - WithContext(ctx):  cancellation, checked before every expansion.
//   - WithOnEnqueue(fn): hook after a cell is enqueued.
//   - WithOnVisit(fn):   hook when a cell is expanded; returning error aborts.
//
// Errors
//
//   - ErrProblemNil       if the problem pointer is nil.
//   - ErrOptionViolation  if an Option is invalid.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
