// Package costmatrix precomputes, for every agent, the cheapest route between
// every pair of named points a mission can chain together.
//
// For each agent Build runs one heuristic search (package astar) with that
// agent's cost table for
//
//	START → goal        for every goal,
//	goal  → goal'       for every ordered pair of distinct goals,
//	goal  → exit        for every goal.
//
// That is O(agents × goals²) independent searches. Build fans them out over a
// bounded goroutine pool (golang.org/x/sync/errgroup) and gives each search
// its own problem.Problem, since problems accumulate state while expanding.
//
// Unreachable pairs are stored as entries with Reachable == false; they are
// not errors. The resulting Set is read-only and safe for concurrent readers.
//
// Errors:
//
//   - ErrNoAgents       no agents were given.
//   - ErrNoGoals        no goals were given.
//   - ErrDuplicateName  two agents or two points share a name, or a point
//     uses the reserved name START.
//   - ErrOptionViolation an invalid option.
//   - problem.ErrOutOfBounds for points outside the grid.
//   - problem.ErrNotWalkable for a start, goal or exit on a WALL cell.
//   - ErrMissingLeg     NewSet was handed matrices with a required leg absent.
package costmatrix
