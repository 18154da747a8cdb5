// Package dfs implements the depth-first family of uninformed searches over a
// problem.Problem: plain depth-first graph search, depth-limited search and
// iterative deepening.
//
// Key features:
//   - DFS(p, opts...): recursive graph search; children are generated strictly
//     in the declared action order, so the move priority is itself behavior.
//   - DLS(p, limit, opts...): DFS that refuses to go deeper than limit steps and
//     distinguishes CUTOFF (the limit stopped it) from FAILURE (exhaustion).
//   - IDS(p, opts...): DLS at limits StartDepth, StartDepth+Increment, ...
//     until SUCCESS or FAILURE; CUTOFF never escapes.
//   - Hook: OnVisit (pre-order) with error abort.
//   - Cancellation via context.Context, checked on every node entered.
//
// Action order:
//
//	There is no default. An agent must declare its move priority with
//	WithActions(grid.Up, grid.Left, ...); calling any search without one
//	returns ErrNoActions.
//
// Termination:
//
//	IDS on a finite grid always terminates: once the limit exceeds the depth
//	of the reachable region, DLS reports FAILURE instead of CUTOFF. Callers
//	that want an earlier ceiling pass WithMaxDepth(d) and receive FAILURE
//	together with ErrDepthBound.
//
// Complexity (N = walkable cells):
//
//   - DFS:  O(N) time, O(N) memory for the explored set and recursion stack.
//   - DLS:  O(N·L) worst case, since a cell may be re-entered through a
//     shallower path; O(N) memory.
//   - IDS:  Σ DLS over the attempted limits.
//
// Options:
//
//   - WithContext(ctx)      cancellation.
//   - WithActions(a...)     move priority (required).
//   - WithStartDepth(d)     first IDS limit, default 0.
//   - WithIncrement(n)      IDS limit step, default 1.
//   - WithMaxDepth(d)       IDS ceiling, default unbounded.
//   - WithOnVisit(fn)       pre-order hook; error aborts.
//
// Errors:
//
//   - ErrProblemNil         if p is nil.
//   - ErrNoActions          if no action order was declared.
//   - ErrOptionViolation    for invalid options or a negative limit.
//   - ErrDepthBound         if IDS passed MaxDepth.
//   - context.Canceled / DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit.
package dfs
