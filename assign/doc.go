// Package assign solves the one-goal-per-agent assignment exactly.
//
// What:
//
//	Given a costmatrix.Set with as many agents as goals, Solve enumerates every
//	bijection goal → agent and returns the one minimizing
//
//	  Σ_i  leg(agent_i, START → goal_π(i)) + leg(agent_i, goal_π(i) → exit)
//
// Determinism:
//
//	Permutations are visited in lexicographic order of goal indices, starting
//	from the identity; only a strictly smaller total replaces the incumbent.
//	Ties therefore resolve to the first minimal permutation, and re-running
//	Solve on an unchanged Set always returns the same answer.
//
// Feasibility:
//
//	A permutation that needs an unreachable leg is skipped. If every
//	permutation is skipped, Solve returns ErrInfeasible.
//
// Complexity:
//
//	O(n! · n) time, O(n²) space. Solve refuses more than MaxExhaustive goals;
//	larger or open-ended missions belong to package genetic.
package assign
