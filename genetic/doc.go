// Package genetic searches goal-to-agent assignments with a mutation-only
// genetic algorithm, for missions too large or too loose for package assign.
//
// What:
//
//	Every goal must be visited by exactly one agent; an agent may get several
//	goals (visited in order, then the exit) or none. The cost of a plan is the
//	sum, over agents, of START → first goal, goal → goal and last goal → exit
//	legs read from a costmatrix.Set.
//
// Encoding:
//
//	A Chromosome holds one block per agent: the agent index followed by goal
//	indices, padded with Unassigned. A chromosome is consistent when each goal
//	occurs exactly once before the first Unassigned of some block.
//
// Loop (per generation):
//
//  1. populate  – refill to PopulationSize with random consistent individuals;
//  2. evaluate  – silently discard inconsistent ones, compute fitness
//     (cost ÷ population total, for reporting only);
//  3. reproduce – clone each individual and apply 1..MaxMutations mutations,
//     each moving one goal into an empty slot of another agent's block
//     (or swapping two goals when no slot is free), then renormalize;
//  4. select    – merge parents and offspring, stable-sort by cost and keep
//     Survivors. There is no crossover and no roulette wheel.
//
// Determinism:
//
//	All randomness comes from one math/rand stream seeded by WithSeed
//	(0 means seed 1). Equal inputs and seeds give equal results.
//
// Unreachable legs cost UnreachableCost each, so infeasible plans rank last
// but are still decoded if nothing better exists; Result.Feasible tells.
//
// Complexity: O(Generations · PopulationSize · agents · goals).
package genetic
