// Package mission plans multi-agent missions end to end.
//
// A Mission names a grid, a set of agents (each with its own cost table),
// the goals that must all be visited and a shared exit. Plan:
//
//  1. builds every agent's leg costs with costmatrix.Build;
//  2. assigns goals to agents:
//     - Exhaustive: one goal per agent, exact (package assign);
//     - Genetic:    any number of goals per agent, evolved (package genetic);
//     - Auto:       Exhaustive when the counts match and are small enough,
//     Genetic otherwise or when no one-to-one assignment is feasible;
//  3. materializes each itinerary START → goals → exit as one coordinate
//     path, the cell shared by consecutive legs listed once.
//
// Missions are usually read from YAML (Decode, LoadFile); see Document for
// the format.
package mission
