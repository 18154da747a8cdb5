// Package agent describes the movers that travel a grid: an identity, a
// starting cell, a per-terrain cost table and a move priority.
//
// Agents are data, not a type hierarchy. A species is only a named entry in
// a catalog of cost tables; search code is polymorphic over "has a cost
// table" and nothing else. An agent may override its species table with
// WithCosts, or carry no species at all.
//
// Catalog:
//
//	HUMAN, MONKEY, OCTOPUS, CROCODILE, SASQUATCH and WEREWOLF. Costs returns
//	a fresh copy on every call, so callers may edit it freely.
package agent
