package service

import (
	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/mission"
	"github.com/katalvlaran/questpath/problem"
)

// SearchRequest describes one route search.
type SearchRequest struct {
	// Grid is the map in the text grid format.
	Grid  string     `json:"grid"`
	Start grid.Coord `json:"start"`
	Goal  grid.Coord `json:"goal"`
	// Algorithm is bfs, dfs, dls, ids or astar; empty means astar.
	Algorithm string `json:"algorithm,omitempty"`
	// Species or Costs select the mover's cost table; neither means unit costs.
	Species string                  `json:"species,omitempty"`
	Costs   map[string]mission.Cost `json:"costs,omitempty"`
	// Actions is the move priority for dfs, dls and ids.
	Actions    []grid.Direction `json:"actions,omitempty"`
	DepthLimit *int             `json:"depth_limit,omitempty"`
	Increment  int              `json:"increment,omitempty"`
	MaxDepth   int              `json:"max_depth,omitempty"`
	Enhanced   bool             `json:"enhanced,omitempty"`
}

// SearchResult is the outcome of a route search.
type SearchResult struct {
	Algorithm string           `json:"algorithm"`
	Status    problem.Status   `json:"status"`
	Path      []grid.Coord     `json:"path,omitempty"`
	Actions   []grid.Direction `json:"actions,omitempty"`
	Cost      int              `json:"cost"`
	Steps     int              `json:"steps"`
	Expanded  int              `json:"expanded"`
	// DecisionPoints lists the junctions met by enhanced expansion.
	DecisionPoints []grid.Coord `json:"decision_points,omitempty"`
	// Reachable reports whether any wall-free path joins start and goal,
	// whatever the mover's costs. A Failure with Reachable set means the
	// mover's own terrain limits or a depth bound stopped it.
	Reachable bool `json:"reachable"`
}

// PlanRequest describes a mission to plan.
type PlanRequest struct {
	Mission mission.Document `json:"mission"`
	// Strategy overrides the document's strategy when set.
	Strategy       string `json:"strategy,omitempty"`
	Seed           int64  `json:"seed,omitempty"`
	Generations    int    `json:"generations,omitempty"`
	PopulationSize int    `json:"population_size,omitempty"`
}

// SpeciesInfo is one catalog entry; impassable terrain is reported as "inf".
type SpeciesInfo struct {
	Name  string                  `json:"name"`
	Costs map[string]mission.Cost `json:"costs"`
}

// GridInfo summarizes a grid.
type GridInfo struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Walkable   int            `json:"walkable"`
	Components int            `json:"components"`
	// Junctions counts walkable cells with three or more walkable neighbors.
	Junctions int            `json:"junctions"`
	Terrain   map[string]int `json:"terrain"`
}
