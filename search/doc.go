// Package search dispatches a problem.Problem to one of the strategy
// packages by Algorithm kind. It is the single entry point outer surfaces
// (HTTP, MCP, CLI) use to run a named search.
//
//	sol, err := search.Run(p, search.IDS,
//	    search.WithActions(grid.Up, grid.Left, grid.Down, grid.Right),
//	    search.WithIncrement(2),
//	)
//
// Algorithm names parse case-insensitively: "bfs", "dfs", "dls", "ids",
// "astar" (also "a*").
package search
