// Package service is the request/response layer shared by every front end
// of questpath: the REST and WebSocket API, the MCP tools and the CLI.
//
// It turns transport-neutral requests (grids as text, agents as mission
// documents, algorithms by name) into calls on the search and mission
// packages, and their results back into JSON-friendly values.
//
// Core interface:
//
// Service offers four operations:
//
//   - Search   runs one route search for one mover.
//   - Plan     plans a multi-agent mission, optionally streaming genetic
//     generations to a callback.
//   - Species  lists the built-in mover cost tables.
//   - Inspect  summarizes a grid.
//
// Errors caused by the request itself wrap ErrInvalidRequest so transports
// can map them to client errors.
//
// Usage:
//
//	svc := service.New(service.WithWorkers(4))
//	res, err := svc.Search(ctx, service.SearchRequest{
//		Grid:      "1 1 1\n1 0 1\n1 1 1\n",
//		Start:     grid.Coord{X: 0, Y: 0},
//		Goal:      grid.Coord{X: 2, Y: 2},
//		Algorithm: "bfs",
//	})
package service
