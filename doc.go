// Package questpath finds routes across terrain grids and plans missions in
// which several agents split a set of goals and meet at a shared exit.
//
// 🚀 What is in the box?
//
//	• Grids: text-loaded terrain maps, neighbors, connected components
//	• Problems: one mover on one grid, with per-terrain costs and corridor sliding
//	• Uninformed search: BFS, DFS, depth-limited and iterative deepening
//	• Informed search: A* with a Manhattan heuristic scaled by the cheapest step
//	• Missions: a leg cost matrix, an exhaustive assignment solver and a
//	  genetic optimizer for more goals than agents
//	• Surfaces: REST + WebSocket API, MCP tools and the questpath CLI
//
// Packages are layered bottom-up:
//
//	grid/           Grid, Coord, Terrain, Direction, text load format
//	problem/        Problem, Node, Solution, CostTable, search-tree recorder
//	bfs/ dfs/       uninformed strategies (dfs holds DFS, DLS and IDS)
//	astar/          cost-aware A* search
//	search/         one entry point selecting a strategy by name
//	agent/          movers: species cost tables and action order
//	costmatrix/     concurrent start→goal→exit leg costs for a mission
//	assign/         best one-goal-per-agent assignment by permutation
//	genetic/        mutation-only genetic optimizer over goal routes
//	mission/        YAML missions and Plan, which picks a strategy
//	service/        transport-neutral operations shared by api, mcp and the CLI
//	api/            gorilla/mux REST routes and the /ws/plan stream
//	transport/mcp/  MCP tool server on stdio
//
// Quick ASCII example:
//
//	1 1 1    start (0,0), goal (2,2)
//	1 0 1    0 is a wall; every route goes around it
//	1 1 1
//
//	go install github.com/katalvlaran/questpath/cmd/questpath@latest
//	questpath search --goal 2,2 map.txt
package questpath
