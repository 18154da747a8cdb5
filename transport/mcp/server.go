package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/mission"
	"github.com/katalvlaran/questpath/service"
)

// Server publishes a service.Service as MCP tools.
type Server struct {
	service   service.Service
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers every tool.
func NewServer(svc service.Service, version string) *Server {
	s := &Server{service: svc}
	s.mcpServer = server.NewMCPServer(
		"questpath",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`questpath - grid route search and mission planning

GRIDS are text, one row per line, cells separated by spaces:
0 WALL, 1 ROAD, 2 MOUNTAIN, 3 LAND, 4 WATER, 5 SAND, 6 FOREST, 7 SWAMP, 8 SNOW.
Coordinates are {x: column, y: row} from the top-left corner.

AVAILABLE TOOLS:
- find_path: search a route with bfs, dfs, dls, ids or astar
- plan_mission: assign goals to agents and route them to the exit
- list_species: terrain costs per species ("inf" is impassable)
- grid_info: size, terrain counts and connected components of a grid`),
	)

	s.registerTools()
	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools on stdin and stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "find_path",
		Description: "Find a route between two cells of a grid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"grid": map[string]interface{}{
					"type":        "string",
					"description": "Grid text, one row per line",
				},
				"start_x": map[string]interface{}{"type": "integer", "description": "Start column"},
				"start_y": map[string]interface{}{"type": "integer", "description": "Start row"},
				"goal_x":  map[string]interface{}{"type": "integer", "description": "Goal column"},
				"goal_y":  map[string]interface{}{"type": "integer", "description": "Goal row"},
				"algorithm": map[string]interface{}{
					"type":        "string",
					"description": "bfs, dfs, dls, ids or astar (default astar)",
					"enum":        []string{"bfs", "dfs", "dls", "ids", "astar"},
				},
				"species": map[string]interface{}{
					"type":        "string",
					"description": "Mover species; see list_species. Unit costs when omitted",
				},
				"actions": map[string]interface{}{
					"type":        "string",
					"description": "Comma-separated move priority for dfs, dls and ids, e.g. up,left,down,right",
				},
				"depth_limit": map[string]interface{}{
					"type":        "integer",
					"description": "Depth limit, required for dls",
				},
				"enhanced": map[string]interface{}{
					"type":        "boolean",
					"description": "Slide through corridors and stop only at decision points",
				},
			},
			Required: []string{"grid", "start_x", "start_y", "goal_x", "goal_y"},
		},
	}, s.handleFindPath)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "plan_mission",
		Description: "Assign goals to agents and plan each agent's route to the exit",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"mission": map[string]interface{}{
					"type":        "string",
					"description": "Mission document in YAML or JSON: grid, agents, goals, exit, strategy",
				},
				"strategy": map[string]interface{}{
					"type":        "string",
					"description": "auto, exhaustive or genetic; overrides the document",
					"enum":        []string{"auto", "exhaustive", "genetic"},
				},
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Random seed for the genetic optimizer",
				},
				"generations": map[string]interface{}{
					"type":        "integer",
					"description": "Genetic generations (default 30)",
				},
			},
			Required: []string{"mission"},
		},
	}, s.handlePlanMission)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_species",
		Description: "List the species and their terrain costs",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListSpecies)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "grid_info",
		Description: "Describe a grid: size, walkable cells, terrain counts and connected components",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"grid": map[string]interface{}{
					"type":        "string",
					"description": "Grid text, one row per line",
				},
			},
			Required: []string{"grid"},
		},
	}, s.handleGridInfo)
}

func (s *Server) handleFindPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	req := service.SearchRequest{
		Grid:      stringArg(args, "grid"),
		Algorithm: stringArg(args, "algorithm"),
		Species:   stringArg(args, "species"),
		Enhanced:  boolArg(args, "enhanced"),
	}
	var err error
	if req.Start, err = coordArg(args, "start_x", "start_y"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if req.Goal, err = coordArg(args, "goal_x", "goal_y"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if actions := stringArg(args, "actions"); actions != "" {
		if req.Actions, err = grid.ParseDirections(actions); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	if _, ok := args["depth_limit"]; ok {
		limit, err := intArg(args, "depth_limit")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		req.DepthLimit = &limit
	}

	res, err := s.service.Search(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(res)
}

func (s *Server) handlePlanMission(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	text := stringArg(args, "mission")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("mission is required"), nil
	}
	doc, err := mission.DecodeDocument(strings.NewReader(text))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := service.PlanRequest{Mission: doc, Strategy: stringArg(args, "strategy")}
	if _, ok := args["seed"]; ok {
		seed, err := intArg(args, "seed")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		req.Seed = int64(seed)
	}
	if _, ok := args["generations"]; ok {
		if req.Generations, err = intArg(args, "generations"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	res, err := s.service.Plan(ctx, req, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(res)
}

func (s *Server) handleListSpecies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.service.Species())
}

func (s *Server) handleGridInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	info, err := s.service.Inspect(stringArg(args, "grid"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(info)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(b)), nil
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func boolArg(args map[string]interface{}, key string) bool {
	switch v := args[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// intArg accepts JSON numbers and numeric strings.
func intArg(args map[string]interface{}, key string) (int, error) {
	switch v := args[key].(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%s must be an integer, got %v", key, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("%s is required", key)
	}
	return 0, fmt.Errorf("%s must be an integer", key)
}

func coordArg(args map[string]interface{}, xKey, yKey string) (grid.Coord, error) {
	x, err := intArg(args, xKey)
	if err != nil {
		return grid.Coord{}, err
	}
	y, err := intArg(args, yKey)
	if err != nil {
		return grid.Coord{}, err
	}

	return grid.Coord{X: x, Y: y}, nil
}
