package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/questpath/mission"
	"github.com/katalvlaran/questpath/problem"
	"github.com/katalvlaran/questpath/service"
)

const walled = "1 1 1\n1 0 1\n1 1 1\n"

const missionYAML = `
grid: "1 1 1 1 1"
agents:
  - name: ann
    start: {x: 0, y: 0}
goals:
  - {name: B, at: {x: 3, y: 0}}
  - {name: A, at: {x: 1, y: 0}}
exit: {name: EXIT, at: {x: 4, y: 0}}
`

func call(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func text(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestNewServer(t *testing.T) {
	s := NewServer(service.New(), "test")
	require.NotNil(t, s.MCPServer())
}

// ---------- find_path ----------

func TestFindPath(t *testing.T) {
	s := NewServer(service.New(), "test")

	result, err := s.handleFindPath(context.Background(), call("find_path", map[string]interface{}{
		"grid":      walled,
		"start_x":   float64(0),
		"start_y":   float64(0),
		"goal_x":    float64(2),
		"goal_y":    float64(2),
		"algorithm": "dfs",
		"actions":   "down,right,up,left",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, text(t, result))

	var res service.SearchResult
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &res))
	assert.Equal(t, "DFS", res.Algorithm)
	assert.Equal(t, problem.Success, res.Status)
	assert.Equal(t, 4, res.Steps)
	assert.Len(t, res.Path, 5)
}

func TestFindPath_DepthLimit(t *testing.T) {
	s := NewServer(service.New(), "test")

	result, err := s.handleFindPath(context.Background(), call("find_path", map[string]interface{}{
		"grid":        walled,
		"start_x":     "0",
		"start_y":     "0",
		"goal_x":      2,
		"goal_y":      2,
		"algorithm":   "dls",
		"depth_limit": float64(2),
	}))
	require.NoError(t, err)
	assert.Contains(t, text(t, result), `"status": "CUTOFF"`)
}

func TestFindPath_Errors(t *testing.T) {
	s := NewServer(service.New(), "test")

	cases := map[string]map[string]interface{}{
		"MissingGoal":   {"grid": walled, "start_x": 0, "start_y": 0, "goal_x": 2},
		"FractionalX":   {"grid": walled, "start_x": 0.5, "start_y": 0, "goal_x": 2, "goal_y": 2},
		"BadActions":    {"grid": walled, "start_x": 0, "start_y": 0, "goal_x": 2, "goal_y": 2, "actions": "up,jump"},
		"BadAlgorithm":  {"grid": walled, "start_x": 0, "start_y": 0, "goal_x": 2, "goal_y": 2, "algorithm": "greedy"},
		"EmptyGrid":     {"grid": "", "start_x": 0, "start_y": 0, "goal_x": 2, "goal_y": 2},
		"GoalOutOfGrid": {"grid": walled, "start_x": 0, "start_y": 0, "goal_x": 9, "goal_y": 2},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := s.handleFindPath(context.Background(), call("find_path", args))
			require.NoError(t, err)
			assert.True(t, result.IsError, text(t, result))
		})
	}
}

// ---------- plan_mission ----------

func TestPlanMission(t *testing.T) {
	s := NewServer(service.New(), "test")

	result, err := s.handlePlanMission(context.Background(), call("plan_mission", map[string]interface{}{
		"mission":     missionYAML,
		"seed":        float64(5),
		"generations": float64(12),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, text(t, result))

	var res mission.Result
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &res))
	assert.Equal(t, mission.Genetic, res.Strategy)
	assert.Equal(t, 4, res.Cost)
	require.Len(t, res.Routes, 1)
	assert.Equal(t, []string{"A", "B"}, res.Routes[0].Goals)
}

func TestPlanMission_Errors(t *testing.T) {
	s := NewServer(service.New(), "test")

	cases := map[string]map[string]interface{}{
		"Missing":      {},
		"NotADocument": {"mission": "grid: [1, 2"},
		"UnknownField": {"mission": missionYAML + "speed: 3\n"},
		"Mismatch":     {"mission": missionYAML, "strategy": "exhaustive"},
		"BadSeed":      {"mission": missionYAML, "seed": "abc"},
		"GridFile":     {"mission": strings.Replace(missionYAML, `grid: "1 1 1 1 1"`, "grid_file: /etc/hostname", 1)},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := s.handlePlanMission(context.Background(), call("plan_mission", args))
			require.NoError(t, err)
			assert.True(t, result.IsError, text(t, result))
		})
	}
}

// ---------- catalog ----------

func TestListSpecies(t *testing.T) {
	s := NewServer(service.New(), "test")

	result, err := s.handleListSpecies(context.Background(), call("list_species", map[string]interface{}{}))
	require.NoError(t, err)

	var list []service.SpeciesInfo
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &list))
	assert.Len(t, list, 6)
	assert.True(t, strings.Contains(text(t, result), `"inf"`))
}

func TestGridInfo(t *testing.T) {
	s := NewServer(service.New(), "test")

	result, err := s.handleGridInfo(context.Background(), call("grid_info", map[string]interface{}{"grid": "1 0 1\n"}))
	require.NoError(t, err)

	var info service.GridInfo
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &info))
	assert.Equal(t, 3, info.Width)
	assert.Equal(t, 2, info.Components)

	result, err = s.handleGridInfo(context.Background(), call("grid_info", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
