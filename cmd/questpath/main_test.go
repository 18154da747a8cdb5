package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/questpath/mission"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(context.Background(), append([]string{AppName}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSpeciesCommand(t *testing.T) {
	out, err := run(t, "species")
	require.NoError(t, err)
	assert.Contains(t, out, "SASQUATCH:")
	assert.Contains(t, out, "WATER=inf")
}

func TestInspectCommand(t *testing.T) {
	path := writeFile(t, "row.txt", "1 0 1\n")

	out, err := run(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "size: 3x1\n")
	assert.Contains(t, out, "components: 2\n")
	assert.Contains(t, out, "junctions: 0\n")

	_, err = run(t, "inspect")
	assert.Error(t, err)
}

func TestRandomCommand(t *testing.T) {
	out, err := run(t, "random", "--width", "4", "--height", "3", "--seed", "11", "--open", "1", "--terrain", "sand")
	require.NoError(t, err)
	assert.Equal(t, "5 5 5 5\n5 5 5 5\n5 5 5 5\n", out)

	again, err := run(t, "random", "--width", "6", "--height", "5", "--seed", "11")
	require.NoError(t, err)
	same, err := run(t, "random", "--width", "6", "--height", "5", "--seed", "11")
	require.NoError(t, err)
	assert.Equal(t, again, same, "a seed fixes the grid")

	_, err = run(t, "random", "--terrain", "wall")
	assert.Error(t, err)
	_, err = run(t, "random", "--open", "2")
	assert.Error(t, err)
}

func TestSearchCommand(t *testing.T) {
	path := writeFile(t, "walled.txt", "1 1 1\n1 0 1\n1 1 1\n")

	out, err := run(t, "search", "--goal", "2,2", "--algorithm", "bfs", path)
	require.NoError(t, err)
	assert.Contains(t, out, "BFS: SUCCESS\n")
	assert.Contains(t, out, "cost: 4\n")

	out, err = run(t, "search", "--goal", "2,2", "--algorithm", "dls", "--depth-limit", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, "DLS: CUTOFF\n")
	assert.NotContains(t, out, "path:")

	_, err = run(t, "search", "--goal", "2;2", path)
	assert.Error(t, err)
	_, err = run(t, "search", "--goal", "2,2", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestPlanCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "row.txt"), []byte("1 1 1 1 1\n"), 0o644))
	path := filepath.Join(dir, "mission.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grid_file: row.txt
agents:
  - name: ann
    start: {x: 0, y: 0}
goals:
  - {name: B, at: {x: 3, y: 0}}
  - {name: A, at: {x: 1, y: 0}}
exit: {name: EXIT, at: {x: 4, y: 0}}
`), 0o644))

	out, err := run(t, "--workers", "2", "plan", "--seed", "5", "--generations", "12", "--json", path)
	require.NoError(t, err)

	var res mission.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, mission.Genetic, res.Strategy)
	assert.Equal(t, 12, res.Generations)
	assert.Equal(t, 4, res.Cost)
	require.Len(t, res.Routes, 1)
	assert.Equal(t, []string{"A", "B"}, res.Routes[0].Goals)

	_, err = run(t, "plan", "--strategy", "exhaustive", path)
	assert.ErrorIs(t, err, mission.ErrStrategyMismatch)
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord(" 3, 4")
	require.NoError(t, err)
	assert.Equal(t, 3, c.X)
	assert.Equal(t, 4, c.Y)

	for _, bad := range []string{"", "3", "a,b", "1,2,3"} {
		_, err := parseCoord(bad)
		assert.Error(t, err, bad)
	}
}
