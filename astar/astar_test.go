package astar_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/questpath/astar"
	"github.com/katalvlaran/questpath/bfs"
	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/problem"
)

func newProblem(t testing.TB, rows [][]int, start, goal grid.Coord, opts ...problem.Option) *problem.Problem {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)
	p, err := problem.New(g, append([]problem.Option{problem.WithStart(start), problem.WithGoal(goal)}, opts...)...)
	require.NoError(t, err)
	return p
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	_, err := astar.Search(nil)
	require.ErrorIs(t, err, astar.ErrProblemNil)

	p := newProblem(t, [][]int{{1, 1}}, grid.Coord{}, grid.Coord{X: 1})
	_, err = astar.Search(p, astar.WithMaxCost(-1))
	require.ErrorIs(t, err, astar.ErrOptionViolation)
	//nolint:staticcheck // nil context on purpose
	_, err = astar.Search(p, astar.WithContext(nil))
	require.ErrorIs(t, err, astar.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Impassable terrain
// ------------------------------------------------------------------------

// TestSearch_WaterMoat separates start and goal by a column of water the
// mover cannot enter.
func TestSearch_WaterMoat(t *testing.T) {
	rows := [][]int{
		{3, 3, 4, 3, 3},
		{3, 3, 4, 3, 3},
		{3, 3, 4, 3, 3},
	}
	costs := problem.CostTable{grid.Land: 1, grid.Water: problem.Impassable}
	p := newProblem(t, rows, grid.Coord{X: 0, Y: 1}, grid.Coord{X: 4, Y: 1}, problem.WithCosts(costs))

	var expanded []grid.Coord
	sol, err := astar.Search(p, astar.WithOnExpand(func(c grid.Coord, _, _ int) error {
		expanded = append(expanded, c)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, problem.Failure, sol.Status)
	assert.Nil(t, sol.Path())
	assert.Equal(t, 6, sol.Expanded, "only the left bank")
	for _, c := range expanded {
		assert.Less(t, c.X, 2, "expanded %v across the water", c)
	}

	// The same map is fine for a mover that swims.
	swimmer := newProblem(t, rows, grid.Coord{X: 0, Y: 1}, grid.Coord{X: 4, Y: 1},
		problem.WithCosts(problem.CostTable{grid.Land: 1, grid.Water: 3}))
	sol, err = astar.Search(swimmer)
	require.NoError(t, err)
	require.True(t, sol.Found())
	assert.Equal(t, 6, sol.Cost())
}

// ------------------------------------------------------------------------
// 3. Optimality
// ------------------------------------------------------------------------

func TestSearch_PrefersCheapDetour(t *testing.T) {
	rows := [][]int{
		{3, 2, 3},
		{3, 2, 3},
		{3, 3, 3},
	}
	costs := problem.CostTable{grid.Land: 1, grid.Mountain: 10}
	p := newProblem(t, rows, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 0}, problem.WithCosts(costs))

	sol, err := astar.Search(p)
	require.NoError(t, err)
	require.True(t, sol.Found())
	assert.Equal(t, 6, sol.Cost())
	assert.Equal(t, 6, sol.Steps())
	assert.NotContains(t, sol.Path(), grid.Coord{X: 1, Y: 0})
}

func TestSearch_TiesAreFIFO(t *testing.T) {
	p := newProblem(t, [][]int{{1, 1}, {1, 1}}, grid.Coord{}, grid.Coord{X: 1, Y: 1})
	sol, err := astar.Search(p)
	require.NoError(t, err)
	assert.Equal(t, []grid.Direction{grid.Down, grid.Right}, sol.Node.Actions())
}

// TestSearch_UnitCostsMatchBFS checks that A* with unit costs degenerates to
// BFS path length.
func TestSearch_UnitCostsMatchBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 60; trial++ {
		rows, start, goal := randomCase(t, rng)
		p := newProblem(t, rows, start, goal)

		want, err := bfs.BFS(p)
		require.NoError(t, err)
		got, err := astar.Search(p)
		require.NoError(t, err)

		require.Equal(t, want.Status, got.Status, "trial %d", trial)
		if want.Found() {
			assert.Equal(t, want.Steps(), got.Steps(), "trial %d", trial)
			assert.Equal(t, got.Steps(), got.Cost(), "unit costs")
		}
	}
}

// TestSearch_MatchesDijkstra compares A* against a plain quadratic
// Dijkstra oracle on random weighted grids with impassable terrain.
func TestSearch_MatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	costs := problem.CostTable{
		grid.Road: 1, grid.Mountain: 6, grid.Land: 2, grid.Water: problem.Impassable,
		grid.Sand: 3, grid.Forest: 4, grid.Swamp: 5, grid.Snow: problem.Impassable,
	}
	for trial := 0; trial < 60; trial++ {
		rows, start, goal := randomCase(t, rng)
		p := newProblem(t, rows, start, goal, problem.WithCosts(costs))

		want := dijkstraOracle(p)
		sol, err := astar.Search(p)
		require.NoError(t, err)
		if want < 0 {
			assert.Equal(t, problem.Failure, sol.Status, "trial %d", trial)
			continue
		}
		require.True(t, sol.Found(), "trial %d", trial)
		assert.Equal(t, want, sol.Cost(), "trial %d", trial)

		path := sol.Path()
		for i, c := range path {
			if i == 0 {
				continue
			}
			assert.Equal(t, 1, path[i-1].Manhattan(c))
			assert.True(t, p.Passable(c), "trial %d: %v impassable", trial, c)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Options
// ------------------------------------------------------------------------

func TestSearch_MaxCost(t *testing.T) {
	p := newProblem(t, [][]int{{3, 3, 3, 3, 3}}, grid.Coord{}, grid.Coord{X: 4})

	sol, err := astar.Search(p, astar.WithMaxCost(3))
	require.NoError(t, err)
	assert.Equal(t, problem.Failure, sol.Status)

	sol, err = astar.Search(p, astar.WithMaxCost(4))
	require.NoError(t, err)
	assert.Equal(t, 4, sol.Cost())
}

func TestSearch_HookAndCancel(t *testing.T) {
	p := newProblem(t, [][]int{{1, 1, 1}}, grid.Coord{}, grid.Coord{X: 2})

	stop := errors.New("stop")
	_, err := astar.Search(p, astar.WithOnExpand(func(grid.Coord, int, int) error { return stop }))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = astar.Search(p, astar.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// helpers
// ------------------------------------------------------------------------

func randomCase(t *testing.T, rng *rand.Rand) ([][]int, grid.Coord, grid.Coord) {
	t.Helper()
	w, h := 3+rng.Intn(9), 3+rng.Intn(9)
	g, err := grid.Random(rng, w, h, 0.75, grid.Terrains()[1:]...)
	require.NoError(t, err)
	start := grid.Coord{X: rng.Intn(w), Y: rng.Intn(h)}
	goal := grid.Coord{X: rng.Intn(w), Y: rng.Intn(h)}
	require.NoError(t, g.SetTerrain(start, grid.Road))
	require.NoError(t, g.SetTerrain(goal, grid.Road))

	return g.Rows(), start, goal
}

// dijkstraOracle returns the cheapest cost from start to goal, or -1.
func dijkstraOracle(p *problem.Problem) int {
	g := p.Grid()
	dist := map[grid.Coord]int{p.Start(): 0}
	done := map[grid.Coord]bool{}
	for {
		var u grid.Coord
		best := -1
		for c, d := range dist {
			if !done[c] && (best < 0 || d < best) {
				u, best = c, d
			}
		}
		if best < 0 {
			return -1
		}
		if u == p.Goal() {
			return best
		}
		done[u] = true
		for _, n := range g.Neighbors(u) {
			cost, ok := p.Costs().Cost(n.Terrain)
			if !ok {
				continue
			}
			if d, seen := dist[n.Coord]; !seen || best+cost < d {
				dist[n.Coord] = best + cost
			}
		}
	}
}
