package mission_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/questpath/agent"
	"github.com/katalvlaran/questpath/assign"
	"github.com/katalvlaran/questpath/costmatrix"
	"github.com/katalvlaran/questpath/genetic"
	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/mission"
)

func row(t *testing.T, values ...int) *grid.Grid {
	t.Helper()
	g, err := grid.New([][]int{values})
	require.NoError(t, err)
	return g
}

func agentsAt(t *testing.T, xs ...int) []agent.Agent {
	t.Helper()
	out := make([]agent.Agent, len(xs))
	for i, x := range xs {
		a, err := agent.New(fmt.Sprintf("a%d", i), grid.Coord{X: x})
		require.NoError(t, err)
		out[i] = a
	}
	return out
}

func at(xs ...int) []grid.Coord {
	out := make([]grid.Coord, len(xs))
	for i, x := range xs {
		out[i] = grid.Coord{X: x}
	}
	return out
}

func TestPlan_Exhaustive(t *testing.T) {
	m := mission.Mission{
		Grid:   row(t, 1, 1, 1, 1, 1, 1, 1),
		Agents: agentsAt(t, 0, 3, 6),
		Goals: []costmatrix.Point{
			{Name: "FAR", At: grid.Coord{X: 6}},
			{Name: "NEAR", At: grid.Coord{X: 0}},
			{Name: "MID", At: grid.Coord{X: 3}},
		},
		Exit: costmatrix.Point{Name: "EXIT", At: grid.Coord{X: 3}},
	}

	plan, err := mission.Plan(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, mission.Exhaustive, plan.Strategy)
	assert.True(t, plan.Feasible)
	assert.Equal(t, 6, plan.Cost)
	assert.Zero(t, plan.Generations)

	require.Len(t, plan.Routes, 3)
	assert.Equal(t, []string{"NEAR"}, plan.Routes[0].Goals)
	assert.Equal(t, at(0, 1, 2, 3), plan.Routes[0].Path, "start cell is also the goal cell")
	assert.Equal(t, at(3), plan.Routes[1].Path)
	assert.Equal(t, at(6, 5, 4, 3), plan.Routes[2].Path)
}

func TestPlan_GeneticOrdersGoals(t *testing.T) {
	m := mission.Mission{
		Grid:   row(t, 1, 1, 1, 1, 1, 1, 1),
		Agents: agentsAt(t, 0),
		Goals: []costmatrix.Point{
			{Name: "B", At: grid.Coord{X: 5}},
			{Name: "A", At: grid.Coord{X: 2}},
		},
		Exit: costmatrix.Point{Name: "EXIT", At: grid.Coord{X: 6}},
	}

	var gens int
	plan, err := mission.Plan(context.Background(), m,
		mission.WithGeneticOptions(genetic.WithSeed(3)),
		mission.WithOnGeneration(func(genetic.Stats) { gens++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, mission.Genetic, plan.Strategy, "more goals than agents")
	assert.Equal(t, 30, plan.Generations)
	assert.Equal(t, 30, gens)
	assert.Equal(t, 6, plan.Cost)
	assert.Equal(t, []string{"A", "B"}, plan.Routes[0].Goals)
	assert.Equal(t, at(0, 1, 2, 3, 4, 5, 6), plan.Routes[0].Path)
}

// walled: a1 is sealed off, so no one-to-one assignment exists.
func walled(t *testing.T) mission.Mission {
	return mission.Mission{
		Grid:   row(t, 1, 1, 1, 0, 1),
		Agents: agentsAt(t, 0, 4),
		Goals: []costmatrix.Point{
			{Name: "G1", At: grid.Coord{X: 1}},
			{Name: "G2", At: grid.Coord{X: 2}},
		},
		Exit: costmatrix.Point{Name: "EXIT", At: grid.Coord{X: 0}},
	}
}

func TestPlan_AutoFallsBackToGenetic(t *testing.T) {
	plan, err := mission.Plan(context.Background(), walled(t))
	require.NoError(t, err)
	assert.Equal(t, mission.Genetic, plan.Strategy)
	assert.True(t, plan.Feasible)
	assert.Equal(t, 4, plan.Cost)
	assert.ElementsMatch(t, []string{"G1", "G2"}, plan.Routes[0].Goals)
	assert.Empty(t, plan.Routes[1].Goals)
	assert.Equal(t, at(4), plan.Routes[1].Path, "an idle agent stays put")
}

func TestPlan_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := mission.Plan(ctx, walled(t), mission.WithStrategy(mission.Exhaustive))
	assert.ErrorIs(t, err, assign.ErrInfeasible)

	m := walled(t)
	m.Goals = m.Goals[:1]
	_, err = mission.Plan(ctx, m, mission.WithStrategy(mission.Exhaustive))
	assert.ErrorIs(t, err, mission.ErrStrategyMismatch)

	_, err = mission.Plan(ctx, mission.Mission{})
	assert.ErrorIs(t, err, mission.ErrNilGrid)

	_, err = mission.Plan(ctx, walled(t), mission.WithStrategy("roulette"))
	assert.ErrorIs(t, err, mission.ErrOptionViolation)
	_, err = mission.Plan(ctx, walled(t), mission.WithWorkers(0))
	assert.ErrorIs(t, err, mission.ErrOptionViolation)

	m = walled(t)
	m.Agents = nil
	_, err = mission.Plan(ctx, m)
	assert.ErrorIs(t, err, costmatrix.ErrNoAgents)
}

func TestItinerary_Unreachable(t *testing.T) {
	m := walled(t)
	set, err := costmatrix.Build(context.Background(), m.Grid, m.Agents, m.Goals, m.Exit)
	require.NoError(t, err)

	assert.Nil(t, mission.Itinerary(set, "a1", []string{"G1"}))
	assert.Nil(t, mission.Itinerary(set, "ghost", nil))
	assert.Equal(t, at(0, 1, 2, 1, 0), mission.Itinerary(set, "a0", []string{"G1", "G2"}))
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]mission.Strategy{
		"": mission.Auto, "AUTO": mission.Auto, "assign": mission.Exhaustive, "Genetic": mission.Genetic, "ga": mission.Genetic,
	} {
		got, err := mission.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := mission.ParseStrategy("annealing")
	assert.ErrorIs(t, err, mission.ErrUnknownStrategy)
}
