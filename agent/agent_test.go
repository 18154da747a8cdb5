package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/questpath/agent"
	"github.com/katalvlaran/questpath/astar"
	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/problem"
)

func TestCatalog(t *testing.T) {
	species := agent.Catalog()
	require.Len(t, species, 6)
	assert.Equal(t, agent.Crocodile, species[0])

	for _, s := range species {
		ct, err := s.Costs()
		require.NoError(t, err, s)
		require.NoError(t, ct.Validate(), s)
		assert.Len(t, ct, 8, "%s covers every walkable terrain", s)
		_, walls := ct.Cost(grid.Wall)
		assert.False(t, walls)
	}

	_, err := agent.Species("DRAGON").Costs()
	assert.ErrorIs(t, err, agent.ErrUnknownSpecies)
}

func TestSpecies_CostsAreCopies(t *testing.T) {
	ct, err := agent.Human.Costs()
	require.NoError(t, err)
	ct[grid.Road] = 99

	again, err := agent.Human.Costs()
	require.NoError(t, err)
	assert.Equal(t, 1, again[grid.Road])
}

func TestParseSpecies(t *testing.T) {
	s, err := agent.ParseSpecies(" octopus ")
	require.NoError(t, err)
	assert.Equal(t, agent.Octopus, s)
	assert.True(t, s.Valid())

	_, err = agent.ParseSpecies("unicorn")
	assert.ErrorIs(t, err, agent.ErrUnknownSpecies)
}

func TestNew(t *testing.T) {
	a, err := agent.New("eve", grid.Coord{X: 1}, agent.WithSpecies(agent.Monkey))
	require.NoError(t, err)
	assert.Equal(t, agent.Monkey, a.Species)
	assert.Equal(t, agent.DefaultActions(), a.Actions)
	assert.Equal(t, "eve(MONKEY)@(1,0)", a.String())

	custom, err := agent.New("bot", grid.Coord{},
		agent.WithSpecies(agent.Human),
		agent.WithCosts(problem.CostTable{grid.Road: 1}),
		agent.WithActions(grid.Left, grid.Right),
	)
	require.NoError(t, err)
	assert.Equal(t, problem.CostTable{grid.Road: 1}, custom.Costs)
	assert.Equal(t, []grid.Direction{grid.Left, grid.Right}, custom.Actions)

	_, err = agent.New("", grid.Coord{})
	assert.ErrorIs(t, err, agent.ErrEmptyName)
	_, err = agent.New("x", grid.Coord{}, agent.WithSpecies("GHOST"))
	assert.ErrorIs(t, err, agent.ErrUnknownSpecies)
	_, err = agent.New("x", grid.Coord{}, agent.WithCosts(problem.CostTable{grid.Road: 0}))
	assert.ErrorIs(t, err, problem.ErrInvalidCost)
	_, err = agent.New("x", grid.Coord{}, agent.WithActions())
	assert.Error(t, err)
}

// TestSpeciesDifferOnSameMap shows the data-driven tables changing routes:
// the octopus crosses the lake, the sasquatch cannot.
func TestSpeciesDifferOnSameMap(t *testing.T) {
	g, err := grid.New([][]int{
		{3, 4, 3},
		{3, 4, 3},
		{3, 4, 3},
	})
	require.NoError(t, err)
	from, to := grid.Coord{X: 0, Y: 1}, grid.Coord{X: 2, Y: 1}

	oct, _ := agent.New("o", from, agent.WithSpecies(agent.Octopus))
	p, err := oct.Problem(g, from, to)
	require.NoError(t, err)
	sol, err := astar.Search(p)
	require.NoError(t, err)
	require.True(t, sol.Found())
	assert.Equal(t, 3, sol.Cost(), "water 1 + land 2")

	sas, _ := agent.New("s", from, agent.WithSpecies(agent.Sasquatch))
	p, err = sas.Problem(g, from, to)
	require.NoError(t, err)
	sol, err = astar.Search(p)
	require.NoError(t, err)
	assert.Equal(t, problem.Failure, sol.Status)
}
