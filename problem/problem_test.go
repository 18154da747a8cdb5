package problem_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/problem"
)

func mustGrid(t *testing.T, rows [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)
	return g
}

func c(x, y int) grid.Coord { return grid.Coord{X: x, Y: y} }

func TestNew_Preconditions(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1}, {1, 0}})

	cases := []struct {
		name string
		g    *grid.Grid
		opts []problem.Option
		want error
	}{
		{"NilGrid", nil, []problem.Option{problem.WithStart(c(0, 0)), problem.WithGoal(c(1, 0))}, problem.ErrNilGrid},
		{"MissingStart", g, []problem.Option{problem.WithGoal(c(1, 0))}, problem.ErrMissingStart},
		{"MissingGoal", g, []problem.Option{problem.WithStart(c(0, 0))}, problem.ErrMissingGoal},
		{"StartOutside", g, []problem.Option{problem.WithStart(c(2, 0)), problem.WithGoal(c(1, 0))}, problem.ErrOutOfBounds},
		{"GoalOutside", g, []problem.Option{problem.WithStart(c(0, 0)), problem.WithGoal(c(0, -1))}, problem.ErrOutOfBounds},
		{"StartOnWall", g, []problem.Option{problem.WithStart(c(1, 1)), problem.WithGoal(c(0, 0))}, problem.ErrNotWalkable},
		{"GoalOnWall", g, []problem.Option{problem.WithStart(c(0, 0)), problem.WithGoal(c(1, 1))}, problem.ErrNotWalkable},
		{"ZeroCost", g, []problem.Option{
			problem.WithStart(c(0, 0)), problem.WithGoal(c(1, 0)),
			problem.WithCosts(problem.CostTable{grid.Road: 0}),
		}, problem.ErrInvalidCost},
		{"NilTree", g, []problem.Option{problem.WithStart(c(0, 0)), problem.WithGoal(c(1, 0)), problem.WithTree(nil)}, problem.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := problem.New(tc.g, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestExpand_OrderAndDirections(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	p, err := problem.New(g, problem.WithStart(c(1, 1)), problem.WithGoal(c(2, 2)))
	require.NoError(t, err)

	root := p.Initial()
	kids := p.Expand(root)
	require.Len(t, kids, 4)

	wantCoords := []grid.Coord{c(1, 0), c(1, 2), c(0, 1), c(2, 1)}
	wantDirs := []grid.Direction{grid.Up, grid.Down, grid.Left, grid.Right}
	for i, k := range kids {
		assert.Equal(t, wantCoords[i], k.Coord)
		assert.Equal(t, wantDirs[i], k.Action)
		assert.Equal(t, 1, k.Cost)
		assert.Equal(t, 1, k.Depth)
		assert.Same(t, root, k.Parent)
		// the move and its opposite are inverses
		assert.Equal(t, root.Coord, k.Coord.Step(k.Action.Opposite()))
	}
	assert.False(t, p.IsGoal(root))
	assert.True(t, p.IsGoal(&problem.Node{Coord: c(2, 2)}))
}

func TestExpand_SkipsWallsAndImpassable(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 1},
		{4, 2, 1},
		{1, 1, 1},
	})
	costs := problem.CostTable{grid.Road: 1, grid.Mountain: 3, grid.Water: problem.Impassable}
	p, err := problem.New(g, problem.WithStart(c(1, 1)), problem.WithGoal(c(2, 2)), problem.WithCosts(costs))
	require.NoError(t, err)

	kids := p.Expand(p.Initial())
	got := make([]grid.Coord, 0, len(kids))
	for _, k := range kids {
		got = append(got, k.Coord)
	}
	// up is a wall, left is water
	assert.Equal(t, []grid.Coord{c(1, 2), c(2, 1)}, got)

	// stepping onto the mountain costs 3
	back := p.Child(kids[0], grid.Up)
	require.NotNil(t, back)
	assert.Equal(t, c(1, 1), back.Coord)
	assert.Equal(t, 4, back.Cost)
	assert.Nil(t, p.Child(kids[0], grid.None))
}

func TestWithCosts_Copied(t *testing.T) {
	g := mustGrid(t, [][]int{{3, 3}})
	ct := problem.CostTable{grid.Land: 2}
	p, err := problem.New(g, problem.WithStart(c(0, 0)), problem.WithGoal(c(1, 0)), problem.WithCosts(ct))
	require.NoError(t, err)
	ct[grid.Land] = problem.Impassable

	cost, ok := p.StepCost(c(1, 0))
	assert.True(t, ok)
	assert.Equal(t, 2, cost)
}

func TestEnhanced_SlidesThroughCorridor(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1, 1, 1},
		{0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	})
	p, err := problem.New(g,
		problem.WithStart(c(0, 0)),
		problem.WithGoal(c(0, 2)),
		problem.WithEnhanced(true),
	)
	require.NoError(t, err)

	kids := p.Expand(p.Initial())
	require.Len(t, kids, 1)
	end := kids[0]
	assert.Equal(t, c(0, 2), end.Coord, "slide stops on the goal")
	assert.Equal(t, 10, end.Depth)

	path := end.Coords()
	require.Len(t, path, 11)
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, path[i].Manhattan(path[i-1]), "gap between %v and %v", path[i-1], path[i])
		assert.True(t, g.IsWalkable(path[i]))
	}
	assert.Len(t, p.Explored(), 9)
	assert.True(t, p.WasExplored(c(4, 1)))
	assert.False(t, p.WasExplored(c(0, 2)))
	assert.Empty(t, p.DecisionPoints())
}

func TestEnhanced_StopsAtDecisionPoint(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{0, 1, 0},
		{1, 1, 1},
	})
	p, err := problem.New(g, problem.WithStart(c(0, 0)), problem.WithGoal(c(2, 2)), problem.WithEnhanced(true))
	require.NoError(t, err)

	kids := p.Expand(p.Initial())
	require.Len(t, kids, 1)
	assert.Equal(t, c(1, 0), kids[0].Coord)
	assert.Equal(t, []grid.Coord{c(1, 0)}, p.DecisionPoints())

	p.Reset()
	assert.Empty(t, p.DecisionPoints())
	assert.Empty(t, p.Explored())
}

func TestEnhanced_DropsLoopBackToOrigin(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	p, err := problem.New(g, problem.WithStart(c(0, 0)), problem.WithGoal(c(1, 1)), problem.WithEnhanced(true))
	require.NoError(t, err)

	assert.Empty(t, p.Expand(p.Initial()))
}

func TestSuccessors_WeightedAndEstimated(t *testing.T) {
	g := mustGrid(t, [][]int{
		{3, 4, 3},
		{3, 3, 6},
		{0, 3, 3},
	})
	costs := problem.CostTable{grid.Land: 2, grid.Forest: 5, grid.Water: problem.Impassable}
	p, err := problem.New(g, problem.WithStart(c(1, 1)), problem.WithGoal(c(2, 2)), problem.WithCosts(costs))
	require.NoError(t, err)

	succ := p.Successors(p.Initial())
	require.Len(t, succ, 3) // up is water
	assert.Equal(t, c(1, 2), succ[0].Coord)
	assert.Equal(t, 2, succ[0].Cost)
	assert.Equal(t, 2, succ[0].Estimate) // 1 step × cheapest cost 2
	assert.Equal(t, c(0, 1), succ[1].Coord)
	assert.Equal(t, c(2, 1), succ[2].Coord)
	assert.Equal(t, 5, succ[2].Cost)
	assert.Equal(t, 7, succ[2].Priority())
	assert.True(t, succ[0].Less(succ[2]))
}

func TestTree_RecordsAndPrints(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1},
		{1, 0},
	})
	tree := problem.NewTree()
	p, err := problem.New(g, problem.WithStart(c(0, 0)), problem.WithGoal(c(1, 0)), problem.WithTree(tree))
	require.NoError(t, err)

	root := p.Initial()
	kids := p.Expand(root)
	require.Len(t, kids, 2)
	assert.Same(t, root, tree.Root())
	assert.Equal(t, kids, tree.Children(root))
	assert.Equal(t, 3, tree.Len())

	var buf bytes.Buffer
	require.NoError(t, tree.Print(&buf))
	assert.Equal(t, "(0,0)\n  DOWN (0,1)\n  RIGHT (1,0)\n", buf.String())
}
