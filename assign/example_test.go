package assign_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/questpath/agent"
	"github.com/katalvlaran/questpath/assign"
	"github.com/katalvlaran/questpath/costmatrix"
	"github.com/katalvlaran/questpath/grid"
)

func ExampleSolve() {
	g, _ := grid.Load(strings.NewReader("1 1 1 1 1\n1 0 0 0 1\n1 1 1 1 1\n"))
	ann, _ := agent.New("ann", grid.Coord{X: 0, Y: 0})
	bob, _ := agent.New("bob", grid.Coord{X: 4, Y: 2})
	goals := []costmatrix.Point{
		{Name: "EAST", At: grid.Coord{X: 4, Y: 0}},
		{Name: "WEST", At: grid.Coord{X: 0, Y: 2}},
	}
	exit := costmatrix.Point{Name: "EXIT", At: grid.Coord{X: 2, Y: 0}}

	set, _ := costmatrix.Build(context.Background(), g, []agent.Agent{ann, bob}, goals, exit)
	a, _ := assign.Solve(set)
	fmt.Println(a.GoalNames(set), a.Total)
	// Output:
	// [WEST EAST] 10
}
