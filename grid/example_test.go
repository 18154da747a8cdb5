package grid_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/questpath/grid"
)

// ExampleLoad shows the text format: short rows are padded with walls and
// unknown terrain indices are read as walls.
func ExampleLoad() {
	src := `1 1 3
4 9
6 0 8`
	g, err := grid.Load(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for y := 0; y < g.Height(); y++ {
		names := make([]string, 0, g.Width())
		for x := 0; x < g.Width(); x++ {
			t, _ := g.TerrainAt(grid.Coord{X: x, Y: y})
			names = append(names, t.String())
		}
		fmt.Println(strings.Join(names, " "))
	}
	// Output:
	// ROAD ROAD LAND
	// WATER WALL WALL
	// FOREST WALL SNOW
}

// ExampleGrid_WalkableNeighbors lists open cells around the centre of a plus
// shaped room in the fixed up, down, left, right order.
func ExampleGrid_WalkableNeighbors() {
	g, _ := grid.New([][]int{
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
	})
	fmt.Println(g.WalkableNeighbors(grid.Coord{X: 1, Y: 1}))
	// Output:
	// [(1,0) (1,2) (0,1)]
}
