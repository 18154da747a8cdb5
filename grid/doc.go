// Package grid models a rectangular terrain map as a 4-connected state space
// for the search packages of github.com/katalvlaran/questpath.
//
// What:
//
//   - Grid wraps a rectangular table of Terrain kinds (WALL, ROAD, MOUNTAIN,
//     LAND, WATER, SAND, FOREST, SWAMP, SNOW).
//   - Answers walkability and adjacency queries in the fixed order
//     up, down, left, right.
//   - Loads the whitespace-separated integer text format (Load, LoadFile).
//     A blank line is a row of WALL.
//   - Generates seeded random maps (Random).
//   - Identifies connected walkable regions and exact step distances,
//     used for diagnostics and as an independent oracle in tests.
//
// Why:
//
//   - Every search strategy (bfs, dfs, astar) shares one state identity:
//     the Coord of a cell. Grid is the only place that knows the bounds.
//
// Normalization:
//
//   - Rows shorter than the longest row are padded with WALL.
//   - Values outside the Terrain range are stored as WALL.
//   - Out-of-bounds queries are never errors: they read as WALL, not walkable.
//
// Complexity:
//
//   - IsWalkable, TerrainAt, SetTerrain: O(1).
//   - ConnectedComponents, StepDistance: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrOutOfBounds: SetTerrain outside the grid.
//   - ErrInvalidTerrain: SetTerrain with an unknown kind.
//   - ErrParse: a token in a grid file is not an integer.
//   - ErrOpenRatio: Random with an open ratio outside [0, 1].
//   - ErrNoPath: StepDistance between disconnected cells.
package grid
