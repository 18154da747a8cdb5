package problem

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/questpath/grid"
)

// Impassable marks a terrain this mover can never enter.
const Impassable = -1

// CostTable maps a terrain kind to the cost of stepping onto it.
// A nil table means unit cost everywhere except WALL.
type CostTable map[grid.Terrain]int

// UnitCosts returns a table with cost 1 for every walkable terrain.
func UnitCosts() CostTable {
	ct := make(CostTable, len(grid.Terrains())-1)
	for _, t := range grid.Terrains() {
		if t != grid.Wall {
			ct[t] = 1
		}
	}

	return ct
}

// Validate checks that every entry is Impassable or ≥ 1 and every key is a
// known terrain. A nil table is valid.
func (ct CostTable) Validate() error {
	for t, c := range ct {
		if !t.Valid() {
			return fmt.Errorf("%w: unknown terrain %d", ErrInvalidCost, int(t))
		}
		if c != Impassable && c < 1 {
			return fmt.Errorf("%w: %s=%d (must be ≥1 or Impassable)", ErrInvalidCost, t, c)
		}
	}

	return nil
}

// Cost returns the step cost of t and whether t is passable at all.
func (ct CostTable) Cost(t grid.Terrain) (int, bool) {
	if t == grid.Wall || !t.Valid() {
		return 0, false
	}
	if ct == nil {
		return 1, true
	}
	c, ok := ct[t]
	if !ok || c == Impassable {
		return 0, false
	}

	return c, true
}

// MinCost returns the cheapest finite entry, or 1 for a nil table.
// It returns 0 when every terrain is impassable.
func (ct CostTable) MinCost() int {
	if ct == nil {
		return 1
	}
	best := 0
	for _, c := range ct {
		if c != Impassable && (best == 0 || c < best) {
			best = c
		}
	}

	return best
}

// Clone returns an independent copy; nil stays nil.
func (ct CostTable) Clone() CostTable {
	if ct == nil {
		return nil
	}
	out := make(CostTable, len(ct))
	for t, c := range ct {
		out[t] = c
	}

	return out
}

// String renders the table as "LAND:1 WATER:inf ..." in terrain order.
func (ct CostTable) String() string {
	if ct == nil {
		return "unit"
	}
	keys := make([]grid.Terrain, 0, len(ct))
	for t := range ct {
		keys = append(keys, t)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	parts := make([]string, 0, len(keys))
	for _, t := range keys {
		if ct[t] == Impassable {
			parts = append(parts, t.String()+":inf")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%d", t, ct[t]))
	}

	return strings.Join(parts, " ")
}
