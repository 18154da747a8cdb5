package agent

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/questpath/grid"
	"github.com/katalvlaran/questpath/problem"
)

// ErrUnknownSpecies is returned for a species outside the catalog.
var ErrUnknownSpecies = errors.New("agent: unknown species")

// Species names an entry of the cost-table catalog.
type Species string

const (
	Human     Species = "HUMAN"
	Monkey    Species = "MONKEY"
	Octopus   Species = "OCTOPUS"
	Crocodile Species = "CROCODILE"
	Sasquatch Species = "SASQUATCH"
	Werewolf  Species = "WEREWOLF"
)

const inf = problem.Impassable

var catalog = map[Species]problem.CostTable{
	Human: {
		grid.Road: 1, grid.Mountain: inf, grid.Land: 1, grid.Water: 2,
		grid.Sand: 3, grid.Forest: 4, grid.Swamp: 5, grid.Snow: 5,
	},
	Monkey: {
		grid.Road: 2, grid.Mountain: inf, grid.Land: 1, grid.Water: 4,
		grid.Sand: 3, grid.Forest: 1, grid.Swamp: 5, grid.Snow: inf,
	},
	Octopus: {
		grid.Road: 2, grid.Mountain: inf, grid.Land: 2, grid.Water: 1,
		grid.Sand: inf, grid.Forest: 3, grid.Swamp: 2, grid.Snow: inf,
	},
	Crocodile: {
		grid.Road: 3, grid.Mountain: inf, grid.Land: 2, grid.Water: 1,
		grid.Sand: 4, grid.Forest: 3, grid.Swamp: 1, grid.Snow: inf,
	},
	Sasquatch: {
		grid.Road: 2, grid.Mountain: 3, grid.Land: 1, grid.Water: inf,
		grid.Sand: inf, grid.Forest: 1, grid.Swamp: 4, grid.Snow: 1,
	},
	Werewolf: {
		grid.Road: 1, grid.Mountain: 4, grid.Land: 1, grid.Water: 3,
		grid.Sand: 2, grid.Forest: 1, grid.Swamp: 3, grid.Snow: 2,
	},
}

// Catalog lists the known species in name order.
func Catalog() []Species {
	out := make([]Species, 0, len(catalog))
	for s := range catalog {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ParseSpecies resolves a case-insensitive species name.
func ParseSpecies(s string) (Species, error) {
	sp := Species(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := catalog[sp]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSpecies, s)
	}

	return sp, nil
}

// Costs returns a copy of the species cost table.
func (s Species) Costs() (problem.CostTable, error) {
	ct, ok := catalog[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, string(s))
	}

	return ct.Clone(), nil
}

// Valid reports whether s is in the catalog.
func (s Species) Valid() bool {
	_, ok := catalog[s]
	return ok
}
