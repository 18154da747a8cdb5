package genetic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/questpath/genetic"
)

const u = genetic.Unassigned

func TestChromosome_Consistent(t *testing.T) {
	cases := []struct {
		name  string
		genes []int
		want  bool
	}{
		{"AllAssigned", []int{0, 2, 0, u, 1, 1, u, u}, true},
		{"OneAgentIdle", []int{0, 0, 1, 2, 1, u, u, u}, true},
		{"Duplicate", []int{0, 0, 1, u, 1, 1, u, u}, false},
		{"Missing", []int{0, 0, u, u, 1, 1, u, u}, false},
		{"HiddenBehindGap", []int{0, 0, u, 2, 1, 1, u, u}, false},
		{"WrongHeader", []int{1, 0, 1, u, 1, 2, u, u}, false},
		{"GoalOutOfRange", []int{0, 0, 1, 7, 1, u, u, u}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := genetic.FromGenes(2, 3, tc.genes)
			assert.Equal(t, tc.want, c.Consistent(), c.String())
		})
	}
}

func TestChromosome_RouteAndString(t *testing.T) {
	c := genetic.FromGenes(3, 3, []int{0, 2, 0, u, 1, u, u, u, 2, 1, u, u})
	assert.Equal(t, 3, c.Agents())
	assert.Equal(t, []int{2, 0}, c.Route(0))
	assert.Empty(t, c.Route(1))
	assert.Equal(t, "[0: 2 0 | 1: - | 2: 1]", c.String())
}

func TestChromosome_RandomIsConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		c := genetic.Random(1+rng.Intn(4), 1+rng.Intn(6), rng)
		require.True(t, c.Consistent(), c.String())
	}
}

func TestChromosome_MutationKeepsConsistencyAndOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	c := genetic.FromGenes(3, 4, []int{0, 3, 1, u, u, 1, 0, u, u, u, 2, 2, u, u, u})
	moved := false
	for i := 0; i < 500; i++ {
		before := c.String()
		genetic.Mutate(&c, rng)
		require.True(t, c.Consistent(), "after %s → %s", before, c.String())
		if c.String() != before {
			moved = true
		}

		// renormalized: no goal follows an Unassigned slot
		genes := genetic.Genes(c)
		for a := 0; a < 3; a++ {
			block := genes[a*5+1 : (a+1)*5]
			gap := false
			for _, g := range block {
				if g == u {
					gap = true
				} else {
					require.False(t, gap, c.String())
				}
			}
		}
	}
	assert.True(t, moved)
}

func TestChromosome_SingleAgentMutationReorders(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	c := genetic.FromGenes(1, 3, []int{0, 0, 1, 2})
	genetic.Mutate(&c, rng)
	assert.True(t, c.Consistent())
	assert.NotEqual(t, []int{0, 1, 2}, c.Route(0), "two goals swapped")
	assert.ElementsMatch(t, []int{0, 1, 2}, c.Route(0))
}
