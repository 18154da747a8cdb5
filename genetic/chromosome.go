package genetic

import (
	"fmt"
	"math/rand"
	"strings"
)

// Unassigned pads a block after its last goal.
const Unassigned = -1

// Chromosome encodes which agent visits which goals, and in what order.
//
// Genes are laid out as one block per agent, each of width 1+goals:
//
//	[agent, goal, goal, Unassigned, ... | agent, goal, Unassigned, ... | ...]
//
// Within a block the assigned goals come first, in visiting order.
type Chromosome struct {
	genes   []int
	width   int
	goals   int
	cost    int
	fitness float64
	// feasible is false when cost includes at least one UnreachableCost.
	feasible bool
}

func newChromosome(agents, goals int) Chromosome {
	c := Chromosome{width: goals + 1, goals: goals, genes: make([]int, agents*(goals+1))}
	for i := range c.genes {
		c.genes[i] = Unassigned
	}
	for a := 0; a < agents; a++ {
		c.genes[a*c.width] = a
	}

	return c
}

// randomChromosome deals every goal, in random order, to a random agent.
func randomChromosome(agents, goals int, rng *rand.Rand) Chromosome {
	c := newChromosome(agents, goals)
	fill := make([]int, agents)
	for _, g := range permRange(goals, rng) {
		a := rng.Intn(agents)
		fill[a]++
		c.genes[a*c.width+fill[a]] = g
	}

	return c
}

// Agents returns the number of blocks.
func (c Chromosome) Agents() int {
	if c.width == 0 {
		return 0
	}
	return len(c.genes) / c.width
}

// Route returns the goal indices block a visits, in order. The scan stops at
// the first Unassigned slot.
func (c Chromosome) Route(a int) []int {
	block := c.genes[a*c.width+1 : (a+1)*c.width]
	out := make([]int, 0, len(block))
	for _, g := range block {
		if g == Unassigned {
			break
		}
		out = append(out, g)
	}

	return out
}

// Cost returns the evaluated cost.
func (c Chromosome) Cost() int { return c.cost }

// Fitness returns the cost share computed during the last evaluation.
func (c Chromosome) Fitness() float64 { return c.fitness }

// Consistent reports whether every block header names its own agent and
// every goal is assigned exactly once. A goal hidden behind an Unassigned
// gap does not count as assigned.
func (c Chromosome) Consistent() bool {
	if c.width == 0 || len(c.genes)%c.width != 0 {
		return false
	}
	seen := make([]bool, c.goals)
	count := 0
	for a := 0; a < c.Agents(); a++ {
		if c.genes[a*c.width] != a {
			return false
		}
		for _, g := range c.Route(a) {
			if g < 0 || g >= c.goals || seen[g] {
				return false
			}
			seen[g] = true
			count++
		}
	}

	return count == c.goals
}

// clone returns a deep copy.
func (c Chromosome) clone() Chromosome {
	out := c
	out.genes = append([]int(nil), c.genes...)
	return out
}

// mutate swaps one assigned goal with an empty slot of another block, moving
// the goal to that agent. With no such slot (a single agent) it swaps two
// assigned goals instead. The chromosome is renormalized afterwards.
func (c *Chromosome) mutate(rng *rand.Rand) {
	var assigned []int
	for i, g := range c.genes {
		if i%c.width != 0 && g != Unassigned {
			assigned = append(assigned, i)
		}
	}
	if len(assigned) == 0 {
		return
	}

	// 1) pick a goal
	p := assigned[rng.Intn(len(assigned))]
	block := p / c.width

	// 2) pick an empty slot outside its block
	var empty []int
	for i, g := range c.genes {
		if i%c.width != 0 && g == Unassigned && i/c.width != block {
			empty = append(empty, i)
		}
	}
	switch {
	case len(empty) > 0:
		q := empty[rng.Intn(len(empty))]
		c.genes[p], c.genes[q] = c.genes[q], c.genes[p]
	case len(assigned) > 1:
		q := assigned[rng.Intn(len(assigned)-1)]
		if q == p {
			q = assigned[len(assigned)-1]
		}
		c.genes[p], c.genes[q] = c.genes[q], c.genes[p]
	}

	c.renormalize()
}

// renormalize compacts the assigned goals of every block to its front,
// keeping their order.
func (c *Chromosome) renormalize() {
	for a := 0; a < c.Agents(); a++ {
		block := c.genes[a*c.width+1 : (a+1)*c.width]
		k := 0
		for _, g := range block {
			if g != Unassigned {
				block[k] = g
				k++
			}
		}
		for ; k < len(block); k++ {
			block[k] = Unassigned
		}
	}
}

// String renders blocks as "[0: 2 0 | 1: - | 2: 1]".
func (c Chromosome) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for a := 0; a < c.Agents(); a++ {
		if a > 0 {
			b.WriteString(" | ")
		}
		fmt.Fprintf(&b, "%d:", a)
		route := c.Route(a)
		if len(route) == 0 {
			b.WriteString(" -")
		}
		for _, g := range route {
			fmt.Fprintf(&b, " %d", g)
		}
	}
	b.WriteByte(']')

	return b.String()
}
