package genetic

import "math/rand"

// FromGenes builds a chromosome with the given raw genes.
func FromGenes(agents, goals int, genes []int) Chromosome {
	c := newChromosome(agents, goals)
	copy(c.genes, genes)
	return c
}

// Genes exposes the raw genes.
func Genes(c Chromosome) []int { return c.genes }

// Mutate applies one mutation.
func Mutate(c *Chromosome, rng *rand.Rand) { c.mutate(rng) }

// Random draws one random chromosome.
func Random(agents, goals int, rng *rand.Rand) Chromosome { return randomChromosome(agents, goals, rng) }
