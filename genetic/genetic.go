package genetic

import (
	"sort"

	"github.com/katalvlaran/questpath/costmatrix"
)

// legTable caches one Set as dense integers: leg[a][from][to] with from in
// goals ∪ {START = n} and to in goals ∪ {exit = n}; -1 marks an unreachable leg.
type legTable struct {
	leg    [][][]int
	agents int
	goals  int
}

func newLegTable(set *costmatrix.Set) *legTable {
	agents, goals, exit := set.Agents(), set.Goals(), set.Exit()
	n := len(goals)
	name := func(i int, end string) string {
		if i == n {
			return end
		}
		return goals[i].Name
	}

	t := &legTable{leg: make([][][]int, len(agents)), agents: len(agents), goals: n}
	for a, ag := range agents {
		t.leg[a] = make([][]int, n+1)
		for from := 0; from <= n; from++ {
			t.leg[a][from] = make([]int, n+1)
			for to := 0; to <= n; to++ {
				cost, ok := set.Leg(ag.Name, name(from, costmatrix.Start), name(to, exit.Name))
				if !ok {
					cost = -1
				}
				t.leg[a][from][to] = cost
			}
		}
	}

	return t
}

// route returns the cost of agent a visiting goals in order then leaving
// through the exit, and whether every leg was reachable. No goals costs 0.
func (t *legTable) route(a int, goals []int) (int, bool) {
	if len(goals) == 0 {
		return 0, true
	}
	total, ok := 0, true
	add := func(c int) {
		if c < 0 {
			total += UnreachableCost
			ok = false
			return
		}
		total += c
	}

	prev := t.goals // START
	for _, g := range goals {
		add(t.leg[a][prev][g])
		prev = g
	}
	add(t.leg[a][prev][t.goals]) // exit

	return total, ok
}

func (t *legTable) evaluate(c *Chromosome) {
	c.cost, c.feasible = 0, true
	for a := 0; a < c.Agents(); a++ {
		cost, ok := t.route(c.genes[a*c.width], c.Route(a))
		c.cost += cost
		c.feasible = c.feasible && ok
	}
}

// Optimize evolves goal-to-agent assignments over set and returns the
// cheapest one found. Every goal is visited by exactly one agent; agents may
// be left without goals.
//
// Each generation:
//  1. populate: refill to PopulationSize with random consistent chromosomes;
//  2. evaluate: drop inconsistent chromosomes and record fitness;
//  3. reproduce: clone every individual and mutate the clone 1..MaxMutations times;
//  4. select: merge, stable-sort by cost, keep Survivors.
//
// On cancellation the best individual so far is returned with ctx.Err().
func Optimize(set *costmatrix.Set, opts ...Option) (Result, error) {
	if set == nil {
		return Result{}, ErrNilCosts
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	table := newLegTable(set)
	rng := rngFromSeed(o.Seed)
	var population []Chromosome

	for gen := 1; gen <= o.Generations; gen++ {
		select {
		case <-o.Ctx.Done():
			return decode(set, table, population, gen-1), o.Ctx.Err()
		default:
		}

		// 1) Populate
		for len(population) < o.PopulationSize {
			c := randomChromosome(table.agents, table.goals, rng)
			table.evaluate(&c)
			population = append(population, c)
		}

		// 2) Evaluate: discard inconsistent, share out fitness
		kept := population[:0]
		total := 0
		for _, c := range population {
			if c.Consistent() {
				kept = append(kept, c)
				total += c.cost
			}
		}
		discarded := len(population) - len(kept)
		population = kept
		assignFitness(population, total)

		// 3) Reproduce by mutation only
		offspring := make([]Chromosome, 0, len(population))
		for _, c := range population {
			child := c.clone()
			for m := between(1, o.MaxMutations, rng); m > 0; m-- {
				child.mutate(rng)
			}
			table.evaluate(&child)
			offspring = append(offspring, child)
		}

		// 4) Select by cost rank
		population = append(population, offspring...)
		sort.SliceStable(population, func(i, j int) bool { return population[i].cost < population[j].cost })
		if len(population) > o.Survivors {
			population = population[:o.Survivors]
		}

		if o.OnGeneration != nil {
			o.OnGeneration(stats(gen, discarded, population))
		}
	}

	return decode(set, table, population, o.Generations), nil
}

func assignFitness(population []Chromosome, total int) {
	for i := range population {
		population[i].fitness = 0
		if total > 0 {
			population[i].fitness = float64(population[i].cost) / float64(total)
		}
	}
}

func stats(gen, discarded int, survivors []Chromosome) Stats {
	s := Stats{Generation: gen, Discarded: discarded, Survivors: append([]Chromosome(nil), survivors...)}
	if len(survivors) == 0 {
		return s
	}
	s.Best = survivors[0].cost
	sum := 0
	for _, c := range survivors {
		sum += c.cost
	}
	s.Mean = float64(sum) / float64(len(survivors))

	return s
}

// decode turns the head of a cost-sorted population into a Result.
func decode(set *costmatrix.Set, table *legTable, population []Chromosome, generations int) Result {
	if len(population) == 0 {
		return Result{Generations: generations}
	}
	total := 0
	for _, c := range population {
		total += c.cost
	}
	assignFitness(population, total)

	best := population[0]
	agents, goals := set.Agents(), set.Goals()
	res := Result{
		Cost:        best.cost,
		Fitness:     best.fitness,
		Feasible:    best.feasible,
		Generations: generations,
		Best:        best.clone(),
		Routes:      make([]Route, len(agents)),
	}
	for a, ag := range agents {
		idx := best.Route(a)
		names := make([]string, len(idx))
		for i, g := range idx {
			names[i] = goals[g].Name
		}
		cost, _ := table.route(a, idx)
		res.Routes[a] = Route{Agent: ag.Name, Goals: names, Cost: cost}
	}

	return res
}
