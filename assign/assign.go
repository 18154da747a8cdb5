package assign

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/questpath/costmatrix"
)

// MaxExhaustive is the largest goal count Solve will enumerate (8! = 40320).
const MaxExhaustive = 8

// Sentinel errors returned by Solve.
var (
	ErrNilCosts     = errors.New("assign: nil cost set")
	ErrSizeMismatch = errors.New("assign: agent and goal counts differ")
	ErrTooLarge     = errors.New("assign: too many goals for exhaustive search")
	ErrInfeasible   = errors.New("assign: no permutation is reachable by every agent")
)

// Assignment maps each agent to exactly one goal.
type Assignment struct {
	// Goals[i] is the index (into Set.Goals) of the goal given to agent i.
	Goals []int
	// Costs[i] is agent i's start → goal → exit cost.
	Costs []int
	// Total is the sum of Costs.
	Total int
	// Evaluated counts the permutations enumerated, feasible or not.
	Evaluated int
}

// GoalNames returns the assigned goal names in agent order.
func (a Assignment) GoalNames(set *costmatrix.Set) []string {
	goals := set.Goals()
	out := make([]string, len(a.Goals))
	for i, g := range a.Goals {
		out[i] = goals[g].Name
	}

	return out
}

// Solve returns the minimal-cost bijection of goals to agents.
func Solve(set *costmatrix.Set) (Assignment, error) {
	if set == nil {
		return Assignment{}, ErrNilCosts
	}
	agents, goals := set.Agents(), set.Goals()
	n := len(goals)
	if len(agents) != n {
		return Assignment{}, fmt.Errorf("%w: %d agents, %d goals", ErrSizeMismatch, len(agents), n)
	}
	if n > MaxExhaustive {
		return Assignment{}, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxExhaustive)
	}

	// 1) Collapse each (agent, goal) pair to its start → goal → exit cost.
	table := Table(set)

	// 2) Walk permutations in lexicographic order, keep the first strict minimum.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var (
		best      []int
		bestTotal int
		evaluated int
	)
	for {
		evaluated++
		if total, ok := sum(table, perm); ok && (best == nil || total < bestTotal) {
			best = append(best[:0], perm...)
			bestTotal = total
		}
		if !nextPermutation(perm) {
			break
		}
	}
	if best == nil {
		return Assignment{Evaluated: evaluated}, ErrInfeasible
	}

	// 3) Decode
	out := Assignment{Goals: best, Costs: make([]int, n), Total: bestTotal, Evaluated: evaluated}
	for i, g := range best {
		out.Costs[i] = table[i][g]
	}

	return out, nil
}

// Table returns cost[i][g] = START → goal g → exit for agent i, or -1 when
// either leg is unreachable.
func Table(set *costmatrix.Set) [][]int {
	agents, goals, exit := set.Agents(), set.Goals(), set.Exit()
	table := make([][]int, len(agents))
	for i, a := range agents {
		table[i] = make([]int, len(goals))
		for g, gl := range goals {
			in, ok1 := set.Leg(a.Name, costmatrix.Start, gl.Name)
			out, ok2 := set.Leg(a.Name, gl.Name, exit.Name)
			if !ok1 || !ok2 {
				table[i][g] = -1
				continue
			}
			table[i][g] = in + out
		}
	}

	return table
}

func sum(table [][]int, perm []int) (int, bool) {
	total := 0
	for i, g := range perm {
		c := table[i][g]
		if c < 0 {
			return 0, false
		}
		total += c
	}

	return total, true
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
