package genetic

import "math/rand"

// defaultSeed replaces a zero seed so that the zero Options stay reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed == 0 uses defaultSeed.
// The stream is owned by one Optimize call and never shared.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shuffle performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffle(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a random permutation of 0..n-1.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffle(p, rng)

	return p
}

// between returns a uniform integer in [lo, hi].
func between(lo, hi int, rng *rand.Rand) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
