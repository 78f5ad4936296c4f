package gen

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// sampleDistinct draws k distinct ids from [0, n) via a partial
// Fisher–Yates shuffle of the scratch permutation perm (len n).
// perm is left permuted; the first k entries are the sample.
//
// Complexity: O(k) time beyond the one-time O(n) perm setup.
func sampleDistinct(perm []int, k int, rng *rand.Rand) []int {
	n := len(perm)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm[:k]
}
