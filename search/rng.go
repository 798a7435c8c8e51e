package search

import "math/rand"

// defaultSeed replaces a zero seed so that the default run is reproducible.
const defaultSeed int64 = 1

// newRand returns a deterministic generator. Policy: seed==0 ⇒ defaultSeed;
// otherwise the seed is used verbatim.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
