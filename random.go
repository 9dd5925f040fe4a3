package isometric

import "math/rand/v2"

// RandomSource picks uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// processRandom draws from the math/rand/v2 top-level generator, which is
// seeded once per process.
type processRandom struct{}

func (processRandom) IntN(n int) int { return rand.IntN(n) }
