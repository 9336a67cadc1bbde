package sim

import "math/rand"

// Rand is the random source the simulation draws from.
// *rand.Rand satisfies it; tests inject fixed sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// symmetric returns a uniform value in [-half, half).
func symmetric(r Rand, half float64) float64 {
	return (r.Float64() - 0.5) * 2 * half
}
