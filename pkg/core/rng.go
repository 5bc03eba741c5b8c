package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform sample in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FillBits seeds the grid randomly: each cell comes up alive with
// probability density, dead otherwise.
func FillBits(r *RNG, g *BitGrid, density float64) {
	n := g.Len()
	for i := 0; i < n; i++ {
		g.Set(i, r.Float64() < density)
	}
}
