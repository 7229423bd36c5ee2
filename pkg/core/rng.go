package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Equal seeds produce identical sequences.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary[T ~uint8](r *rand.Rand, buf []T) {
	for i := range buf {
		buf[i] = T(r.IntN(2))
	}
}
