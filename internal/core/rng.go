package core

import "math/rand/v2"

// NewRNG returns a deterministic generator for the provided seed. Each board
// construction should draw from its own generator rather than a shared one.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
