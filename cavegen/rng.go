// Package cavegen - deterministic RNG construction.
//
// The determinism contract requires the random stream to be a pure function
// of the seed: no time-based sources, no global generator. Every generation
// run builds its own *rand.Rand here.
package cavegen

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand for the given seed.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}
