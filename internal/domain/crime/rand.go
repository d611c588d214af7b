package crime

import "math/rand/v2"

// Source is the randomness provider for crime resolution. It must be
// injectable so tests can force specific draws.
//
// IntN returns a uniform value in [0, n) and requires n > 0.
type Source interface {
	IntN(n int) int
}

// SystemSource draws from math/rand/v2's shared generator. Crime
// outcomes are not cryptographically sensitive.
type SystemSource struct{}

func (SystemSource) IntN(n int) int {
	return rand.IntN(n)
}
