// Package random provides the random number sources threaded through secret
// selection and guessing strategies. Passing a Source explicitly keeps games
// reproducible under test and lets simulations give every game its own
// generator.
package random

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// Source provides random number generation that can be faked for testing.
type Source interface {
	// Intn returns a random int in [0, n). It returns 0 when n <= 0.
	Intn(n int) int
}

// Seeded is a deterministic PCG generator. It is not safe for concurrent use;
// give each goroutine its own.
type Seeded struct {
	r *mrand.Rand
}

// NewSeeded creates a generator whose sequence is fully determined by seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n).
func (s *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

// Crypto implements Source using crypto/rand.
type Crypto struct{}

// NewCrypto creates a Crypto source.
func NewCrypto() *Crypto {
	return &Crypto{}
}

// Intn returns a cryptographically random int in [0, n).
func (c *Crypto) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms
		return 0
	}
	return int(v.Int64())
}

// Seed returns a fresh seed from crypto/rand, used when no seed is configured.
func Seed() uint64 {
	v, err := rand.Int(rand.Reader, new(big.Int).SetUint64(^uint64(0)))
	if err != nil {
		return 1
	}
	return v.Uint64()
}
