// Package random provides the random number sources used for mine placement
// and the exclusion-aware selector built on top of them.
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	mrand "math/rand"
)

// ErrExhausted is returned when every value of a range is excluded.
var ErrExhausted = errors.New("random: no selectable value left in range")

// Source provides random integers and can be mocked for testing.
type Source interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Seeded is a deterministic Source backed by math/rand.
// The same seed always produces the same sequence.
type Seeded struct {
	rng *mrand.Rand
}

// NewSeeded creates a deterministic source for the given seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: mrand.New(mrand.NewSource(seed))}
}

// Intn returns a pseudo-random int in [0, n), or 0 when n <= 0.
func (s *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Crypto implements Source using crypto/rand.
type Crypto struct {
	reader io.Reader
}

// NewCrypto creates a new Crypto source.
func NewCrypto() *Crypto {
	return &Crypto{reader: rand.Reader}
}

// NewCryptoFrom creates a Crypto source drawing entropy from r.
func NewCryptoFrom(r io.Reader) *Crypto {
	return &Crypto{reader: r}
}

// Intn returns a cryptographically random int in [0, n).
// It panics if the entropy source fails, since a fallback value would bias
// every placement that follows.
func (c *Crypto) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(c.reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Errorf("random: entropy source failed: %w", err))
	}
	return int(result.Int64())
}

// PickExcluding returns a value v with min <= v <= max and v not in exclude,
// uniformly distributed over the values that remain selectable.
//
// Exactly one draw is taken from src: the k-th selectable value is returned,
// so the cost is linear in the range size and never depends on luck.
func PickExcluding(src Source, min, max int, exclude map[int]struct{}) (int, error) {
	if min > max {
		return 0, ErrExhausted
	}

	excluded := 0
	for v := range exclude {
		if v >= min && v <= max {
			excluded++
		}
	}

	valid := max - min + 1 - excluded
	if valid <= 0 {
		return 0, ErrExhausted
	}

	k := src.Intn(valid)
	for v := min; v <= max; v++ {
		if _, skip := exclude[v]; skip {
			continue
		}
		if k == 0 {
			return v, nil
		}
		k--
	}

	// Unreachable while src honors the Intn contract.
	return 0, ErrExhausted
}
