package random

import (
	"crypto/rand"
	"encoding/binary"
)

// Random is the source of randomness for game IDs, control tokens and random
// hints. Tests swap in a queue-driven mock.
type Random interface {
	// Intn returns a random int in [0, n), or 0 when n <= 0
	Intn(n int) int

	// String returns length characters drawn from alphabet
	String(length int, alphabet string) string
}

// Pick returns a random element of items, or false when items is empty
func Pick[T any](r Random, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	i := r.Intn(len(items))
	if i < 0 || i >= len(items) {
		i = 0
	}
	return items[i], true
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a uniform int in [0, n) using rejection sampling
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	bound := uint64(n)
	// Largest multiple of bound that fits, so the modulo is unbiased
	limit := ^uint64(0) - (^uint64(0) % bound)

	var buf [8]byte
	for {
		// crypto/rand.Read never returns an error on supported platforms
		_, _ = rand.Read(buf[:])
		v := binary.LittleEndian.Uint64(buf[:])
		if v < limit {
			return int(v % bound)
		}
	}
}

// String returns length characters drawn uniformly from alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
