package match

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// vectorize turns normalized text into a hashed bag-of-n-grams embedding of
// length dim: every window of n bytes is hashed, reduced modulo dim to a
// bucket, and counted. Collisions are an accepted space/time trade-off.
// The result is unit-normalized; text shorter than n yields the zero vector.
func vectorize(text string, n, dim int) []float64 {
	vec := make([]float64, dim)
	if len(text) < n {
		return vec
	}

	for i := 0; i+n <= len(text); i++ {
		bucket := xxhash.Sum64String(text[i:i+n]) % uint64(dim)
		vec[bucket] += 1.0
	}

	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if norm := math.Sqrt(sum); norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// charMask36 returns a 36-bit set of which letters and digits occur in text:
// bit 0-25 for A-Z, bit 26-35 for 0-9. Everything else contributes no bit.
func charMask36(text string) uint64 {
	var mask uint64
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'A' && c <= 'Z':
			mask |= 1 << (c - 'A')
		case c >= '0' && c <= '9':
			mask |= 1 << (26 + c - '0')
		}
	}
	return mask
}
