// Package payload generates random alphanumeric strings used as write
// payloads during lock benchmarks. A Generator is not safe for
// concurrent use; each worker goroutine owns its own instance so no
// generator state crosses goroutine boundaries.
package payload

import (
	mrand "math/rand"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produces random strings from a fixed 62-character
// alphanumeric alphabet.
type Generator struct {
	rng *mrand.Rand
}

// NewGenerator creates a Generator with its own pseudo-random source.
// The seed is drawn from the auto-seeded global source rather than the
// wall clock, so generators created in the same instant still diverge.
func NewGenerator() *Generator {
	return &Generator{
		rng: mrand.New(mrand.NewSource(mrand.Int63())),
	}
}

// NewSeededGenerator creates a Generator with a fixed seed for
// reproducible output.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{
		rng: mrand.New(mrand.NewSource(seed)),
	}
}

// Generate returns a string of exactly length characters drawn
// uniformly from the alphabet. A length of zero yields an empty
// string.
func (g *Generator) Generate(length int) string {
	if length <= 0 {
		return ""
	}

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[g.rng.Intn(len(alphabet))]
	}

	return string(buf)
}
