// Package rand provides generators for the trust simulation: reproducible
// ones seeded explicitly and crypto-backed seeds for them.
package rand

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Seed returns a non-negative seed for New taken from crypto/rand.
func Seed() int64 {
	var buf [8]byte

	_, _ = crand.Read(buf[:]) // never fails on supported platforms

	return int64(binary.LittleEndian.Uint64(buf[:]) &^ (1 << 63))
}

// New returns generator which yields reproducible sequence for the seed.
// Shuffles of the simulation with the same seed are the same.
func New(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}
