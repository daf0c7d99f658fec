package codeword

import (
	"hash/maphash"
	"math/rand/v2"
)

// NewRand returns the random source a puzzle derived with seed draws from.
// The same seed always yields the same puzzle.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func RandomSeed() uint64 {
	return new(maphash.Hash).Sum64()
}
