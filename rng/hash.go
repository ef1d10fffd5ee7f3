package rng

import "unicode/utf16"

const (
	hashOffset = 2166136261
	hashPrime  = 16777619
)

// Hash maps an identifier to a 32-bit seed.
//
// The identifier is consumed as UTF-16 code units, each folded in with an
// FNV-1a step, and the accumulator is then finalized with a shift/add/xor
// avalanche. Every avatar ever produced depends on these exact bits.
func Hash(s string) uint32 {
	h := uint32(hashOffset)
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h ^ uint32(c)) * hashPrime
	}
	h += h << 13
	h ^= h >> 7
	h += h << 3
	h ^= h >> 17
	h += h << 5
	return h
}
