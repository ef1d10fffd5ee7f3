// Package rng provides the deterministic random source behind every avatar.
//
// A Rand is a 32-bit linear congruential generator (Numerical Recipes
// constants) seeded from an identifier hash. The same seed yields the same
// sequence on every platform: the state is advanced with wrapping uint32
// arithmetic and every derived draw is computed from Float64.
//
// Rand is not safe for concurrent use. Each generation call owns its own Rand.
package rng

import "math"

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	twoPow32      = 1 << 32
)

// Rand is a seeded pseudo-random number source.
type Rand struct {
	seed  uint32
	state uint32
}

// New creates a Rand seeded from the hash of id.
func New(id string) *Rand {
	return NewSeed(Hash(id))
}

// NewSeed creates a Rand with an explicit seed.
func NewSeed(seed uint32) *Rand {
	return &Rand{seed: seed, state: seed}
}

// Seed returns the seed the generator was created with.
func (r *Rand) Seed() uint32 {
	return r.seed
}

// Reset rewinds the generator to its seed.
func (r *Rand) Reset() {
	r.state = r.seed
}

// Float64 advances the generator and returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return float64(r.state) / twoPow32
}

// Int returns an integer in [min, max).
func (r *Rand) Int(min, max int) int {
	return int(math.Floor(r.Float64()*float64(max-min))) + min
}

// Range returns a float in [min, max).
func (r *Rand) Range(min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// Choice returns a random index in [0, n).
func (r *Rand) Choice(n int) int {
	return r.Int(0, n)
}

// Bool returns true with probability p.
func (r *Rand) Bool(p float64) bool {
	return r.Float64() < p
}

// Pick returns a random element of items. items must not be empty.
func Pick[T any](r *Rand, items []T) T {
	return items[r.Choice(len(items))]
}

// ColorRange bounds the HSL components drawn by Color.
// A zero range (both ends equal to zero) selects the default for that component.
type ColorRange struct {
	Hue        [2]int // degrees, default [0, 360)
	Saturation [2]int // percent, default [50, 100)
	Lightness  [2]int // percent, default [40, 70)
}

// Color draws an HSL triple with integer components.
func (r *Rand) Color(cr ColorRange) (h, s, l int) {
	h = r.Int(orDefault(cr.Hue, [2]int{0, 360}))
	s = r.Int(orDefault(cr.Saturation, [2]int{50, 100}))
	l = r.Int(orDefault(cr.Lightness, [2]int{40, 70}))
	return h, s, l
}

// RGB draws three channel intensities in [0, 256).
func (r *Rand) RGB() (red, green, blue int) {
	red = r.Int(0, 256)
	green = r.Int(0, 256)
	blue = r.Int(0, 256)
	return red, green, blue
}

func orDefault(v, def [2]int) (int, int) {
	if v == [2]int{} {
		return def[0], def[1]
	}
	return v[0], v[1]
}
