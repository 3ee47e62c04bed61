package randutil

import "time"

// Linear congruential generator parameters from Numerical Recipes.
const (
	modulus    = 1 << 32
	multiplier = 1664525
	increment  = 1013904223

	goldenRatio64 = 0x9e3779b97f4a7c15
)

// LCG is a linear congruential generator producing a fully deterministic
// sequence from its seed. It is not safe for concurrent use; each simulation
// run owns its generator.
type LCG struct {
	state uint64
}

// NewLCG returns a generator seeded with seed mod 2^32.
func NewLCG(seed uint64) *LCG {
	return &LCG{state: seed % modulus}
}

// State returns the current generator state. Passing it to NewLCG resumes
// the sequence.
func (r *LCG) State() uint64 {
	return r.state
}

// Next advances the generator and returns the new state, in [0, 2^32).
func (r *LCG) Next() uint64 {
	r.state = (multiplier*r.state + increment) % modulus
	return r.state
}

// Float64 returns the next value scaled into [0, 1).
func (r *LCG) Float64() float64 {
	return float64(r.Next()) / modulus
}

// Shuffle permutes n elements through swap, with the same signature as
// math/rand's Shuffle. It makes 2n passes: pass k pairs the cursor k mod n
// with a target drawn as Next() mod n and swaps them when they differ. This is
// not Fisher-Yates; simulation output is defined relative to this exact
// sequence of swaps.
func (r *LCG) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("randutil: invalid argument to Shuffle")
	}
	for k := 0; k < 2*n; k++ {
		i := k % n
		target := int(r.Next() % uint64(n))
		if i != target {
			swap(i, target)
		}
	}
}

// SeedFromTime derives a 32-bit seed from a wall clock reading, for callers
// that were not given an explicit seed.
func SeedFromTime(t time.Time) uint64 {
	return mix(uint64(t.UnixNano())+goldenRatio64) % modulus
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
