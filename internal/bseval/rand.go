package bseval

import "github.com/synthcore/boundset/internal/ttable"

// rng is the deterministic linear-congruential generator used to break ties
// among equal-cost candidate splits (spec.md section 5). Same constants the
// teacher's CELT/SILK decoders use (see internal/celt/decoder.go,
// internal/celt/folding.go: "same LCG as libopus").
type rng struct {
	state uint32
}

// newRNG seeds a generator. A zero seed is remapped to a fixed non-zero
// value so the sequence never degenerates to a fixed point.
func newRNG(seed uint32) *rng {
	if seed == 0 {
		seed = 22222
	}
	return &rng{state: seed}
}

// NewRNG is the exported constructor callers outside this package use to
// seed a deterministic generator to pass into FindBVarsSVars/SampledSearch.
func NewRNG(seed uint32) *rng {
	return newRNG(seed)
}

// RandomTT draws a uniformly random truth table of nVars variables from
// rnd, masking off the bits beyond 2^nVars in the low word for small
// nVars so callers always see a clean table.
func RandomTT(rnd *rng, nVars int) []uint64 {
	tt := ttable.New(nVars)
	for i := range tt {
		tt[i] = uint64(rnd.next())<<32 | uint64(rnd.next())
	}
	total := 1 << uint(nVars)
	if total < 64 {
		tt[0] &= (uint64(1) << uint(total)) - 1
	}
	return tt
}

// next advances the generator and returns the new state.
func (r *rng) next() uint32 {
	r.state = r.state*1664525 + 1013904223
	return r.state
}

// intn returns a pseudo-random value in [0, n). n must be > 0.
func (r *rng) intn(n int) int {
	if n <= 0 {
		panic("bseval: rng.intn called with n <= 0")
	}
	return int(r.next() % uint32(n))
}
