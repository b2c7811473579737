// SPDX-License-Identifier: EPL-2.0

package signalgen

const (
	lcgA       = 16807 // 7^5
	lcgB       = 0
	lcgM       = 1<<31 - 1
	seedScale  = 64979
	seedOffset = 83
)

// DefaultSeed is the seed used when none is configured.
const DefaultSeed = 1337

// LCG is a Park-Miller style linear congruential generator. It is not safe
// for concurrent use.
type LCG struct {
	state int64
}

// NewLCG seeds a generator. The seed is scrambled as (64979*seed + 83) mod
// (2^31 - 1), so the same seed always yields the same noise.
func NewLCG(seed int64) *LCG {
	s := (seedScale*(seed%lcgM) + seedOffset) % lcgM
	if s < 0 {
		s += lcgM
	}
	return &LCG{state: s}
}

// Next advances the generator and returns the new state in [0, 2^31-2].
func (l *LCG) Next() int64 {
	l.state = (lcgA*l.state + lcgB) % lcgM
	return l.state
}

// Modulus returns the generator modulus, 2^31 - 1.
func (*LCG) Modulus() int64 { return lcgM }

// DrawUniform returns n values uniformly distributed over [0, 1].
func (l *LCG) DrawUniform(n int) []float64 {
	out := make([]float64, max(n, 0))
	for i := range out {
		out[i] = float64(l.Next()) / lcgM
	}
	return out
}
