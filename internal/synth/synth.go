// Package synth generates reproducible synthetic pipeline inputs from an
// explicit seed. Nothing here touches package-global random state; the core
// transforms consume no randomness at all.
package synth

import "math/rand"

// #region source

// Source produces synthetic states, shift series, and intent vectors from
// one seeded generator.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a source from an explicit seed. Equal seeds produce
// identical output sequences.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// #endregion source

// #region generators

// States returns n state vectors of the given dimension with components in
// [0, 1). A component is nudged away from zero so no vector is degenerate.
func (s *Source) States(n, dim int) [][]float64 {
	states := make([][]float64, n)
	for i := range states {
		v := make([]float64, dim)
		for j := range v {
			v[j] = s.rng.Float64()
		}
		if dim > 0 && norm2(v) == 0 {
			v[0] = 1
		}
		states[i] = v
	}
	return states
}

// Shift returns a coherence-shift series of length n in [-0.5, 0.5).
func (s *Source) Shift(n int) []float64 {
	shift := make([]float64, n)
	for i := range shift {
		shift[i] = s.rng.Float64() - 0.5
	}
	return shift
}

// Intent returns an intent vector of the given dimension in [0, 1).
func (s *Source) Intent(dim int) []float64 {
	intent := make([]float64, dim)
	for i := range intent {
		intent[i] = s.rng.Float64()
	}
	return intent
}

// #endregion generators

func norm2(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return sum
}
