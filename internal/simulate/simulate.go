// Package simulate derives a drift-value series from similarity scores,
// a coherence-shift series, and an intent vector.
package simulate

import (
	"errors"
)

// #region errors

// ErrEmptyIntentVector marks an intent vector with no elements. Its mean
// would divide by zero, so simulation fails instead.
var ErrEmptyIntentVector = errors.New("empty intent vector")

// ErrEmptyShift marks an empty coherence-shift series when at least one
// step must be simulated; there is no last element to clamp to.
var ErrEmptyShift = errors.New("empty coherence shift series")

// #endregion errors

// #region config

// Config holds the weighting scalars of the drift formula.
type Config struct {
	Alpha float64 // weight on the similarity score
	Beta  float64 // weight on the coherence shift
	Gamma float64 // weight on the intent-vector mean
}

// DefaultConfig returns the standard weighting.
func DefaultConfig() Config {
	return Config{
		Alpha: 0.5,
		Beta:  0.3,
		Gamma: 0.2,
	}
}

// #endregion config

// #region simulate

// Simulate is a pure function computing one drift value per similarity
// score:
//
//	d_t = baseline + alpha·scores[t] + beta·shift_t + gamma·mean(intent)
//
// shift_t is shift[t] while t is in range, then clamps to the last element
// of shift. The baseline is constant for every step of a call; a per-step
// baseline is deliberately out of scope.
func Simulate(baseline float64, scores, shift, intent []float64, config Config) ([]float64, error) {
	if len(intent) == 0 {
		return nil, ErrEmptyIntentVector
	}
	if len(scores) > 0 && len(shift) == 0 {
		return nil, ErrEmptyShift
	}

	intentEffect := mean(intent)

	drift := make([]float64, len(scores))
	for t, s := range scores {
		psi := shift[len(shift)-1]
		if t < len(shift) {
			psi = shift[t]
		}
		drift[t] = baseline + config.Alpha*s + config.Beta*psi + config.Gamma*intentEffect
	}
	return drift, nil
}

// #endregion simulate

// #region helpers

// mean averages a non-empty vector.
func mean(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// #endregion helpers
