// Package score computes lagged similarity over sequences of state vectors.
package score

import (
	"errors"
	"fmt"
	"math"
)

// DefaultWindow is the standard lag between compared states.
const DefaultWindow = 10

// #region errors

// ErrDegenerateVector marks a zero-magnitude vector in a similarity pair.
// Cosine distance is undefined for such input, so scoring fails rather than
// letting NaN flow downstream.
var ErrDegenerateVector = errors.New("degenerate vector: zero magnitude")

// DegenerateVectorError reports which state made the comparison undefined.
type DegenerateVectorError struct {
	Index int // position in the state sequence
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("degenerate vector: zero magnitude at state %d", e.Index)
}

func (e *DegenerateVectorError) Unwrap() error { return ErrDegenerateVector }

// #endregion errors

// #region score

// Score compares each state to the one `window` steps ahead and returns one
// similarity value per comparison, preserving time order. The value is
// 1 − cosine_distance(a, b), i.e. plain cosine similarity, in [-1, 1] for
// well-formed input.
//
// A sequence shorter than window+1 has no comparable pairs; the result is an
// empty slice, not an error.
func Score(states [][]float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, fmt.Errorf("window must be positive, got %d", window)
	}
	if len(states) <= window {
		return []float64{}, nil
	}

	scores := make([]float64, 0, len(states)-window)
	for i := 0; i+window < len(states); i++ {
		s, err := cosine(states[i], states[i+window], i, i+window)
		if err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, nil
}

// #endregion score

// #region cosine

// cosine computes dot(a,b) / (‖a‖·‖b‖) with float64 accumulation.
// ia and ib identify the compared states for error reporting.
func cosine(a, b []float64, ia, ib int) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("states %d and %d have mismatched dimensions: %d vs %d", ia, ib, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 {
		return 0, &DegenerateVectorError{Index: ia}
	}
	if normB == 0 {
		return 0, &DegenerateVectorError{Index: ib}
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// #endregion cosine
