// Package curve maps a drift-value series onto a 3D parametric spiral.
package curve

import (
	"errors"
	"fmt"
	"math"
)

// #region errors

// ErrLengthMismatch marks a steps count that disagrees with the number of
// drift values. The original formulation truncated silently; here it is a
// contract violation.
var ErrLengthMismatch = errors.New("steps does not match value count")

// LengthMismatchError reports both lengths.
type LengthMismatchError struct {
	Steps  int
	Values int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("steps %d does not match value count %d", e.Steps, e.Values)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// #endregion errors

// #region point-set

// PointSet holds three parallel coordinate series, one triple per drift
// value, plus the parameter samples that produced them.
type PointSet struct {
	T []float64 `json:"t"`
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
	Z []float64 `json:"z"`
}

// Len returns the number of points.
func (p PointSet) Len() int { return len(p.X) }

// #endregion point-set

// #region generate

// Generate samples the parameter t at `steps` evenly spaced points over
// [0, 2π] inclusive and maps each drift value v onto
//
//	x = v·cos(t), y = v·sin(t), z = v
//
// steps must equal len(values); the caller pairs them one-to-one.
func Generate(values []float64, steps int) (PointSet, error) {
	if steps != len(values) {
		return PointSet{}, &LengthMismatchError{Steps: steps, Values: len(values)}
	}

	ps := PointSet{
		T: make([]float64, steps),
		X: make([]float64, steps),
		Y: make([]float64, steps),
		Z: make([]float64, steps),
	}
	for k, v := range values {
		t := 0.0
		if steps > 1 {
			t = 2 * math.Pi * float64(k) / float64(steps-1)
		}
		ps.T[k] = t
		ps.X[k] = v * math.Cos(t)
		ps.Y[k] = v * math.Sin(t)
		ps.Z[k] = v
	}
	return ps, nil
}

// #endregion generate
