// Package pipeline chains the score, simulate, and curve stages into one
// run and validates stage outputs before they flow downstream.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/coglab/resonance/internal/curve"
	"github.com/coglab/resonance/internal/score"
	"github.com/coglab/resonance/internal/simulate"
)

// #region errors

// ErrNonFiniteOutput marks a NaN or Inf drift value. Malformed numeric
// input must surface here instead of corrupting the curve.
var ErrNonFiniteOutput = errors.New("non-finite drift value")

// #endregion errors

// #region config

// Config bundles the knobs of all three stages.
type Config struct {
	Window   int
	Baseline float64
	Weights  simulate.Config
}

// DefaultConfig returns the standard pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Window:   score.DefaultWindow,
		Baseline: 1.0,
		Weights:  simulate.DefaultConfig(),
	}
}

// #endregion config

// #region result

// StageMetric captures per-stage telemetry from a run.
type StageMetric struct {
	Name      string  `json:"name"`
	OutputLen int     `json:"output_len"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	ElapsedUs int64   `json:"elapsed_us"`
}

// Result bundles everything produced by one pipeline run.
type Result struct {
	RunID  string         `json:"run_id"`
	Scores []float64      `json:"scores"`
	Drift  []float64      `json:"drift"`
	Curve  curve.PointSet `json:"curve"`
	Stages []StageMetric  `json:"stages"`
}

// #endregion result

// #region run

// Run executes score → simulate → curve over the supplied inputs. All three
// stages are pure; two runs with identical arguments produce identical
// numeric output (the RunID differs).
func Run(states [][]float64, shift, intent []float64, config Config) (Result, error) {
	result := Result{RunID: uuid.New().String()}

	start := time.Now()
	scores, err := score.Score(states, config.Window)
	if err != nil {
		return Result{}, fmt.Errorf("score stage: %w", err)
	}
	result.Scores = scores
	result.Stages = append(result.Stages, metric("score", scores, start))

	start = time.Now()
	drift, err := simulate.Simulate(config.Baseline, scores, shift, intent, config.Weights)
	if err != nil {
		return Result{}, fmt.Errorf("simulate stage: %w", err)
	}
	for t, d := range drift {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return Result{}, fmt.Errorf("simulate stage: step %d: %w", t, ErrNonFiniteOutput)
		}
	}
	result.Drift = drift
	result.Stages = append(result.Stages, metric("simulate", drift, start))

	start = time.Now()
	points, err := curve.Generate(drift, len(drift))
	if err != nil {
		return Result{}, fmt.Errorf("curve stage: %w", err)
	}
	result.Curve = points
	result.Stages = append(result.Stages, metric("curve", points.Z, start))

	return result, nil
}

// #endregion run

// #region helpers

// metric summarizes one stage output.
func metric(name string, values []float64, start time.Time) StageMetric {
	m := StageMetric{
		Name:      name,
		OutputLen: len(values),
		ElapsedUs: time.Since(start).Microseconds(),
	}
	for i, v := range values {
		if i == 0 || v < m.Min {
			m.Min = v
		}
		if i == 0 || v > m.Max {
			m.Max = v
		}
	}
	return m
}

// #endregion helpers
