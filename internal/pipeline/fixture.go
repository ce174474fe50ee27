package pipeline

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/coglab/resonance/internal/simulate"
)

// DriftTolerance is the maximum per-step deviation a fixture replay accepts.
const DriftTolerance = 1e-9

// #region fixture-types

// Fixture is the top-level JSON structure for a recorded pipeline run.
type Fixture struct {
	Description   string        `json:"description"`
	States        [][]float64   `json:"states"`
	Shift         []float64     `json:"coherence_shift"`
	Intent        []float64     `json:"intent_vector"`
	Config        FixtureConfig `json:"config"`
	ExpectedDrift []float64     `json:"expected_drift"`
}

// FixtureConfig mirrors Config with JSON tags.
type FixtureConfig struct {
	Window   int     `json:"window"`
	Baseline float64 `json:"baseline"`
	Alpha    float64 `json:"alpha"`
	Beta     float64 `json:"beta"`
	Gamma    float64 `json:"gamma"`
}

// ToConfig converts a FixtureConfig to a pipeline Config.
func (fc *FixtureConfig) ToConfig() Config {
	return Config{
		Window:   fc.Window,
		Baseline: fc.Baseline,
		Weights: simulate.Config{
			Alpha: fc.Alpha,
			Beta:  fc.Beta,
			Gamma: fc.Gamma,
		},
	}
}

// FixtureOutcome reports a replay against the fixture's expectations.
type FixtureOutcome struct {
	Result   Result
	Passed   bool
	Failures []string
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// #endregion fixture-loader

// #region replay

// ReplayFixture runs the pipeline on the fixture inputs and compares the
// drift series against the recorded expectation step by step.
func ReplayFixture(f *Fixture) (FixtureOutcome, error) {
	result, err := Run(f.States, f.Shift, f.Intent, f.Config.ToConfig())
	if err != nil {
		return FixtureOutcome{}, fmt.Errorf("replay %q: %w", f.Description, err)
	}

	outcome := FixtureOutcome{Result: result, Passed: true}
	if len(result.Drift) != len(f.ExpectedDrift) {
		outcome.Passed = false
		outcome.Failures = append(outcome.Failures,
			fmt.Sprintf("drift length %d, expected %d", len(result.Drift), len(f.ExpectedDrift)))
		return outcome, nil
	}
	for t := range f.ExpectedDrift {
		if math.Abs(result.Drift[t]-f.ExpectedDrift[t]) > DriftTolerance {
			outcome.Passed = false
			outcome.Failures = append(outcome.Failures,
				fmt.Sprintf("step %d: drift %.12f, expected %.12f", t, result.Drift[t], f.ExpectedDrift[t]))
		}
	}
	return outcome, nil
}

// #endregion replay
