package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

const fixtureJSON = `{
	"description": "lag-2 identical states",
	"states": [[1, 0], [0, 1], [1, 0], [0, 1], [1, 0]],
	"coherence_shift": [0.2],
	"intent_vector": [0.1, 0.1],
	"config": {
		"window": 2,
		"baseline": 1.0,
		"alpha": 0.5,
		"beta": 0.3,
		"gamma": 0.2
	},
	"expected_drift": [1.58, 1.58, 1.58]
}`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReplayFixturePasses(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, fixtureJSON))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}

	outcome, err := ReplayFixture(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !outcome.Passed {
		t.Fatalf("expected pass, failures: %v", outcome.Failures)
	}
}

func TestReplayFixtureDetectsDeviation(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, fixtureJSON))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	f.ExpectedDrift[1] = 2.0

	outcome, err := ReplayFixture(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if outcome.Passed {
		t.Fatal("expected failure on deviated expectation")
	}
	if len(outcome.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %v", outcome.Failures)
	}
}

func TestReplayFixtureDetectsLengthDrift(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, fixtureJSON))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	f.ExpectedDrift = f.ExpectedDrift[:2]

	outcome, err := ReplayFixture(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if outcome.Passed {
		t.Fatal("expected failure on length mismatch")
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}
