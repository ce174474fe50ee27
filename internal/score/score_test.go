package score

import (
	"errors"
	"math"
	"testing"
)

func TestScoreLength(t *testing.T) {
	states := [][]float64{
		{1, 0}, {0, 1}, {1, 1}, {0.5, 0.5}, {1, 0},
	}

	scores, err := Score(states, 2)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if len(scores) != len(states)-2 {
		t.Fatalf("expected %d scores, got %d", len(states)-2, len(scores))
	}
}

func TestScoreInsufficientHistory(t *testing.T) {
	states := [][]float64{{1, 0}, {0, 1}}

	scores, err := Score(states, 5)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if scores == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(scores) != 0 {
		t.Fatalf("expected empty result, got %d scores", len(scores))
	}
}

func TestScoreIdenticalVectors(t *testing.T) {
	// states[0] == states[2], so the single comparison scores 1.0
	states := [][]float64{{1, 0}, {0, 1}, {1, 0}}

	scores, err := Score(states, 2)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 score, got %d", len(scores))
	}
	if math.Abs(scores[0]-1.0) > 1e-12 {
		t.Fatalf("expected score 1.0, got %v", scores[0])
	}
}

func TestScoreOrthogonalVectors(t *testing.T) {
	states := [][]float64{{1, 0}, {0, 1}}

	scores, err := Score(states, 1)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if math.Abs(scores[0]) > 1e-12 {
		t.Fatalf("expected score 0, got %v", scores[0])
	}
}

func TestScoreOppositeVectors(t *testing.T) {
	states := [][]float64{{1, 2}, {-1, -2}}

	scores, err := Score(states, 1)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if math.Abs(scores[0]+1.0) > 1e-12 {
		t.Fatalf("expected score -1.0, got %v", scores[0])
	}
}

func TestScoreDegenerateVector(t *testing.T) {
	states := [][]float64{{1, 0}, {0, 0}}

	_, err := Score(states, 1)
	if err == nil {
		t.Fatal("expected degenerate vector error")
	}
	if !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("expected ErrDegenerateVector, got %v", err)
	}

	var dve *DegenerateVectorError
	if !errors.As(err, &dve) {
		t.Fatalf("expected *DegenerateVectorError, got %T", err)
	}
	if dve.Index != 1 {
		t.Fatalf("expected offending index 1, got %d", dve.Index)
	}
}

func TestScoreDimensionMismatch(t *testing.T) {
	states := [][]float64{{1, 0}, {1, 0, 0}}

	if _, err := Score(states, 1); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestScoreInvalidWindow(t *testing.T) {
	states := [][]float64{{1, 0}, {0, 1}}

	if _, err := Score(states, 0); err == nil {
		t.Fatal("expected error for non-positive window")
	}
}
