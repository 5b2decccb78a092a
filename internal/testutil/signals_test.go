package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSineStartsAtZero(t *testing.T) {
	s := DeterministicSine(1000, 48000, 0.5, 64)
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if math.Abs(v) > 0.5 {
			t.Fatalf("s[%d] = %v exceeds amplitude", i, v)
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(7, 1, 32)
	b := DeterministicNoise(7, 1, 32)
	RequireSliceNearlyEqual(t, a, b, 0)
}

func TestInterleave(t *testing.T) {
	got := Interleave([]float64{1, 2, 3}, []float64{-1, -2})
	want := []float64{1, -1, 2, -2}
	RequireSliceNearlyEqual(t, got, want, 0)

	if Interleave() != nil {
		t.Fatal("Interleave() without channels should be nil")
	}
}

func TestSteps(t *testing.T) {
	got := Steps(2, 0.5, 1)
	RequireSliceNearlyEqual(t, got, []float64{0.5, 0.5, 1, 1}, 0)
}
