package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and every pair is within eps. An eps of 0 demands bit-identical values.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireInRange fails t if any element lies outside [lo, hi] or is NaN.
func RequireInRange(t *testing.T, data []float64, lo, hi float64) {
	t.Helper()
	for i, v := range data {
		if !(v >= lo && v <= hi) {
			t.Fatalf("index %d: %v outside [%v, %v]", i, v, lo, hi)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxStep returns the largest absolute difference between consecutive
// frames of one channel of an interleaved signal.
func MaxStep(data []float64, channels, channel int) float64 {
	var step float64
	for i := channel + channels; i < len(data); i += channels {
		step = math.Max(step, math.Abs(data[i]-data[i-channels]))
	}
	return step
}

// RequireSmooth fails t if any channel of an interleaved signal jumps by
// more than maxStep between consecutive frames.
func RequireSmooth(t *testing.T, data []float64, channels int, maxStep float64) {
	t.Helper()
	for c := range channels {
		if step := MaxStep(data, channels, c); step > maxStep {
			t.Fatalf("channel %d: frame step %v exceeds %v", c, step, maxStep)
		}
	}
}
