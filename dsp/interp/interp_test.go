package interp

import (
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	for _, tc := range []struct {
		a, b, t float64
		w       float64
	}{
		{a: 0, b: 1, t: 0, w: 0},
		{a: 0, b: 1, t: 0.25, w: 0.25},
		{a: 2, b: 4, t: 0.25, w: 2.5},
		{a: 1, b: 0, t: 0.5, w: 0.5},
		{a: 3, b: 3, t: 0.7, w: 3},
	} {
		got := Linear(tc.a, tc.b, tc.t)
		if diff := got - tc.w; diff < -1e-12 || diff > 1e-12 {
			t.Fatalf("Linear(%v,%v,%v): got %v want %v", tc.a, tc.b, tc.t, got, tc.w)
		}
	}
}

func TestPowerWarpZeroCurvatureIsIdentity(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
		if got := PowerWarp(x, 0); got != x {
			t.Fatalf("PowerWarp(%v, 0) = %v, want %v", x, got, x)
		}
	}
}

func TestPowerWarpShape(t *testing.T) {
	const x = 0.5
	concave := PowerWarp(x, 0.5)
	convex := PowerWarp(x, -0.5)
	if !(concave > x) {
		t.Fatalf("positive curvature should rise early: got %v", concave)
	}
	if !(convex < x) {
		t.Fatalf("negative curvature should rise late: got %v", convex)
	}
	if got, want := PowerWarp(x, 1), math.Pow(x, 0.25); math.Abs(got-want) > 1e-12 {
		t.Fatalf("PowerWarp(0.5, 1) = %v, want %v", got, want)
	}
	if got, want := PowerWarp(x, 5), PowerWarp(x, 1); got != want {
		t.Fatalf("curvature should clamp to 1: got %v want %v", got, want)
	}
}

func TestPowerWarpEndpoints(t *testing.T) {
	for _, c := range []float64{-1, -0.3, 0.3, 1} {
		if got := PowerWarp(0, c); got != 0 {
			t.Fatalf("PowerWarp(0, %v) = %v, want 0", c, got)
		}
		if got := PowerWarp(1, c); got != 1 {
			t.Fatalf("PowerWarp(1, %v) = %v, want 1", c, got)
		}
	}
}

func TestPowerWarpNaNCurvatureIsLinear(t *testing.T) {
	for _, x := range []float64{0, 0.3, 0.5, 1} {
		if got := PowerWarp(x, math.NaN()); got != x {
			t.Fatalf("PowerWarp(%v, NaN) = %v, want %v", x, got, x)
		}
	}
}

func TestSCurve(t *testing.T) {
	if SCurve(0) != 0 || SCurve(1) != 1 {
		t.Fatal("SCurve must pin both endpoints")
	}
	if got := SCurve(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("SCurve(0.5) = %v, want 0.5", got)
	}
	if got := SCurve(0.25); !(got < 0.25) {
		t.Fatalf("SCurve(0.25) = %v, want below linear", got)
	}
}
