package testutil

import "testing"

func TestMaxStep(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		channels int
		channel  int
		want     float64
	}{
		{"mono ramp", []float64{0, 0.25, 0.5, 1}, 1, 0, 0.5},
		{"stereo left", []float64{0, 5, 0.1, 0, 0.3, 5}, 2, 0, 0.2},
		{"stereo right", []float64{0, 5, 0.1, 0, 0.3, 5}, 2, 1, 5},
		{"single frame", []float64{1, 2}, 2, 0, 0},
		{"empty", nil, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxStep(tt.data, tt.channels, tt.channel)
			if d := got - tt.want; d > 1e-15 || d < -1e-15 {
				t.Fatalf("MaxStep() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequireHelpersPass(t *testing.T) {
	data := []float64{0, 0.5, 1}
	RequireInRange(t, data, 0, 1)
	RequireFinite(t, data)
	RequireSliceNearlyEqual(t, data, []float64{0, 0.5 + 1e-12, 1}, 1e-9)
	RequireSmooth(t, data, 1, 0.5)
}
