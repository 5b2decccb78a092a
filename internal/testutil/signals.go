package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic mono sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Interleave merges per-channel signals into one frame-ordered slice. All
// channels are cut to the shortest one.
func Interleave(channels ...[]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}
	frames := len(channels[0])
	for _, ch := range channels[1:] {
		frames = min(frames, len(ch))
	}
	out := make([]float64, frames*len(channels))
	for i := range frames {
		for c, ch := range channels {
			out[i*len(channels)+c] = ch[i]
		}
	}
	return out
}

// Steps builds a mono signal of consecutive constant segments: segment i
// holds levels[i] for width samples.
func Steps(width int, levels ...float64) []float64 {
	out := make([]float64, 0, width*len(levels))
	for _, v := range levels {
		out = append(out, DC(v, width)...)
	}
	return out
}
