package volume

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dynamics/dsp/buffer"
	"github.com/cwbudde/algo-dynamics/dsp/core"
)

// DataPoint is the measurement of one analysis window.
type DataPoint struct {
	AbsPeak   float64 // Largest |sample| in the window, in [0, 1]
	TimeStamp float64 // Window start in seconds
}

// Data is the analysis of a whole buffer. Points are ordered by time and
// pair 1:1 with the render windows of the same buffer.
type Data struct {
	WindowSize int // Window length in sample frames
	Points     []DataPoint
}

// Len returns the number of analysis windows.
func (d Data) Len() int { return len(d.Points) }

// Peaks returns the absolute peaks in window order.
func (d Data) Peaks() []float64 {
	out := make([]float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.AbsPeak
	}
	return out
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	return Data{WindowSize: d.WindowSize, Points: slices.Clone(d.Points)}
}

// WindowFrames converts a window length in seconds to a sample count,
// rounding to the nearest frame.
func WindowFrames(windowSeconds, sampleRate float64) (int, error) {
	if !(windowSeconds > 0) || math.IsInf(windowSeconds, 0) {
		return 0, fmt.Errorf("window length must be positive and finite: %f: %w",
			windowSeconds, core.ErrInvalidArgument)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("sample rate must be positive and finite: %f: %w",
			sampleRate, core.ErrInvalidArgument)
	}
	size := int(math.Round(windowSeconds * sampleRate))
	if size <= 0 {
		return 0, fmt.Errorf("window of %f s at %f Hz is shorter than one frame: %w",
			windowSeconds, sampleRate, core.ErrInvalidArgument)
	}
	return size, nil
}

// Analyze measures interleaved samples in windows of windowSeconds.
//
// The result has ceil(frames/windowSize) points; an empty input yields no
// points and no error. Peaks above full scale are clamped to 1.
func Analyze(samples []float64, channels int, sampleRate, windowSeconds float64) (Data, error) {
	if channels <= 0 {
		return Data{}, fmt.Errorf("channel count must be > 0: %d: %w", channels, core.ErrInvalidArgument)
	}
	if len(samples)%channels != 0 {
		return Data{}, fmt.Errorf("sample count %d is not a multiple of %d channels: %w",
			len(samples), channels, core.ErrInvalidArgument)
	}
	windowSize, err := WindowFrames(windowSeconds, sampleRate)
	if err != nil {
		return Data{}, err
	}

	frames := len(samples) / channels
	count := (frames + windowSize - 1) / windowSize
	data := Data{WindowSize: windowSize, Points: make([]DataPoint, count)}

	stride := windowSize * channels
	for i := range count {
		start := i * stride
		end := min(start+stride, len(samples))
		data.Points[i] = DataPoint{
			AbsPeak:   core.Clamp(vecmath.MaxAbs(samples[start:end]), 0, 1),
			TimeStamp: float64(i) * windowSeconds,
		}
	}

	return data, nil
}

// AnalyzeBuffer measures buf in windows of windowSeconds.
func AnalyzeBuffer(buf *buffer.Buffer, windowSeconds float64) (Data, error) {
	if buf == nil {
		return Data{}, fmt.Errorf("analyze nil buffer: %w", core.ErrInvalidArgument)
	}
	return Analyze(buf.Samples(), buf.Channels(), buf.SampleRate(), windowSeconds)
}
