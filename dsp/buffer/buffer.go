package buffer

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dynamics/dsp/core"
)

// Buffer is an interleaved block of float64 samples with its channel count
// and sample rate.
type Buffer struct {
	samples    []float64
	channels   int
	sampleRate float64
}

// New returns a zero-filled Buffer holding frames frames of channels
// channels.
func New(frames, channels int, sampleRate float64) (*Buffer, error) {
	if frames < 0 {
		return nil, fmt.Errorf("buffer frame count must be >= 0: %d: %w", frames, core.ErrInvalidArgument)
	}
	if err := validateFormat(channels, sampleRate); err != nil {
		return nil, err
	}
	return &Buffer{
		samples:    make([]float64, frames*channels),
		channels:   channels,
		sampleRate: sampleRate,
	}, nil
}

// FromInterleaved wraps an existing interleaved slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
// The slice length must be a whole number of frames.
func FromInterleaved(samples []float64, channels int, sampleRate float64) (*Buffer, error) {
	if err := validateFormat(channels, sampleRate); err != nil {
		return nil, err
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("buffer length %d is not a multiple of %d channels: %w",
			len(samples), channels, core.ErrInvalidArgument)
	}
	return &Buffer{samples: samples, channels: channels, sampleRate: sampleRate}, nil
}

func validateFormat(channels int, sampleRate float64) error {
	if channels <= 0 {
		return fmt.Errorf("buffer channel count must be > 0: %d: %w", channels, core.ErrInvalidArgument)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("buffer sample rate must be positive and finite: %f: %w",
			sampleRate, core.ErrInvalidArgument)
	}
	return nil
}

// Samples returns the underlying interleaved slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Channels returns the number of interleaved channels.
func (b *Buffer) Channels() int {
	return b.channels
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() float64 {
	return b.sampleRate
}

// Frames returns the number of sample frames.
func (b *Buffer) Frames() int {
	return len(b.samples) / b.channels
}

// Duration returns the length of the buffer in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Frames()) / b.sampleRate
}

// Frame returns the samples of frame i, one per channel. The returned
// slice aliases the buffer.
func (b *Buffer) Frame(i int) ([]float64, error) {
	if i < 0 || i >= b.Frames() {
		return nil, fmt.Errorf("frame %d of %d: %w", i, b.Frames(), core.ErrIndexOutOfRange)
	}
	return b.samples[i*b.channels : (i+1)*b.channels], nil
}

// Span returns the interleaved samples of frames [start, start+n), clipped
// to the end of the buffer. The returned slice aliases the buffer.
func (b *Buffer) Span(start, n int) []float64 {
	frames := b.Frames()
	if start < 0 {
		start = 0
	}
	if start >= frames || n <= 0 {
		return b.samples[:0]
	}
	end := min(start+n, frames)
	return b.samples[start*b.channels : end*b.channels]
}

// SameShape reports whether o has the same frame count, channel count and
// sample rate as b.
func (b *Buffer) SameShape(o *Buffer) bool {
	return o != nil && len(o.samples) == len(b.samples) &&
		o.channels == b.channels && o.sampleRate == b.sampleRate
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Buffer{samples: s, channels: b.channels, sampleRate: b.sampleRate}
}
