package dynproc

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/cwbudde/algo-dynamics/dsp/buffer"
	"github.com/cwbudde/algo-dynamics/dsp/core"
	"github.com/cwbudde/algo-dynamics/dsp/envelope"
	"github.com/cwbudde/algo-dynamics/dsp/gaincurve"
	"github.com/cwbudde/algo-dynamics/dsp/render"
	"github.com/cwbudde/algo-dynamics/dsp/volume"
)

var windowSizesMs = []float64{1, 2, 5, 10, 20, 50, 100, 200, 500}

const (
	defaultWindowIndex = 5 // 50 ms
	windowSizeMatchMs  = 0.001
	defaultEnvelope    = "Dynamics curve"
)

// WindowSizes returns the selectable analysis window sizes in
// milliseconds, shortest first.
func WindowSizes() []float64 {
	return slices.Clone(windowSizesMs)
}

func windowIndex(ms float64) int {
	for i, v := range windowSizesMs {
		if math.Abs(ms-v) < windowSizeMatchMs {
			return i
		}
	}
	return -1
}

// DefaultEnvelope returns the curve a new session starts with: a power
// curve through (0,0), (0.5,0.5) and (1,1) with zero curvature.
func DefaultEnvelope() *envelope.Envelope {
	env := envelope.New(defaultEnvelope, color.RGBA{G: 255, A: 255})
	env.AddPoint(envelope.NewPoint(0, 0, envelope.ShapePower), true)
	env.AddPoint(envelope.NewPoint(0.5, 0.5, envelope.ShapePower), true)
	env.AddPoint(envelope.NewPoint(1, 1, envelope.ShapePower), true)
	return env
}

// Session holds one dynamics editing session.
//
// A Session is not safe for concurrent use.
type Session struct {
	env         *envelope.Envelope
	windowIndex int
	decibel     bool
	workers     int

	source    volume.Data
	hasSource bool
}

// NewSession returns a session with the default envelope, a 50 ms window
// and linear-domain mapping, then applies opts.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{
		env:         DefaultEnvelope(),
		windowIndex: defaultWindowIndex,
		workers:     1,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Envelope returns the transfer envelope. Edits through the returned
// pointer take effect on the next Preview or Render.
func (s *Session) Envelope() *envelope.Envelope { return s.env }

// WindowSizeMs returns the analysis window size in milliseconds.
func (s *Session) WindowSizeMs() float64 { return windowSizesMs[s.windowIndex] }

// WindowSeconds returns the analysis window size in seconds.
func (s *Session) WindowSeconds() float64 { return s.WindowSizeMs() / 1000 }

// SetWindowSizeMs selects one of WindowSizes. The stored analysis keeps
// its old window size until the next Analyze or Render.
func (s *Session) SetWindowSizeMs(ms float64) error {
	i := windowIndex(ms)
	if i < 0 {
		return fmt.Errorf("window size %g ms is not one of %v: %w", ms, windowSizesMs, core.ErrInvalidArgument)
	}
	s.windowIndex = i
	return nil
}

// DecibelMode reports whether the envelope is applied in the dB domain.
func (s *Session) DecibelMode() bool { return s.decibel }

// SetDecibelMode toggles decibel-domain mapping.
func (s *Session) SetDecibelMode(enabled bool) { s.decibel = enabled }

// Mode returns the mapping domain.
func (s *Session) Mode() gaincurve.Mode {
	if s.decibel {
		return gaincurve.ModeDecibel
	}
	return gaincurve.ModeLinear
}

// Analyze measures buf with the current window size and keeps the result
// as the session's source analysis, replacing any previous one.
func (s *Session) Analyze(buf *buffer.Buffer) (volume.Data, error) {
	data, err := volume.AnalyzeBuffer(buf, s.WindowSeconds())
	if err != nil {
		return volume.Data{}, fmt.Errorf("analyze: %w", err)
	}
	s.source = data
	s.hasSource = true
	return data.Clone(), nil
}

// SourceAnalysis returns a copy of the stored analysis and whether one
// exists.
func (s *Session) SourceAnalysis() (volume.Data, bool) {
	if !s.hasSource {
		return volume.Data{}, false
	}
	return s.source.Clone(), true
}

// Preview returns the levels the stored analysis would have after the
// transform.
func (s *Session) Preview() (volume.Data, error) {
	if !s.hasSource {
		return volume.Data{}, fmt.Errorf("preview before analysis: %w", core.ErrInvalidState)
	}
	gains, err := gaincurve.Map(s.source, s.env, s.Mode())
	if err != nil {
		return volume.Data{}, fmt.Errorf("preview: %w", err)
	}
	return gaincurve.Preview(s.source, gains)
}

// Render analyzes buf with the current window size, stores that analysis
// as the source analysis and returns a transformed copy of buf. Gains are
// always derived from buf itself, never from an earlier analysis.
func (s *Session) Render(buf *buffer.Buffer) (*buffer.Buffer, error) {
	if buf == nil {
		return nil, fmt.Errorf("render nil buffer: %w", core.ErrInvalidArgument)
	}
	data, err := s.Analyze(buf)
	if err != nil {
		return nil, err
	}

	gains, err := gaincurve.Map(data, s.env, s.Mode())
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	out, err := render.RenderBuffer(buf, gains, data.WindowSize, render.WithWorkers(s.workers))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return out, nil
}

// Process runs analysis, mapping and rendering over buf in one call and
// returns the transformed copy.
func Process(buf *buffer.Buffer, env *envelope.Envelope, windowSeconds float64, mode gaincurve.Mode, opts ...render.Option) (*buffer.Buffer, error) {
	data, err := volume.AnalyzeBuffer(buf, windowSeconds)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	gains, err := gaincurve.Map(data, env, mode)
	if err != nil {
		return nil, fmt.Errorf("map gains: %w", err)
	}
	out, err := render.RenderBuffer(buf, gains, data.WindowSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return out, nil
}
