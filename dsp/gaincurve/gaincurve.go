package gaincurve

import (
	"fmt"

	"github.com/cwbudde/algo-dynamics/dsp/core"
	"github.com/cwbudde/algo-dynamics/dsp/envelope"
	"github.com/cwbudde/algo-dynamics/dsp/volume"
)

// silenceThreshold is the linear peak below which linear-domain gains are
// forced to zero instead of dividing by the peak.
const silenceThreshold = 0.0001

// Mode selects the domain in which the envelope is applied.
type Mode int

const (
	ModeLinear Mode = iota
	ModeDecibel
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeDecibel:
		return "decibel"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Curve is the part of an envelope the mapper needs.
type Curve interface {
	Interpolate(x float64) (float64, error)
}

// Gain returns the gain factor for one window whose absolute peak is peak.
func Gain(peak float64, curve Curve, mode Mode) (float64, error) {
	switch mode {
	case ModeDecibel:
		return decibelGain(peak, curve)
	case ModeLinear:
		return linearGain(peak, curve)
	default:
		return 0, fmt.Errorf("unknown gain mode %d: %w", int(mode), core.ErrInvalidArgument)
	}
}

func decibelGain(peak float64, curve Curve) (float64, error) {
	measuredDB := core.LinearToDBFloor(peak, core.FloorDB)
	norm := core.MapRange(measuredDB, core.FloorDB, 0, 0, 1)

	out, err := curve.Interpolate(norm)
	if err != nil {
		return 0, err
	}

	targetDB := core.MapRange(out, 0, 1, core.FloorDB, 0)
	return core.GainForDBDifference(targetDB - measuredDB), nil
}

func linearGain(peak float64, curve Curve) (float64, error) {
	out, err := curve.Interpolate(peak)
	if err != nil {
		return 0, err
	}

	if out == peak {
		return 1, nil
	}
	if peak > silenceThreshold {
		return out / peak, nil
	}
	return 0, nil
}

// Map returns one gain factor per analysis window, in window order. The
// envelope must cover the full input domain.
func Map(data volume.Data, env *envelope.Envelope, mode Mode) ([]float64, error) {
	if env == nil {
		return nil, fmt.Errorf("map gains without envelope: %w", core.ErrInvalidState)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}

	gains := make([]float64, len(data.Points))
	for i, p := range data.Points {
		g, err := Gain(p.AbsPeak, env, mode)
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}
		gains[i] = g
	}

	return gains, nil
}

// Preview applies gains to the analysis itself, giving the level each
// window will have after rendering. Time stamps are kept.
func Preview(data volume.Data, gains []float64) (volume.Data, error) {
	if len(gains) != len(data.Points) {
		return volume.Data{}, fmt.Errorf("%d gains for %d windows: %w",
			len(gains), len(data.Points), core.ErrInvalidArgument)
	}

	out := volume.Data{WindowSize: data.WindowSize, Points: make([]volume.DataPoint, len(data.Points))}
	for i, p := range data.Points {
		out.Points[i] = volume.DataPoint{AbsPeak: p.AbsPeak * gains[i], TimeStamp: p.TimeStamp}
	}

	return out, nil
}
