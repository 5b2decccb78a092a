package dynproc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-dynamics/dsp/core"
	"github.com/cwbudde/algo-dynamics/dsp/envelope"
)

func TestStateRoundTrip(t *testing.T) {
	src, _ := NewSession(WithWindowSizeMs(200), WithDecibelMode(true))
	err := src.Envelope().Import(envelope.PointList{
		{X: 0, Y: 0, Shape: envelope.ShapeLinear},
		{X: 0.5, Y: 0.8, Shape: envelope.ShapePower, Param1: 0.3},
		{X: 1, Y: 1, Shape: envelope.ShapeLinear},
	})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := src.SaveState(&buf); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"analysiswindowsize": 200`) {
		t.Fatalf("state JSON missing window size:\n%s", buf.String())
	}

	dst, _ := NewSession()
	if err := dst.LoadState(&buf); err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if dst.WindowSizeMs() != 200 || !dst.DecibelMode() {
		t.Fatalf("loaded settings = %v ms, db %v", dst.WindowSizeMs(), dst.DecibelMode())
	}

	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		want, _ := src.Envelope().Interpolate(x)
		got, err := dst.Envelope().Interpolate(x)
		if err != nil || got != want {
			t.Fatalf("Interpolate(%v) = %v, %v; want %v", x, got, err, want)
		}
	}
}

func TestLoadStateLegacyDocument(t *testing.T) {
	doc := `{
  "plugin_version": "1",
  "analysiswindowsize": 10.0,
  "dyn_envelope": {"nodes": [
    {"x": 1.0, "y": 0.5, "sh": 0.0, "p1": 0.0, "p2": 0.0},
    {"x": 0.0, "y": 0.0, "sh": 1.0, "p1": 0.25, "p2": 0.0}
  ]}
}`
	s, _ := NewSession()
	if err := s.LoadState(strings.NewReader(doc)); err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if s.WindowSizeMs() != 10 {
		t.Fatalf("WindowSizeMs() = %v, want 10", s.WindowSizeMs())
	}
	p, _ := s.Envelope().Point(0)
	if p.X != 0 || p.Shape != envelope.ShapePower || p.Param1 != 0.25 {
		t.Fatalf("points were not sorted after load: first = %+v", p)
	}
}

func TestLoadStateKeepsSettingsOnMissingValues(t *testing.T) {
	s, _ := NewSession(WithWindowSizeMs(100))
	before := s.Envelope().NumPoints()

	doc := `{"plugin_version":"1","analysiswindowsize":33,"dyn_envelope":{"nodes":[]}}`
	if err := s.LoadState(strings.NewReader(doc)); err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if s.WindowSizeMs() != 100 {
		t.Fatalf("unknown window size should be ignored, got %v", s.WindowSizeMs())
	}
	if s.Envelope().NumPoints() != before {
		t.Fatal("empty node list should keep the envelope")
	}
}

func TestLoadStateErrors(t *testing.T) {
	s, _ := NewSession()
	if err := s.LoadState(strings.NewReader("{not json")); err == nil {
		t.Fatal("LoadState() should fail on malformed JSON")
	}

	doc := `{"dyn_envelope":{"nodes":[{"x":0,"y":0,"sh":12,"p1":0,"p2":0}]}}`
	if err := s.LoadState(strings.NewReader(doc)); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("LoadState() error = %v, want ErrInvalidArgument", err)
	}
	if s.Envelope().NumPoints() != 3 {
		t.Fatal("failed load changed the envelope")
	}
}
