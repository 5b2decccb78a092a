package levels

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-dynamics/dsp/buffer"
	"github.com/cwbudde/algo-dynamics/dsp/core"
	"github.com/cwbudde/algo-dynamics/internal/testutil"
)

func TestMeasureDC(t *testing.T) {
	buf, err := buffer.FromInterleaved(testutil.DC(-0.5, 100), 1, 48000)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Measure(buf)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if r.Total.Peak != 0.5 || math.Abs(r.Total.RMS-0.5) > 1e-12 {
		t.Fatalf("peak=%v rms=%v, want 0.5", r.Total.Peak, r.Total.RMS)
	}
	if math.Abs(r.Total.Crest-1) > 1e-12 || math.Abs(r.Total.CrestDB) > 1e-9 {
		t.Fatalf("crest=%v (%v dB), want 1 (0 dB)", r.Total.Crest, r.Total.CrestDB)
	}
	if math.Abs(r.Total.PeakDB-core.LinearToDB(0.5)) > 1e-12 {
		t.Fatalf("PeakDB = %v", r.Total.PeakDB)
	}
}

func TestMeasureSineCrest(t *testing.T) {
	sine := testutil.DeterministicSine(1000, 48000, 1, 48000)
	buf, err := buffer.FromInterleaved(sine, 1, 48000)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Measure(buf)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.Total.Crest-math.Sqrt2) > 1e-3 {
		t.Fatalf("sine crest = %v, want sqrt(2)", r.Total.Crest)
	}
}

func TestMeasureChannels(t *testing.T) {
	samples := testutil.Interleave(testutil.DC(0.25, 10), testutil.DC(0, 10))
	buf, err := buffer.FromInterleaved(samples, 2, 44100)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Measure(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Channels) != 2 {
		t.Fatalf("channels = %d, want 2", len(r.Channels))
	}
	if r.Channels[0].Peak != 0.25 || r.Channels[1].Peak != 0 {
		t.Fatalf("channel peaks = %v, %v", r.Channels[0].Peak, r.Channels[1].Peak)
	}
	silent := r.Channels[1]
	if silent.PeakDB != core.FloorDB || silent.RMSDB != core.FloorDB || silent.Crest != 0 {
		t.Fatalf("silent channel = %+v", silent)
	}
	if r.Total.Peak != 0.25 || r.Total.Frames != 10 {
		t.Fatalf("total = %+v", r.Total)
	}
}

func TestMeasureNil(t *testing.T) {
	if _, err := Measure(nil); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("Measure(nil) error = %v, want ErrInvalidArgument", err)
	}
}

func TestCompare(t *testing.T) {
	loud, _ := buffer.FromInterleaved(testutil.DC(1, 10), 1, 48000)
	quiet, _ := buffer.FromInterleaved(testutil.DC(0.5, 10), 1, 48000)
	before, _ := Measure(loud)
	after, _ := Measure(quiet)

	d := Compare(before, after)
	if math.Abs(d.PeakDB-core.LinearToDB(0.5)) > 1e-9 || math.Abs(d.RMSDB-d.PeakDB) > 1e-9 {
		t.Fatalf("delta = %+v", d)
	}
	if math.Abs(d.CrestDB) > 1e-9 {
		t.Fatalf("crest delta = %v, want 0", d.CrestDB)
	}
}
