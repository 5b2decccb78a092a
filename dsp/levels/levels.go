// Package levels summarizes the loudness profile of an interleaved buffer.
//
// It is used to report what a dynamics transform did: peak level, RMS level
// and crest factor per channel and overall, before and after processing.
package levels

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dynamics/dsp/buffer"
	"github.com/cwbudde/algo-dynamics/dsp/core"
)

// Summary holds level statistics of one channel or of a whole buffer.
// Decibel fields are floored at core.FloorDB.
type Summary struct {
	Frames  int
	Peak    float64
	PeakDB  float64
	RMS     float64
	RMSDB   float64
	Crest   float64 // peak / RMS, 0 when RMS is 0
	CrestDB float64
}

func newSummary(frames int, peak, sumSq float64, count int) Summary {
	s := Summary{Frames: frames, Peak: peak}
	if count > 0 {
		s.RMS = math.Sqrt(sumSq / float64(count))
	}
	if s.RMS > 0 {
		s.Crest = s.Peak / s.RMS
	}
	s.PeakDB = core.LinearToDBFloor(s.Peak, core.FloorDB)
	s.RMSDB = core.LinearToDBFloor(s.RMS, core.FloorDB)
	if s.Crest > 0 {
		s.CrestDB = core.LinearToDB(s.Crest)
	}
	return s
}

// Report holds the overall summary and one summary per channel.
type Report struct {
	Total    Summary
	Channels []Summary
}

// Measure computes a Report for buf, one channel at a time.
func Measure(buf *buffer.Buffer) (Report, error) {
	if buf == nil {
		return Report{}, fmt.Errorf("levels: nil buffer: %w", core.ErrInvalidArgument)
	}

	ch := buf.Channels()
	frames := buf.Frames()
	samples := buf.Samples()

	r := Report{Channels: make([]Summary, ch)}
	lane := make([]float64, frames)
	var peak, sumSq float64
	for c := range ch {
		for i := range frames {
			lane[i] = samples[i*ch+c]
		}
		p := vecmath.MaxAbs(lane)
		sq := vecmath.DotProduct(lane, lane)
		r.Channels[c] = newSummary(frames, p, sq, frames)
		peak = math.Max(peak, p)
		sumSq += sq
	}
	r.Total = newSummary(frames, peak, sumSq, frames*ch)
	return r, nil
}

// Delta is the change between two summaries, in dB.
type Delta struct {
	PeakDB  float64
	RMSDB   float64
	CrestDB float64
}

// Compare returns after minus before for the overall levels.
func Compare(before, after Report) Delta {
	return Delta{
		PeakDB:  after.Total.PeakDB - before.Total.PeakDB,
		RMSDB:   after.Total.RMSDB - before.Total.RMSDB,
		CrestDB: after.Total.CrestDB - before.Total.CrestDB,
	}
}
