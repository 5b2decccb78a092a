package render

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dynamics/dsp/buffer"
	"github.com/cwbudde/algo-dynamics/dsp/core"
)

var scratch = buffer.NewPool()

// passState threads gain continuity through the windows of one range.
type passState struct {
	previousGain float64
	cursor       int // next frame to render
}

// Render returns a copy of samples with gains applied. samples holds
// frames interleaved frames of channels channels; gains holds one target
// per window of windowSize frames.
//
// Rendering stops at whichever comes first: the last gain or the last
// frame. Frames past the last gain window are copied unscaled. Non-finite
// gains are rejected before any sample is touched.
func Render(samples, gains []float64, windowSize, channels, frames int, opts ...Option) ([]float64, error) {
	if err := validate(samples, gains, windowSize, channels, frames); err != nil {
		return nil, err
	}
	out := make([]float64, frames*channels)
	copy(out, samples)
	renderInPlace(out, gains, windowSize, channels, frames, applyOptions(opts))
	return out, nil
}

// RenderInPlace applies gains to samples directly.
func RenderInPlace(samples, gains []float64, windowSize, channels, frames int, opts ...Option) error {
	if err := validate(samples, gains, windowSize, channels, frames); err != nil {
		return err
	}
	renderInPlace(samples, gains, windowSize, channels, frames, applyOptions(opts))
	return nil
}

// RenderBuffer returns a new buffer of the same shape as buf with gains
// applied.
func RenderBuffer(buf *buffer.Buffer, gains []float64, windowSize int, opts ...Option) (*buffer.Buffer, error) {
	if buf == nil {
		return nil, fmt.Errorf("render nil buffer: %w", core.ErrInvalidArgument)
	}
	out := buf.Copy()
	if err := RenderInPlace(out.Samples(), gains, windowSize, out.Channels(), out.Frames(), opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// WindowCount returns the number of windows a pass renders.
func WindowCount(numGains, windowSize, frames int) int {
	if windowSize <= 0 || frames <= 0 {
		return 0
	}
	return min(numGains, (frames+windowSize-1)/windowSize)
}

func validate(samples, gains []float64, windowSize, channels, frames int) error {
	if windowSize <= 0 {
		return fmt.Errorf("window size must be > 0: %d: %w", windowSize, core.ErrInvalidArgument)
	}
	if channels <= 0 {
		return fmt.Errorf("channel count must be > 0: %d: %w", channels, core.ErrInvalidArgument)
	}
	if frames < 0 {
		return fmt.Errorf("frame count must be >= 0: %d: %w", frames, core.ErrInvalidArgument)
	}
	if len(samples) < frames*channels {
		return fmt.Errorf("%d samples cannot hold %d frames of %d channels: %w",
			len(samples), frames, channels, core.ErrInvalidArgument)
	}
	for i, g := range gains {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return fmt.Errorf("gain %d is not finite: %v: %w", i, g, core.ErrInvalidArgument)
		}
	}
	return nil
}

func renderInPlace(samples, gains []float64, windowSize, channels, frames int, cfg config) {
	windows := WindowCount(len(gains), windowSize, frames)
	if windows == 0 {
		return
	}

	workers := min(cfg.workers, windows)
	if workers <= 1 {
		renderRange(samples, gains, 0, windows, windowSize, channels, frames, cfg.windowReset)
		return
	}

	per := (windows + workers - 1) / workers
	var wg sync.WaitGroup
	for first := 0; first < windows; first += per {
		last := min(first+per, windows)
		wg.Add(1)
		go func() {
			defer wg.Done()
			renderRange(samples, gains, first, last, windowSize, channels, frames, cfg.windowReset)
		}()
	}
	wg.Wait()
}

// renderRange renders windows [first, last). It seeds the previous gain
// from the window before first, so any split gives the serial result.
func renderRange(samples, gains []float64, first, last, windowSize, channels, frames int, reset bool) {
	st := passState{cursor: first * windowSize}
	if first > 0 && !reset {
		st.previousGain = gains[first-1]
	}

	ramp := scratch.Get(windowSize * channels)
	defer scratch.Put(ramp)

	half := windowSize / 2
	for i := first; i < last; i++ {
		if reset {
			st.previousGain = 0
		}
		n := min(windowSize, frames-st.cursor)
		if n <= 0 {
			break
		}

		target := gains[i]
		r := (*ramp)[:n*channels]
		for j := range n {
			frac := 1.0
			if half > 0 && j < half {
				frac = float64(j) / float64(half)
			}
			g := st.previousGain + (target-st.previousGain)*frac
			for k := range channels {
				r[j*channels+k] = g
			}
		}

		vecmath.MulBlockInPlace(samples[st.cursor*channels:(st.cursor+n)*channels], r)
		st.cursor += n
		st.previousGain = target
	}
}
