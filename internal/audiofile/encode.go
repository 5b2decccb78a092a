package audiofile

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-dynamics/dsp/buffer"
)

const (
	wavFormatPCM = 1

	// DefaultBitDepth is the PCM depth written when none is given.
	DefaultBitDepth = 24
)

// EncodeWAV writes buf as integer PCM WAV. Samples outside [-1, 1] are
// clipped. A bitDepth of 0 selects DefaultBitDepth.
func EncodeWAV(w io.WriteSeeker, buf *buffer.Buffer, bitDepth int) error {
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%d bits: %w", bitDepth, ErrBitDepth)
	}

	sampleRate := int(math.Round(buf.SampleRate()))
	enc := wav.NewEncoder(w, sampleRate, bitDepth, buf.Channels(), wavFormatPCM)

	if err := enc.Write(toIntBuffer(buf, bitDepth, sampleRate)); err != nil {
		return fmt.Errorf("data writing error: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize WAV: %w", err)
	}
	return nil
}

func toIntBuffer(buf *buffer.Buffer, bitDepth, sampleRate int) *audio.IntBuffer {
	peak := float64(int64(1)<<(bitDepth-1) - 1)
	src := buf.Samples()
	data := make([]int, len(src))
	for i, v := range src {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		data[i] = int(math.Round(v * peak))
	}
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: buf.Channels(),
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

// SaveWAV writes buf to a new file at path. On failure the partial file
// is removed.
func SaveWAV(path string, buf *buffer.Buffer, bitDepth int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output file creation error: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return EncodeWAV(f, buf, bitDepth)
}
