package audiofile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/cwbudde/algo-dynamics/dsp/buffer"
)

// Format names accepted by Decode.
const (
	FormatWAV    = "wav"
	FormatMP3    = "mp3"
	FormatVorbis = "ogg"
)

// mp3Channels is the fixed channel count of go-mp3 output.
const mp3Channels = 2

// FormatFromPath returns the format name for a file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav", ".wave":
		return FormatWAV, nil
	case ".mp3":
		return FormatMP3, nil
	case ".ogg", ".oga":
		return FormatVorbis, nil
	default:
		return "", fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
}

// Load decodes the whole file at path.
func Load(path string) (*buffer.Buffer, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	buf, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// Decode reads a whole stream of the given format.
func Decode(r io.ReadSeeker, format string) (*buffer.Buffer, error) {
	switch format {
	case FormatWAV:
		return DecodeWAV(r)
	case FormatMP3:
		return DecodeMP3(r)
	case FormatVorbis:
		return DecodeVorbis(r)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}

// DecodeWAV reads an integer PCM WAV stream.
func DecodeWAV(r io.ReadSeeker) (*buffer.Buffer, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("WAV audio format %d: %w", dec.WavAudioFormat, ErrUnsupportedFormat)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("could not read PCM buffer: %w", err)
	}
	return fromIntBuffer(pcm)
}

func fromIntBuffer(pcm *audio.IntBuffer) (*buffer.Buffer, error) {
	if pcm.Format == nil {
		return nil, ErrInvalidWAV
	}
	depth := pcm.SourceBitDepth
	if depth < 8 || depth > 32 {
		return nil, fmt.Errorf("%d bits: %w", depth, ErrBitDepth)
	}

	channels := pcm.Format.NumChannels
	if channels <= 0 {
		return nil, fmt.Errorf("%d channels: %w", channels, ErrInvalidWAV)
	}
	data := pcm.Data[:len(pcm.Data)-len(pcm.Data)%channels]

	scale := float64(int64(1) << (depth - 1))
	samples := make([]float64, len(data))
	for i, v := range data {
		if depth == 8 {
			// 8-bit WAV is unsigned.
			v -= 128
		}
		samples[i] = float64(v) / scale
	}
	return buffer.FromInterleaved(samples, channels, float64(pcm.Format.SampleRate))
}

// DecodeMP3 reads a whole MP3 stream. go-mp3 always yields 16-bit stereo.
func DecodeMP3(r io.Reader) (*buffer.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	return buffer.FromInterleaved(pcm16ToFloat(raw, mp3Channels), mp3Channels, float64(dec.SampleRate()))
}

// pcm16ToFloat converts little-endian signed 16-bit PCM bytes, dropping
// any trailing partial frame.
func pcm16ToFloat(raw []byte, channels int) []float64 {
	frameBytes := 2 * channels
	raw = raw[:len(raw)-len(raw)%frameBytes]

	out := make([]float64, len(raw)/2)
	for i := range out {
		v := int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
		out[i] = float64(v) / 32768.0
	}
	return out
}

// DecodeVorbis reads a whole Ogg Vorbis stream.
func DecodeVorbis(r io.Reader) (*buffer.Buffer, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}

	channels := format.Channels
	if channels <= 0 {
		return nil, fmt.Errorf("vorbis: %d channels: %w", channels, ErrUnsupportedFormat)
	}
	data = data[:len(data)-len(data)%channels]

	samples := make([]float64, len(data))
	for i, v := range data {
		samples[i] = float64(v)
	}
	return buffer.FromInterleaved(samples, channels, float64(format.SampleRate))
}
