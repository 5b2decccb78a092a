package audiofile

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrInvalidWAV        = errors.New("invalid WAV file")
	ErrBitDepth          = errors.New("unsupported bit depth")
)
