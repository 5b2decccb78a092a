package dynproc

import "github.com/cwbudde/algo-dynamics/dsp/envelope"

// Option configures a Session.
type Option func(*Session) error

// WithWindowSizeMs selects the analysis window size. The value must be one
// of WindowSizes.
func WithWindowSizeMs(ms float64) Option {
	return func(s *Session) error {
		return s.SetWindowSizeMs(ms)
	}
}

// WithDecibelMode selects decibel-domain mapping.
func WithDecibelMode(enabled bool) Option {
	return func(s *Session) error {
		s.SetDecibelMode(enabled)
		return nil
	}
}

// WithEnvelope replaces the default transfer envelope. The session keeps
// the pointer; edits made through it are seen by later renders.
func WithEnvelope(env *envelope.Envelope) Option {
	return func(s *Session) error {
		if env != nil {
			s.env = env
		}
		return nil
	}
}

// WithWorkers renders with up to n concurrent workers.
func WithWorkers(n int) Option {
	return func(s *Session) error {
		if n > 0 {
			s.workers = n
		}
		return nil
	}
}
