package dynproc

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cwbudde/algo-dynamics/dsp/envelope"
)

const stateVersion = "1"

// State is the persisted form of a session.
type State struct {
	Version      string             `json:"plugin_version"`
	Envelope     envelope.PointList `json:"dyn_envelope"`
	WindowSizeMs float64            `json:"analysiswindowsize"`
	Decibel      bool               `json:"envelope_is_db"`
}

// State returns the persisted form of the session settings.
func (s *Session) State() State {
	return State{
		Version:      stateVersion,
		Envelope:     s.env.Export(),
		WindowSizeMs: s.WindowSizeMs(),
		Decibel:      s.decibel,
	}
}

// ApplyState loads settings from st. A window size that is not one of
// WindowSizes is ignored. An empty point list keeps the current envelope;
// otherwise the points are replaced and sorted.
func (s *Session) ApplyState(st State) error {
	if len(st.Envelope) > 0 {
		if err := s.env.Import(st.Envelope); err != nil {
			return fmt.Errorf("load envelope: %w", err)
		}
	}
	if i := windowIndex(st.WindowSizeMs); i >= 0 {
		s.windowIndex = i
	}
	s.decibel = st.Decibel
	return nil
}

// SaveState writes the session settings as indented JSON.
func (s *Session) SaveState(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.State()); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// LoadState reads settings written by SaveState.
func (s *Session) LoadState(r io.Reader) error {
	var st State
	if err := json.NewDecoder(r).Decode(&st); err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	return s.ApplyState(st)
}
