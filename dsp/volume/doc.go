// Package volume reduces a buffered multi-channel signal to a windowed
// absolute-peak envelope.
//
// The signal is cut into consecutive windows of a fixed sample count; the
// last window may be partial. Each window yields one [DataPoint] holding
// the largest absolute sample value across all channels and the window's
// start time.
package volume
