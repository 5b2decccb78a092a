// Package buffer provides the interleaved multi-channel sample buffer that
// the analysis and render stages exchange with the host, plus a pool of
// scratch slices for per-window work.
//
// Samples are stored frame by frame: for C channels, frame i occupies
// Samples()[i*C : (i+1)*C]. Values are expected to be float-normalized to
// [-1, 1]; the buffer itself does not enforce a range.
package buffer
