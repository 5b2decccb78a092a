// Package gaincurve maps measured window levels through a breakpoint
// envelope into per-window gain factors.
//
// Two domains are supported, chosen for a whole window set:
//
//   - [ModeLinear]: the normalized peak is fed to the envelope directly and
//     the gain is output/peak.
//   - [ModeDecibel]: the peak is converted to dB over [-96, 0], normalized,
//     fed to the envelope, and the envelope output is read back as a target
//     level in the same range.
package gaincurve
