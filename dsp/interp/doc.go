// Package interp provides the segment shape kernels used by breakpoint
// envelopes.
//
// Every kernel maps a fractional position t in [0,1] inside a segment onto
// a blend weight in [0,1]:
//
//   - [Linear]:    straight blend between two values
//   - [PowerWarp]: t raised to 4^-curvature before blending
//   - [SCurve]:    cubic smoothstep with zero slope at both ends
//
// Hold segments need no kernel; they keep the start value until the next
// point.
package interp
