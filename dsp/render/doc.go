// Package render applies per-window gain factors to a buffered signal.
//
// Within each window the gain ramps linearly from the previous window's
// gain to the window's target across the first half and holds the target
// across the second half. The first window ramps up from zero. The ramp
// keeps abrupt changes of the target gain from producing clicks.
//
// Windows depend only on the target of the window before them, so a pass
// can be split across workers without changing the output; see
// [WithWorkers].
package render
