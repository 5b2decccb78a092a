// Package envelope implements the breakpoint envelope that serves as the
// transfer curve of the dynamics transform.
//
// An [Envelope] is an ordered set of [Point] values. Interpolate maps a
// normalized input position onto a normalized output value by locating the
// bracketing pair of points and blending their values with the shape of the
// bracket's start point. Positions outside the point range clamp to the
// nearest boundary value.
//
// Points are kept sorted by X. Bulk loads that bypass the sorted insert must
// be followed by SortPoints; the sort is stable, so points sharing an X keep
// their insertion order.
//
// The persistence form is a sequence of [Record] values, {x, y, sh, p1, p2}
// in JSON, wrapped as {"nodes": [...]} by [PointList].
package envelope
