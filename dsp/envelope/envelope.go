package envelope

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"sort"

	"github.com/cwbudde/algo-dynamics/dsp/core"
	"github.com/cwbudde/algo-dynamics/dsp/interp"
)

// Envelope is a named, colored breakpoint curve.
//
// This implementation is not thread-safe. The owner must serialize edits
// against concurrent Interpolate calls.
type Envelope struct {
	name   string
	color  color.RGBA
	points []Point
}

// New returns an empty envelope. Callers must add the boundary points
// before interpolating.
func New(name string, c color.RGBA) *Envelope {
	return &Envelope{name: name, color: c}
}

// NewIdentity returns an envelope whose output equals its input: two
// linear points at (0,0) and (1,1).
func NewIdentity() *Envelope {
	e := New("Identity", color.RGBA{G: 255, A: 255})
	e.points = []Point{NewPoint(0, 0, ShapeLinear), NewPoint(1, 1, ShapeLinear)}
	return e
}

// Name returns the envelope name.
func (e *Envelope) Name() string { return e.name }

// Color returns the display color.
func (e *Envelope) Color() color.RGBA { return e.color }

// NumPoints returns the number of points.
func (e *Envelope) NumPoints() int { return len(e.points) }

// Point returns the point at index i.
func (e *Envelope) Point(i int) (Point, error) {
	if i < 0 || i >= len(e.points) {
		return Point{}, fmt.Errorf("envelope point %d of %d: %w", i, len(e.points), core.ErrIndexOutOfRange)
	}
	return e.points[i], nil
}

// AddPoint appends p. With sortAfter the points are re-sorted by X at once,
// so the envelope is ready for Interpolate; without it the caller must call
// SortPoints after the bulk load.
func (e *Envelope) AddPoint(p Point, sortAfter bool) {
	e.points = append(e.points, p)
	if sortAfter {
		e.SortPoints()
	}
}

// SortPoints stable-sorts the points by X. Points with equal X keep their
// insertion order.
func (e *Envelope) SortPoints() {
	sort.SliceStable(e.points, func(i, j int) bool {
		return e.points[i].X < e.points[j].X
	})
}

// SetPoint replaces the point at index i. The envelope is not re-sorted.
func (e *Envelope) SetPoint(i int, p Point) error {
	if i < 0 || i >= len(e.points) {
		return fmt.Errorf("envelope point %d of %d: %w", i, len(e.points), core.ErrIndexOutOfRange)
	}
	e.points[i] = p
	return nil
}

// RemovePoint deletes the point at index i.
func (e *Envelope) RemovePoint(i int) error {
	if i < 0 || i >= len(e.points) {
		return fmt.Errorf("envelope point %d of %d: %w", i, len(e.points), core.ErrIndexOutOfRange)
	}
	e.points = slices.Delete(e.points, i, i+1)
	return nil
}

// RemoveAllPoints clears the envelope. Interpolate fails until points are
// added again.
func (e *Envelope) RemoveAllPoints() {
	e.points = e.points[:0]
}

// Validate reports ErrInvalidState unless the envelope covers the whole
// input domain: it must have points and its first and last points must sit
// at or beyond x=0 and x=1. Every coordinate and shape parameter must be
// finite and every Y must lie in [0, 1].
func (e *Envelope) Validate() error {
	if len(e.points) == 0 {
		return fmt.Errorf("envelope %q has no points: %w", e.name, core.ErrInvalidState)
	}
	first, last := e.points[0].X, e.points[len(e.points)-1].X
	if first > 0 || last < 1 {
		return fmt.Errorf("envelope %q lacks boundary points (x range [%g, %g]): %w",
			e.name, first, last, core.ErrInvalidState)
	}
	for i, p := range e.points {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Param1) || !finite(p.Param2) {
			return fmt.Errorf("envelope %q point %d has a non-finite value %+v: %w",
				e.name, i, p, core.ErrInvalidState)
		}
		if p.Y < 0 || p.Y > 1 {
			return fmt.Errorf("envelope %q point %d: y %g outside [0, 1]: %w",
				e.name, i, p.Y, core.ErrInvalidState)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Interpolate returns the envelope value at x. Positions outside the point
// range clamp to the nearest boundary value. Within a bracket p0.X <= x <
// p1.X the values blend with the shape of p0.
func (e *Envelope) Interpolate(x float64) (float64, error) {
	n := len(e.points)
	if n == 0 {
		return 0, fmt.Errorf("interpolate on empty envelope %q: %w", e.name, core.ErrInvalidState)
	}
	if math.IsNaN(x) {
		return 0, fmt.Errorf("interpolate position is NaN: %w", core.ErrInvalidArgument)
	}

	first, last := e.points[0], e.points[n-1]
	if x < first.X {
		return first.Y, nil
	}
	if x >= last.X {
		return last.Y, nil
	}

	// First point strictly right of x; p0 is the last point at or left of it.
	i := sort.Search(n, func(k int) bool { return e.points[k].X > x })
	p0, p1 := e.points[i-1], e.points[i]

	return blend(p0, p1, (x-p0.X)/(p1.X-p0.X)), nil
}

func blend(p0, p1 Point, t float64) float64 {
	switch p0.Shape {
	case ShapePower:
		return interp.Linear(p0.Y, p1.Y, interp.PowerWarp(t, p0.Param1))
	case ShapeHold:
		return p0.Y
	case ShapeSCurve:
		return interp.Linear(p0.Y, p1.Y, interp.SCurve(t))
	default:
		return interp.Linear(p0.Y, p1.Y, t)
	}
}

// Clone returns a deep copy of the envelope.
func (e *Envelope) Clone() *Envelope {
	return &Envelope{name: e.name, color: e.color, points: slices.Clone(e.points)}
}
