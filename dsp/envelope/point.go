package envelope

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cwbudde/algo-dynamics/dsp/core"
)

// Shape selects the interpolation curve of the segment that starts at a
// point. The numeric values are the persisted shape codes.
type Shape int

const (
	// ShapeLinear blends straight to the next point.
	ShapeLinear Shape = iota
	// ShapePower warps the blend position with a power curve whose
	// curvature is Param1 in [-1, 1]. Zero curvature is linear.
	ShapePower
	// ShapeHold keeps the point's value until the next point.
	ShapeHold
	// ShapeSCurve blends with a smoothstep, flat at both ends.
	ShapeSCurve
)

var shapeNames = [...]string{"linear", "power", "hold", "s-curve"}

// String returns the shape name.
func (s Shape) String() string {
	if s.Valid() {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Valid reports whether s is a known shape code.
func (s Shape) Valid() bool {
	return s >= ShapeLinear && s <= ShapeSCurve
}

// ParseShape converts a persisted shape code.
func ParseShape(code int) (Shape, error) {
	s := Shape(code)
	if !s.Valid() {
		return 0, fmt.Errorf("unknown envelope shape code %d: %w", code, core.ErrInvalidArgument)
	}
	return s, nil
}

// UnmarshalJSON accepts integral JSON numbers, including the "1.0" form
// written by encoders that store every number as a double.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("envelope shape: %w", err)
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("envelope shape code %v is not an integer: %w", f, core.ErrInvalidArgument)
	}
	parsed, err := ParseShape(int(f))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Point is one breakpoint of an envelope. X and Y are normalized to [0, 1].
// Param1 and Param2 are shape-specific; ShapePower reads Param1 as its
// curvature, Param2 is carried through persistence unused.
type Point struct {
	X      float64
	Y      float64
	Shape  Shape
	Param1 float64
	Param2 float64
}

// NewPoint returns a point with zero shape parameters.
func NewPoint(x, y float64, shape Shape) Point {
	return Point{X: x, Y: y, Shape: shape}
}
