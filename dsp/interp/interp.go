package interp

import "math"

// Linear blends a towards b by t.
func Linear(a, b, t float64) float64 {
	return a + t*(b-a)
}

// PowerWarp bends t with the exponent 4^-curvature. Curvature is limited
// to [-1, 1], giving exponents between 4 and 0.25. Zero curvature leaves t
// unchanged, positive curvature rises early (concave), negative curvature
// rises late (convex). A NaN curvature is treated as zero.
func PowerWarp(t, curvature float64) float64 {
	t = clampUnit(t)
	if curvature == 0 || math.IsNaN(curvature) || t == 0 || t == 1 {
		return t
	}

	if curvature > 1 {
		curvature = 1
	} else if curvature < -1 {
		curvature = -1
	}

	return math.Pow(t, math.Pow(4, -curvature))
}

// SCurve is the cubic smoothstep 3t^2 - 2t^3.
func SCurve(t float64) float64 {
	t = clampUnit(t)
	return t * t * (3 - 2*t)
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
