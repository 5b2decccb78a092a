package core

import "math"

const defaultEpsilon = 1e-12

// FloorDB is the lowest level of the decibel domain. Silence and anything
// quieter is mapped to it.
const FloorDB = -96.0

// ln10Over20 converts a dB difference into a natural exponent.
const ln10Over20 = math.Ln10 / 20

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// MapRange maps value linearly from [inMin, inMax] onto [outMin, outMax].
// The result is not clamped. A degenerate input range returns outMin.
func MapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}

	return outMin + (outMax-outMin)*(value-inMin)/(inMax-inMin)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Exp(db * ln10Over20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// LinearToDBFloor converts linear amplitude to dB and limits the result to
// floorDB from below. Zero, negative and NaN input all yield floorDB.
func LinearToDBFloor(linear, floorDB float64) float64 {
	if !(linear > 0) {
		return floorDB
	}

	db := 20 * math.Log10(linear)
	if db < floorDB {
		return floorDB
	}

	return db
}

// GainForDBDifference returns the linear factor that moves a level by
// diffDB decibels.
func GainForDBDifference(diffDB float64) float64 {
	return math.Exp(diffDB * ln10Over20)
}
