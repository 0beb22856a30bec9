package utils

import "math"

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// WrapRad returns the angle equivalent to rad in the interval (-pi, pi].
func WrapRad(rad float64) float64 {
	wrapped := math.Mod(rad, 2*math.Pi)
	if wrapped <= -math.Pi {
		wrapped += 2 * math.Pi
	} else if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	}
	return wrapped
}

// Float64AlmostEqual compares two float64s and returns if the difference between them is less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}
