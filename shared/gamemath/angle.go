package gamemath

import "math"

// SnapAngle rounds degrees to the nearest multiple of step. Halfway values
// round away from zero.
func SnapAngle(degrees, step float64) float64 {
	return math.Round(degrees/step) * step
}

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
