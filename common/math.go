package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// FullTurn is one full rotation in degrees.
const FullTurn = 360.0

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Fraction returns elapsed/period clamped to [0,1]. A non-positive period is
// treated as already complete so interpolations can never divide by zero.
func Fraction(elapsed, period float64) float64 {
	if period <= 0 || math.IsNaN(period) {
		return 1
	}
	return cp.Clamp01(elapsed / period)
}

// LerpOver interpolates from start to end by the elapsed share of period.
func LerpOver(start, end, elapsed, period float64) float64 {
	return cp.Lerp(start, end, Fraction(elapsed, period))
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	out := math.Mod(deg, FullTurn)
	if out < 0 {
		out += FullTurn
	}
	return out
}
