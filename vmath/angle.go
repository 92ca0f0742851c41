package vmath

import (
	"math"

	"github.com/lixenwraith/gridsight/core"
)

// FullTurn is one rotation in degrees
const FullTurn = 360.0

const radToDeg = 180.0 / math.Pi

// AngleBetween returns the bearing from a to b in degrees within [0, 360)
// The x delta is the atan2 ordinate, so south (+Y) is 0, east is 90, north is 180 and west is 270
// Identical points yield 0
func AngleBetween(a, b core.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return NormalizeDegrees(math.Atan2(dx, dy) * radToDeg)
}

// NormalizeDegrees wraps deg into [0, 360), NaN passes through
func NormalizeDegrees(deg float64) float64 {
	m := math.Mod(deg, FullTurn)
	if m < 0 {
		m += FullTurn
	}
	// -tiny + 360 rounds to 360
	if m >= FullTurn {
		m -= FullTurn
	}
	return m
}

// DegreesLeft returns the counter-clockwise travel from start to end, modulo-360 wrapped
func DegreesLeft(start, end float64) float64 {
	return NormalizeDegrees(end - start)
}

// DegreesRight returns the clockwise travel from start to end, modulo-360 wrapped
func DegreesRight(start, end float64) float64 {
	return NormalizeDegrees(start - end)
}

// DegreesApart returns the shortest angular distance between start and end, within [0, 180]
func DegreesApart(start, end float64) float64 {
	return math.Min(DegreesLeft(start, end), DegreesRight(start, end))
}

// WithinArc checks if angle lies in the arc of the given width centered on center
// The comparison wraps at the 0/360 seam; width >= 360 covers every angle, negative width none
func WithinArc(angle, center, width float64) bool {
	if width < 0 || math.IsNaN(width) || math.IsNaN(angle) || math.IsNaN(center) {
		return false
	}
	if width >= FullTurn {
		return true
	}
	return DegreesApart(center, angle) <= width/2
}
