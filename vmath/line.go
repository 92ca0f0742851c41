package vmath

import "github.com/lixenwraith/gridsight/core"

// ChebyshevDistance returns max(|dx|, |dy|), Z is ignored
func ChebyshevDistance(p0, p1 core.Point) int {
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Line rasterizes the segment p0->p1 by linear interpolation, truncating toward zero
// Yields ChebyshevDistance(p0, p1) points starting at p0; p1 itself is never emitted,
// so chained segments do not repeat their joints. Coincident endpoints yield nil
func Line(p0, p1 core.Point) []core.Point {
	n := ChebyshevDistance(p0, p1)
	if n == 0 {
		return nil
	}
	points := make([]core.Point, 0, n)
	for step := 0; step < n; step++ {
		points = append(points, lerpPoint(p0, p1, step, n))
	}
	return points
}

// LineInclusive is Line with p1 appended, coincident endpoints yield [p0]
func LineInclusive(p0, p1 core.Point) []core.Point {
	n := ChebyshevDistance(p0, p1)
	points := make([]core.Point, 0, n+1)
	for step := 0; step <= n; step++ {
		points = append(points, lerpPoint(p0, p1, step, n))
	}
	return points
}

// lerpPoint interpolates step/n of the way from p0 to p1
// The delta is scaled before dividing so the dominant axis lands on exact integers
func lerpPoint(p0, p1 core.Point, step, n int) core.Point {
	if n == 0 {
		return p0
	}
	return core.Point{
		X: lerpAxis(p0.X, p1.X, step, n),
		Y: lerpAxis(p0.Y, p1.Y, step, n),
		Z: lerpAxis(p0.Z, p1.Z, step, n),
	}
}

func lerpAxis(a, b, step, n int) int {
	return int(float64(a) + float64((b-a)*step)/float64(n))
}
