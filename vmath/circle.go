package vmath

import (
	"math"

	"github.com/lixenwraith/gridsight/core"
)

// Circle returns the cells within radius of center, clipped to bounds
// Rows span [round(cy-r), round(cy+r)) and each row spans [ceil(cx-dx), floor(cx+dx)) with
// dx = sqrt(r²-(y-cy)²); the half-open spans make radii of x.5 look rounder than whole radii
// The center is always included when in bounds, so radius 0 yields just the center
// Negative or NaN radius yields an empty set
func Circle(center core.Point, radius float64, bounds core.Bounds) core.PointSet {
	circle := make(core.PointSet)
	if !(radius >= 0) || bounds.Empty() {
		return circle
	}

	if bounds.Contains(center) {
		circle.Add(center)
	}

	// No in-bounds cell lies farther than this, keeps infinite radii finite
	limit := float64(abs(center.X) + abs(center.Y) + bounds.MaxX + bounds.MaxY + 2)
	if radius > limit {
		radius = limit
	}

	cx, cy := float64(center.X), float64(center.Y)
	r2 := radius * radius

	top := int(math.Round(cy - radius))
	bot := int(math.Round(cy + radius))
	if top < 0 {
		top = 0
	}
	if bot > bounds.MaxY+1 {
		bot = bounds.MaxY + 1
	}

	for y := top; y < bot; y++ {
		dy := float64(y) - cy
		// Rounded row span can reach half a cell past the radius
		if dy*dy > r2 {
			continue
		}
		dx := math.Sqrt(r2 - dy*dy)
		left := int(math.Ceil(cx - dx))
		right := int(math.Floor(cx + dx))
		if left < 0 {
			left = 0
		}
		if right > bounds.MaxX+1 {
			right = bounds.MaxX + 1
		}

		for x := left; x < right; x++ {
			circle.Add(core.Point{X: x, Y: y, Z: center.Z})
		}
	}
	return circle
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
