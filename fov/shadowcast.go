package fov

import (
	"github.com/lixenwraith/gridsight/core"
	"github.com/lixenwraith/gridsight/parameter"
)

// Config tunes a visibility query
type Config struct {
	// MaxDepth is the deepest row scanned per quadrant, in cells
	// Zero or negative derives it from the bounds so every in-bounds cell is reachable
	MaxDepth int

	// ClipToBounds drops out-of-bounds cells from the result
	ClipToBounds bool
}

// DefaultConfig scans to the bounds and keeps the permissive out-of-bounds output
func DefaultConfig() Config {
	return Config{}
}

// LegacyConfig reproduces the fixed 15-row cutoff of earlier releases
func LegacyConfig() Config {
	return Config{MaxDepth: parameter.LegacyViewDepth}
}

// DepthForBounds returns the row cutoff needed to reach every in-bounds cell from origin, plus
// one row so the out-of-bounds ring around the grid is reported consistently
func DepthForBounds(origin core.Point, bounds core.Bounds) int {
	d := origin.X
	if v := bounds.MaxX - origin.X; v > d {
		d = v
	}
	if origin.Y > d {
		d = origin.Y
	}
	if v := bounds.MaxY - origin.Y; v > d {
		d = v
	}
	if d < 0 {
		d = 0
	}
	return d + 1
}

// Compute returns the cells visible from origin using DefaultConfig
func Compute(origin core.Point, obs core.Obstruction, bounds core.Bounds) core.PointSet {
	return ComputeWithConfig(origin, obs, bounds, DefaultConfig())
}

// ComputeWithConfig returns the cells visible from origin
// The origin is always in the result. Walls and out-of-bounds cells are reported when reached,
// floor cells only when visible symmetrically. Every output cell carries the origin's Z
// A nil obs is an open grid
func ComputeWithConfig(origin core.Point, obs core.Obstruction, bounds core.Bounds, cfg Config) core.PointSet {
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DepthForBounds(origin, bounds)
	}

	blocked := func(p core.Point) bool {
		if !bounds.Contains(p) {
			return true
		}
		return obs != nil && obs.Blocked(p)
	}

	visible := make(core.PointSet)
	visible.Add(origin)

	for _, c := range core.Cardinals {
		scanQuadrant(quadrant{cardinal: c, origin: origin}, blocked, maxDepth, visible)
	}

	if cfg.ClipToBounds {
		clipped := visible.Clip(bounds)
		clipped.Add(origin)
		return clipped
	}
	return visible
}

// scanQuadrant sweeps one quadrant with an explicit row stack
// Each pushed row is an independent copy, so sibling branches never share interval state
func scanQuadrant(q quadrant, blocked func(core.Point) bool, maxDepth int, visible core.PointSet) {
	stack := []row{{depth: 1, start: slopeMin, end: slopeMax}}

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		minCol, maxCol := r.cols()
		// Rows never inherit the parent row's last tile, a carried wall flag breaks mutual visibility
		hasPrev, prevWall := false, false

		for col := minCol; col <= maxCol; col++ {
			p := q.transform(r.depth, col)
			wall := blocked(p)

			if wall || r.isSymmetric(col) {
				visible.Add(p)
			}

			if hasPrev {
				if prevWall && !wall {
					// Leaving a wall run, its edge bounds everything deeper from this side
					r.start = slopeAt(r.depth, col)
				}
				if !prevWall && wall && r.depth < maxDepth {
					// Open run ended, continue it behind this row up to the wall's edge
					next := r.next()
					next.end = slopeAt(r.depth, col)
					stack = append(stack, next)
				}
			}
			hasPrev, prevWall = true, wall
		}

		if hasPrev && !prevWall && r.depth < maxDepth {
			stack = append(stack, r.next())
		}
	}
}
