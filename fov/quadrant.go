package fov

import "github.com/lixenwraith/gridsight/core"

// quadrant maps local (depth, col) coordinates of one cardinal sweep to grid coordinates
type quadrant struct {
	cardinal core.Cardinal
	origin   core.Point
}

func (q quadrant) transform(depth, col int) core.Point {
	o := q.origin
	switch q.cardinal {
	case core.North:
		return core.Point{X: o.X + col, Y: o.Y - depth, Z: o.Z}
	case core.South:
		return core.Point{X: o.X + col, Y: o.Y + depth, Z: o.Z}
	case core.East:
		return core.Point{X: o.X + depth, Y: o.Y + col, Z: o.Z}
	default:
		return core.Point{X: o.X - depth, Y: o.Y + col, Z: o.Z}
	}
}

// row is one scan line of a quadrant at a fixed depth
type row struct {
	depth int
	start slope
	end   slope
}

// cols returns the inclusive column span of the row, empty when minCol > maxCol
// Ties round up on the start side and down on the end side so boundary tiles shared with the
// neighbouring quadrant are only scanned once per edge
func (r row) cols() (minCol, maxCol int) {
	return roundTiesUp(r.depth, r.start), roundTiesDown(r.depth, r.end)
}

// next returns the row one step deeper with the same interval
func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// isSymmetric checks the tile center lies within the row's interval
func (r row) isSymmetric(col int) bool {
	return r.start.atLeast(r.depth, col) && r.end.atMost(r.depth, col)
}
