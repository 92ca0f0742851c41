package vmath

import "github.com/lixenwraith/gridsight/core"

// GridTraverser is a zero-allocation supercover iterator over the cells a segment between two
// cell centers passes through, both endpoints included
// Exact corner crossings step diagonally instead of visiting both side cells
type GridTraverser struct {
	curr   core.Point
	nx, ny int
	ix, iy int
	stepX  int
	stepY  int

	started bool
	done    bool
}

// NewGridTraverser creates an iterator from p0 to p1, Z is carried from p0
func NewGridTraverser(p0, p1 core.Point) GridTraverser {
	t := GridTraverser{curr: p0, stepX: 1, stepY: 1}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if dx < 0 {
		t.stepX = -1
		dx = -dx
	}
	if dy < 0 {
		t.stepY = -1
		dy = -dy
	}
	t.nx, t.ny = dx, dy
	return t
}

// Next advances to the next cell
// Returns true if a valid cell is available via Pos()
func (t *GridTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}
	if t.ix == t.nx && t.iy == t.ny {
		t.done = true
		return false
	}

	// Sign of the crossing test tells whether the segment leaves the cell through a vertical
	// edge, a horizontal edge or exactly through the corner
	decision := (1+2*t.ix)*t.ny - (1+2*t.iy)*t.nx
	switch {
	case decision == 0:
		t.curr.X += t.stepX
		t.curr.Y += t.stepY
		t.ix++
		t.iy++
	case decision < 0:
		t.curr.X += t.stepX
		t.ix++
	default:
		t.curr.Y += t.stepY
		t.iy++
	}
	return true
}

// Pos returns the current cell
func (t *GridTraverser) Pos() core.Point {
	return t.curr
}

// Traverse visits every cell of the supercover from p0 to p1 in order, stopping early when fn
// returns false
func Traverse(p0, p1 core.Point, fn func(p core.Point) bool) {
	t := NewGridTraverser(p0, p1)
	for t.Next() {
		if !fn(t.Pos()) {
			return
		}
	}
}
