package core

// Point is a grid coordinate, Z is a layer carried through geometry untouched
type Point struct {
	X, Y, Z int
}

// Pt returns a point on layer 0
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by d, keeping p's layer
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y, Z: p.Z}
}

// Flat returns p with Z cleared, used as a layer-agnostic lookup key
func (p Point) Flat() Point {
	return Point{X: p.X, Y: p.Y}
}

// Bounds is an inclusive grid extent: 0 <= x <= MaxX, 0 <= y <= MaxY
type Bounds struct {
	MaxX, MaxY int
}

// BoundsOf returns the bounds of a width x height grid
func BoundsOf(width, height int) Bounds {
	return Bounds{MaxX: width - 1, MaxY: height - 1}
}

// Contains checks if p lies within the bounds, Z is ignored
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= b.MaxX && p.Y <= b.MaxY
}

// Width returns the column count
func (b Bounds) Width() int { return b.MaxX + 1 }

// Height returns the row count
func (b Bounds) Height() int { return b.MaxY + 1 }

// MaxDimension returns the larger of MaxX and MaxY, the farthest depth any in-bounds cell
// can lie from an in-bounds origin along a quadrant axis
func (b Bounds) MaxDimension() int {
	if b.MaxX > b.MaxY {
		return b.MaxX
	}
	return b.MaxY
}

// Empty reports whether the bounds contain no cells
func (b Bounds) Empty() bool {
	return b.MaxX < 0 || b.MaxY < 0
}
