package core

import "sort"

// PointSet is an unordered set of grid coordinates
type PointSet map[Point]struct{}

// NewPointSet creates a set holding the given points
func NewPointSet(points ...Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p, duplicates are ignored
func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

// Has checks membership
func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of points
func (s PointSet) Len() int {
	return len(s)
}

// Union adds every point of other into s
func (s PointSet) Union(other PointSet) {
	for p := range other {
		s[p] = struct{}{}
	}
}

// SubsetOf checks that every point of s is in other
func (s PointSet) SubsetOf(other PointSet) bool {
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// Clip returns a new set holding only the points inside b
func (s PointSet) Clip(b Bounds) PointSet {
	out := make(PointSet, len(s))
	for p := range s {
		if b.Contains(p) {
			out[p] = struct{}{}
		}
	}
	return out
}

// Sorted returns the points in row-major order (Z, Y, X)
func (s PointSet) Sorted() []Point {
	out := make([]Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}
