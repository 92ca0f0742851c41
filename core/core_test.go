package core

import (
	"reflect"
	"testing"
)

func TestBounds(t *testing.T) {
	b := BoundsOf(10, 4)
	if b.MaxX != 9 || b.MaxY != 3 {
		t.Fatalf("BoundsOf(10,4) = %+v", b)
	}
	if b.Width() != 10 || b.Height() != 4 || b.MaxDimension() != 9 {
		t.Errorf("unexpected extents w=%d h=%d max=%d", b.Width(), b.Height(), b.MaxDimension())
	}

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(9, 3), true},
		{Point{X: 9, Y: 3, Z: 7}, true},
		{Pt(10, 3), false},
		{Pt(-1, 0), false},
		{Pt(0, 4), false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if !BoundsOf(0, 5).Empty() {
		t.Error("zero-width bounds should be empty")
	}
}

func TestPointSet(t *testing.T) {
	s := NewPointSet(Pt(1, 1), Pt(2, 2), Pt(1, 1))
	if s.Len() != 2 {
		t.Errorf("duplicates not collapsed, len %d", s.Len())
	}

	other := NewPointSet(Pt(3, 3))
	other.Union(s)
	if !s.SubsetOf(other) || other.SubsetOf(s) {
		t.Error("subset relation wrong after union")
	}

	clipped := NewPointSet(Pt(-1, 0), Pt(0, 0), Pt(5, 5)).Clip(BoundsOf(5, 5))
	if clipped.Len() != 1 || !clipped.Has(Pt(0, 0)) {
		t.Errorf("Clip = %v", clipped.Sorted())
	}

	sorted := NewPointSet(Pt(2, 1), Pt(0, 1), Pt(5, 0), Point{X: 0, Y: 0, Z: 1}).Sorted()
	want := []Point{Pt(5, 0), Pt(0, 1), Pt(2, 1), {X: 0, Y: 0, Z: 1}}
	if !reflect.DeepEqual(sorted, want) {
		t.Errorf("Sorted = %v, want %v", sorted, want)
	}
}

func TestDirection(t *testing.T) {
	if DirNE.Rotate(2) != DirSE {
		t.Errorf("NE rotated twice = %v", DirNE.Rotate(2))
	}
	if DirN.Rotate(-1) != DirNW {
		t.Errorf("N rotated back = %v", DirN.Rotate(-1))
	}
	if DirW.Rotate(10) != DirN {
		t.Errorf("W rotated 10 = %v", DirW.Rotate(10))
	}

	// Opposite directions have opposite offsets and bearings 180 apart
	for d := DirN; d < DirCount; d++ {
		o := d.Rotate(4)
		if d.Offset().Add(o.Offset()) != (Point{}) {
			t.Errorf("%v and %v offsets do not cancel", d, o)
		}
		diff := d.Degrees() - o.Degrees()
		if diff != 180 && diff != -180 {
			t.Errorf("%v and %v bearings differ by %v", d, o, diff)
		}
	}

	if Direction(42).Valid() || Direction(42).Offset() != (Point{}) || Direction(-1).String() != "?" {
		t.Error("invalid directions should degrade to zero values")
	}
}

func TestWallSet(t *testing.T) {
	ws := NewWallSet(Point{X: 1, Y: 1, Z: 5})
	if !ws.Blocked(Pt(1, 1)) || !ws.Blocked(Point{X: 1, Y: 1, Z: 9}) {
		t.Error("wall lookups must ignore the layer")
	}
	if ws.Toggle(Pt(1, 1)) {
		t.Error("toggle should clear an existing wall")
	}
	if !ws.Toggle(Pt(2, 2)) || !ws.Blocked(Pt(2, 2)) {
		t.Error("toggle should set a new wall")
	}
	ws.Clear(Pt(2, 2))
	if len(ws) != 0 {
		t.Errorf("expected empty set, got %d", len(ws))
	}

	bounded := Bounded(ws, BoundsOf(3, 3))
	if !bounded.Blocked(Pt(3, 0)) || bounded.Blocked(Pt(2, 2)) {
		t.Error("Bounded must block outside the grid only")
	}

	fn := ObstructionFunc(func(p Point) bool { return p.X == p.Y })
	if !fn.Blocked(Pt(4, 4)) || fn.Blocked(Pt(4, 3)) {
		t.Error("ObstructionFunc did not forward the predicate")
	}
}
