package vmath

import (
	"reflect"
	"slices"
	"testing"

	"github.com/lixenwraith/gridsight/core"
)

func TestLineExcludesEndpoint(t *testing.T) {
	got := Line(core.Pt(0, 0), core.Pt(3, 0))
	want := []core.Point{core.Pt(0, 0), core.Pt(1, 0), core.Pt(2, 0)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Line = %v, want %v", got, want)
	}
}

func TestLineShapes(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 core.Point
		want   []core.Point
	}{
		{
			"diagonal",
			core.Pt(0, 0), core.Pt(3, 3),
			[]core.Point{core.Pt(0, 0), core.Pt(1, 1), core.Pt(2, 2)},
		},
		{
			"shallow",
			core.Pt(0, 0), core.Pt(4, 2),
			[]core.Point{core.Pt(0, 0), core.Pt(1, 0), core.Pt(2, 1), core.Pt(3, 1)},
		},
		{
			"backward",
			core.Pt(3, 0), core.Pt(0, 0),
			[]core.Point{core.Pt(3, 0), core.Pt(2, 0), core.Pt(1, 0)},
		},
		{
			// Truncation is toward zero, not floor
			"negative span",
			core.Pt(0, 0), core.Pt(-4, -2),
			[]core.Point{core.Pt(0, 0), core.Pt(-1, 0), core.Pt(-2, -1), core.Pt(-3, -1)},
		},
		{
			"layer interpolates",
			core.Point{X: 0, Y: 0, Z: 0}, core.Point{X: 2, Y: 0, Z: 2},
			[]core.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Line(tt.p0, tt.p1)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Line(%v, %v) = %v, want %v", tt.p0, tt.p1, got, tt.want)
			}
		})
	}
}

func TestLineZeroLength(t *testing.T) {
	if got := Line(core.Pt(4, 4), core.Pt(4, 4)); len(got) != 0 {
		t.Errorf("expected empty line, got %v", got)
	}
	got := LineInclusive(core.Pt(4, 4), core.Pt(4, 4))
	if len(got) != 1 || got[0] != core.Pt(4, 4) {
		t.Errorf("expected single point, got %v", got)
	}
}

func TestLineLengthAndDeterminism(t *testing.T) {
	p0 := core.Pt(2, 9)
	for x := -10; x <= 10; x++ {
		for y := -10; y <= 10; y++ {
			p1 := core.Pt(x, y)
			n := ChebyshevDistance(p0, p1)
			a := Line(p0, p1)
			b := Line(p0, p1)
			if len(a) != n {
				t.Fatalf("Line(%v,%v) has %d points, want %d", p0, p1, len(a), n)
			}
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("Line(%v,%v) not deterministic", p0, p1)
			}
			if n > 0 && a[0] != p0 {
				t.Fatalf("Line(%v,%v) starts at %v", p0, p1, a[0])
			}

			inc := LineInclusive(p0, p1)
			if len(inc) != n+1 || inc[len(inc)-1] != p1 {
				t.Fatalf("LineInclusive(%v,%v) = %v, want %d points ending at p1", p0, p1, inc, n+1)
			}
			if !slices.Equal(inc[:n], a) {
				t.Fatalf("LineInclusive(%v,%v) prefix differs from Line", p0, p1)
			}
		}
	}
}

func TestChebyshevDistance(t *testing.T) {
	if d := ChebyshevDistance(core.Pt(1, 1), core.Pt(4, -6)); d != 7 {
		t.Errorf("ChebyshevDistance = %d, want 7", d)
	}
}
