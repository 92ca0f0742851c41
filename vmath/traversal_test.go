package vmath

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/gridsight/core"
)

func collect(p0, p1 core.Point) []core.Point {
	var out []core.Point
	Traverse(p0, p1, func(p core.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}

func TestGridTraverserSinglePoint(t *testing.T) {
	got := collect(core.Pt(3, 3), core.Pt(3, 3))
	if len(got) != 1 || got[0] != core.Pt(3, 3) {
		t.Errorf("expected just the start, got %v", got)
	}
}

func TestGridTraverserShapes(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 core.Point
		want   []core.Point
	}{
		{
			"horizontal",
			core.Pt(0, 0), core.Pt(3, 0),
			[]core.Point{core.Pt(0, 0), core.Pt(1, 0), core.Pt(2, 0), core.Pt(3, 0)},
		},
		{
			"diagonal corner steps",
			core.Pt(0, 0), core.Pt(2, 2),
			[]core.Point{core.Pt(0, 0), core.Pt(1, 1), core.Pt(2, 2)},
		},
		{
			"knight move covers both cells",
			core.Pt(0, 0), core.Pt(2, 1),
			[]core.Point{core.Pt(0, 0), core.Pt(1, 0), core.Pt(1, 1), core.Pt(2, 1)},
		},
		{
			"reverse",
			core.Pt(0, 3), core.Pt(0, 0),
			[]core.Point{core.Pt(0, 3), core.Pt(0, 2), core.Pt(0, 1), core.Pt(0, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collect(tt.p0, tt.p1); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Traverse(%v, %v) = %v, want %v", tt.p0, tt.p1, got, tt.want)
			}
		})
	}
}

func TestGridTraverserContiguous(t *testing.T) {
	p0 := core.Pt(5, 5)
	for x := -5; x <= 15; x++ {
		for y := -5; y <= 15; y++ {
			p1 := core.Pt(x, y)
			cells := collect(p0, p1)
			if cells[0] != p0 || cells[len(cells)-1] != p1 {
				t.Fatalf("Traverse(%v,%v) endpoints %v..%v", p0, p1, cells[0], cells[len(cells)-1])
			}
			for i := 1; i < len(cells); i++ {
				if ChebyshevDistance(cells[i-1], cells[i]) != 1 {
					t.Fatalf("Traverse(%v,%v) gap between %v and %v", p0, p1, cells[i-1], cells[i])
				}
			}
		}
	}
}

func TestTraverseStopsEarly(t *testing.T) {
	count := 0
	Traverse(core.Pt(0, 0), core.Pt(10, 0), func(p core.Point) bool {
		count++
		return p.X < 3
	})
	if count != 4 {
		t.Errorf("expected 4 visits before stopping, got %d", count)
	}
}
