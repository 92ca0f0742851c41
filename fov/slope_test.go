package fov

import (
	"testing"

	"github.com/lixenwraith/gridsight/core"
)

func TestRounding(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		s        slope
		up, down int
	}{
		{"whole", 3, slope{1, 1}, 3, 3},
		{"negative whole", 3, slope{-1, 1}, -3, -3},
		{"half ties", 1, slope{1, 2}, 1, 0},
		{"negative half ties", 5, slope{-1, 2}, -2, -3},
		{"below half", 3, slope{1, 3}, 1, 1},
		{"tie above one", 4, slope{3, 8}, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundTiesUp(tt.depth, tt.s); got != tt.up {
				t.Errorf("roundTiesUp = %d, want %d", got, tt.up)
			}
			if got := roundTiesDown(tt.depth, tt.s); got != tt.down {
				t.Errorf("roundTiesDown = %d, want %d", got, tt.down)
			}
		})
	}
}

func TestRowCols(t *testing.T) {
	r := row{depth: 2, start: slopeMin, end: slopeMax}
	if lo, hi := r.cols(); lo != -2 || hi != 2 {
		t.Errorf("cols = %d..%d, want -2..2", lo, hi)
	}

	// Inverted interval yields no tiles
	r = row{depth: 3, start: slope{1, 2}, end: slope{-1, 2}}
	if lo, hi := r.cols(); lo <= hi {
		t.Errorf("inverted interval produced cols %d..%d", lo, hi)
	}
}

func TestIsSymmetric(t *testing.T) {
	r := row{depth: 2, start: slopeAt(1, 1), end: slopeMax}
	// start = 1/2, so depth*start = 1
	if !r.isSymmetric(1) {
		t.Error("col 1 lies on the start edge and must count")
	}
	if r.isSymmetric(0) {
		t.Error("col 0 lies before the start edge")
	}
	if !r.isSymmetric(2) {
		t.Error("col 2 lies on the end edge and must count")
	}
}

func TestQuadrantTransform(t *testing.T) {
	origin := pt(10, 10)
	tests := []struct {
		cardinal core.Cardinal
		x, y     int
	}{
		{core.North, 12, 7},
		{core.East, 13, 12},
		{core.South, 12, 13},
		{core.West, 7, 12},
	}
	for _, tt := range tests {
		q := quadrant{cardinal: tt.cardinal, origin: origin}
		p := q.transform(3, 2)
		if p.X != tt.x || p.Y != tt.y {
			t.Errorf("%v: transform(3,2) = (%d,%d), want (%d,%d)", tt.cardinal, p.X, p.Y, tt.x, tt.y)
		}
	}
}
