package vmath

import (
	"github.com/lixenwraith/gridsight/core"
	"github.com/lixenwraith/gridsight/parameter"
)

// TakeSector returns the points of region whose bearing from center lies within width/2 of angle
// Bearings wrap at the 0/360 seam, a sector at 0 with width 20 keeps a point at 355
// The result is always a subset of region; negative width yields an empty set
func TakeSector(angle, width float64, center core.Point, region core.PointSet) core.PointSet {
	sector := make(core.PointSet)
	for p := range region {
		if WithinArc(AngleBetween(center, p), angle, width) {
			sector.Add(p)
		}
	}
	return sector
}

// TakeSectorLinear is TakeSector with a plain numeric range test [angle-width/2, angle+width/2]
// Sectors straddling the 0/360 seam lose the far side, kept for parity with existing data
func TakeSectorLinear(angle, width float64, center core.Point, region core.PointSet) core.PointSet {
	sector := make(core.PointSet)
	lo, hi := angle-width/2, angle+width/2
	for p := range region {
		a := AngleBetween(center, p)
		if a >= lo && a <= hi {
			sector.Add(p)
		}
	}
	return sector
}

// SectorFacing returns the FacingSectorWidth cone of region centered on the compass bearing of facing
func SectorFacing(facing core.Direction, center core.Point, region core.PointSet) core.PointSet {
	return TakeSector(facing.Degrees(), parameter.FacingSectorWidth, center, region)
}
