package fov

import (
	"github.com/lixenwraith/gridsight/core"
	"github.com/lixenwraith/gridsight/vmath"
)

// HasLineOfSight checks the supercover segment between from and to crosses no blocked cell
// Endpoints are not tested, a creature standing in a doorway can still be targeted
// Diagonal steps through an exact corner pass between the two side cells
func HasLineOfSight(from, to core.Point, obs core.Obstruction) bool {
	if obs == nil {
		return true
	}
	open := true
	vmath.Traverse(from, to, func(p core.Point) bool {
		if p.X == from.X && p.Y == from.Y {
			return true
		}
		if p.X == to.X && p.Y == to.Y {
			return false
		}
		if obs.Blocked(p) {
			open = false
			return false
		}
		return true
	})
	return open
}
