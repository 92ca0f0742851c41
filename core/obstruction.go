package core

// Obstruction answers whether a coordinate blocks sight
// Implementations must not change while a query is running
type Obstruction interface {
	Blocked(p Point) bool
}

// ObstructionFunc adapts a predicate to Obstruction
type ObstructionFunc func(p Point) bool

func (f ObstructionFunc) Blocked(p Point) bool { return f(p) }

// WallSet is a set-backed Obstruction, lookups ignore Z
type WallSet map[Point]struct{}

// NewWallSet creates a wall set from coordinates
func NewWallSet(walls ...Point) WallSet {
	ws := make(WallSet, len(walls))
	for _, w := range walls {
		ws[w.Flat()] = struct{}{}
	}
	return ws
}

func (ws WallSet) Blocked(p Point) bool {
	_, ok := ws[p.Flat()]
	return ok
}

// Set marks p as wall
func (ws WallSet) Set(p Point) {
	ws[p.Flat()] = struct{}{}
}

// Clear removes the wall at p
func (ws WallSet) Clear(p Point) {
	delete(ws, p.Flat())
}

// Toggle flips p and returns the new state
func (ws WallSet) Toggle(p Point) bool {
	k := p.Flat()
	if _, ok := ws[k]; ok {
		delete(ws, k)
		return false
	}
	ws[k] = struct{}{}
	return true
}

// Bounded treats every coordinate outside b as blocked in addition to obs
func Bounded(obs Obstruction, b Bounds) Obstruction {
	return ObstructionFunc(func(p Point) bool {
		return !b.Contains(p) || obs.Blocked(p)
	})
}
