package core

// Cardinal selects one of the four quadrants a visibility scan is split into
type Cardinal uint8

const (
	North Cardinal = iota
	East
	South
	West
)

// Cardinals in scan order
var Cardinals = [4]Cardinal{North, East, South, West}

func (c Cardinal) String() string {
	switch c {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// Direction is an 8-way compass facing, grid y grows southward
// Index order: N=0, NE=1, E=2, SE=3, S=4, SW=5, W=6, NW=7
type Direction int8

const (
	DirN Direction = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
	DirCount
)

// Offsets matching DirN..DirNW
var dirOffsets = [DirCount]Point{
	{0, -1, 0}, {1, -1, 0}, {1, 0, 0}, {1, 1, 0},
	{0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0},
}

// Compass degrees matching DirN..DirNW, in the convention of vmath.AngleBetween
// where south is 0 and east is 90
var compassDegrees = [DirCount]float64{
	180, 135, 90, 45,
	0, 315, 270, 225,
}

var dirNames = [DirCount]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Valid checks the direction is one of the eight compass points
func (d Direction) Valid() bool {
	return d >= 0 && d < DirCount
}

// Offset returns the unit step toward d, zero for invalid directions
func (d Direction) Offset() Point {
	if !d.Valid() {
		return Point{}
	}
	return dirOffsets[d]
}

// Degrees returns the compass angle of d, 0 for invalid directions
func (d Direction) Degrees() float64 {
	if !d.Valid() {
		return 0
	}
	return compassDegrees[d]
}

// Rotate turns d by steps of 45 degrees, positive is clockwise
func (d Direction) Rotate(steps int) Direction {
	n := (int(d) + steps) % int(DirCount)
	if n < 0 {
		n += int(DirCount)
	}
	return Direction(n)
}

func (d Direction) String() string {
	if !d.Valid() {
		return "?"
	}
	return dirNames[d]
}
