package fov

// slope is an exact rational num/den with den > 0
// Row bounds are compared against integer columns, exact arithmetic keeps the symmetry test
// free of rounding drift
type slope struct {
	num, den int
}

var (
	slopeMin = slope{num: -1, den: 1}
	slopeMax = slope{num: 1, den: 1}
)

// slopeAt returns the slope of the left edge of the tile at (depth, col): (2col-1)/(2depth)
func slopeAt(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

// roundTiesUp returns round(depth*s) with .5 rounded up
func roundTiesUp(depth int, s slope) int {
	// floor(depth*num/den + 1/2)
	return floorDiv(2*depth*s.num+s.den, 2*s.den)
}

// roundTiesDown returns round(depth*s) with .5 rounded down
func roundTiesDown(depth int, s slope) int {
	// ceil(depth*num/den - 1/2)
	return ceilDiv(2*depth*s.num-s.den, 2*s.den)
}

// atLeast checks col >= depth*s
func (s slope) atLeast(depth, col int) bool {
	return col*s.den >= depth*s.num
}

// atMost checks col <= depth*s
func (s slope) atMost(depth, col int) bool {
	return col*s.den <= depth*s.num
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}
