// Package fov computes field of view on a bounded grid using symmetric recursive shadowcasting.
//
// The scan is split into four quadrants around the origin. Each quadrant is swept outward row
// by row, every row carrying the slope interval still reachable from the origin. Walls narrow
// the interval for the rows behind them. A floor cell is only reported when its center lies
// inside the interval, which makes visibility between two floor cells mutual.
//
// Cells outside the bounds block sight like walls and, like walls, are reported when reached.
// Set Config.ClipToBounds to drop them from the result.
package fov
