package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/gridsight/board"
	"github.com/lixenwraith/gridsight/core"
)

type Config struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze) to 1.0 (no dead ends)
	// Higher values open loops, which gives line-of-sight more to work with
	Braiding float64

	// If true, the outer ring is cleared and sight can leave through the grid edge
	RemoveBorders bool

	Seed int64 // Optional (0 = Random)
}

type Result struct {
	Board      *board.Board
	Start, End core.Point
}

// Generate carves a maze with a recursive backtracker and optional braiding
// Even sizes are rounded down to odd so every corridor is framed by walls
func Generate(cfg Config) Result {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	g := newGrid(cols, rows)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := core.Pt(1, 1)
	end := core.Pt(cols-2, rows-2)

	g.carve(start, rng)

	// Before braiding so edge rooms count their outside exits
	if cfg.RemoveBorders {
		g.stripBorders()
	}
	if cfg.Braiding > 0 {
		g.braid(cfg.Braiding, rng)
	}

	b := board.New(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g.wall(x, y) {
				b.Walls.Set(core.Pt(x, y))
			}
		}
	}
	b.Origin, b.HasOrigin = start, true

	return Result{Board: b, Start: start, End: end}
}

var (
	stepDirs = [4]core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	jumpDirs = [4]core.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
)

// grid is a row-major wall bitmap
type grid struct {
	cols, rows int
	cells      []bool
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows, cells: make([]bool, cols*rows)}
	for i := range g.cells {
		g.cells[i] = true
	}
	return g
}

func (g *grid) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.cols && y < g.rows
}

// wall treats out-of-range cells as wall
func (g *grid) wall(x, y int) bool {
	if !g.in(x, y) {
		return true
	}
	return g.cells[y*g.cols+x]
}

func (g *grid) open(x, y int) {
	if g.in(x, y) {
		g.cells[y*g.cols+x] = false
	}
}

// carve runs the backtracker over odd cells, leaving a one-cell wall frame
func (g *grid) carve(start core.Point, rng *rand.Rand) {
	stack := []core.Point{start}
	g.open(start.X, start.Y)

	candidates := make([]core.Point, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range jumpDirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if nx > 0 && nx < g.cols-1 && ny > 0 && ny < g.rows-1 && g.wall(nx, ny) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		g.open(curr.X+d.X/2, curr.Y+d.Y/2)
		next := core.Pt(curr.X+d.X, curr.Y+d.Y)
		g.open(next.X, next.Y)
		stack = append(stack, next)
	}
}

// braid knocks through a wall of dead-end rooms with the given probability
func (g *grid) braid(probability float64, rng *rand.Rand) {
	candidates := make([]core.Point, 0, 4)

	for y := 1; y < g.rows-1; y += 2 {
		for x := 1; x < g.cols-1; x += 2 {
			if g.wall(x, y) || g.exits(x, y) != 1 || rng.Float64() >= probability {
				continue
			}

			candidates = candidates[:0]
			for _, d := range jumpDirs {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if g.in(nx, ny) && !g.wall(nx, ny) && g.wall(wx, wy) && g.safeToOpen(wx, wy) {
					candidates = append(candidates, core.Pt(wx, wy))
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				g.open(c.X, c.Y)
			}
		}
	}
}

func (g *grid) exits(x, y int) int {
	n := 0
	for _, d := range stepDirs {
		if !g.wall(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

// safeToOpen rejects openings that would create a 2x2 open plaza or leave a free-standing pillar
func (g *grid) safeToOpen(x, y int) bool {
	floor := func(tx, ty int) bool { return g.in(tx, ty) && !g.wall(tx, ty) }

	for _, q := range [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if floor(x+q[0], y) && floor(x, y+q[1]) && floor(x+q[0], y+q[1]) {
			return false
		}
	}

	for _, d := range stepDirs {
		nx, ny := x+d.X, y+d.Y
		if !g.in(nx, ny) || !g.wall(nx, ny) {
			continue
		}
		links := 0
		for _, d2 := range stepDirs {
			ax, ay := nx+d2.X, ny+d2.Y
			if ax == x && ay == y {
				continue
			}
			if g.in(ax, ay) && g.wall(ax, ay) {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}
	return true
}

func (g *grid) stripBorders() {
	for x := 0; x < g.cols; x++ {
		g.open(x, 0)
		g.open(x, g.rows-1)
	}
	for y := 0; y < g.rows; y++ {
		g.open(0, y)
		g.open(g.cols-1, y)
	}
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
