package board

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/gridsight/core"
)

// Map glyphs
const (
	GlyphWall   = '#'
	GlyphFloor  = '.'
	GlyphOpen   = ' '
	GlyphOrigin = '@'
)

// Sentinel errors
var (
	ErrEmptyBoard      = errors.New("board has no rows")
	ErrRaggedRow       = errors.New("row width differs from first row")
	ErrUnknownGlyph    = errors.New("unknown map glyph")
	ErrMultipleOrigins = errors.New("more than one origin marker")
)

// Board is a wall grid on layer 0, it blocks walls and everything outside its bounds
type Board struct {
	Bounds core.Bounds
	Walls  core.WallSet

	Origin    core.Point
	HasOrigin bool
}

// New creates an open board of width x height cells
func New(width, height int) *Board {
	return &Board{
		Bounds: core.BoundsOf(width, height),
		Walls:  core.NewWallSet(),
	}
}

// Parse reads a map where '#' is wall, '.' or ' ' is floor and '@' marks the origin floor cell
// Leading and trailing blank lines are ignored, carriage returns are stripped
func Parse(text string) (*Board, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil, ErrEmptyBoard
	}

	lines := strings.Split(text, "\n")
	width := utf8.RuneCountInString(lines[0])
	if width == 0 {
		return nil, ErrEmptyBoard
	}

	b := New(width, len(lines))
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("row %d: %w (%d != %d)", y, ErrRaggedRow, n, width)
		}
		x := 0
		for _, r := range line {
			p := core.Pt(x, y)
			switch r {
			case GlyphWall:
				b.Walls.Set(p)
			case GlyphFloor, GlyphOpen:
			case GlyphOrigin:
				if b.HasOrigin {
					return nil, fmt.Errorf("row %d col %d: %w", y, x, ErrMultipleOrigins)
				}
				b.Origin, b.HasOrigin = p, true
			default:
				return nil, fmt.Errorf("row %d col %d: %w %q", y, x, ErrUnknownGlyph, r)
			}
			x++
		}
	}
	return b, nil
}

// Blocked reports walls and out-of-bounds cells
func (b *Board) Blocked(p core.Point) bool {
	return !b.Bounds.Contains(p) || b.Walls.Blocked(p)
}

// Floors returns every in-bounds non-wall cell in row-major order
func (b *Board) Floors() []core.Point {
	// Walls can hold out-of-bounds cells
	n := b.Bounds.Width()*b.Bounds.Height() - len(b.Walls)
	if n < 0 {
		n = 0
	}
	floors := make([]core.Point, 0, n)
	for y := 0; y <= b.Bounds.MaxY; y++ {
		for x := 0; x <= b.Bounds.MaxX; x++ {
			p := core.Pt(x, y)
			if !b.Walls.Blocked(p) {
				floors = append(floors, p)
			}
		}
	}
	return floors
}

// Layer draws Glyph over the cells of Points, walls are only covered when OnWalls is set
type Layer struct {
	Points  core.PointSet
	Glyph   rune
	OnWalls bool
}

// Render draws the board as text, one line per row
// Cells outside a non-nil fog set are blank. Layers are applied in order, later ones win
// Only layer-0 cells are matched
func (b *Board) Render(fog core.PointSet, layers ...Layer) string {
	var sb strings.Builder
	sb.Grow((b.Bounds.Width() + 1) * b.Bounds.Height())

	for y := 0; y <= b.Bounds.MaxY; y++ {
		for x := 0; x <= b.Bounds.MaxX; x++ {
			sb.WriteRune(b.glyphAt(core.Pt(x, y), fog, layers))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) glyphAt(p core.Point, fog core.PointSet, layers []Layer) rune {
	wall := b.Walls.Blocked(p)
	if fog != nil && !fog.Has(p) {
		return GlyphOpen
	}

	glyph := rune(GlyphFloor)
	if wall {
		glyph = GlyphWall
	}
	for _, l := range layers {
		if l.Points.Has(p) && (!wall || l.OnWalls) {
			glyph = l.Glyph
		}
	}
	return glyph
}

// ReadFile parses a map file
func ReadFile(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", path, err)
	}
	b, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return b, nil
}
