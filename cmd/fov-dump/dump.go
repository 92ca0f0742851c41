package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/gridsight/board"
	"github.com/lixenwraith/gridsight/config"
	"github.com/lixenwraith/gridsight/core"
	"github.com/lixenwraith/gridsight/fov"
	"github.com/lixenwraith/gridsight/parameter"
	"github.com/lixenwraith/gridsight/vmath"
)

// Overlay glyphs, later entries draw over earlier ones
const (
	glyphCircle = 'o'
	glyphSector = 's'
	glyphLine   = '*'
	glyphViewer = '@'
)

var (
	errBadPoint     = errors.New("expected x,y")
	errBadDirection = errors.New("unknown direction")
	errOriginWall   = errors.New("origin is not a floor cell")
)

// options holds the parsed command line
type options struct {
	configPath string
	mapPath    string
	seed       int64

	origin string
	depth  int
	legacy bool
	clip   bool
	noFog  bool
	circle bool
	radius float64
	facing string
	angle  float64
	width  float64
	linear bool
	target string
	quiet  bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("fov-dump", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "Config file (default: gridsight.toml, then built-in)")
	fs.StringVar(&o.mapPath, "map", "", "Map file, '#' wall '.' floor '@' origin")
	fs.Int64Var(&o.seed, "seed", 0, "Maze seed when no map is given (0 = config)")
	fs.StringVar(&o.origin, "at", "", "Viewer position x,y (default: map origin or maze start)")
	fs.IntVar(&o.depth, "depth", -1, "Scan depth, 0 scans to the board edge (default: config)")
	fs.BoolVar(&o.legacy, "legacy", false, "Use the fixed legacy scan depth")
	fs.BoolVar(&o.clip, "clip", false, "Drop visible cells outside the board")
	fs.BoolVar(&o.noFog, "nofog", false, "Draw cells outside the view")
	fs.BoolVar(&o.circle, "circle", false, "Overlay the circle around the viewer")
	fs.Float64Var(&o.radius, "radius", math.NaN(), "Circle radius (default: config)")
	fs.StringVar(&o.facing, "facing", "", "Overlay the sector toward a compass direction (N, NE, ... NW)")
	fs.Float64Var(&o.angle, "angle", math.NaN(), "Overlay the sector centered on a bearing in degrees, south is 0")
	fs.Float64Var(&o.width, "width", math.NaN(), "Sector width in degrees (default: config)")
	fs.BoolVar(&o.linear, "linear", false, "Plain numeric sector test without seam wrapping")
	fs.StringVar(&o.target, "to", "", "Draw the line to x,y and report line of sight")
	fs.BoolVar(&o.quiet, "q", false, "Print only the map")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return o, nil
}

func parsePoint(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	return core.Pt(x, y), nil
}

func parseDirection(s string) (core.Direction, error) {
	for d := core.DirN; d < core.DirCount; d++ {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errBadDirection, s)
}

func run(args []string, out io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadAuto(o.configPath)
	if err != nil {
		return err
	}
	if o.mapPath != "" {
		cfg.Board.Map = o.mapPath
	}
	if o.seed != 0 {
		cfg.Board.Seed = o.seed
	}

	b, err := cfg.Board.Load()
	if err != nil {
		return err
	}

	origin := b.Origin
	if o.origin != "" {
		if origin, err = parsePoint(o.origin); err != nil {
			return err
		}
	} else if !b.HasOrigin {
		return fmt.Errorf("%w: map has no '@', pass -at", errBadPoint)
	}
	if b.Blocked(origin) {
		return fmt.Errorf("%w: (%d,%d)", errOriginWall, origin.X, origin.Y)
	}

	view := fov.Config{MaxDepth: cfg.View.MaxDepth, ClipToBounds: cfg.View.ClipToBounds || o.clip}
	if o.depth >= 0 {
		view.MaxDepth = o.depth
	}
	if o.legacy {
		view.MaxDepth = parameter.LegacyViewDepth
	}
	visible := fov.ComputeWithConfig(origin, b, b.Bounds, view)

	radius := cfg.View.Radius
	if !math.IsNaN(o.radius) {
		radius = o.radius
	}
	width := cfg.View.SectorWidth
	if !math.IsNaN(o.width) {
		width = o.width
	}

	var layers []board.Layer
	var summary []string
	summary = append(summary, fmt.Sprintf("origin (%d,%d) visible %d", origin.X, origin.Y, visible.Len()))

	circle := vmath.Circle(origin, radius, b.Bounds)
	if o.circle {
		layers = append(layers, board.Layer{Points: circle, Glyph: glyphCircle})
		summary = append(summary, fmt.Sprintf("circle r=%g %d", radius, circle.Len()))
	}

	angle := o.angle
	if o.facing != "" {
		d, err := parseDirection(o.facing)
		if err != nil {
			return err
		}
		angle = d.Degrees()
	}
	if !math.IsNaN(angle) {
		take := vmath.TakeSector
		if o.linear || cfg.View.LinearSector {
			take = vmath.TakeSectorLinear
		}
		sector := take(angle, width, origin, circle)
		layers = append(layers, board.Layer{Points: sector, Glyph: glyphSector})
		summary = append(summary, fmt.Sprintf("sector %g/%g %d", vmath.NormalizeDegrees(angle), width, sector.Len()))
	}

	if o.target != "" {
		to, err := parsePoint(o.target)
		if err != nil {
			return err
		}
		line := core.NewPointSet(vmath.LineInclusive(origin, to)...)
		layers = append(layers, board.Layer{Points: line, Glyph: glyphLine, OnWalls: true})

		los := "blocked"
		if fov.HasLineOfSight(origin, to, b) {
			los = "clear"
		}
		summary = append(summary, fmt.Sprintf("line to (%d,%d) %d steps, los %s", to.X, to.Y, vmath.ChebyshevDistance(origin, to), los))
	}

	layers = append(layers, board.Layer{Points: core.NewPointSet(origin), Glyph: glyphViewer, OnWalls: true})

	fog := visible
	if o.noFog {
		fog = nil
	}
	if _, err := io.WriteString(out, b.Render(fog, layers...)); err != nil {
		return err
	}
	if !o.quiet {
		_, err = fmt.Fprintln(out, strings.Join(summary, "  "))
	}
	return err
}
