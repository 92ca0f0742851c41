package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridsight/board"
	"github.com/lixenwraith/gridsight/config"
	"github.com/lixenwraith/gridsight/core"
	"github.com/lixenwraith/gridsight/fov"
	"github.com/lixenwraith/gridsight/parameter"
	"github.com/lixenwraith/gridsight/vmath"
)

const errorBlinkMs = 300

// overlayMode selects the area query drawn over the view
type overlayMode uint8

const (
	overlayNone overlayMode = iota
	overlayCircle
	overlaySector
	overlayCount
)

func (m overlayMode) String() string {
	switch m {
	case overlayCircle:
		return "circle"
	case overlaySector:
		return "sector"
	}
	return "none"
}

var (
	styleDefault  = tcell.StyleDefault
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHidden   = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleOverlay  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorOlive)
	styleLine     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleBlocked  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleViewer   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleViewErr  = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleStatusHi = tcell.StyleDefault.Foreground(tcell.ColorMaroon).Background(tcell.ColorSilver)
)

// Sandbox is an interactive view of one board and one viewer
type Sandbox struct {
	screen tcell.Screen
	cfg    config.Config

	board  *board.Board
	viewer core.Point
	facing core.Direction
	legacy bool

	overlay overlayMode
	target  core.Point
	pinned  bool

	// Derived each time the viewer or the walls change
	visible core.PointSet
	region  core.PointSet
	line    []core.Point
	lineLOS bool

	blockedAt time.Time
	audioInit bool
}

// NewSandbox opens the screen and prepares the first board
func NewSandbox(cfg config.Config) (*Sandbox, error) {
	b, err := cfg.Board.Load()
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	s := &Sandbox{
		screen: screen,
		cfg:    cfg,
		facing: core.DirE,
	}
	s.setBoard(b)

	if cfg.Audio.Enabled {
		if err := s.initAudio(); err != nil {
			// Non-fatal, the sandbox runs silent
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	return s, nil
}

func (s *Sandbox) setBoard(b *board.Board) {
	s.board = b
	s.pinned = false
	s.viewer = core.Pt(b.Bounds.Width()/2, b.Bounds.Height()/2)
	if b.HasOrigin {
		s.viewer = b.Origin
	}
	if b.Blocked(s.viewer) {
		if floors := b.Floors(); len(floors) > 0 {
			s.viewer = floors[0]
		}
	}
	s.recompute()
}

func (s *Sandbox) fovConfig() fov.Config {
	cfg := fov.Config{MaxDepth: s.cfg.View.MaxDepth, ClipToBounds: s.cfg.View.ClipToBounds}
	if s.legacy {
		cfg.MaxDepth = parameter.LegacyViewDepth
	}
	return cfg
}

// recompute refreshes every derived set for the current viewer
func (s *Sandbox) recompute() {
	start := time.Now()
	s.visible = fov.ComputeWithConfig(s.viewer, s.board, s.board.Bounds, s.fovConfig())

	switch s.overlay {
	case overlayCircle:
		s.region = vmath.Circle(s.viewer, s.cfg.View.Radius, s.board.Bounds)
	case overlaySector:
		circle := vmath.Circle(s.viewer, s.cfg.View.Radius, s.board.Bounds)
		if s.cfg.View.LinearSector {
			s.region = vmath.TakeSectorLinear(s.facing.Degrees(), s.cfg.View.SectorWidth, s.viewer, circle)
		} else {
			s.region = vmath.TakeSector(s.facing.Degrees(), s.cfg.View.SectorWidth, s.viewer, circle)
		}
	default:
		s.region = nil
	}

	s.line = nil
	if s.pinned {
		s.line = vmath.LineInclusive(s.viewer, s.target)
		s.lineLOS = fov.HasLineOfSight(s.viewer, s.target, s.board)
	}
	log.Printf("fov from %v: %d cells in %v", s.viewer, s.visible.Len(), time.Since(start))
}

func (s *Sandbox) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		s.audioInit = true
	}
	return err
}

func (s *Sandbox) playBlockedTone() {
	if !s.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(parameter.SandboxToneMs * time.Millisecond)
	tone, err := generators.SineTone(sampleRate, parameter.SandboxToneHz)
	if err != nil {
		log.Printf("tone generator: %v", err)
		return
	}
	speaker.Play(beep.Take(duration, tone))
}

func (s *Sandbox) move(d core.Direction) {
	s.facing = d
	next := s.viewer.Add(d.Offset())
	if s.board.Blocked(next) {
		s.blockedAt = time.Now()
		s.playBlockedTone()
		s.recompute()
		return
	}
	s.viewer = next
	s.recompute()
}

func (s *Sandbox) toggleWallAhead() {
	p := s.viewer.Add(s.facing.Offset())
	if !s.board.Bounds.Contains(p) {
		return
	}
	s.board.Walls.Toggle(p)
	s.recompute()
}

func (s *Sandbox) regenerate() {
	if s.cfg.Board.Map != "" {
		return
	}
	s.cfg.Board.Seed = time.Now().UnixNano()
	b, err := s.cfg.Board.Load()
	if err != nil {
		log.Printf("regenerate: %v", err)
		return
	}
	s.setBoard(b)
}

func (s *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			s.move(core.DirN)
		case tcell.KeyDown:
			s.move(core.DirS)
		case tcell.KeyLeft:
			s.move(core.DirW)
		case tcell.KeyRight:
			s.move(core.DirE)
		case tcell.KeyRune:
			return s.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *Sandbox) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'k':
		s.move(core.DirN)
	case 'j':
		s.move(core.DirS)
	case 'h':
		s.move(core.DirW)
	case 'l':
		s.move(core.DirE)
	case 'y':
		s.move(core.DirNW)
	case 'u':
		s.move(core.DirNE)
	case 'b':
		s.move(core.DirSW)
	case 'n':
		s.move(core.DirSE)
	case 'f':
		s.facing = s.facing.Rotate(1)
		s.recompute()
	case 'F':
		s.facing = s.facing.Rotate(-1)
		s.recompute()
	case 'w':
		s.toggleWallAhead()
	case 'c':
		s.overlay = (s.overlay + 1) % overlayCount
		s.recompute()
	case 't':
		s.target, s.pinned = s.viewer, true
		s.recompute()
	case 'T':
		s.pinned = false
		s.recompute()
	case 'd':
		s.legacy = !s.legacy
		s.recompute()
	case 'r':
		s.regenerate()
	}
	return true
}

func (s *Sandbox) draw() {
	s.screen.Clear()
	width, height := s.screen.Size()

	b := s.board
	for y := 0; y <= b.Bounds.MaxY && y < height-1; y++ {
		for x := 0; x <= b.Bounds.MaxX && x < width; x++ {
			p := core.Pt(x, y)
			wall := b.Walls.Blocked(p)
			seen := s.visible.Has(p)

			ch, style := ' ', styleDefault
			switch {
			case wall && seen:
				ch, style = '#', styleWall
			case wall:
				ch, style = '#', styleHidden
			case seen:
				ch, style = '.', styleFloor
			}
			if seen && s.region.Has(p) {
				style = styleOverlay
			}
			s.screen.SetContent(x, y, ch, nil, style)
		}
	}

	for _, p := range s.line {
		if p.X < width && p.Y < height-1 && b.Bounds.Contains(p) {
			style := styleLine
			if !s.lineLOS {
				style = styleBlocked
			}
			s.screen.SetContent(p.X, p.Y, '*', nil, style)
		}
	}

	viewerStyle := styleViewer
	if time.Since(s.blockedAt).Milliseconds() < errorBlinkMs {
		viewerStyle = styleViewErr
	}
	s.screen.SetContent(s.viewer.X, s.viewer.Y, '@', nil, viewerStyle)

	s.drawStatus(width, height)
	s.screen.Show()
}

func (s *Sandbox) drawStatus(width, height int) {
	depth := "edge"
	if s.legacy {
		depth = fmt.Sprintf("%d", parameter.LegacyViewDepth)
	} else if s.cfg.View.MaxDepth > 0 {
		depth = fmt.Sprintf("%d", s.cfg.View.MaxDepth)
	}

	status := fmt.Sprintf(" (%d,%d) facing %s  depth %s  visible %d  overlay %s",
		s.viewer.X, s.viewer.Y, s.facing, depth, s.visible.Len(), s.overlay)
	if s.region != nil {
		status += fmt.Sprintf(" %d", s.region.Len())
	}

	los := ""
	if s.pinned {
		los = "  los clear"
		if !s.lineLOS {
			los = "  los blocked"
		}
	}
	help := "  [hjklyubn] move [f/F] face [w] wall [c] overlay [t/T] target [d] depth [r] maze [q] quit"

	x := 0
	y := height - 1
	for _, part := range []struct {
		text  string
		style tcell.Style
	}{{status, styleStatus}, {los, styleStatusHi}, {help, styleStatus}} {
		for _, r := range part.text {
			if x >= width {
				return
			}
			s.screen.SetContent(x, y, r, nil, part.style)
			x++
		}
	}
	for ; x < width; x++ {
		s.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
}

func (s *Sandbox) run() {
	ticker := time.NewTicker(parameter.SandboxFrameMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	goSafe(func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			s.draw()
		}
	}
}

func (s *Sandbox) cleanup() {
	if s.audioInit {
		speaker.Close()
	}
	s.screen.Fini()
}
