package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gridsight/board"
	"github.com/lixenwraith/gridsight/maze"
	"github.com/lixenwraith/gridsight/parameter"
)

// DefaultConfigPath is probed when no explicit path is given
const DefaultConfigPath = "gridsight.toml"

//go:embed default.toml
var embeddedDefault string

// Sentinel errors
var (
	ErrNotFound     = errors.New("config file not found")
	ErrInvalidValue = errors.New("invalid config value")
)

type Board struct {
	Map           string  `toml:"map"`
	Width         int     `toml:"width"`
	Height        int     `toml:"height"`
	Braiding      float64 `toml:"braiding"`
	RemoveBorders bool    `toml:"remove_borders"`
	Seed          int64   `toml:"seed"`
}

// Load reads the map file when one is set and generates a maze otherwise
func (b Board) Load() (*board.Board, error) {
	if b.Map != "" {
		return board.ReadFile(b.Map)
	}
	res := maze.Generate(maze.Config{
		Width:         b.Width,
		Height:        b.Height,
		Braiding:      b.Braiding,
		RemoveBorders: b.RemoveBorders,
		Seed:          b.Seed,
	})
	return res.Board, nil
}

type View struct {
	MaxDepth     int     `toml:"max_depth"`
	ClipToBounds bool    `toml:"clip_to_bounds"`
	Radius       float64 `toml:"radius"`
	SectorWidth  float64 `toml:"sector_width"`
	LinearSector bool    `toml:"linear_sector"`
}

type Audio struct {
	Enabled bool `toml:"enabled"`
}

type Log struct {
	Debug bool `toml:"debug"`
}

// Config is the tool configuration, library packages take explicit arguments instead
type Config struct {
	Board Board `toml:"board"`
	View  View  `toml:"view"`
	Audio Audio `toml:"audio"`
	Log   Log   `toml:"log"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Board: Board{
			Width:    parameter.SandboxBoardWidth,
			Height:   parameter.SandboxBoardHeight,
			Braiding: parameter.SandboxBraiding,
		},
		View:  View{Radius: parameter.SandboxRadius, SectorWidth: parameter.FacingSectorWidth},
		Audio: Audio{Enabled: true},
	}
}

// LoadAuto loads config with priority: customPath > DefaultConfigPath > embedded
func LoadAuto(customPath string) (Config, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}
	if fileExists(DefaultConfigPath) {
		return LoadFile(DefaultConfigPath)
	}
	return Parse([]byte(embeddedDefault))
}

// LoadFile reads and validates a TOML config file
func LoadFile(path string) (Config, error) {
	if !fileExists(path) {
		return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over Default, so omitted keys keep their defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidValue, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Board.Map == "" && (c.Board.Width < 3 || c.Board.Height < 3) {
		return fmt.Errorf("%w: board size %dx%d, minimum 3x3", ErrInvalidValue, c.Board.Width, c.Board.Height)
	}
	if c.Board.Braiding < 0 || c.Board.Braiding > 1 {
		return fmt.Errorf("%w: braiding %v outside [0,1]", ErrInvalidValue, c.Board.Braiding)
	}
	if c.View.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d is negative", ErrInvalidValue, c.View.MaxDepth)
	}
	if !(c.View.Radius >= 0) {
		return fmt.Errorf("%w: radius %v is negative", ErrInvalidValue, c.View.Radius)
	}
	if !(c.View.SectorWidth > 0 && c.View.SectorWidth <= 360) {
		return fmt.Errorf("%w: sector_width %v outside (0,360]", ErrInvalidValue, c.View.SectorWidth)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
