package config

import (
	"snake-arcade/game/types"

	"github.com/pkg/errors"
)

// Behaviour profiles
const (
	ProfileClassic = "classic"
	ProfileWrap    = "wrap"
)

// Surfaces the game can run on
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Debug log location
const (
	LogDir      = "logs"
	LogFileName = "snake.log"
)

// AudioConfig controls the sound cues
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
}

type Config struct {
	Profile string

	// Board size in pixels and the side of one cell
	Width    int
	Height   int
	CellSize int

	// Speed is the number of ticks per second
	Speed int

	Boundary      types.BoundaryPolicy
	InitialLength int
	// Announce prints a game-over line whenever a round ends
	Announce bool

	Backend string
	// Seed for the random source, 0 seeds from the clock
	Seed  uint64
	Debug bool

	Audio AudioConfig
}

// Default returns the classic 640x480 board at 10 ticks per second
func Default() *Config {
	cfg := &Config{
		Width:    640,
		Height:   480,
		CellSize: 20,
		Speed:    10,
		Backend:  BackendWindow,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
	}
	cfg.ApplyProfile(ProfileClassic)
	return cfg
}

// ApplyProfile sets the boundary policy, starting length and announcements of a named profile
func (c *Config) ApplyProfile(name string) error {
	switch name {
	case ProfileClassic:
		c.Boundary = types.BoundaryReset
		c.InitialLength = 2
		c.Announce = true
	case ProfileWrap:
		c.Boundary = types.BoundaryWrap
		c.InitialLength = 1
		c.Announce = false
	default:
		return errors.Errorf("unknown profile %q", name)
	}
	c.Profile = name
	return nil
}

// Grid derives the board in cells
func (c *Config) Grid() types.Grid {
	return types.Grid{
		Width:  c.Width / c.CellSize,
		Height: c.Height / c.CellSize,
	}
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("board size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	g := c.Grid()
	if g.Width < 2 || g.Height < 2 {
		return errors.Errorf("board of %dx%d px with %d px cells is smaller than 2x2 cells", c.Width, c.Height, c.CellSize)
	}
	if c.Speed <= 0 {
		return errors.Errorf("speed must be positive, got %d", c.Speed)
	}
	if c.Boundary != types.BoundaryReset && c.Boundary != types.BoundaryWrap {
		return errors.Errorf("unknown boundary policy %d", c.Boundary)
	}
	// The starting body trails behind the center in any direction
	if maxLen := min(g.Width, g.Height) / 2; c.InitialLength < 1 || c.InitialLength > maxLen {
		return errors.Errorf("initial length must be between 1 and %d, got %d", maxLen, c.InitialLength)
	}
	if c.Backend != BackendWindow && c.Backend != BackendTerminal {
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return errors.Errorf("master volume must be within [0, 1], got %f", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return errors.Errorf("sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}
