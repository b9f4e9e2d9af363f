package config

import (
	"flag"
	"os"
	"strconv"

	"snake-arcade/game/types"

	"github.com/pkg/errors"
)

// Load builds the configuration from defaults, the selected profile,
// SNAKE_* environment variables and command-line flags, in that order.
// Only flags given explicitly override the environment.
func Load(args []string) (*Config, error) {
	return load(args, os.Getenv)
}

func load(args []string, getenv func(string) string) (*Config, error) {
	def := Default()

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	profile := fs.String("profile", def.Profile, "Behaviour profile: classic, wrap")
	width := fs.Int("width", def.Width, "Board width in pixels")
	height := fs.Int("height", def.Height, "Board height in pixels")
	cell := fs.Int("cell", def.CellSize, "Cell size in pixels")
	speed := fs.Int("speed", def.Speed, "Ticks per second")
	boundary := fs.String("boundary", def.Boundary.String(), "Boundary policy: reset, wrap")
	length := fs.Int("length", def.InitialLength, "Initial snake length")
	announce := fs.Bool("announce", def.Announce, "Print a message when a round ends")
	backend := fs.String("backend", def.Backend, "Surface: window, terminal")
	seed := fs.Uint64("seed", def.Seed, "Random seed, 0 seeds from the clock")
	debug := fs.Bool("debug", def.Debug, "Write a debug log to "+LogDir)
	audio := fs.Bool("audio", def.Audio.Enabled, "Play sound cues")
	volume := fs.Int("volume", int(def.Audio.MasterVolume*100), "Master volume 0-100")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := Default()

	name := cfg.Profile
	if v := getenv("SNAKE_PROFILE"); v != "" {
		name = v
	}
	if explicit["profile"] {
		name = *profile
	}
	if err := cfg.ApplyProfile(name); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}

	for f := range explicit {
		switch f {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "cell":
			cfg.CellSize = *cell
		case "speed":
			cfg.Speed = *speed
		case "boundary":
			p, ok := types.ParseBoundaryPolicy(*boundary)
			if !ok {
				return nil, errors.Errorf("unknown boundary policy %q", *boundary)
			}
			cfg.Boundary = p
		case "length":
			cfg.InitialLength = *length
		case "announce":
			cfg.Announce = *announce
		case "backend":
			cfg.Backend = *backend
		case "seed":
			cfg.Seed = *seed
		case "debug":
			cfg.Debug = *debug
		case "audio":
			cfg.Audio.Enabled = *audio
		case "volume":
			cfg.Audio.MasterVolume = clampVolume(*volume)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// applyEnv overrides cfg with the SNAKE_* variables that are set
func applyEnv(cfg *Config, getenv func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_WIDTH", &cfg.Width},
		{"SNAKE_HEIGHT", &cfg.Height},
		{"SNAKE_CELL_SIZE", &cfg.CellSize},
		{"SNAKE_SPEED", &cfg.Speed},
		{"SNAKE_LENGTH", &cfg.InitialLength},
		{"SNAKE_SAMPLE_RATE", &cfg.Audio.SampleRate},
	}
	for _, e := range ints {
		if v := getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(err, "%s", e.key)
			}
			*e.dst = n
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"SNAKE_ANNOUNCE", &cfg.Announce},
		{"SNAKE_DEBUG", &cfg.Debug},
		{"SNAKE_AUDIO_ENABLED", &cfg.Audio.Enabled},
	}
	for _, e := range bools {
		if v := getenv(e.key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Wrapf(err, "%s", e.key)
			}
			*e.dst = b
		}
	}

	if v := getenv("SNAKE_BOUNDARY"); v != "" {
		p, ok := types.ParseBoundaryPolicy(v)
		if !ok {
			return errors.Errorf("SNAKE_BOUNDARY: unknown boundary policy %q", v)
		}
		cfg.Boundary = p
	}
	if v := getenv("SNAKE_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := getenv("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "SNAKE_SEED")
		}
		cfg.Seed = seed
	}
	// Master volume is given as 0-100
	if v := getenv("SNAKE_MASTER_VOLUME"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "SNAKE_MASTER_VOLUME")
		}
		cfg.Audio.MasterVolume = clampVolume(n)
	}
	return nil
}

func clampVolume(percent int) float64 {
	v := float64(percent) / 100.0
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
