// Package config holds the host-level settings of a simulation run: grid
// and window geometry, timing, and which host draws the world.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/serpiente/conway/gol"
)

// Hosts that can draw a running simulation.
const (
	HostSDL    = "sdl"
	HostEbiten = "ebiten"
	HostTerm   = "term"
	HostNone   = "none"
)

var ErrInvalid = errors.New("invalid config")

// Config describes one simulation run.
type Config struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	CellSize     int     `json:"cell_size"`
	WindowWidth  int     `json:"window_width"`
	WindowHeight int     `json:"window_height"`
	FrameRate    int     `json:"frame_rate"`
	UpdateRate   int     `json:"update_rate"`
	MaxCatchUp   int     `json:"max_catch_up"`
	Threads      int     `json:"threads"`
	Turns        int     `json:"turns"`
	Seed         int64   `json:"seed"`
	Density      float64 `json:"density"`
	Host         string  `json:"host"`
}

// Default is a 256x256 grid of 8px cells in a
// 2048x2048 window, advanced 20 times a second.
func Default() Config {
	return Config{
		Width:      256,
		Height:     256,
		CellSize:   8,
		FrameRate:  60,
		UpdateRate: 20,
		MaxCatchUp: 8,
		Seed:       time.Now().UnixNano(),
		Density:    0.5,
		Host:       HostSDL,
	}
}

// Load reads a JSON config file over the defaults. Fields missing from
// the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// RegisterFlags binds every field to a command-line flag, using the
// current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "Specify the grid width in cells.")
	fs.IntVar(&c.Height, "h", c.Height, "Specify the grid height in cells.")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "Specify the size of a cell in pixels.")
	fs.IntVar(&c.WindowWidth, "window-w", c.WindowWidth, "Window width in pixels. Defaults to w*cell.")
	fs.IntVar(&c.WindowHeight, "window-h", c.WindowHeight, "Window height in pixels. Defaults to h*cell.")
	fs.IntVar(&c.FrameRate, "fps", c.FrameRate, "Specify the number of frames drawn per second.")
	fs.IntVar(&c.UpdateRate, "rate", c.UpdateRate, "Specify the number of generations per second.")
	fs.IntVar(&c.MaxCatchUp, "catch-up", c.MaxCatchUp, "Most generations computed in a single frame.")
	fs.IntVar(&c.Threads, "t", c.Threads, "Specify the number of worker threads to use. Defaults to GOMAXPROCS.")
	fs.IntVar(&c.Turns, "turns", c.Turns, "Specify the number of turns to process. 0 runs until quit.")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Seed for the initial generation.")
	fs.Float64Var(&c.Density, "density", c.Density, "Probability that a cell starts alive.")
	fs.StringVar(&c.Host, "host", c.Host, "Host to draw with: sdl, ebiten, term or none.")
}

// Validate checks the config and fills in the derived window size.
func (c *Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Width, c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalid, c.CellSize)
	case c.FrameRate <= 0 || c.UpdateRate <= 0 || c.FrameRate > gol.MaxRate || c.UpdateRate > gol.MaxRate:
		return fmt.Errorf("%w: frame rate %d, update rate %d", ErrInvalid, c.FrameRate, c.UpdateRate)
	case c.Turns < 0:
		return fmt.Errorf("%w: turns %d", ErrInvalid, c.Turns)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %v", ErrInvalid, c.Density)
	}
	switch c.Host {
	case HostSDL, HostEbiten, HostTerm, HostNone:
	default:
		return fmt.Errorf("%w: unknown host %q", ErrInvalid, c.Host)
	}

	if c.WindowWidth <= 0 {
		c.WindowWidth = c.Width * c.CellSize
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = c.Height * c.CellSize
	}
	return nil
}

// Params converts the config into simulation parameters.
func (c Config) Params() gol.Params {
	return gol.Params{
		Threads:          c.Threads,
		ImageWidth:       c.Width,
		ImageHeight:      c.Height,
		Turns:            c.Turns,
		UpdatesPerSecond: c.UpdateRate,
		FrameRate:        c.FrameRate,
		MaxCatchUp:       c.MaxCatchUp,
		Seed:             c.Seed,
		Density:          c.Density,
	}
}

// FromArgs parses command-line arguments. When -config names a JSON file
// it is loaded first and any flags given explicitly still win.
func FromArgs(name string, args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "Path to a JSON config file.")
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return cfg, err
		}
		overrides := flag.NewFlagSet(name, flag.ContinueOnError)
		loaded.RegisterFlags(overrides)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "config" || setErr != nil {
				return
			}
			setErr = overrides.Set(f.Name, f.Value.String())
		})
		if setErr != nil {
			return cfg, setErr
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
