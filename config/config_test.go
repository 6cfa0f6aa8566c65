package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/serpiente/conway/gol"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on defaults: %v", err)
	}
	if cfg.WindowWidth != 2048 || cfg.WindowHeight != 2048 {
		t.Errorf("window = %dx%d, want 2048x2048", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.UpdateRate != 20 {
		t.Errorf("UpdateRate = %d, want 20", cfg.UpdateRate)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "conway.json")
	data := []byte(`{"width": 64, "height": 32, "host": "term", "seed": 7}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 32 || cfg.Host != HostTerm || cfg.Seed != 7 {
		t.Errorf("Load() = %+v", cfg)
	}
	// Untouched fields keep their defaults.
	if cfg.CellSize != 8 || cfg.UpdateRate != 20 {
		t.Errorf("defaults lost: cell %d, rate %d", cfg.CellSize, cfg.UpdateRate)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{width:"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(bad) should fail")
	}
}

func TestFlagsOverride(t *testing.T) {
	t.Parallel()
	cfg := Default()
	fs := flag.NewFlagSet("conway", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse([]string{"-w", "10", "-h", "5", "-t", "3", "-host", "none", "-turns", "100"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	p := cfg.Params()
	if p.ImageWidth != 10 || p.ImageHeight != 5 || p.Threads != 3 || p.Turns != 100 {
		t.Errorf("Params() = %+v", p)
	}
	if cfg.Host != HostNone {
		t.Errorf("Host = %q, want none", cfg.Host)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero area", mutate: func(c *Config) { c.Width, c.Height = 0, 0 }},
		{name: "negative width", mutate: func(c *Config) { c.Width = -1 }, wantErr: true},
		{name: "zero cell size", mutate: func(c *Config) { c.CellSize = 0 }, wantErr: true},
		{name: "zero update rate", mutate: func(c *Config) { c.UpdateRate = 0 }, wantErr: true},
		{name: "update rate at cap", mutate: func(c *Config) { c.UpdateRate = gol.MaxRate }},
		{name: "update rate above cap", mutate: func(c *Config) { c.UpdateRate = 2000000000 }, wantErr: true},
		{name: "frame rate above cap", mutate: func(c *Config) { c.FrameRate = gol.MaxRate + 1 }, wantErr: true},
		{name: "negative turns", mutate: func(c *Config) { c.Turns = -1 }, wantErr: true},
		{name: "density above one", mutate: func(c *Config) { c.Density = 1.5 }, wantErr: true},
		{name: "unknown host", mutate: func(c *Config) { c.Host = "opengl" }, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestFromArgs(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "conway.json")
	data := []byte(`{"width": 64, "height": 32, "cell_size": 4, "host": "term"}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := FromArgs("conway", []string{"-config", path, "-h", "16", "-host", "none"})
	if err != nil {
		t.Fatalf("FromArgs: %v", err)
	}
	if cfg.Width != 64 {
		t.Errorf("Width = %d, want 64 from the file", cfg.Width)
	}
	if cfg.Height != 16 || cfg.Host != HostNone {
		t.Errorf("Height = %d, Host = %q, want flag values 16 and none", cfg.Height, cfg.Host)
	}
	if cfg.WindowWidth != 256 || cfg.WindowHeight != 64 {
		t.Errorf("window = %dx%d, want 256x64", cfg.WindowWidth, cfg.WindowHeight)
	}
}

func TestFromArgsInvalid(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{
		{"-host", "vga"},
		{"-rate", "2000000000"},
		{"-fps", "0"},
	} {
		if _, err := FromArgs("conway", args); !errors.Is(err, ErrInvalid) {
			t.Errorf("FromArgs(%q) error = %v, want ErrInvalid", args, err)
		}
	}
}
