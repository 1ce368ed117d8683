package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable render settings for a run.
type Config struct {
	// Output geometry
	Width  int `json:"width"`
	Height int `json:"height"`

	// Animation
	Frames       int     `json:"frames"`
	TimeStep     float64 `json:"time_step"`
	FrameDelayMS int     `json:"frame_delay_ms"`

	// Quality
	Supersample int `json:"supersample"`
	WebPQuality int `json:"webp_quality"`

	// Execution
	Workers   int    `json:"workers"`
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"` // "webp" or "tga"
	Animate   bool   `json:"animate"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Frames    int
	OutputDir string
	Quality   int
	Workers   int
	Format    string
}

// Resolve applies CLI overrides, then fills in any remaining
// zero-valued fields with defaults.
func (c *Config) Resolve(flags Flags) error {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Frames <= 0 {
		c.Frames = 300
	}
	if c.TimeStep <= 0 {
		c.TimeStep = 16.0
	}
	if c.FrameDelayMS <= 0 {
		c.FrameDelayMS = 33
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Format == "" {
		c.Format = "webp"
	}

	switch c.Format {
	case "webp", "tga":
	default:
		return fmt.Errorf("config: unknown format %q (want webp or tga)", c.Format)
	}

	return nil
}
