package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"sphere-raytracer/internal/postprocess"
)

// Config holds output paths and render overrides.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir"`
	JobList   string `json:"job_list"`

	// Output settings
	Format string  `json:"format"`
	Scale  float64 `json:"scale"`
	Filter string  `json:"filter"`

	// Scene overrides; zero or nil keeps the scene's own value.
	Width    int   `json:"width"`
	Height   int   `json:"height"`
	Shadows  *bool `json:"shadows,omitempty"`
	MaxDepth *int  `json:"max_depth,omitempty"`

	Workers int `json:"workers"`
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

// Resolve applies CLI flags over the file values, then fills defaults.
// Flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) error {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.JobList != "" {
		c.JobList = flags.JobList
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Filter != "" {
		c.Filter = flags.Filter
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.MaxDepth >= 0 {
		d := flags.MaxDepth
		c.MaxDepth = &d
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	switch flags.Shadows {
	case "":
	case "on", "true":
		on := true
		c.Shadows = &on
	case "off", "false":
		off := false
		c.Shadows = &off
	default:
		return fmt.Errorf("config: -shadows must be on or off, got %q", flags.Shadows)
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	if c.Format == "" {
		c.Format = "png"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	f, err := postprocess.ParseFilter(c.Filter)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Filter = string(f)
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.MaxDepth != nil && *c.MaxDepth < 0 {
		return fmt.Errorf("config: max_depth must be >= 0, got %d", *c.MaxDepth)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}

	return nil
}

// Flags holds CLI flag values that override config file settings.
// MaxDepth < 0 and an empty Shadows mean "not set".
type Flags struct {
	OutputDir string
	JobList   string
	Format    string
	Scale     float64
	Filter    string
	Width     int
	Height    int
	Shadows   string
	MaxDepth  int
	Workers   int
}
