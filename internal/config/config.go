// Package config provides configuration loading and access for the
// simulation. Defaults are embedded; an optional YAML file overlays them.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime settings.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// GridConfig sizes the simulation field.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WindowConfig holds display settings consumed by the frontend.
type WindowConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// SimulationConfig selects the initial simulation state.
type SimulationConfig struct {
	Seed        int64  `yaml:"seed"`
	Preset      string `yaml:"preset"`
	Pattern     string `yaml:"pattern"`
	Reversed    bool   `yaml:"reversed"`
	BrushRadius int    `yaml:"brush_radius"`
	SeedNoise   bool   `yaml:"seed_noise"`
}

// TelemetryConfig controls the optional CSV statistics stream.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Dir      string `yaml:"dir"`
	Interval uint64 `yaml:"interval"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path loads the defaults alone.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the core treats as fatal configuration errors.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale must be positive, got %d", c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.Window.TPS)
	}
	if c.Simulation.BrushRadius <= 0 {
		return fmt.Errorf("brush radius must be positive, got %d", c.Simulation.BrushRadius)
	}
	if c.Telemetry.Enabled && c.Telemetry.Interval == 0 {
		return fmt.Errorf("telemetry interval must be positive when enabled")
	}
	return nil
}
