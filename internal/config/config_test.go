package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLoadsEmbeddedValues(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if cfg.Grid.Width != 480 || cfg.Grid.Height != 270 {
		t.Fatalf("default grid = %dx%d, want 480x270", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Window.Scale != 3 || cfg.Window.TPS != 60 {
		t.Fatalf("default window = scale %d tps %d, want 3/60", cfg.Window.Scale, cfg.Window.TPS)
	}
	if cfg.Simulation.Preset != "Soliton Collapse" {
		t.Fatalf("default preset = %q", cfg.Simulation.Preset)
	}
	if cfg.Telemetry.Enabled {
		t.Fatal("telemetry enabled by default")
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rd.yaml")
	body := "grid:\n  width: 96\nsimulation:\n  preset: Mitosis\n  reversed: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Width != 96 {
		t.Fatalf("overridden width = %d, want 96", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 270 {
		t.Fatalf("height = %d, want default 270 to survive partial overlay", cfg.Grid.Height)
	}
	if cfg.Simulation.Preset != "Mitosis" || !cfg.Simulation.Reversed {
		t.Fatalf("simulation overlay not applied: %+v", cfg.Simulation)
	}
	if cfg.Window.TPS != 60 {
		t.Fatalf("tps = %d, want default 60", cfg.Window.TPS)
	}
}

func TestLoadEmptyPathIsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	def, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if *cfg != *def {
		t.Fatalf("Load(\"\") = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("loading a missing file succeeded")
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Grid.Width = 0 }},
		{"negative height", func(c *Config) { c.Grid.Height = -1 }},
		{"zero scale", func(c *Config) { c.Window.Scale = 0 }},
		{"zero tps", func(c *Config) { c.Window.TPS = 0 }},
		{"zero brush radius", func(c *Config) { c.Simulation.BrushRadius = 0 }},
		{"telemetry without interval", func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Interval = 0
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Default()
			if err != nil {
				t.Fatalf("Default: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate accepted an invalid config")
			}
		})
	}
}
