//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"grayscott/internal/app"
	"grayscott/internal/config"
	"grayscott/internal/sim"
	"grayscott/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var (
		configPath   = flag.String("config", "", "path to a YAML config file overlaying the defaults")
		width        = flag.Int("width", 0, "grid width in cells (overrides config)")
		height       = flag.Int("height", 0, "grid height in cells (overrides config)")
		scale        = flag.Int("scale", 0, "window pixels per cell (overrides config)")
		tps          = flag.Int("tps", 0, "simulation ticks per second (overrides config)")
		seed         = flag.Int64("seed", 0, "random seed (overrides config)")
		noise        = flag.Bool("noise", false, "seed the grid with noise at startup")
		telemetryDir = flag.String("telemetry", "", "directory for telemetry CSV output (enables telemetry)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Grid.Width = *width
	}
	if *height > 0 {
		cfg.Grid.Height = *height
	}
	if *scale > 0 {
		cfg.Window.Scale = *scale
	}
	if *tps > 0 {
		cfg.Window.TPS = *tps
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *noise {
		cfg.Simulation.SeedNoise = true
	}
	if *telemetryDir != "" {
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.Dir = *telemetryDir
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}

	sys, err := sim.NewSystem(cfg.Grid.Width, cfg.Grid.Height, cfg.Simulation.Seed)
	if err != nil {
		slog.Error("allocating simulation", "err", err)
		os.Exit(1)
	}
	if cfg.Simulation.Preset != "" && !sys.Presets().Select(cfg.Simulation.Preset) {
		slog.Warn("unknown preset, keeping default", "preset", cfg.Simulation.Preset)
	}
	for _, p := range sim.Patterns() {
		if p.String() == cfg.Simulation.Pattern {
			sys.SetPattern(p)
			break
		}
	}
	sys.SetReversed(cfg.Simulation.Reversed)
	sys.Brush().Radius = cfg.Simulation.BrushRadius
	if cfg.Simulation.SeedNoise {
		sys.SeedNoise()
	}

	var recorder *telemetry.Recorder
	if cfg.Telemetry.Enabled {
		recorder, err = telemetry.NewRecorder(cfg.Telemetry.Dir, cfg.Telemetry.Interval)
		if err != nil {
			slog.Error("starting telemetry", "err", err)
			os.Exit(1)
		}
		defer recorder.Close()
	}

	slog.Info("starting",
		"grid", cfg.Grid,
		"preset", sys.Status().Preset,
		"pattern", sys.Status().Pattern,
	)

	game := app.New(sys, cfg, recorder)
	ebiten.SetWindowTitle("Gray-Scott Reaction Diffusion")
	ebiten.SetWindowSize(cfg.Grid.Width*cfg.Window.Scale, cfg.Grid.Height*cfg.Window.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}
