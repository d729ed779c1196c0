//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log/slog"

	"grayscott/internal/config"
	"grayscott/internal/core"
	"grayscott/internal/render"
	"grayscott/internal/sim"
	"grayscott/internal/telemetry"
	"grayscott/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation system to the ebiten.Game interface. All key
// and pointer mapping lives here; the sim package never sees input devices.
type Game struct {
	sys      *sim.System
	recorder *telemetry.Recorder
	overlay  *ui.Overlay
	fixed    *core.FixedStep

	gradients []render.Gradient
	gradIdx   int
	lut       []color.RGBA

	field *ebiten.Image
	buf   []byte

	scale  int
	paused bool

	titleFrames int
}

// New constructs a Game around an initialized system.
func New(sys *sim.System, cfg *config.Config, recorder *telemetry.Recorder) *Game {
	g := &Game{
		sys:       sys,
		recorder:  recorder,
		overlay:   ui.NewOverlay(),
		fixed:     core.NewFixedStep(cfg.Window.TPS),
		gradients: render.Gradients(),
		scale:     cfg.Window.Scale,
	}
	g.lut = g.gradients[0].LUT()
	return g
}

// Update drains input, applies brush strokes, and advances the simulation at
// the configured tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	direction := 1
	if shift {
		direction = -1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sys.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sys.SeedNoise()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sys.CyclePreset(direction)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.sys.CycleNutrientPattern(direction)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sys.ToggleNutrientReversed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.gradIdx = (g.gradIdx + 1) % len(g.gradients)
		g.lut = g.gradients[g.gradIdx].LUT()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.sys.AdjustParam(sim.FeedRate, 1, shift)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.sys.AdjustParam(sim.FeedRate, -1, shift)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.sys.AdjustParam(sim.KillRate, 1, shift)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.sys.AdjustParam(sim.KillRate, -1, shift)
	}

	g.applyPointer()
	g.overlay.Update()

	if !g.paused && g.fixed.ShouldStep() {
		g.sys.Step()
		if err := g.recorder.Observe(g.sys.Grid().Cells(), g.sys.Status()); err != nil {
			slog.Warn("telemetry write failed", "err", err)
		}
	}

	g.titleFrames++
	if g.titleFrames >= 60 {
		g.titleFrames = 0
		g.updateTitle()
	}
	return nil
}

// applyPointer samples the cursor once per frame and forwards it as a brush
// event. The left button seeds, the right button erases.
func (g *Game) applyPointer() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	mode := sim.BrushSeed
	if right && !left {
		mode = sim.BrushErase
	}

	x, y := ebiten.CursorPosition()
	grid := g.sys.Grid()
	g.sys.ApplyBrush(sim.BrushEvent{
		X:     float64(x),
		Y:     float64(y),
		ViewW: grid.W * g.scale,
		ViewH: grid.H * g.scale,
		Mode:  mode,
		Held:  left || right,
	})
}

func (g *Game) updateTitle() {
	status := g.sys.Status()
	ebiten.SetWindowTitle(fmt.Sprintf(
		"Gray-Scott Reaction Diffusion - %s (f=%.4f, k=%.4f) - %s - FPS: %.1f",
		status.Preset, status.FeedRate, status.KillRate, status.Pattern, ebiten.ActualFPS(),
	))
}

// Draw renders the committed buffer through the active gradient LUT.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.sys.Grid()
	if g.field == nil || g.field.Bounds().Dx() != grid.W || g.field.Bounds().Dy() != grid.H {
		g.field = ebiten.NewImage(grid.W, grid.H)
		g.buf = make([]byte, 4*grid.W*grid.H)
	}

	render.FillRGBA(g.buf, grid.Cells(), g.lut)
	g.field.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.field, op)

	g.overlay.Draw(screen, g.sys.Status(), g.gradients[g.gradIdx].Name())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.sys.Grid()
	return grid.W * g.scale, grid.H * g.scale
}
