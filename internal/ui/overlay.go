//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"grayscott/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"Controls:",
	"Left Mouse Button: Draw",
	"Right Mouse Button: Erase",
	"C: Clear screen",
	"N: Fill with noise",
	"G: Cycle gradient",
	"P / Shift+P: Cycle preset",
	"U / Shift+U: Cycle nutrient pattern",
	"R: Reverse nutrient field",
	"Arrows: Adjust feed/kill (Shift = fine)",
	"Space: Pause",
	"/ or \\: Toggle help",
	"ESC: Exit",
}

// Overlay draws the help panel and the current status on top of the field.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) || inpututil.IsKeyJustPressed(ebiten.KeyBackslash) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay when visible.
func (o *Overlay) Draw(screen *ebiten.Image, status sim.Status, gradient string) {
	if !o.visible {
		return
	}

	lines := make([]string, 0, len(helpLines)+5)
	lines = append(lines, helpLines...)
	lines = append(lines,
		"",
		fmt.Sprintf("Preset: %s (f=%.4f, k=%.4f)", status.Preset, status.FeedRate, status.KillRate),
		fmt.Sprintf("Nutrient: %s (reversed: %v)", status.Pattern, status.Reversed),
		fmt.Sprintf("Gradient: %s", gradient),
		fmt.Sprintf("Step: %d", status.Steps),
	)

	const (
		margin     = 12
		lineHeight = 14
	)
	width := 0
	for _, line := range lines {
		if w := len(line) * basicfont.Face7x13.Advance; w > width {
			width = w
		}
	}

	o.drawRect(screen, margin, margin, width+2*margin, len(lines)*lineHeight+2*margin,
		color.RGBA{A: 160})

	y := 2*margin + lineHeight
	for _, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 2*margin, y, color.White)
		y += lineHeight
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
	screen.DrawImage(o.pixel, op)
}
