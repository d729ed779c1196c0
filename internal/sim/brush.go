package sim

import (
	"math"

	"grayscott/internal/core"
)

// BrushMode selects what a stroke writes into the grid.
type BrushMode uint8

const (
	// BrushSeed deposits inhibitor to kick off pattern growth.
	BrushSeed BrushMode = iota
	// BrushErase resets cells back to baseline.
	BrushErase
)

// DefaultBrushRadius matches the original area-of-effect brush.
const DefaultBrushRadius = 5

// BrushEvent is one sampled pointer position in display coordinates,
// together with the logical viewport it was sampled in and the button state.
type BrushEvent struct {
	X, Y  float64
	ViewW int
	ViewH int
	Mode  BrushMode
	Held  bool
}

// Brush translates a pointer-event stream into direct grid mutation. While
// the button is held it stamps a filled disc at every sampled position and
// at interpolated points along the drag path, so fast drags leave no gaps.
type Brush struct {
	Radius int

	active bool
	mode   BrushMode
	lastX  int
	lastY  int
}

// NewBrush returns a brush with the given stamp radius in cells.
func NewBrush(radius int) *Brush {
	if radius <= 0 {
		radius = DefaultBrushRadius
	}
	return &Brush{Radius: radius}
}

// Apply processes one sampled event against the grid. Positions outside the
// letterboxed viewport are ignored; releasing the button ends the stroke.
func (b *Brush) Apply(g *core.Grid, ev BrushEvent, pattern Pattern, reversed bool) {
	if !ev.Held {
		b.active = false
		return
	}

	gx, gy, ok := DisplayToGrid(ev.X, ev.Y, ev.ViewW, ev.ViewH, g.W, g.H)
	if !ok {
		b.active = false
		return
	}

	if b.active && b.mode == ev.Mode {
		b.stampLine(g, b.lastX, b.lastY, gx, gy, ev.Mode, pattern, reversed)
	} else {
		b.stamp(g, gx, gy, ev.Mode, pattern, reversed)
	}
	b.active = true
	b.mode = ev.Mode
	b.lastX, b.lastY = gx, gy
}

// stampLine stamps discs along the segment from (x0, y0) to (x1, y1) at most
// one cell apart.
func (b *Brush) stampLine(g *core.Grid, x0, y0, x1, y1 int, mode BrushMode, pattern Pattern, reversed bool) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		b.stamp(g, x1, y1, mode, pattern, reversed)
		return
	}
	for i := 1; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		b.stamp(g, x, y, mode, pattern, reversed)
	}
}

// stamp writes one filled disc centered on (cx, cy). Seed mode drops the
// activator to 0.5 and pushes the inhibitor toward 1, scaled by the local
// nutrient factor; erase mode restores baseline.
func (b *Brush) stamp(g *core.Grid, cx, cy int, mode BrushMode, pattern Pattern, reversed bool) {
	r := b.Radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy >= r*r {
				continue
			}
			x, y := g.Wrap(cx+dx, cy+dy)
			switch mode {
			case BrushSeed:
				nutrient := Nutrient(pattern, reversed, x, y, g.W, g.H)
				g.Set(x, y, core.Cell{U: 0.5, V: 0.99 * nutrient})
			case BrushErase:
				g.Set(x, y, core.Baseline)
			}
		}
	}
}

// DisplayToGrid maps display coordinates into grid coordinates, accounting
// for independent viewport and grid aspect ratios with a centered letterbox.
// It reports false for positions outside the rendered area.
func DisplayToGrid(px, py float64, viewW, viewH, gridW, gridH int) (int, int, bool) {
	if viewW <= 0 || viewH <= 0 || gridW <= 0 || gridH <= 0 {
		return 0, 0, false
	}

	scale := math.Min(float64(viewW)/float64(gridW), float64(viewH)/float64(gridH))
	if scale <= 0 {
		return 0, 0, false
	}
	offX := (float64(viewW) - float64(gridW)*scale) / 2
	offY := (float64(viewH) - float64(gridH)*scale) / 2

	gx := (px - offX) / scale
	gy := (py - offY) / scale
	if gx < 0 || gy < 0 || gx >= float64(gridW) || gy >= float64(gridH) {
		return 0, 0, false
	}
	return int(gx), int(gy), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
