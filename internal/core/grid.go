package core

import (
	"fmt"
	"math/rand/v2"
)

// Cell holds the activator and inhibitor concentrations of one grid slot.
// Both channels stay inside [0, 1] after every simulation step.
type Cell struct {
	U float32
	V float32
}

// Baseline is the resting cell state: full activator, no inhibitor.
var Baseline = Cell{U: 1, V: 0}

// Grid stores a toroidal 2D field of cells behind a pair of same-shaped
// buffers. During a step all reads target the current buffer and all writes
// target disjoint slots of the next buffer; Swap exchanges the roles in O(1).
type Grid struct {
	W, H int
	cur  []Cell
	nxt  []Cell
}

// NewGrid allocates a grid with the given dimensions, every cell at baseline.
// Non-positive dimensions are a configuration error.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	g := &Grid{W: w, H: h, cur: make([]Cell, w*h), nxt: make([]Cell, w*h)}
	g.Clear()
	return g, nil
}

// Resize reallocates both buffers to the new dimensions. Prior contents are
// discarded and the grid returns to baseline. Callers must ensure no step is
// in flight.
func (g *Grid) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	g.W, g.H = w, h
	g.cur = make([]Cell, w*h)
	g.nxt = make([]Cell, w*h)
	g.Clear()
	return nil
}

// Cells exposes the current (committed) buffer for read-only consumers.
func (g *Grid) Cells() []Cell { return g.cur }

// Next exposes the write-side buffer for the in-progress step.
func (g *Grid) Next() []Cell { return g.nxt }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At reads a cell from the current buffer, wrapping out-of-range coordinates.
func (g *Grid) At(x, y int) Cell {
	x, y = g.Wrap(x, y)
	return g.cur[y*g.W+x]
}

// Set writes a cell into the current buffer, wrapping out-of-range
// coordinates. Both channels are clamped to [0, 1].
func (g *Grid) Set(x, y int, c Cell) {
	x, y = g.Wrap(x, y)
	c.U = Clamp01(c.U)
	c.V = Clamp01(c.V)
	g.cur[y*g.W+x] = c
}

// Swap exchanges the current and next buffer roles. This is the commit point
// of a step: external readers only ever observe a fully-written buffer.
func (g *Grid) Swap() {
	g.cur, g.nxt = g.nxt, g.cur
}

// Clear resets every cell of both buffers to baseline.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Baseline
	}
	for i := range g.nxt {
		g.nxt[i] = Baseline
	}
}

// SeedNoise fills the v channel of the current buffer with independent
// pseudo-random samples in a small positive range, leaving u untouched. It
// bootstraps pattern formation without a manual brush stroke.
func (g *Grid) SeedNoise(rng *rand.Rand) {
	for i := range g.cur {
		if rng.Float32() > 0.5 {
			g.cur[i].V = 0.8
		} else {
			g.cur[i].V = 0
		}
	}
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
