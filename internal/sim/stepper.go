package sim

import (
	"runtime"
	"sync"

	"grayscott/internal/core"
)

// Discrete Laplacian weights for the 3x3 neighborhood. They sum to zero, so
// a uniform field diffuses nowhere.
const (
	weightCenter     float32 = -1.0
	weightOrthogonal float32 = 0.2
	weightDiagonal   float32 = 0.05
)

// parallelThreshold is the minimum cell count to use the worker sweep.
// Below this, the goroutine fan-out costs more than it saves.
const parallelThreshold = 1 << 12

// Stepper computes the next grid generation. Every cell's update is a pure
// function of the read-only current buffer, its own coordinate, the params
// snapshot, and the nutrient field, so rows can be swept by any number of
// workers with no locks and byte-identical results.
type Stepper struct {
	workers int
}

// NewStepper returns a stepper using the given worker count, defaulting to
// GOMAXPROCS when workers is not positive.
func NewStepper(workers int) *Stepper {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Stepper{workers: workers}
}

// Step writes generation N+1 into the grid's next buffer from generation N
// in its current buffer. It returns after every cell is written; the caller
// commits the pass by swapping the buffer roles.
func (s *Stepper) Step(g *core.Grid, p Params, pattern Pattern, reversed bool) {
	if s.workers == 1 || g.W*g.H < parallelThreshold {
		stepRows(g, p, pattern, reversed, 0, g.H)
		return
	}

	rowsPer := (g.H + s.workers - 1) / s.workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < g.H; y0 += rowsPer {
		y1 := y0 + rowsPer
		if y1 > g.H {
			y1 = g.H
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			stepRows(g, p, pattern, reversed, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

// stepRows updates rows [y0, y1). Each worker writes a disjoint row range of
// the next buffer and reads only the shared current snapshot.
func stepRows(g *core.Grid, p Params, pattern Pattern, reversed bool, y0, y1 int) {
	w, h := g.W, g.H
	cur := g.Cells()
	nxt := g.Next()

	for y := y0; y < y1; y++ {
		rowUp := ((y - 1 + h) % h) * w
		row := y * w
		rowDown := ((y + 1) % h) * w

		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			c := cur[row+x]

			lapU := weightCenter*c.U +
				weightOrthogonal*(cur[row+left].U+cur[row+right].U+cur[rowUp+x].U+cur[rowDown+x].U) +
				weightDiagonal*(cur[rowUp+left].U+cur[rowUp+right].U+cur[rowDown+left].U+cur[rowDown+right].U)
			lapV := weightCenter*c.V +
				weightOrthogonal*(cur[row+left].V+cur[row+right].V+cur[rowUp+x].V+cur[rowDown+x].V) +
				weightDiagonal*(cur[rowUp+left].V+cur[rowUp+right].V+cur[rowDown+left].V+cur[rowDown+right].V)

			reaction := c.U * c.V * c.V
			feed := p.FeedRate * Nutrient(pattern, reversed, x, y, w, h)

			du := p.Du*lapU - reaction + feed*(1-c.U)
			dv := p.Dv*lapV + reaction - (p.KillRate+feed)*c.V

			nxt[row+x] = core.Cell{
				U: core.Clamp01(c.U + du),
				V: core.Clamp01(c.V + dv),
			}
		}
	}
}
