package sim

import (
	"math/rand/v2"

	"grayscott/internal/core"
)

// System owns all simulation state: the double-buffered grid, the preset
// controller, the nutrient selection, and the brush. It is an explicit
// context object; there is no package-level state, so independent systems
// can run side by side in tests.
type System struct {
	grid     *core.Grid
	stepper  *Stepper
	presets  *PresetController
	brush    *Brush
	pattern  Pattern
	reversed bool
	rng      *rand.Rand
	steps    uint64
}

// Status is the read-only snapshot exposed to render and UI collaborators.
type Status struct {
	Preset   string
	FeedRate float32
	KillRate float32
	Pattern  string
	Reversed bool
	Steps    uint64
}

// NewSystem allocates a system with the given grid dimensions and seed.
func NewSystem(w, h int, seed int64) (*System, error) {
	grid, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &System{
		grid:    grid,
		stepper: NewStepper(0),
		presets: NewPresetController(),
		brush:   NewBrush(DefaultBrushRadius),
		rng:     core.NewRNG(seed),
	}, nil
}

// Grid exposes the grid. The current buffer is only safe to read between
// steps; the frame loop sequences all access on one goroutine.
func (s *System) Grid() *core.Grid { return s.grid }

// Presets exposes the preset controller.
func (s *System) Presets() *PresetController { return s.presets }

// Brush exposes the brush for radius configuration.
func (s *System) Brush() *Brush { return s.brush }

// Steps returns the monotonically increasing generation counter.
func (s *System) Steps() uint64 { return s.steps }

// Status captures the state the render collaborator shows alongside the
// field.
func (s *System) Status() Status {
	active := s.presets.Active()
	return Status{
		Preset:   active.Name,
		FeedRate: active.FeedRate,
		KillRate: active.KillRate,
		Pattern:  s.pattern.String(),
		Reversed: s.reversed,
		Steps:    s.steps,
	}
}

// Step advances the field by one generation: one full stepper pass over the
// current buffer, then the atomic buffer-role swap that commits it.
func (s *System) Step() {
	s.stepper.Step(s.grid, s.presets.Params(), s.pattern, s.reversed)
	s.grid.Swap()
	s.steps++
}

// ApplyBrush feeds one sampled pointer event into the brush. Strokes mutate
// the current buffer in place, before the next stepper pass reads it.
func (s *System) ApplyBrush(ev BrushEvent) {
	s.brush.Apply(s.grid, ev, s.pattern, s.reversed)
}

// Clear resets every cell to baseline and zeroes the generation counter.
func (s *System) Clear() {
	s.grid.Clear()
	s.steps = 0
}

// SeedNoise sprinkles pseudo-random inhibitor across the whole grid.
func (s *System) SeedNoise() {
	s.grid.SeedNoise(s.rng)
}

// Resize reallocates the grid, discarding its contents. It must only be
// called between steps.
func (s *System) Resize(w, h int) error {
	if err := s.grid.Resize(w, h); err != nil {
		return err
	}
	s.steps = 0
	return nil
}

// CyclePreset moves circularly through the preset catalog.
func (s *System) CyclePreset(direction int) {
	s.presets.Cycle(direction)
}

// AdjustParam nudges the feed or kill rate, switching to the Custom preset
// per the controller's policy.
func (s *System) AdjustParam(param RateParam, delta float32, fine bool) {
	s.presets.Adjust(param, delta, fine)
}

// Pattern returns the active nutrient pattern.
func (s *System) Pattern() Pattern { return s.pattern }

// Reversed reports whether the nutrient field is inverted.
func (s *System) Reversed() bool { return s.reversed }

// CycleNutrientPattern moves circularly through the pattern enumeration.
func (s *System) CycleNutrientPattern(direction int) {
	n := int(patternCount)
	step := 1
	if direction < 0 {
		step = -1
	}
	s.pattern = Pattern(((int(s.pattern)+step)%n + n) % n)
}

// SetPattern selects a pattern directly, for configuration wiring.
func (s *System) SetPattern(p Pattern) {
	if p < patternCount {
		s.pattern = p
	}
}

// ToggleNutrientReversed flips the bright and dark regions of every pattern.
func (s *System) ToggleNutrientReversed() {
	s.reversed = !s.reversed
}

// SetReversed sets the inversion flag directly, for configuration wiring.
func (s *System) SetReversed(r bool) { s.reversed = r }
