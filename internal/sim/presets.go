package sim

// Preset names a feed/kill rate pair known to produce a distinctive regime.
type Preset struct {
	Name     string
	FeedRate float32
	KillRate float32
}

// CustomPresetName identifies the single runtime-adjustable catalog entry.
const CustomPresetName = "Custom"

// catalog is the fixed preset ordering. The trailing Custom entry is the
// only one whose rates change at runtime.
var catalog = []Preset{
	{Name: "Soliton Collapse", FeedRate: 0.0220, KillRate: 0.0610},
	{Name: "Brain Coral", FeedRate: 0.0545, KillRate: 0.0620},
	{Name: "Fingerprint", FeedRate: 0.0370, KillRate: 0.0600},
	{Name: "Mitosis", FeedRate: 0.0367, KillRate: 0.0649},
	{Name: "Ripples", FeedRate: 0.0180, KillRate: 0.0510},
	{Name: "U-Skate World", FeedRate: 0.0620, KillRate: 0.0609},
	{Name: "Undulating", FeedRate: 0.0260, KillRate: 0.0540},
	{Name: CustomPresetName, FeedRate: 0.0300, KillRate: 0.0620},
}

// Presets returns the full catalog in its fixed order with every entry at
// its published rates. Runtime adjustments to Custom live inside each
// PresetController and are not reflected here.
func Presets() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)
	return out
}

// RateParam selects which rate an adjustment targets.
type RateParam uint8

const (
	FeedRate RateParam = iota
	KillRate
)

// Adjustment step sizes; fine is one order of magnitude smaller.
const (
	rateStepCoarse float32 = 0.001
	rateStepFine   float32 = 0.0001
)

// PresetController owns the active reaction parameters and the catalog
// cursor. Adjusting a rate while a named preset is active copies that
// preset's rates into Custom and moves the cursor there, so named presets
// are never mutated.
type PresetController struct {
	presets []Preset
	active  int
}

// NewPresetController returns a controller positioned on the first preset.
func NewPresetController() *PresetController {
	p := make([]Preset, len(catalog))
	copy(p, catalog)
	return &PresetController{presets: p}
}

// Active returns the currently selected preset.
func (c *PresetController) Active() Preset { return c.presets[c.active] }

// Cycle moves the cursor circularly through the catalog. Positive direction
// advances, negative retreats; both wrap at the ends.
func (c *PresetController) Cycle(direction int) {
	n := len(c.presets)
	step := 1
	if direction < 0 {
		step = -1
	}
	c.active = ((c.active+step)%n + n) % n
}

// Select positions the cursor on the named preset. Unknown names leave the
// cursor untouched and report false.
func (c *PresetController) Select(name string) bool {
	for i, p := range c.presets {
		if p.Name == name {
			c.active = i
			return true
		}
	}
	return false
}

// Adjust nudges the chosen rate of the Custom entry by one step (fine uses
// the smaller step) in the sign of delta, clamping into [0, 1]. If a named
// preset is active its rates seed Custom first and Custom becomes active.
func (c *PresetController) Adjust(param RateParam, delta float32, fine bool) {
	custom := len(c.presets) - 1
	if c.active != custom {
		c.presets[custom].FeedRate = c.presets[c.active].FeedRate
		c.presets[custom].KillRate = c.presets[c.active].KillRate
		c.active = custom
	}

	step := rateStepCoarse
	if fine {
		step = rateStepFine
	}
	if delta < 0 {
		step = -step
	}

	switch param {
	case FeedRate:
		c.presets[custom].FeedRate = clampRate(c.presets[custom].FeedRate + step)
	case KillRate:
		c.presets[custom].KillRate = clampRate(c.presets[custom].KillRate + step)
	}
}

// Params returns the snapshot the stepper consumes for one pass.
func (c *PresetController) Params() Params {
	active := c.presets[c.active]
	return Params{
		FeedRate: active.FeedRate,
		KillRate: active.KillRate,
		Du:       DiffusionU,
		Dv:       DiffusionV,
	}
}
