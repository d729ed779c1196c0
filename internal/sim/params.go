// Package sim implements the Gray-Scott reaction-diffusion engine: the
// per-step kernel, the nutrient modulation fields, the preset catalog, and
// the interactive brush.
package sim

import "grayscott/internal/core"

// Diffusion coefficients. These are fixed constants shared by every preset;
// only feed and kill rates vary.
const (
	DiffusionU float32 = 1.0
	DiffusionV float32 = 0.5
)

// Params is the value snapshot consumed once per step by the stepper.
type Params struct {
	FeedRate float32
	KillRate float32
	Du       float32
	Dv       float32
}

// clampRate keeps a feed or kill rate inside the stable [0, 1] range.
func clampRate(v float32) float32 { return core.Clamp01(v) }
