package sim

import (
	"slices"
	"testing"
)

func TestStepCounterAdvances(t *testing.T) {
	sys, err := NewSystem(32, 32, 1)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	for i := 0; i < 5; i++ {
		sys.Step()
	}
	if sys.Steps() != 5 {
		t.Fatalf("Steps() = %d after 5 steps, want 5", sys.Steps())
	}
	sys.Clear()
	if sys.Steps() != 0 {
		t.Fatalf("Steps() = %d after Clear, want 0", sys.Steps())
	}
}

func TestNutrientPatternCyclingWraps(t *testing.T) {
	sys, err := NewSystem(16, 16, 1)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	start := sys.Pattern()
	n := len(Patterns())
	for i := 0; i < n; i++ {
		sys.CycleNutrientPattern(1)
	}
	if sys.Pattern() != start {
		t.Fatalf("forward cycle through %d patterns landed on %v, want %v", n, sys.Pattern(), start)
	}
	sys.CycleNutrientPattern(-1)
	if sys.Pattern() != Pattern(n-1) {
		t.Fatalf("backward cycle from first = %v, want %v", sys.Pattern(), Pattern(n-1))
	}
}

func TestStatusReflectsState(t *testing.T) {
	sys, err := NewSystem(16, 16, 1)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	if !sys.Presets().Select("Mitosis") {
		t.Fatal("Select(Mitosis) failed")
	}
	sys.SetPattern(PatternNoise)
	sys.ToggleNutrientReversed()
	sys.Step()
	sys.Step()

	st := sys.Status()
	if st.Preset != "Mitosis" {
		t.Fatalf("Status.Preset = %q, want Mitosis", st.Preset)
	}
	if st.FeedRate != 0.0367 || st.KillRate != 0.0649 {
		t.Fatalf("Status rates = %v/%v, want 0.0367/0.0649", st.FeedRate, st.KillRate)
	}
	if st.Pattern != PatternNoise.String() {
		t.Fatalf("Status.Pattern = %q, want %q", st.Pattern, PatternNoise.String())
	}
	if !st.Reversed {
		t.Fatal("Status.Reversed = false after toggle")
	}
	if st.Steps != 2 {
		t.Fatalf("Status.Steps = %d, want 2", st.Steps)
	}
}

func TestSeedNoiseDeterministicPerSeed(t *testing.T) {
	a, err := NewSystem(64, 48, 99)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	b, err := NewSystem(64, 48, 99)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	a.SeedNoise()
	b.SeedNoise()
	if !slices.Equal(a.Grid().Cells(), b.Grid().Cells()) {
		t.Fatal("identical seeds produced different noise fields")
	}

	c, err := NewSystem(64, 48, 100)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	c.SeedNoise()
	if slices.Equal(a.Grid().Cells(), c.Grid().Cells()) {
		t.Fatal("different seeds produced identical noise fields")
	}
}

func TestResizeRejectsInvalidDimensions(t *testing.T) {
	sys, err := NewSystem(16, 16, 1)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	if err := sys.Resize(0, 16); err == nil {
		t.Fatal("Resize(0, 16) succeeded, want error")
	}
	if err := sys.Resize(32, 24); err != nil {
		t.Fatalf("Resize(32, 24): %v", err)
	}
	if g := sys.Grid(); g.W != 32 || g.H != 24 {
		t.Fatalf("grid is %dx%d after resize, want 32x24", g.W, g.H)
	}
	if sys.Steps() != 0 {
		t.Fatalf("Steps() = %d after resize, want 0", sys.Steps())
	}
}

func TestSimulationEvolvesFromSeededSpot(t *testing.T) {
	sys, err := NewSystem(64, 64, 7)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	sys.ApplyBrush(BrushEvent{X: 32, Y: 32, ViewW: 64, ViewH: 64, Mode: BrushSeed, Held: true})
	before := slices.Clone(sys.Grid().Cells())
	for i := 0; i < 10; i++ {
		sys.Step()
	}
	if slices.Equal(before, sys.Grid().Cells()) {
		t.Fatal("field unchanged after stepping a seeded spot")
	}
}
