package core

import (
	"slices"
	"testing"
)

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -5}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1]); err == nil {
			t.Fatalf("NewGrid(%d, %d) accepted invalid dimensions", dims[0], dims[1])
		}
	}
}

func TestNewGridStartsAtBaseline(t *testing.T) {
	g, err := NewGrid(8, 6)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range g.Cells() {
		if c != Baseline {
			t.Fatalf("cell %d = %+v, want baseline", i, c)
		}
	}
}

func TestWrapAllEdgesAndCorners(t *testing.T) {
	g, err := NewGrid(7, 5)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y         int
		wantX, wantY int
	}{
		{-1, 0, 6, 0},  // left edge resolves to right
		{7, 0, 0, 0},   // right edge resolves to left
		{0, -1, 0, 4},  // top edge resolves to bottom
		{0, 5, 0, 0},   // bottom edge resolves to top
		{-1, -1, 6, 4}, // corner
		{7, 5, 0, 0},   // opposite corner
		{-15, 12, 6, 2},
		{3, 2, 3, 2},
	}
	for _, tt := range tests {
		x, y := g.Wrap(tt.x, tt.y)
		if x != tt.wantX || y != tt.wantY {
			t.Fatalf("Wrap(%d, %d) = (%d, %d), want (%d, %d)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestAtAndSetWrapToroidally(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(-1, -1, Cell{U: 0.25, V: 0.75})
	got := g.At(3, 3)
	if got.U != 0.25 || got.V != 0.75 {
		t.Fatalf("At(3, 3) = %+v after Set(-1, -1)", got)
	}
}

func TestSetClampsChannels(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, Cell{U: 2, V: -1})
	got := g.At(0, 0)
	if got.U != 1 || got.V != 0 {
		t.Fatalf("Set did not clamp: %+v", got)
	}
}

func TestSwapExchangesBufferRoles(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Next()[0] = Cell{U: 0.5, V: 0.5}
	g.Swap()
	if got := g.Cells()[0]; got.U != 0.5 || got.V != 0.5 {
		t.Fatalf("committed buffer does not hold written value: %+v", got)
	}
}

func TestClearRestoresBaseline(t *testing.T) {
	g, err := NewGrid(6, 6)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(2, 2, Cell{U: 0.1, V: 0.9})
	g.Next()[5] = Cell{U: 0.3, V: 0.3}
	g.Clear()
	for i, c := range g.Cells() {
		if c != Baseline {
			t.Fatalf("current cell %d = %+v after Clear", i, c)
		}
	}
	for i, c := range g.Next() {
		if c != Baseline {
			t.Fatalf("next cell %d = %+v after Clear", i, c)
		}
	}
}

func TestResizeDiscardsContents(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(1, 1, Cell{U: 0, V: 1})
	if err := g.Resize(8, 2); err != nil {
		t.Fatal(err)
	}
	if g.W != 8 || g.H != 2 {
		t.Fatalf("dimensions after resize: %dx%d", g.W, g.H)
	}
	if len(g.Cells()) != 16 || len(g.Next()) != 16 {
		t.Fatalf("buffer sizes after resize: %d, %d", len(g.Cells()), len(g.Next()))
	}
	for i, c := range g.Cells() {
		if c != Baseline {
			t.Fatalf("cell %d = %+v after resize, want baseline", i, c)
		}
	}
	if err := g.Resize(0, 4); err == nil {
		t.Fatal("Resize accepted invalid dimensions")
	}
}

func TestSeedNoiseDeterministicLeavesUUntouched(t *testing.T) {
	g1, _ := NewGrid(16, 16)
	g2, _ := NewGrid(16, 16)
	g1.SeedNoise(NewRNG(42))
	g2.SeedNoise(NewRNG(42))

	if !slices.Equal(g1.Cells(), g2.Cells()) {
		t.Fatal("SeedNoise with equal seeds produced different grids")
	}
	touched := false
	for i, c := range g1.Cells() {
		if c.U != 1 {
			t.Fatalf("cell %d: SeedNoise modified u channel: %+v", i, c)
		}
		if c.V < 0 || c.V > 0.8 {
			t.Fatalf("cell %d: v = %v outside seeding range", i, c.V)
		}
		if c.V > 0 {
			touched = true
		}
	}
	if !touched {
		t.Fatal("SeedNoise left the grid entirely at baseline")
	}
}
