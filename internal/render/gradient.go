// Package render converts the committed cell buffer into RGBA pixels through
// a color-gradient lookup table. It performs no drawing itself.
package render

import "image/color"

// lutSize is the number of entries in a baked gradient lookup table.
const lutSize = 256

// Gradient is a named sequence of color stops baked into a LUT.
type Gradient struct {
	name  string
	stops []stop
}

type stop struct {
	t float64
	c color.RGBA
}

// Name returns the gradient's display name.
func (g Gradient) Name() string { return g.name }

// LUT bakes the gradient into a 256-entry lookup table.
func (g Gradient) LUT() []color.RGBA {
	lut := make([]color.RGBA, lutSize)
	for i := range lut {
		lut[i] = g.colorAt(float64(i) / float64(lutSize-1))
	}
	return lut
}

func (g Gradient) colorAt(t float64) color.RGBA {
	if t <= g.stops[0].t {
		return g.stops[0].c
	}
	for i := 1; i < len(g.stops); i++ {
		curr := g.stops[i]
		if t <= curr.t {
			prev := g.stops[i-1]
			span := curr.t - prev.t
			local := 0.0
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.c, curr.c, local)
		}
	}
	return g.stops[len(g.stops)-1].c
}

// Gradients returns the built-in gradient presets in cycling order.
func Gradients() []Gradient {
	return []Gradient{
		{name: "Rainbow", stops: []stop{
			{0.0, color.RGBA{R: 148, G: 0, B: 211, A: 255}},
			{0.2, color.RGBA{R: 0, G: 0, B: 255, A: 255}},
			{0.4, color.RGBA{R: 0, G: 255, B: 255, A: 255}},
			{0.6, color.RGBA{R: 0, G: 255, B: 0, A: 255}},
			{0.8, color.RGBA{R: 255, G: 255, B: 0, A: 255}},
			{1.0, color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		}},
		{name: "Pink and Blue", stops: []stop{
			{0.0, color.RGBA{R: 30, G: 10, B: 60, A: 255}},
			{0.5, color.RGBA{R: 70, G: 130, B: 235, A: 255}},
			{1.0, color.RGBA{R: 255, G: 120, B: 200, A: 255}},
		}},
		{name: "Protanopia Friendly", stops: []stop{
			{0.0, color.RGBA{R: 0, G: 0, B: 0, A: 255}},
			{0.5, color.RGBA{R: 0, G: 114, B: 178, A: 255}},
			{1.0, color.RGBA{R: 240, G: 228, B: 66, A: 255}},
		}},
		{name: "Magma", stops: []stop{
			{0.0, color.RGBA{R: 0, G: 0, B: 4, A: 255}},
			{0.33, color.RGBA{R: 122, G: 27, B: 109, A: 255}},
			{0.66, color.RGBA{R: 236, G: 98, B: 58, A: 255}},
			{1.0, color.RGBA{R: 252, G: 253, B: 191, A: 255}},
		}},
		{name: "Monochrome", stops: []stop{
			{0.0, color.RGBA{R: 0, G: 0, B: 0, A: 255}},
			{1.0, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		}},
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
