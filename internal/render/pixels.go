package render

import (
	"image/color"
	"math"

	"grayscott/internal/core"
)

// FillRGBA converts the committed cell buffer into RGBA pixels in buf using
// the provided lookup table. The shading folds both channels through a sine
// so moving reaction fronts render as banded contours.
func FillRGBA(buf []byte, cells []core.Cell, lut []color.RGBA) {
	if len(lut) == 0 || len(buf) < 4*len(cells) {
		return
	}
	last := len(lut) - 1
	for i, c := range cells {
		value := 0.5 + 0.5*math.Sin(20*float64(c.V)+10*float64(c.U))
		idx := int(value * float64(last))
		if idx < 0 {
			idx = 0
		}
		if idx > last {
			idx = last
		}
		col := lut[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
