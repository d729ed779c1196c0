package sim

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Pattern enumerates the nutrient modulation fields. Each pattern maps
// normalized coordinates onto a feed-rate multiplier in [0.5, 1.0]; Uniform
// is exactly 1.0 everywhere.
type Pattern uint8

const (
	PatternUniform Pattern = iota
	PatternCheckerboard
	PatternDiagonalGradient
	PatternRadialGradient
	PatternVerticalStripes
	PatternHorizontalStripes
	PatternNoise
	PatternInterference

	patternCount
)

// String returns the display name of the pattern.
func (p Pattern) String() string {
	switch p {
	case PatternUniform:
		return "Uniform"
	case PatternCheckerboard:
		return "Checkerboard"
	case PatternDiagonalGradient:
		return "Diagonal Gradient"
	case PatternRadialGradient:
		return "Radial Gradient"
	case PatternVerticalStripes:
		return "Vertical Stripes"
	case PatternHorizontalStripes:
		return "Horizontal Stripes"
	case PatternNoise:
		return "Noise"
	case PatternInterference:
		return "Interference"
	default:
		return "Unknown"
	}
}

// Patterns returns every pattern in cycling order.
func Patterns() []Pattern {
	out := make([]Pattern, 0, patternCount)
	for p := Pattern(0); p < patternCount; p++ {
		out = append(out, p)
	}
	return out
}

// checkerBlock is the checkerboard block edge in cells. Parity of the block
// index pair selects the high or low level.
const checkerBlock = 32

// stripeHalfPeriods divides each axis into ten stripe periods of two halves
// each. Bucketing in integer cell space keeps period boundaries exact.
const stripeHalfPeriods = 20

// nutrientNoise backs the Noise pattern. The source is immutable after
// construction, so concurrent evaluation from stepper workers is safe, and
// the fixed seed keeps every evaluation deterministic.
var nutrientNoise = opensimplex.NewNormalized(1337)

// Nutrient evaluates the pattern at cell (x, y) of a w-by-h grid. The result
// is always inside [0.5, 1.0]. Evaluation is stateless: identical inputs
// yield identical outputs across steps and across workers.
func Nutrient(p Pattern, reversed bool, x, y, w, h int) float32 {
	f := evaluate(p, x, y, w, h)
	if reversed {
		f = Reverse(f)
	}
	return f
}

// Reverse inverts bright and dark regions while keeping the [0.5, 1.0]
// range fixed. Applying it twice is an exact involution.
func Reverse(f float32) float32 { return 1.5 - f }

func evaluate(p Pattern, x, y, w, h int) float32 {
	nx := float64(x) / float64(w)
	ny := float64(y) / float64(h)

	switch p {
	case PatternUniform:
		return 1.0

	case PatternCheckerboard:
		if (x/checkerBlock+y/checkerBlock)%2 == 0 {
			return 1.0
		}
		return 0.5

	case PatternDiagonalGradient:
		return float32(1.0 - 0.5*(nx+ny)/2)

	case PatternRadialGradient:
		d := math.Hypot(nx-0.5, ny-0.5)
		return clampFactor(1.0 - d)

	case PatternVerticalStripes:
		return stripe(x, w)

	case PatternHorizontalStripes:
		return stripe(y, h)

	case PatternNoise:
		return layeredNoise(nx, ny)

	case PatternInterference:
		return interference(nx, ny)

	default:
		return 1.0
	}
}

// stripe reports the level for cell c on an n-cell axis: the first half of
// each period is full nutrient, the second half is the low level.
func stripe(c, n int) float32 {
	if (c*stripeHalfPeriods/n)%2 == 0 {
		return 1.0
	}
	return 0.5
}

// layeredNoise sums four simplex octaves (amplitude halving, frequency
// doubling), adds a low-frequency sinusoidal perturbation, then shapes the
// contrast before clamping into the nutrient range.
func layeredNoise(nx, ny float64) float32 {
	sum := 0.0
	amp := 0.5
	freq := 4.0
	for octave := 0; octave < 4; octave++ {
		sum += amp * nutrientNoise.Eval2(nx*freq, ny*freq)
		amp /= 2
		freq *= 2
	}
	// Octave amplitudes total 0.9375, so renormalize onto [0, 1].
	t := sum / 0.9375
	t += 0.1 * math.Sin(2*math.Pi*nx) * math.Sin(2*math.Pi*ny)
	t = 0.5 + (t-0.5)*1.6
	return clampFactor(0.5 + 0.5*t)
}

// interference multiplies two phase-modulated trigonometric fields and
// pushes the product through a saturating tanh before normalizing onto the
// nutrient range.
func interference(nx, ny float64) float32 {
	fx := 2 * math.Pi * nx
	fy := 2 * math.Pi * ny
	a := math.Sin(6*fx + 2*math.Sin(3*fy))
	b := math.Sin(6*fy + 2*math.Sin(3*fx))
	s := math.Tanh(1.5*a*b) / math.Tanh(1.5)
	return float32(0.75 + 0.25*s)
}

func clampFactor(v float64) float32 {
	if v < 0.5 {
		return 0.5
	}
	if v > 1.0 {
		return 1.0
	}
	return float32(v)
}
