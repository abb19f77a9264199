package anim

import "math"

// RGB is a color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Reference colors: a slightly blue-tinted near-white bar over black.
var (
	BarColor = RGB{R: 0.9, G: 0.9, B: 1.0}
	Gap      = RGB{R: 0, G: 0, B: 0}
)

// Pattern is a one-dimensional repeating gradient of total period 1:
// bright over [0, Fraction), dark over [Fraction, 1), tiled infinitely
// in both directions.
type Pattern struct {
	Fraction float64 // width of the bright segment, in (0, 1)
	Bright   RGB
	Dark     RGB
}

// DefaultPattern returns the reference pattern: a bar covering 3/8 of
// the period in the reference bar color.
func DefaultPattern() Pattern {
	return Pattern{Fraction: 3.0 / 8, Bright: BarColor, Dark: Gap}
}

// At samples the pattern at normalized position u. Any real u is valid;
// the pattern repeats with period 1.
func (p Pattern) At(u float64) RGB {
	u -= math.Floor(u)
	if u < p.Fraction {
		return p.Bright
	}
	return p.Dark
}

// BrightAt reports whether screen column x falls inside the bright bar
// for a pattern stretched to width pixels and translated by offset.
// width must be positive.
func (p Pattern) BrightAt(x, offset, width int) bool {
	d := (x - offset) % width
	if d < 0 {
		d += width
	}
	return float64(d)/float64(width) < p.Fraction
}
