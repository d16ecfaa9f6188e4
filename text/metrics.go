package text

import "math"

// FontMetrics holds font-level metrics in design units.
type FontMetrics struct {
	// UnitsPerEm is the size of the font's design grid.
	UnitsPerEm int

	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// Height returns the total line height (ascent - descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

// ScaleContext converts design units of one face to output units at one
// target size. It is derived once per (face, size) and never mutated, so it
// can be shared read-only between concurrent renders.
type ScaleContext struct {
	ScaleFactor float64
	UnitsPerEm  int
	Ascent      float64
	Descent     float64
	TargetSize  float64
}

// NewScaleContext derives the scale so that the face's ascent-to-descent
// extent maps onto size. Degenerate metrics (zero or inverted extents) are
// clamped to a height of one design unit.
func NewScaleContext(m FontMetrics, size float64) ScaleContext {
	originHeight := math.Max(m.Ascent-m.Descent, 1)
	return ScaleContext{
		ScaleFactor: size / originHeight,
		UnitsPerEm:  m.UnitsPerEm,
		Ascent:      m.Ascent,
		Descent:     m.Descent,
		TargetSize:  size,
	}
}

// Scale converts a design-unit distance to output units.
func (s ScaleContext) Scale(v float64) float64 {
	return v * s.ScaleFactor
}

// LetterSpacing converts a spacing given in em to output units.
func (s ScaleContext) LetterSpacing(em float64) float64 {
	return em * float64(s.UnitsPerEm) * s.ScaleFactor
}

// Baseline returns the baseline y for a line whose top edge is at originY.
func (s ScaleContext) Baseline(originY float64) float64 {
	return originY + s.Ascent*s.ScaleFactor
}
