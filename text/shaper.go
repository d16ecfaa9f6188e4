package text

// Shaper converts a run of text in one face into positioned glyphs.
//
// Shape must produce design-unit output so the same result can be laid out
// at any size. Features are passed per call and never stored on the shaper.
type Shaper interface {
	Shape(text string, src *FontSource, features FeatureSet) ([]ShapedGlyph, error)
}
