package text

// ShapedGlyph is one positioned glyph produced by a Shaper.
// All values are in font design units; the caller scales them.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the index of the first source rune this glyph belongs to.
	Cluster int

	// XAdvance is the horizontal pen advance after this glyph.
	XAdvance float64

	// YAdvance is the vertical pen advance (zero for horizontal text).
	YAdvance float64

	// XOffset and YOffset displace the glyph from the pen position without
	// moving the pen. YOffset is y-up.
	XOffset float64
	YOffset float64
}
