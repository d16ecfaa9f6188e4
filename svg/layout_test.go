package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphsvg/text"
)

// glyphs shapes s without optional features.
func glyphs(t *testing.T, src *text.FontSource, s string) []text.ShapedGlyph {
	t.Helper()
	shaped, err := text.NewGoTextShaper().Shape(s, src, text.NewFeatureSet())
	require.NoError(t, err)
	return shaped
}

func TestLineLayoutRepeatedGlyph(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	sc := src.ScaleContext(64)
	cache := NewSymbolCache()

	res := NewLineLayout(cache, 0.1).Layout(Pt(0, 0), Run{Source: src, Scale: sc, Glyphs: glyphs(t, src, "aaa")})

	require.Len(t, res.Placements, 3)
	assert.Equal(t, 1, cache.Len(), "three 'a' share one definition")
	for _, p := range res.Placements {
		assert.Equal(t, res.Placements[0].SymbolID, p.SymbolID)
	}
	assert.Less(t, res.Placements[0].X, res.Placements[1].X)
}

func TestLineLayoutLetterSpacing(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	sc := src.ScaleContext(64)
	parsed := src.Parsed()

	const adv = 1000.0
	run := Run{Source: src, Scale: sc, Glyphs: []text.ShapedGlyph{
		{GID: parsed.GlyphIndex('a'), XAdvance: adv},
		{GID: parsed.GlyphIndex(' '), XAdvance: adv},
		{GID: parsed.GlyphIndex('b'), XAdvance: adv},
		{GID: parsed.GlyphIndex('c'), XAdvance: adv},
	}}
	res := NewLineLayout(NewSymbolCache(), 0.1).Layout(Pt(0, 0), run)

	step := sc.Scale(adv)
	spacing := sc.LetterSpacing(0.1)
	require.Len(t, res.Placements, 4)

	// No spacing before the first glyph.
	assert.InDelta(t, 0, res.Placements[0].X, 1e-9)
	// Spacing after a visible glyph, even before a space.
	assert.InDelta(t, step+spacing, res.Placements[1].X, 1e-9)
	// None after the space.
	assert.InDelta(t, 2*step+spacing, res.Placements[2].X, 1e-9)
	assert.InDelta(t, 3*step+2*spacing, res.Placements[3].X, 1e-9)

	assert.False(t, res.Placements[1].Visible())
	assert.True(t, res.Placements[3].Visible())

	// One trailing increment is reserved after a visible last glyph.
	assert.InDelta(t, 4*step+2*spacing, res.Cursor, 1e-9)
	assert.InDelta(t, res.Cursor+spacing, res.Box.MaxX, 1e-9)
}

func TestLineLayoutBoundingBox(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	sc := src.ScaleContext(48)

	res := NewLineLayout(NewSymbolCache(), 0).Layout(Pt(10, 20), Run{Source: src, Scale: sc, Glyphs: glyphs(t, src, "Hi")})

	assert.Equal(t, 10.0, res.Box.MinX)
	assert.Equal(t, 20.0, res.Box.MinY)
	assert.Equal(t, 68.0, res.Box.MaxY, "vertical extent is origin + size")
	assert.InDelta(t, res.Cursor, res.Box.MaxX, 1e-9)

	baseline := sc.Baseline(20)
	for _, p := range res.Placements {
		assert.InDelta(t, baseline, p.Y, 1e-9)
	}
}

// TestLineLayoutZeroAdvanceInvisible checks that a glyph with no advance and
// no outline still gets a placement and never pulls MaxX back.
func TestLineLayoutZeroAdvanceInvisible(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	sc := src.ScaleContext(64)
	parsed := src.Parsed()

	run := Run{Source: src, Scale: sc, Glyphs: []text.ShapedGlyph{
		{GID: parsed.GlyphIndex('a'), XAdvance: 1000},
		{GID: parsed.GlyphIndex(' '), XAdvance: 0},
	}}
	res := NewLineLayout(NewSymbolCache(), 0).Layout(Pt(0, 0), run)

	require.Len(t, res.Placements, 2)
	before := res.Placements[1].X
	assert.False(t, res.Placements[1].Visible())
	assert.GreaterOrEqual(t, res.Box.MaxX, before)
}

func TestLineLayoutOffsets(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	sc := src.ScaleContext(64)

	run := Run{Source: src, Scale: sc, Glyphs: []text.ShapedGlyph{
		{GID: src.Parsed().GlyphIndex('a'), XAdvance: 1000, XOffset: 100, YOffset: 200},
	}}
	res := NewLineLayout(NewSymbolCache(), 0).Layout(Pt(0, 0), run)

	require.Len(t, res.Placements, 1)
	assert.InDelta(t, sc.Scale(100), res.Placements[0].X, 1e-9)
	assert.InDelta(t, sc.Baseline(0)-sc.Scale(200), res.Placements[0].Y, 1e-9, "y offset is y-up")
	assert.InDelta(t, sc.Scale(1000), res.Cursor, 1e-9, "offsets do not move the pen")
}

func TestLineLayoutRunsShareSpacingState(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	sc := src.ScaleContext(64)
	parsed := src.Parsed()

	first := Run{Source: src, Scale: sc, Glyphs: []text.ShapedGlyph{{GID: parsed.GlyphIndex('a'), XAdvance: 1000}}}
	second := Run{Source: src, Scale: sc, Fill: "red", Glyphs: []text.ShapedGlyph{{GID: parsed.GlyphIndex('b'), XAdvance: 1000}}}

	res := NewLineLayout(NewSymbolCache(), 0.1).Layout(Pt(0, 0), first, second)
	require.Len(t, res.Placements, 2)
	assert.InDelta(t, sc.Scale(1000)+sc.LetterSpacing(0.1), res.Placements[1].X, 1e-9)
	assert.Equal(t, "red", res.Placements[1].Fill)
	assert.Empty(t, res.Placements[0].Fill)
}

func TestLineLayoutEmpty(t *testing.T) {
	res := NewLineLayout(NewSymbolCache(), 0.1).Layout(Pt(3, 4))
	assert.Empty(t, res.Placements)
	assert.Equal(t, BoundingBox{MinX: 3, MinY: 4, MaxX: 3, MaxY: 4}, res.Box)
}
