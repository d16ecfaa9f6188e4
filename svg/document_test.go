package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestAssembler(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	sc := src.ScaleContext(64)
	cache := NewSymbolCache()
	layout := NewLineLayout(cache, 0)

	// Defined but never placed: must not reach the document.
	_, _ = cache.GetOrCreate(src, src.Parsed().GlyphIndex('z'), sc)

	short := layout.Layout(Pt(0, 0), Run{Source: src, Scale: sc, Glyphs: glyphs(t, src, "ab")})
	long := layout.Layout(Pt(0, 0), Run{Source: src, Scale: sc, Glyphs: glyphs(t, src, "abab ab")})

	asm := NewAssembler(64)
	asm.AddLine(short)
	asm.AddBlank()
	asm.AddLine(long)
	doc := asm.Finish(cache, DefaultPathStyle())

	assert.Equal(t, 3, asm.Lines())
	assert.Equal(t, 192.0, doc.Height)
	assert.InDelta(t, long.Box.MaxX, doc.Width, 1e-9)

	require.Len(t, doc.Groups, 2)
	assert.Equal(t, 0.0, doc.Groups[0].OffsetY)
	assert.Equal(t, 128.0, doc.Groups[1].OffsetY)

	// 'a' and 'b' only, once each, though referenced six times.
	require.Len(t, doc.Symbols, 2)
	ids := map[string]bool{}
	for _, s := range doc.Symbols {
		assert.False(t, ids[s.ID], "duplicate definition %s", s.ID)
		ids[s.ID] = true
	}
	assert.Equal(t, 9, doc.Placements())
}

func TestAssemblerEmpty(t *testing.T) {
	doc := NewAssembler(32).Finish(nil, DefaultPathStyle())
	assert.Zero(t, doc.Width)
	assert.Zero(t, doc.Height)
	assert.Empty(t, doc.Symbols)
}
