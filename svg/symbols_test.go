package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphsvg/text"
)

func loadSource(t *testing.T, data []byte) *text.FontSource {
	t.Helper()
	src, err := text.NewFontSource(data)
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestSymbolCacheIdempotent(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	sc := src.ScaleContext(64)
	gid := src.Parsed().GlyphIndex('a')

	cache := NewSymbolCache()
	id1, ok1 := cache.GetOrCreate(src, gid, sc)
	id2, ok2 := cache.GetOrCreate(src, gid, sc)

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, 1, cache.decodes, "a hit must not decode again")

	defs := cache.Definitions()
	require.Len(t, defs, 1)
	assert.Equal(t, "g0", defs[0].ID)
	assert.Contains(t, defs[0].PathData, "M")
	assert.Contains(t, defs[0].PathData, "Z")
}

func TestSymbolCacheFacesDoNotCollide(t *testing.T) {
	regular := loadSource(t, goregular.TTF)
	bold := loadSource(t, gobold.TTF)
	gid := regular.Parsed().GlyphIndex('a')

	cache := NewSymbolCache()
	idRegular, _ := cache.GetOrCreate(regular, gid, regular.ScaleContext(32))
	idBold, _ := cache.GetOrCreate(bold, gid, bold.ScaleContext(32))

	assert.NotEqual(t, idRegular, idBold)
	assert.Equal(t, 2, cache.Len())
}

func TestSymbolCacheScaleIsPartOfKey(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	gid := src.Parsed().GlyphIndex('a')

	cache := NewSymbolCache()
	small, _ := cache.GetOrCreate(src, gid, src.ScaleContext(16))
	large, _ := cache.GetOrCreate(src, gid, src.ScaleContext(64))
	assert.NotEqual(t, small, large)
}

func TestSymbolCacheInvisibleGlyph(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	gid := src.Parsed().GlyphIndex(' ')

	cache := NewSymbolCache()
	for i := 0; i < 2; i++ {
		id, visible := cache.GetOrCreate(src, gid, src.ScaleContext(64))
		assert.False(t, visible)
		assert.Empty(t, id)
	}
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, 1, cache.decodes, "invisible glyphs are remembered too")
}

func TestSymbolCacheOptionsAndReset(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	sc := src.ScaleContext(64)

	cache := NewSymbolCache(WithPrefix("glyph-"), WithPathPrecision(0))
	id, _ := cache.GetOrCreate(src, src.Parsed().GlyphIndex('x'), sc)
	assert.Equal(t, "glyph-0", id)
	assert.NotContains(t, cache.Definitions()[0].PathData, ".")

	cache.Reset()
	assert.Equal(t, 0, cache.Len())
	id, _ = cache.GetOrCreate(src, src.Parsed().GlyphIndex('y'), sc)
	assert.Equal(t, "glyph-0", id, "a reset cache starts a new arena")
}
