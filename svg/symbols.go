package svg

import (
	"strconv"

	"github.com/gogpu/glyphsvg/text"
)

// DefaultSymbolPrefix starts every symbol id.
const DefaultSymbolPrefix = "g"

// SymbolDefinition is one reusable glyph shape, defined at the local origin.
type SymbolDefinition struct {
	ID       string
	PathData string
}

// symbolKey identifies a glyph within one session. The face is part of the
// key because glyph ids from different faces never refer to the same shape.
type symbolKey struct {
	src   *text.FontSource
	gid   text.GlyphID
	scale float64
}

// symbolSlot is an index into the definition arena, or -1 for glyphs
// without a visible outline.
type symbolSlot int

const noSymbol symbolSlot = -1

// SymbolCache deduplicates glyph outlines for one document. Each glyph of a
// face at a scale is decoded once; later requests reuse the definition.
//
// A SymbolCache belongs to exactly one render session and is not safe for
// concurrent use. Start each document with a new cache or call Reset.
type SymbolCache struct {
	prefix    string
	precision int
	extractor *text.OutlineExtractor

	index map[symbolKey]symbolSlot
	defs  []SymbolDefinition

	// decodes counts outline decodes, for diagnostics.
	decodes int
}

// SymbolOption configures a SymbolCache.
type SymbolOption func(*SymbolCache)

// WithPrefix sets the prefix of generated symbol ids.
func WithPrefix(prefix string) SymbolOption {
	return func(c *SymbolCache) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithPathPrecision sets the number of decimals in symbol path data.
func WithPathPrecision(n int) SymbolOption {
	return func(c *SymbolCache) {
		c.precision = n
	}
}

// NewSymbolCache creates an empty cache for one document.
func NewSymbolCache(opts ...SymbolOption) *SymbolCache {
	c := &SymbolCache{
		prefix:    DefaultSymbolPrefix,
		precision: DefaultPrecision,
		extractor: text.NewOutlineExtractor(),
		index:     make(map[symbolKey]symbolSlot),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCreate returns the symbol id for gid of src at sc. On a miss the
// outline is decoded and transcoded with no translation, so the definition
// is independent of where the glyph is placed. visible is false for glyphs
// without an outline; they get no definition and an empty id.
func (c *SymbolCache) GetOrCreate(src *text.FontSource, gid text.GlyphID, sc text.ScaleContext) (id string, visible bool) {
	key := symbolKey{src: src, gid: gid, scale: sc.ScaleFactor}
	if slot, ok := c.index[key]; ok {
		return c.idOf(slot), slot != noSymbol
	}

	c.decodes++
	outline, ok := c.extractor.Extract(src, gid)
	if !ok {
		c.index[key] = noSymbol
		return "", false
	}

	path := Transcode(outline, GlyphMatrix(sc.ScaleFactor, 0, 0))
	slot := symbolSlot(len(c.defs))
	c.defs = append(c.defs, SymbolDefinition{
		ID:       c.prefix + strconv.Itoa(int(slot)),
		PathData: path.Data(c.precision),
	})
	c.index[key] = slot

	Logger().Debug("glyph symbol defined", "id", c.defs[slot].ID, "gid", gid,
		"segments", outline.SegmentCount(), "scale", sc.ScaleFactor)
	return c.defs[slot].ID, true
}

func (c *SymbolCache) idOf(slot symbolSlot) string {
	if slot == noSymbol {
		return ""
	}
	return c.defs[slot].ID
}

// Definitions returns the definitions in creation order.
func (c *SymbolCache) Definitions() []SymbolDefinition {
	out := make([]SymbolDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Len returns the number of definitions.
func (c *SymbolCache) Len() int {
	return len(c.defs)
}

// Reset empties the cache for a new session.
func (c *SymbolCache) Reset() {
	clear(c.index)
	c.defs = c.defs[:0]
	c.decodes = 0
}
