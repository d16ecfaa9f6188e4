package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// defaultShapeCacheSize bounds the number of shaped runs kept per shaper.
const defaultShapeCacheSize = 1024

// GoTextShaper shapes text with the HarfBuzz port in go-text/typesetting.
// It applies kerning, ligatures and contextual alternates as selected by the
// FeatureSet passed to each call.
//
// GoTextShaper is safe for concurrent use. Parsed font.Font objects are
// cached per FontSource; a light font.Face is created per call because
// font.Face is not safe for concurrent use. HarfbuzzShaper instances are
// pooled for the same reason.
type GoTextShaper struct {
	shaperPool sync.Pool

	language language.Language

	// fonts maps a FontSource to its parsed go-text font.
	fonts *Cache[*FontSource, *font.Font]

	// runs memoizes shaped output for repeated spans.
	runs *Cache[shapeKey, []ShapedGlyph]
}

type shapeKey struct {
	src      *FontSource
	text     string
	features string
}

// ShaperOption configures a GoTextShaper.
type ShaperOption func(*GoTextShaper)

// WithLanguage sets the BCP 47 language used for language-specific
// substitutions. The default is "en".
func WithLanguage(tag string) ShaperOption {
	return func(s *GoTextShaper) {
		if tag != "" {
			s.language = language.NewLanguage(tag)
		}
	}
}

// WithShapeCacheSize bounds the shaped-run cache. Zero disables the limit.
func WithShapeCacheSize(n int) ShaperOption {
	return func(s *GoTextShaper) {
		s.runs = NewCache[shapeKey, []ShapedGlyph](n)
	}
}

// NewGoTextShaper creates a shaper backed by go-text/typesetting.
func NewGoTextShaper(opts ...ShaperOption) *GoTextShaper {
	s := &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		language: language.NewLanguage("en"),
		fonts:    NewCache[*FontSource, *font.Font](0),
		runs:     NewCache[shapeKey, []ShapedGlyph](defaultShapeCacheSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shape implements Shaper. The returned slice is shared with the cache and
// must not be modified.
func (s *GoTextShaper) Shape(text string, src *FontSource, features FeatureSet) ([]ShapedGlyph, error) {
	if text == "" {
		return nil, nil
	}
	if src == nil {
		return nil, fmt.Errorf("text: shape %q: nil font source", text)
	}

	key := shapeKey{src: src, text: text, features: features.String()}
	if glyphs, ok := s.runs.Get(key); ok {
		return glyphs, nil
	}

	goTextFont, err := s.fonts.GetOrCreate(src, func() (*font.Font, error) {
		face, err := font.ParseTTF(bytes.NewReader(src.Data()))
		if err != nil {
			return nil, err
		}
		return face.Font, nil
	})
	if err != nil {
		return nil, fmt.Errorf("text: shape with %s: %w", src.FullName(), err)
	}

	runes := []rune(text)
	upem := src.Metrics().UnitsPerEm
	if upem <= 0 {
		upem = 1000
	}

	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    di.DirectionLTR,
		Face:         font.NewFace(goTextFont),
		Size:         fixed.I(upem),
		Script:       detectScript(runes),
		Language:     s.language,
		FontFeatures: toFontFeatures(features),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	glyphs := convertGlyphs(output.Glyphs)
	s.runs.Set(key, glyphs)
	return glyphs, nil
}

// RemoveSource drops everything cached for src.
func (s *GoTextShaper) RemoveSource(src *FontSource) {
	s.fonts.Delete(src)
	s.runs.Clear()
}

// ClearCache drops all cached fonts and runs.
func (s *GoTextShaper) ClearCache() {
	s.fonts.Clear()
	s.runs.Clear()
}

// toFontFeatures turns the enabled tags into go-text feature switches.
func toFontFeatures(fs FeatureSet) []shaping.FontFeature {
	if fs.Len() == 0 {
		return nil
	}
	out := make([]shaping.FontFeature, 0, fs.Len())
	for _, tag := range fs.tags {
		out = append(out, shaping.FontFeature{Tag: ot.MustNewTag(tag), Value: 1})
	}
	return out
}

// detectScript returns the script of the first non-space rune.
// Mixed-script text should be split into runs before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// convertGlyphs maps go-text output, shaped at size == unitsPerEm, to
// design-unit ShapedGlyphs. go-text offsets are already y-up.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	result := make([]ShapedGlyph, len(glyphs))
	for i, g := range glyphs {
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph ids are 16-bit
			Cluster:  g.TextIndex(),
			XAdvance: fixedToFloat(g.Advance),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
		}
	}
	return result
}
