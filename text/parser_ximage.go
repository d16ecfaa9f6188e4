package text

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	weight, italic := readOS2(data)
	return &ximageParsedFont{font: f, weight: weight, italic: italic}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// sfnt.Font is safe for concurrent use as long as every caller brings its
// own sfnt.Buffer, so methods here allocate a local buffer.
type ximageParsedFont struct {
	font   *opentype.Font
	weight int
	italic bool
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name := f.name(sfnt.NameIDTypographicFamily); name != "" {
		return name
	}
	return f.name(sfnt.NameIDFamily)
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	return f.name(sfnt.NameIDFull)
}

// Subfamily implements ParsedFont.Subfamily.
func (f *ximageParsedFont) Subfamily() string {
	if name := f.name(sfnt.NameIDTypographicSubfamily); name != "" {
		return name
	}
	return f.name(sfnt.NameIDSubfamily)
}

func (f *ximageParsedFont) name(id sfnt.NameID) string {
	var buf sfnt.Buffer
	if s, err := f.font.Name(&buf, id); err == nil {
		return strings.TrimSpace(s)
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// Metrics implements ParsedFont.Metrics.
// The font is queried at ppem == unitsPerEm so that the 26.6 results are
// design units; descent is negated back to the hhea convention.
func (f *ximageParsedFont) Metrics() FontMetrics {
	var buf sfnt.Buffer

	upem := f.UnitsPerEm()
	m, err := f.font.Metrics(&buf, fixed.I(upem), font.HintingNone)
	if err != nil {
		return FontMetrics{UnitsPerEm: upem}
	}

	ascent := fixedToFloat64(m.Ascent)
	descent := -fixedToFloat64(m.Descent)
	return FontMetrics{
		UnitsPerEm: upem,
		Ascent:     ascent,
		Descent:    descent,
		LineGap:    fixedToFloat64(m.Height) - ascent + descent,
		XHeight:    fixedToFloat64(m.XHeight),
		CapHeight:  fixedToFloat64(m.CapHeight),
	}
}

// Weight implements ParsedFont.Weight.
func (f *ximageParsedFont) Weight() int {
	return f.weight
}

// Italic implements ParsedFont.Italic.
func (f *ximageParsedFont) Italic() bool {
	if f.italic {
		return true
	}
	sub := strings.ToLower(f.Subfamily())
	return strings.Contains(sub, "italic") || strings.Contains(sub, "oblique")
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// OS/2 table layout offsets used by readOS2.
const (
	os2WeightOffset      = 4
	os2SelectionOffset   = 62
	os2SelectionItalic   = 1 << 0
	os2SelectionOblique  = 1 << 9
	defaultWeightClass   = 400
	tableRecordSize      = 16
	tableDirectoryHeader = 12
)

// readOS2 extracts usWeightClass and the italic bit of fsSelection from the
// raw font data. sfnt does not expose the OS/2 table, so the table directory
// is walked directly. Missing or truncated tables yield (400, false).
func readOS2(data []byte) (int, bool) {
	if len(data) < tableDirectoryHeader {
		return defaultWeightClass, false
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	for i := 0; i < numTables; i++ {
		rec := tableDirectoryHeader + i*tableRecordSize
		if rec+tableRecordSize > len(data) {
			break
		}
		if string(data[rec:rec+4]) != "OS/2" {
			continue
		}
		off := int(binary.BigEndian.Uint32(data[rec+8 : rec+12]))
		length := int(binary.BigEndian.Uint32(data[rec+12 : rec+16]))
		if off < 0 || length < os2SelectionOffset+2 || off+length > len(data) {
			return defaultWeightClass, false
		}
		table := data[off : off+length]
		weight := int(binary.BigEndian.Uint16(table[os2WeightOffset : os2WeightOffset+2]))
		if weight == 0 {
			weight = defaultWeightClass
		}
		sel := binary.BigEndian.Uint16(table[os2SelectionOffset : os2SelectionOffset+2])
		return weight, sel&(os2SelectionItalic|os2SelectionOblique) != 0
	}
	return defaultWeightClass, false
}
