package text

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/sfnt vs a pure Go implementation).
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// All values are reported in design units (the font's unitsPerEm grid),
// never scaled to a pixel size.
type ParsedFont interface {
	// Name returns the font family name.
	// The typographic family is preferred over the legacy family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name, e.g. "Go Bold Italic".
	// Returns empty string if not available.
	FullName() string

	// Subfamily returns the subfamily (style) name, e.g. "Bold Italic".
	Subfamily() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// Metrics returns the font-wide metrics in design units.
	Metrics() FontMetrics

	// Weight returns the OS/2 weight class (100..900), or 400 if unknown.
	Weight() int

	// Italic reports whether the font declares itself italic or oblique.
	Italic() bool
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
}

// defaultParserName is used when no parser is selected explicitly.
const defaultParserName = "ximage"

// RegisterParser registers a font parser backend under name.
// It is meant to be called from init functions.
func RegisterParser(name string, p FontParser) {
	parserRegistry[name] = p
}

// getParser returns the parser registered under name, or the default parser.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
