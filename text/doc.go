// Package text provides the font side of glyphsvg.
//
// The pipeline is split the same way a typesetter splits it:
//
//   - FontSource: a parsed font file (TTF or OTF) with its style classification
//   - Family: the faces of one typeface, keyed by Style, with a fallback chain
//   - Library: a collection of families found on disk or bundled with the binary
//   - Shaper: maps a run of text to glyph identities and design-unit advances
//   - OutlineExtractor: decodes one glyph into outline segments (y-up design units)
//   - LineSplitter: a streaming, width-bounded line segmenter for input text
//
// # Example usage
//
//	lib := text.NewGoFontLibrary()
//	family, err := lib.Family("Go")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src, style, err := family.Lookup(text.Bold)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	glyphs, err := text.NewGoTextShaper().Shape("Hello", src, text.FeaturesFor(style))
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/sfnt is used.
package text
