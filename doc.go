// Package glyphsvg renders text into SVG documents made of glyph outlines.
//
// # Overview
//
// Text is shaped with the faces of a font family, every distinct glyph is
// converted once into path data, and each occurrence is drawn as a reference
// to that definition. The output contains no <text> elements and does not
// depend on fonts installed where it is viewed.
//
// # Quick Start
//
//	lib := text.NewGoFontLibrary()
//	family, _ := lib.Family("Go")
//
//	r, err := glyphsvg.NewRenderer(family, glyphsvg.WithFontSize(48))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := r.RenderText("Hello, world")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc.WriteTo(os.Stdout)
//
// # Architecture
//
// The library is organized into:
//   - text: font sources, families, metrics, outlines, shaping, line wrapping
//   - svg: path data, symbol cache, line layout, document assembly and encoding
//   - highlight: syntax highlighting with YAML themes
//   - Renderer (this package): per-document sessions tying them together
//
// # Coordinate System
//
// Output uses SVG coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Font outlines are y-up and are flipped when converted to path data.
//
// # Lines
//
// The line height is the font size. Empty lines keep their height. A line
// that cannot be drawn is skipped with a warning; rendering fails only when
// no line could be drawn.
package glyphsvg

// Version is the current version of the library.
const Version = "0.1.0"
