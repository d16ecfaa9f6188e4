package text

import (
	"errors"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint represents a point in a glyph outline.
// Coordinates are in design units with the y axis pointing up.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	// - Close: no points
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo

	// OutlineOpClose closes the current contour.
	OutlineOpClose
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	case OutlineOpClose:
		return "Close"
	default:
		return unknownStr
	}
}

// PointCount returns how many entries of Points the operation uses.
func (op OutlineOp) PointCount() int {
	switch op {
	case OutlineOpMoveTo, OutlineOpLineTo:
		return 1
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 0
	}
}

// GlyphOutline represents the vector outline of a glyph.
// The outline consists of zero or more closed contours.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline,
	// in the order the font stores them.
	Segments []OutlineSegment

	// Bounds is the bounding box of the control points in design units (y up).
	Bounds Rect

	// GID is the glyph ID this outline represents.
	GID GlyphID
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// SegmentCount returns the number of segments in the outline.
func (o *GlyphOutline) SegmentCount() int {
	if o == nil {
		return 0
	}
	return len(o.Segments)
}

// OutlineExtractor extracts glyph outlines from fonts.
// It reuses one sfnt buffer, so an extractor must not be shared between
// goroutines; create one per render session.
type OutlineExtractor struct {
	// buffer is reused for sfnt operations
	buffer sfnt.Buffer
}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// Extract decodes the outline of gid from src in design units.
//
// The second result reports whether the glyph has a visible outline. A glyph
// without one (a space, or a glyph that fails to decode) yields an empty
// outline and false; this is not an error, and the caller still honors the
// glyph's advance.
func (e *OutlineExtractor) Extract(src *FontSource, gid GlyphID) (*GlyphOutline, bool) {
	empty := &GlyphOutline{GID: gid}
	if src == nil {
		return empty, false
	}
	xiFont, ok := src.Parsed().(*ximageParsedFont)
	if !ok {
		Logger().Warn("outline decode skipped", "font", src.FullName(), "gid", gid,
			"err", ErrUnsupportedFontType)
		return empty, false
	}

	outline, err := e.extractFromSFNT(xiFont.font, gid)
	if err != nil {
		if !errors.Is(err, sfnt.ErrNotFound) {
			Logger().Warn("outline decode failed", "font", src.FullName(), "gid", gid, "err", err)
		}
		return empty, false
	}
	return outline, !outline.IsEmpty()
}

// extractFromSFNT loads gid at ppem == unitsPerEm, which makes the 26.6
// results exact design units. sfnt reports y pointing down, so every y is
// negated back to the font's own y-up space. sfnt leaves contours implicitly
// closed; an explicit Close is emitted at the end of each one.
func (e *OutlineExtractor) extractFromSFNT(font *sfntFont, gid GlyphID) (*GlyphOutline, error) {
	ppem := fixed.I(int(font.UnitsPerEm()))

	segments, err := font.LoadGlyph(&e.buffer, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		// ErrNotFound means glyph doesn't exist
		// ErrColoredGlyph means it's a color glyph (COLR/sbix)
		return nil, err
	}

	outline := &GlyphOutline{GID: gid}
	if len(segments) == 0 {
		return outline, nil
	}
	outline.Segments = make([]OutlineSegment, 0, len(segments)+4)

	// Track bounds
	minX, minY := float64(1e10), float64(1e10)
	maxX, maxY := float64(-1e10), float64(-1e10)

	open := false
	for _, seg := range segments {
		outSeg := OutlineSegment{}

		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				outline.Segments = append(outline.Segments, OutlineSegment{Op: OutlineOpClose})
			}
			open = true
			outSeg.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			outSeg.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			outSeg.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			outSeg.Op = OutlineOpCubicTo
		default:
			continue
		}

		for i := 0; i < outSeg.Op.PointCount(); i++ {
			outSeg.Points[i] = fixedPointToOutline(seg.Args[i])
			updateBounds(outSeg.Points[i], &minX, &minY, &maxX, &maxY)
		}
		outline.Segments = append(outline.Segments, outSeg)
	}
	if open {
		outline.Segments = append(outline.Segments, OutlineSegment{Op: OutlineOpClose})
	}

	outline.Bounds = Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	return outline, nil
}

// fixedPointToOutline converts a y-down fixed.Point26_6 to a y-up OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: -float32(p.Y) / 64.0,
	}
}

// updateBounds updates the min/max bounds.
func updateBounds(p OutlinePoint, minX, minY, maxX, maxY *float64) {
	if float64(p.X) < *minX {
		*minX = float64(p.X)
	}
	if float64(p.Y) < *minY {
		*minY = float64(p.Y)
	}
	if float64(p.X) > *maxX {
		*maxX = float64(p.X)
	}
	if float64(p.Y) > *maxY {
		*maxY = float64(p.Y)
	}
}

// sfntFont is a type alias for easier access.
type sfntFont = sfnt.Font
