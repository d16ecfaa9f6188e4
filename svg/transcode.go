package svg

import "github.com/gogpu/glyphsvg/text"

// Transcode converts a glyph outline to a path, applying m to every point.
// Segment order and contour structure are kept exactly as decoded. An empty
// outline yields an empty path, which is a valid result.
func Transcode(outline *text.GlyphOutline, m Matrix) *Path {
	p := NewPath()
	if outline.IsEmpty() {
		return p
	}
	at := func(op text.OutlinePoint) Point {
		return m.TransformPoint(Pt(float64(op.X), float64(op.Y)))
	}
	for _, seg := range outline.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			pt := at(seg.Points[0])
			p.MoveTo(pt.X, pt.Y)
		case text.OutlineOpLineTo:
			pt := at(seg.Points[0])
			p.LineTo(pt.X, pt.Y)
		case text.OutlineOpQuadTo:
			c, pt := at(seg.Points[0]), at(seg.Points[1])
			p.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		case text.OutlineOpCubicTo:
			c1, c2, pt := at(seg.Points[0]), at(seg.Points[1]), at(seg.Points[2])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case text.OutlineOpClose:
			p.Close()
		}
	}
	return p
}
