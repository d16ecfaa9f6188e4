package svg

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// DefaultPrecision is the number of decimals written for coordinates.
const DefaultPrecision = 3

// Path is an ordered list of path elements.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return p == nil || len(p.elements) == 0
}

// Data returns the path as SVG path data ("M1 2L3 4Z") with coordinates
// rounded to precision decimals. A negative precision writes the shortest
// exact representation.
func (p *Path) Data(precision int) string {
	if p.Empty() {
		return ""
	}
	var b strings.Builder
	b.Grow(len(p.elements) * 16)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			b.WriteByte('M')
			writePoints(&b, precision, e.Point)
		case LineTo:
			b.WriteByte('L')
			writePoints(&b, precision, e.Point)
		case QuadTo:
			b.WriteByte('Q')
			writePoints(&b, precision, e.Control, e.Point)
		case CubicTo:
			b.WriteByte('C')
			writePoints(&b, precision, e.Control1, e.Control2, e.Point)
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePoints(b *strings.Builder, precision int, pts ...Point) {
	for i, pt := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatNumber(pt.X, precision))
		b.WriteByte(' ')
		b.WriteString(FormatNumber(pt.Y, precision))
	}
}

// FormatNumber writes v with at most precision decimals, trimming trailing
// zeros. Negative zero is written as "0".
func FormatNumber(v float64, precision int) string {
	if precision >= 0 {
		pow := math.Pow10(precision)
		v = math.Round(v*pow) / pow
	}
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
