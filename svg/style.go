package svg

import (
	"fmt"
	"strings"
	"time"
)

// LineCap is the stroke-linecap of glyph outlines.
type LineCap uint8

const (
	LineCapRound LineCap = iota
	LineCapButt
	LineCapSquare
)

// String returns the SVG attribute value.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapSquare:
		return "square"
	default:
		return "round"
	}
}

// ParseLineCap parses "butt", "round" or "square".
func ParseLineCap(s string) (LineCap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "round", "":
		return LineCapRound, nil
	case "butt":
		return LineCapButt, nil
	case "square":
		return LineCapSquare, nil
	}
	return LineCapRound, fmt.Errorf("svg: unknown line cap %q", s)
}

// LineJoin is the stroke-linejoin of glyph outlines.
type LineJoin uint8

const (
	LineJoinRound LineJoin = iota
	LineJoinMiter
	LineJoinBevel
)

// String returns the SVG attribute value.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinBevel:
		return "bevel"
	default:
		return "round"
	}
}

// ParseLineJoin parses "miter", "round" or "bevel".
func ParseLineJoin(s string) (LineJoin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "round", "":
		return LineJoinRound, nil
	case "miter":
		return LineJoinMiter, nil
	case "bevel":
		return LineJoinBevel, nil
	}
	return LineJoinRound, fmt.Errorf("svg: unknown line join %q", s)
}

// PathStyle is the paint applied to the whole text group.
type PathStyle struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	LineCap     LineCap
	LineJoin    LineJoin
}

// DefaultPathStyle draws outlined text: no fill, a thin black stroke and
// round caps and joins.
func DefaultPathStyle() PathStyle {
	return PathStyle{
		Fill:        "none",
		Stroke:      "#000",
		StrokeWidth: 1,
		LineCap:     LineCapRound,
		LineJoin:    LineJoinRound,
	}
}

// TextClass is the CSS class of the group holding the text.
const TextClass = "text"

// Animation describes the stroke-drawing effect: the outline is revealed by
// animating stroke-dashoffset from DashLength to zero.
type Animation struct {
	Duration   time.Duration
	DashLength float64
	Timing     string
	Repeat     bool
}

// DefaultAnimation returns the stock drawing animation.
func DefaultAnimation() Animation {
	return Animation{
		Duration:   2300 * time.Millisecond,
		DashLength: 450,
		Timing:     "ease",
		Repeat:     true,
	}
}

// CSS returns the stylesheet for the animation.
func (a Animation) CSS() string {
	iteration := ""
	if a.Repeat {
		iteration = " infinite"
	}
	timing := a.Timing
	if timing == "" {
		timing = "ease"
	}
	dash := FormatNumber(a.DashLength, DefaultPrecision)
	secs := FormatNumber(a.Duration.Seconds(), DefaultPrecision)

	var b strings.Builder
	b.WriteString("\n@keyframes draw {\n  to {\n    stroke-dashoffset: 0;\n  }\n}\n")
	fmt.Fprintf(&b, ".%s {\n  stroke-dasharray: %s %s;\n  stroke-dashoffset: %s;\n", TextClass, dash, dash, dash)
	fmt.Fprintf(&b, "  animation: draw %ss %s forwards%s;\n}\n", secs, timing, iteration)
	return b.String()
}
