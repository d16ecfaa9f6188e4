package glyphsvg

import (
	"github.com/gogpu/glyphsvg/highlight"
	"github.com/gogpu/glyphsvg/svg"
	"github.com/gogpu/glyphsvg/text"
)

// Defaults used when no option overrides them.
const (
	DefaultFontSize      = 64
	DefaultLetterSpacing = 0.1
)

// Option configures a Renderer.
//
// Example:
//
//	r, err := glyphsvg.NewRenderer(family,
//	    glyphsvg.WithFontSize(48),
//	    glyphsvg.WithFill("#222"),
//	    glyphsvg.WithMaxWidth(40))
type Option func(*options)

// options holds the Renderer configuration.
type options struct {
	size          float64
	letterSpacing float64
	style         text.Style
	pathStyle     svg.PathStyle
	maxWidth      int
	highlighter   *highlight.Highlighter
	animation     *svg.Animation
	language      string
	shaper        text.Shaper
	symbolPrefix  string
	precision     int
	normalize     bool
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		size:          DefaultFontSize,
		letterSpacing: DefaultLetterSpacing,
		style:         text.Regular,
		pathStyle:     svg.DefaultPathStyle(),
		symbolPrefix:  svg.DefaultSymbolPrefix,
		precision:     svg.DefaultPrecision,
	}
}

// WithFontSize sets the font size. It is also the line height.
func WithFontSize(size float64) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithLetterSpacing sets the extra space between glyphs, in em.
func WithLetterSpacing(em float64) Option {
	return func(o *options) {
		o.letterSpacing = em
	}
}

// WithStyle selects the face used for text that is not highlighted.
func WithStyle(s text.Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithFill sets the fill paint of the text ("none" for outlines only).
func WithFill(fill string) Option {
	return func(o *options) {
		o.pathStyle.Fill = fill
	}
}

// WithStroke sets the stroke paint of the text.
func WithStroke(stroke string) Option {
	return func(o *options) {
		o.pathStyle.Stroke = stroke
	}
}

// WithStrokeWidth sets the stroke width.
func WithStrokeWidth(w float64) Option {
	return func(o *options) {
		o.pathStyle.StrokeWidth = w
	}
}

// WithLineCap sets the stroke line cap.
func WithLineCap(c svg.LineCap) Option {
	return func(o *options) {
		o.pathStyle.LineCap = c
	}
}

// WithLineJoin sets the stroke line join.
func WithLineJoin(j svg.LineJoin) Option {
	return func(o *options) {
		o.pathStyle.LineJoin = j
	}
}

// WithMaxWidth wraps lines longer than n code points.
// Zero disables wrapping; a negative value makes rendering fail with
// text.ErrInvalidWidth.
func WithMaxWidth(n int) Option {
	return func(o *options) {
		o.maxWidth = n
	}
}

// WithHighlighter paints each line with syntax colours. Span styles choose
// the face (bold, italic) and span colours override the stroke, and the fill
// too when the text is filled.
func WithHighlighter(h *highlight.Highlighter) Option {
	return func(o *options) {
		o.highlighter = h
	}
}

// WithAnimation adds the stroke-drawing animation.
func WithAnimation(a svg.Animation) Option {
	return func(o *options) {
		o.animation = &a
	}
}

// WithLanguage sets the BCP 47 language passed to the default shaper.
// It has no effect together with WithShaper.
func WithLanguage(tag string) Option {
	return func(o *options) {
		o.language = tag
	}
}

// WithShaper replaces the default go-text shaper.
func WithShaper(s text.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithSymbolPrefix sets the prefix of glyph definition ids.
func WithSymbolPrefix(prefix string) Option {
	return func(o *options) {
		o.symbolPrefix = prefix
	}
}

// WithPrecision sets the number of decimals in path data.
func WithPrecision(n int) Option {
	return func(o *options) {
		o.precision = n
	}
}

// WithNormalize applies Unicode NFC normalization to each line before
// shaping.
func WithNormalize(enabled bool) Option {
	return func(o *options) {
		o.normalize = enabled
	}
}
