package highlight

import (
	"strings"

	"github.com/gogpu/glyphsvg/text"
)

// Span is a run of a line painted with one colour and font style.
type Span struct {
	Text  string
	Color Color
	Style FontStyle
}

// TextStyle returns the face style the span is drawn with.
func (s Span) TextStyle() text.Style {
	return s.Style.ToStyle()
}

// Highlighter splits source lines into coloured spans.
// It is safe for concurrent use once created.
type Highlighter struct {
	theme    *Theme
	keywords map[string]struct{}
}

// Option configures a Highlighter.
type Option func(*Highlighter)

// WithKeywords replaces the keyword set.
func WithKeywords(words ...string) Option {
	return func(h *Highlighter) {
		h.keywords = toSet(words)
	}
}

// NewHighlighter creates a highlighter painting with theme. A nil theme
// selects DefaultTheme.
func NewHighlighter(theme *Theme, opts ...Option) (*Highlighter, error) {
	if theme == nil {
		t, err := ThemeByName(DefaultTheme)
		if err != nil {
			return nil, err
		}
		theme = t
	}
	h := &Highlighter{theme: theme, keywords: toSet(DefaultKeywords)}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Theme returns the theme in use.
func (h *Highlighter) Theme() *Theme {
	return h.theme
}

// HighlightLine returns the spans of line in order. Joining the span texts
// gives back line; adjacent tokens with the same paint share one span.
func (h *Highlighter) HighlightLine(line string) ([]Span, error) {
	if line == "" {
		return nil, nil
	}
	toks, err := tokenize(line, h.keywords)
	if err != nil {
		return nil, err
	}

	spans := make([]Span, 0, len(toks))
	for _, tok := range toks {
		color, style := h.theme.Resolve(tok.class)
		// Whitespace takes the paint of the span it follows, so spaces do
		// not split an otherwise uniform run.
		if strings.TrimSpace(tok.text) == "" && len(spans) > 0 {
			spans[len(spans)-1].Text += tok.text
			continue
		}
		if n := len(spans); n > 0 && spans[n-1].Color == color && spans[n-1].Style == style {
			spans[n-1].Text += tok.text
			continue
		}
		spans = append(spans, Span{Text: tok.text, Color: color, Style: style})
	}
	return spans, nil
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
