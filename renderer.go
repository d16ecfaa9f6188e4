package glyphsvg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/glyphsvg/svg"
	"github.com/gogpu/glyphsvg/text"
)

// Renderer turns text into SVG documents drawn with the faces of one family.
//
// A Renderer holds only configuration and the shaper; every Render call
// starts a new session with its own symbol cache and assembler, so a
// Renderer is safe for concurrent use when its shaper is.
type Renderer struct {
	family *text.Family
	opts   options
	shaper text.Shaper
}

// NewRenderer creates a renderer for family.
func NewRenderer(family *text.Family, opts ...Option) (*Renderer, error) {
	if family == nil {
		return nil, ErrNilFamily
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontSize, o.size)
	}

	shaper := o.shaper
	if shaper == nil {
		var shaperOpts []text.ShaperOption
		if o.language != "" {
			tag, err := language.Parse(o.language)
			if err != nil {
				return nil, fmt.Errorf("glyphsvg: language %q: %w", o.language, err)
			}
			shaperOpts = append(shaperOpts, text.WithLanguage(tag.String()))
		}
		shaper = text.NewGoTextShaper(shaperOpts...)
	}

	return &Renderer{family: family, opts: o, shaper: shaper}, nil
}

// Family returns the family the renderer draws with.
func (r *Renderer) Family() *text.Family {
	return r.family
}

// RenderText renders s. Newlines in s separate lines.
func (r *Renderer) RenderText(s string) (*svg.Document, error) {
	if s == "" {
		return nil, ErrEmptyText
	}
	return r.RenderReader(strings.NewReader(s))
}

// RenderReader renders the lines read from rd. With a max width set the
// lines are wrapped by a text.LineSplitter; an invalid width is reported
// before anything is read.
func (r *Renderer) RenderReader(rd io.Reader) (*svg.Document, error) {
	if r.opts.maxWidth != 0 {
		sp, err := text.NewLineSplitter(rd, r.opts.maxWidth)
		if err != nil {
			return nil, err
		}
		doc, err := r.RenderLines(sp.Lines())
		if err == nil {
			err = sp.Err()
		}
		if err != nil {
			return nil, err
		}
		return doc, nil
	}

	var readErr error
	doc, err := r.RenderLines(readLines(rd, &readErr))
	if err == nil {
		err = readErr
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// RenderLines renders each element of lines as one line of the document.
//
// Empty lines only advance the height. A line that cannot be drawn, for
// example because its family has neither the requested nor the regular
// face, is logged and skipped without advancing the height. The call fails
// with ErrNoRenderableLines only when every non-blank line failed.
func (r *Renderer) RenderLines(lines iter.Seq[string]) (*svg.Document, error) {
	s := r.newSession()

	var (
		total    int
		rendered int
		failures []error
	)
	for line := range lines {
		total++
		if r.opts.normalize {
			line = norm.NFC.String(line)
		}
		if line == "" {
			s.assembler.AddBlank()
			continue
		}

		res, err := s.layoutLine(line)
		if err != nil {
			lerr := &LineError{Line: total, Err: err}
			Logger().Warn("line skipped", "line", total, "err", err)
			failures = append(failures, lerr)
			continue
		}
		Logger().Debug("line laid out", "line", total, "placements", len(res.Placements),
			"cursor", res.Cursor, "maxX", res.Box.MaxX)
		s.assembler.AddLine(res)
		rendered++
	}

	if total == 0 {
		return nil, ErrEmptyText
	}
	if rendered == 0 && len(failures) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoRenderableLines, errors.Join(failures...))
	}

	doc := s.assembler.Finish(s.symbols, r.opts.pathStyle)
	doc.Animation = r.opts.animation
	return doc, nil
}

// session is the state of one Render call.
type session struct {
	r         *Renderer
	symbols   *svg.SymbolCache
	layout    *svg.LineLayout
	assembler *svg.Assembler
	scales    map[*text.FontSource]text.ScaleContext
}

func (r *Renderer) newSession() *session {
	symbols := svg.NewSymbolCache(
		svg.WithPrefix(r.opts.symbolPrefix),
		svg.WithPathPrecision(r.opts.precision),
	)
	return &session{
		r:         r,
		symbols:   symbols,
		layout:    svg.NewLineLayout(symbols, r.opts.letterSpacing),
		assembler: svg.NewAssembler(r.opts.size),
		scales:    make(map[*text.FontSource]text.ScaleContext),
	}
}

// span is a piece of a line drawn with one face and paint.
type span struct {
	text   string
	style  text.Style
	fill   string
	stroke string
}

// spans splits line by highlighting, or returns it whole.
func (s *session) spans(line string) ([]span, error) {
	h := s.r.opts.highlighter
	if h == nil {
		return []span{{text: line, style: s.r.opts.style}}, nil
	}
	hs, err := h.HighlightLine(line)
	if err != nil {
		return nil, fmt.Errorf("highlight: %w", err)
	}
	out := make([]span, 0, len(hs))
	for _, part := range hs {
		paint := part.Color.String()
		sp := span{text: part.Text, style: part.TextStyle(), stroke: paint}
		if s.r.opts.pathStyle.Fill != "none" {
			sp.fill = paint
		}
		out = append(out, sp)
	}
	return out, nil
}

// layoutLine shapes and positions one non-empty line at the local origin.
func (s *session) layoutLine(line string) (svg.LineResult, error) {
	spans, err := s.spans(line)
	if err != nil {
		return svg.LineResult{}, err
	}

	runs := make([]svg.Run, 0, len(spans))
	for _, sp := range spans {
		src, _, err := s.r.family.Lookup(sp.style)
		if err != nil {
			return svg.LineResult{}, err
		}
		glyphs, err := s.r.shaper.Shape(sp.text, src, text.FeaturesFor(sp.style))
		if err != nil {
			return svg.LineResult{}, err
		}
		runs = append(runs, svg.Run{
			Source: src,
			Scale:  s.scale(src),
			Glyphs: glyphs,
			Fill:   sp.fill,
			Stroke: sp.stroke,
		})
	}
	return s.layout.Layout(svg.Point{}, runs...), nil
}

// scale returns the scale context of src at the session's font size.
func (s *session) scale(src *text.FontSource) text.ScaleContext {
	if sc, ok := s.scales[src]; ok {
		return sc
	}
	sc := src.ScaleContext(s.r.opts.size)
	Logger().Debug("scale context", "face", src.FullName(), "scale", sc.ScaleFactor,
		"unitsPerEm", sc.UnitsPerEm)
	s.scales[src] = sc
	return sc
}

// readLines yields the lines of r without their line terminators.
// A read error ends the sequence and is stored in errp.
func readLines(r io.Reader, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		br := bufio.NewReader(r)
		for {
			raw, err := br.ReadString('\n')
			if raw != "" || err == nil {
				if !yield(strings.TrimRight(raw, "\r\n")) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					*errp = err
				}
				return
			}
		}
	}
}
