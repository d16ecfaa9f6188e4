package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	minsvg "github.com/tdewolff/minify/v2/svg"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
	svgMediaType   = "image/svg+xml"
)

// EncodeOptions control how a Document is written.
type EncodeOptions struct {
	// Precision is the number of decimals for positions and sizes.
	Precision int
	// Indent pretty-prints the document.
	Indent bool
	// Minify passes the output through an SVG minifier.
	Minify bool
}

// DefaultEncodeOptions returns indented output with DefaultPrecision.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Precision: DefaultPrecision, Indent: true}
}

// WriteTo writes the document with DefaultEncodeOptions.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := d.Encode(cw, DefaultEncodeOptions())
	return cw.n, err
}

// Encode writes the document as SVG.
//
// The root carries width, height and a matching viewBox. Glyph shapes live
// in <defs> as <path id=...>; each line is a <g> translated by its offset
// holding one <use> per visible glyph.
func (d *Document) Encode(w io.Writer, opts EncodeOptions) error {
	if !opts.Minify {
		return d.encodeXML(w, opts)
	}

	var buf bytes.Buffer
	if err := d.encodeXML(&buf, EncodeOptions{Precision: opts.Precision}); err != nil {
		return err
	}
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc(svgMediaType, minsvg.Minify)
	if err := m.Minify(svgMediaType, w, &buf); err != nil {
		return fmt.Errorf("svg: minify: %w", err)
	}
	return nil
}

func (d *Document) encodeXML(w io.Writer, opts EncodeOptions) error {
	enc := xml.NewEncoder(w)
	if opts.Indent {
		enc.Indent("", "  ")
	}
	num := func(v float64) string { return FormatNumber(v, opts.Precision) }

	width, height := num(d.Width), num(d.Height)
	root := start("svg",
		"xmlns", svgNamespace,
		"xmlns:xlink", xlinkNamespace,
		"width", width,
		"height", height,
		"viewBox", "0 0 "+width+" "+height,
	)
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	if d.Animation != nil {
		if err := encodeText(enc, "style", d.Animation.CSS()); err != nil {
			return err
		}
	}

	if len(d.Symbols) > 0 {
		defs := start("defs")
		if err := enc.EncodeToken(defs); err != nil {
			return err
		}
		for _, s := range d.Symbols {
			if err := encodeEmpty(enc, start("path", "id", s.ID, "d", s.PathData)); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(defs.End()); err != nil {
			return err
		}
	}

	content := start("g",
		"class", TextClass,
		"fill", d.Style.Fill,
		"stroke", d.Style.Stroke,
		"stroke-width", num(d.Style.StrokeWidth),
		"stroke-linecap", d.Style.LineCap.String(),
		"stroke-linejoin", d.Style.LineJoin.String(),
	)
	if err := enc.EncodeToken(content); err != nil {
		return err
	}
	for _, g := range d.Groups {
		line := start("g")
		if g.OffsetY != 0 {
			line = start("g", "transform", "translate(0 "+num(g.OffsetY)+")")
		}
		if err := enc.EncodeToken(line); err != nil {
			return err
		}
		for _, p := range g.Placements {
			if !p.Visible() {
				continue
			}
			use := start("use", "xlink:href", "#"+p.SymbolID, "x", num(p.X), "y", num(p.Y))
			if p.Fill != "" {
				use.Attr = append(use.Attr, attr("fill", p.Fill))
			}
			if p.Stroke != "" {
				use.Attr = append(use.Attr, attr("stroke", p.Stroke))
			}
			if err := encodeEmpty(enc, use); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(line.End()); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(content.End()); err != nil {
		return err
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// start builds a start element from name/value pairs.
func start(name string, kv ...string) xml.StartElement {
	el := xml.StartElement{Name: xml.Name{Local: name}}
	for i := 0; i+1 < len(kv); i += 2 {
		el.Attr = append(el.Attr, attr(kv[i], kv[i+1]))
	}
	return el
}

func encodeEmpty(enc *xml.Encoder, el xml.StartElement) error {
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	return enc.EncodeToken(el.End())
}

func encodeText(enc *xml.Encoder, name, body string) error {
	el := start(name)
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(body)); err != nil {
		return err
	}
	return enc.EncodeToken(el.End())
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
