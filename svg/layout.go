package svg

import (
	"math"

	"github.com/gogpu/glyphsvg/text"
)

// Run is a shaped span of one line in a single face.
type Run struct {
	Source *text.FontSource
	Scale  text.ScaleContext
	Glyphs []text.ShapedGlyph

	// Fill and Stroke override the document paint for this span when set.
	Fill   string
	Stroke string
}

// Placement positions one glyph occurrence. SymbolID is empty for glyphs
// without a visible outline; such placements carry no drawing.
type Placement struct {
	SymbolID string
	X, Y     float64
	Fill     string
	Stroke   string
}

// Visible reports whether the placement references a symbol.
func (p Placement) Visible() bool {
	return p.SymbolID != ""
}

// BoundingBox is the extent of a laid-out line.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// LineResult is the outcome of laying out one line.
type LineResult struct {
	Placements []Placement
	// Cursor is the pen x after the last glyph.
	Cursor float64
	Box    BoundingBox
}

// LineLayout positions shaped glyphs on a line and resolves their symbols.
// It shares the session's SymbolCache and, like it, is single-use per
// document.
type LineLayout struct {
	symbols       *SymbolCache
	letterSpacing float64
}

// NewLineLayout creates a layout engine. letterSpacing is in em.
func NewLineLayout(symbols *SymbolCache, letterSpacing float64) *LineLayout {
	return &LineLayout{symbols: symbols, letterSpacing: letterSpacing}
}

// Layout places the glyphs of runs, in order, on one line whose top-left
// corner is origin.
//
// Letter spacing is added before every glyph except the first glyph of the
// line and a glyph that follows one without a visible outline, so no spacing
// is injected around whitespace. Spacing state carries across runs: a
// highlighted span boundary is not a word boundary.
//
// The baseline comes from the first run's metrics. The vertical extent is
// origin.Y to origin.Y+size; ink bounds are not measured.
func (l *LineLayout) Layout(origin Point, runs ...Run) LineResult {
	res := LineResult{
		Cursor: origin.X,
		Box:    BoundingBox{MinX: origin.X, MinY: origin.Y, MaxX: origin.X, MaxY: origin.Y},
	}
	if len(runs) == 0 {
		return res
	}

	lineScale := runs[0].Scale
	baseline := lineScale.Baseline(origin.Y)
	res.Box.MaxY = origin.Y + lineScale.TargetSize

	cursor := origin.X
	first := true
	prevVisible := false
	var spacing float64

	for _, run := range runs {
		sc := run.Scale
		spacing = sc.LetterSpacing(l.letterSpacing)
		for _, g := range run.Glyphs {
			if !first && prevVisible {
				cursor += spacing
			}
			first = false

			id, visible := l.symbols.GetOrCreate(run.Source, g.GID, sc)
			res.Placements = append(res.Placements, Placement{
				SymbolID: id,
				X:        cursor + sc.Scale(g.XOffset),
				Y:        baseline - sc.Scale(g.YOffset),
				Fill:     run.Fill,
				Stroke:   run.Stroke,
			})

			cursor += sc.Scale(g.XAdvance)
			res.Box.MaxX = math.Max(res.Box.MaxX, cursor)
			prevVisible = visible
		}
	}

	if !first && prevVisible {
		res.Box.MaxX = math.Max(res.Box.MaxX, cursor+spacing)
	}
	res.Cursor = cursor

	Logger().Debug("line laid out", "glyphs", len(res.Placements),
		"scale", lineScale.ScaleFactor, "min_x", res.Box.MinX, "max_x", res.Box.MaxX,
		"min_y", res.Box.MinY, "max_y", res.Box.MaxY)
	return res
}
