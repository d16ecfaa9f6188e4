package svg

import "math"

// Group is the content of one source line, translated by its line offset.
type Group struct {
	OffsetY    float64
	Placements []Placement
}

// Document is an assembled text drawing: shared glyph definitions plus one
// group of glyph references per rendered line.
type Document struct {
	Width, Height float64
	Symbols       []SymbolDefinition
	Groups        []Group
	Style         PathStyle
	Animation     *Animation
}

// Assembler folds laid-out lines into a Document. Lines advance by a fixed
// line height (the font size), not by measured extents.
//
// An Assembler builds exactly one document and is not safe for concurrent use.
type Assembler struct {
	lineHeight float64
	offset     float64
	width      float64
	groups     []Group
	lines      int
}

// NewAssembler creates an assembler with the given line height.
func NewAssembler(lineHeight float64) *Assembler {
	return &Assembler{lineHeight: lineHeight}
}

// AddLine appends a line laid out at the local origin. It is translated by
// the accumulated offset and advances the offset by one line height.
func (a *Assembler) AddLine(line LineResult) {
	a.groups = append(a.groups, Group{OffsetY: a.offset, Placements: line.Placements})
	a.width = math.Max(a.width, line.Box.MaxX)
	a.offset += a.lineHeight
	a.lines++
}

// AddBlank advances by one line height without content.
func (a *Assembler) AddBlank() {
	a.offset += a.lineHeight
	a.lines++
}

// Lines returns the number of lines (including blank ones) added so far.
func (a *Assembler) Lines() int {
	return a.lines
}

// Offset returns the y at which the next line starts.
func (a *Assembler) Offset() float64 {
	return a.offset
}

// Finish builds the document. Only definitions referenced by at least one
// placement are included, each exactly once and in creation order.
func (a *Assembler) Finish(symbols *SymbolCache, style PathStyle) *Document {
	used := make(map[string]struct{})
	for _, g := range a.groups {
		for _, p := range g.Placements {
			if p.Visible() {
				used[p.SymbolID] = struct{}{}
			}
		}
	}

	var defs []SymbolDefinition
	if symbols != nil {
		for _, d := range symbols.Definitions() {
			if _, ok := used[d.ID]; ok {
				defs = append(defs, d)
			}
		}
	}

	doc := &Document{
		Width:   a.width,
		Height:  a.offset,
		Symbols: defs,
		Groups:  a.groups,
		Style:   style,
	}
	Logger().Info("document assembled", "lines", a.lines, "groups", len(a.groups),
		"symbols", len(defs), "width", doc.Width, "height", doc.Height)
	return doc
}

// Placements returns the total number of placements in the document.
func (d *Document) Placements() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Placements)
	}
	return n
}
