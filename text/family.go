package text

import "sort"

// Family groups the faces of one typeface by style.
//
// A Family is built once (Add) and then only read; concurrent reads are safe
// as long as no Add runs at the same time.
type Family struct {
	Name  string
	faces map[Style]*FontSource
}

// NewFamily creates an empty family.
func NewFamily(name string) *Family {
	return &Family{Name: name, faces: make(map[Style]*FontSource)}
}

// Add files src under its classified style. An italic face never replaces
// an upright face already filed under the same style, so "Bold Italic"
// cannot shadow "Bold".
func (f *Family) Add(src *FontSource) {
	if src == nil {
		return
	}
	if f.faces == nil {
		f.faces = make(map[Style]*FontSource)
	}
	style := src.Style()
	if existing, ok := f.faces[style]; ok && !existing.Italic() && src.Italic() && style != Italic {
		Logger().Debug("face not filed, upright face already present",
			"family", f.Name, "style", style.String(), "face", src.FullName())
		return
	}
	f.faces[style] = src
}

// Resolve returns the face filed under style, if any.
func (f *Family) Resolve(style Style) (*FontSource, bool) {
	if f == nil {
		return nil, false
	}
	src, ok := f.faces[style]
	return src, ok
}

// FallbackChain returns the ordered styles tried for a request: the
// requested style first, then Regular.
func FallbackChain(style Style) []Style {
	if style == Regular {
		return []Style{Regular}
	}
	return []Style{style, Regular}
}

// Lookup walks FallbackChain(style) and returns the first available face
// together with the style that actually matched. When neither the
// requested nor the regular face exists, a *FaceUnavailableError is returned.
func (f *Family) Lookup(style Style) (*FontSource, Style, error) {
	for _, s := range FallbackChain(style) {
		if src, ok := f.Resolve(s); ok {
			if s != style {
				Logger().Warn("style not available, using fallback",
					"family", f.familyName(), "requested", style.String(), "using", s.String())
			}
			return src, s, nil
		}
	}
	return nil, style, &FaceUnavailableError{Family: f.familyName(), Style: style}
}

// Styles returns the styles available in the family, in weight order.
func (f *Family) Styles() []Style {
	if f == nil {
		return nil
	}
	out := make([]Style, 0, len(f.faces))
	for s := range f.faces {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of faces in the family.
func (f *Family) Len() int {
	if f == nil {
		return 0
	}
	return len(f.faces)
}

func (f *Family) familyName() string {
	if f == nil {
		return ""
	}
	return f.Name
}
