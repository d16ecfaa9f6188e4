package text

import (
	"fmt"
	"strings"
)

// Style identifies one face of a family: a weight step or italic.
type Style uint8

const (
	Thin Style = iota
	ExtraLight
	Light
	Regular
	Medium
	SemiBold
	Bold
	ExtraBold
	Black
	Italic
)

// String returns the lower-case name of the style, e.g. "semi_bold".
func (s Style) String() string {
	switch s {
	case Thin:
		return "thin"
	case ExtraLight:
		return "extra_light"
	case Light:
		return "light"
	case Regular:
		return "regular"
	case Medium:
		return "medium"
	case SemiBold:
		return "semi_bold"
	case Bold:
		return "bold"
	case ExtraBold:
		return "extra_bold"
	case Black:
		return "black"
	case Italic:
		return "italic"
	default:
		return unknownStr
	}
}

// Styles lists every style in weight order, italic last.
func Styles() []Style {
	return []Style{Thin, ExtraLight, Light, Regular, Medium, SemiBold, Bold, ExtraBold, Black, Italic}
}

// ParseStyle parses a style name. It is case-insensitive and accepts the
// String form as well as the unseparated spelling ("semibold").
func ParseStyle(s string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	switch key {
	case "thin":
		return Thin, nil
	case "extralight":
		return ExtraLight, nil
	case "light":
		return Light, nil
	case "regular", "normal", "":
		return Regular, nil
	case "medium":
		return Medium, nil
	case "semibold":
		return SemiBold, nil
	case "bold":
		return Bold, nil
	case "extrabold":
		return ExtraBold, nil
	case "black":
		return Black, nil
	case "italic":
		return Italic, nil
	}
	return Regular, fmt.Errorf("text: unknown style %q", s)
}

// ClassifyFullName derives a style from keywords in a face's full name.
// Longer keywords are tested first so "ExtraLight" is not taken for "Light"
// and "SemiBold" is not taken for "Bold". The second result is false when
// the name carries no recognizable keyword.
func ClassifyFullName(name string) (Style, bool) {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "extralight"):
		return ExtraLight, true
	case strings.Contains(name, "light"):
		return Light, true
	case strings.Contains(name, "medium"):
		return Medium, true
	case strings.Contains(name, "regular"):
		return Regular, true
	case strings.Contains(name, "semibold"):
		return SemiBold, true
	case strings.Contains(name, "bold"):
		return Bold, true
	}
	return Regular, false
}

// ApproximateWeight maps a CSS/OS/2 weight class onto a style by flooring
// to the nearest defined step.
func ApproximateWeight(weight int) Style {
	switch {
	case weight < 200:
		return Thin
	case weight < 300:
		return ExtraLight
	case weight < 400:
		return Light
	case weight < 500:
		return Regular
	case weight < 600:
		return Medium
	case weight < 700:
		return SemiBold
	case weight < 800:
		return Bold
	case weight < 900:
		return ExtraBold
	default:
		return Black
	}
}

// ClassifyFont picks the style of a parsed face: full-name keywords win,
// except that an italic face without a weight keyword (or named "Regular")
// is Italic. Faces without any keyword fall back to the weight class.
func ClassifyFont(f ParsedFont) Style {
	s, named := ClassifyFullName(f.FullName())
	if f.Italic() && (!named || s == Regular) {
		return Italic
	}
	if named {
		return s
	}
	return ApproximateWeight(f.Weight())
}
