package highlight

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glyphsvg/text"
)

// FontStyle is a set of font attributes a theme can request.
type FontStyle uint8

const (
	Bold FontStyle = 1 << iota
	Italic
	Underline
)

// Has reports whether all bits of f are set.
func (s FontStyle) Has(f FontStyle) bool {
	return s&f == f
}

// ToStyle maps the attributes to a face style. Italic wins over bold,
// underline has no face and maps to regular.
func (s FontStyle) ToStyle() text.Style {
	switch {
	case s.Has(Italic):
		return text.Italic
	case s.Has(Bold):
		return text.Bold
	default:
		return text.Regular
	}
}

// String lists the attributes, e.g. "bold|italic".
func (s FontStyle) String() string {
	var parts []string
	if s.Has(Bold) {
		parts = append(parts, "bold")
	}
	if s.Has(Italic) {
		parts = append(parts, "italic")
	}
	if s.Has(Underline) {
		parts = append(parts, "underline")
	}
	if len(parts) == 0 {
		return "normal"
	}
	return strings.Join(parts, "|")
}

// UnmarshalYAML accepts a list such as [bold, italic] or a single name.
func (s *FontStyle) UnmarshalYAML(node *yaml.Node) error {
	var names []string
	if node.Kind == yaml.ScalarNode {
		names = []string{node.Value}
	} else if err := node.Decode(&names); err != nil {
		return err
	}
	var out FontStyle
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "bold":
			out |= Bold
		case "italic":
			out |= Italic
		case "underline":
			out |= Underline
		case "normal", "":
		default:
			return fmt.Errorf("line %d: unknown font style %q", node.Line, n)
		}
	}
	*s = out
	return nil
}
