package highlight

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultTheme is the theme used when none is named.
const DefaultTheme = "base16-ocean.dark"

// ErrUnknownTheme is returned when no theme has the requested name.
var ErrUnknownTheme = errors.New("highlight: unknown theme")

//go:embed themes/*.yaml
var builtinFS embed.FS

// Rule is the paint of one token class.
type Rule struct {
	Color *Color    `yaml:"color"`
	Style FontStyle `yaml:"style"`
}

// Theme maps token classes to colours and font styles.
type Theme struct {
	Name       string              `yaml:"name"`
	Foreground Color               `yaml:"foreground"`
	Background *Color              `yaml:"background"`
	Rules      map[TokenClass]Rule `yaml:"rules"`
}

// Resolve returns the colour and style for class. Classes without a rule,
// or rules without a colour, use the foreground.
func (t *Theme) Resolve(class TokenClass) (Color, FontStyle) {
	rule, ok := t.Rules[class]
	if !ok {
		return t.Foreground, 0
	}
	if rule.Color == nil {
		return t.Foreground, rule.Style
	}
	return *rule.Color, rule.Style
}

// LoadTheme decodes a YAML theme.
func LoadTheme(r io.Reader) (*Theme, error) {
	var t Theme
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("highlight: decode theme: %w", err)
	}
	if t.Name == "" {
		return nil, errors.New("highlight: theme has no name")
	}
	for class := range t.Rules {
		if !class.valid() {
			return nil, fmt.Errorf("highlight: theme %q: unknown token class %q", t.Name, class)
		}
	}
	return &t, nil
}

// LoadThemeFile reads a YAML theme from disk.
func LoadThemeFile(name string) (*Theme, error) {
	f, err := os.Open(name) // #nosec G304 -- path chosen by the user
	if err != nil {
		return nil, fmt.Errorf("highlight: %w", err)
	}
	defer f.Close()
	return LoadTheme(f)
}

var (
	builtinOnce   sync.Once
	builtinThemes map[string]*Theme
	builtinErr    error
)

func loadBuiltins() {
	builtinThemes = make(map[string]*Theme)
	builtinErr = fs.WalkDir(builtinFS, "themes", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Ext(p) != ".yaml" {
			return err
		}
		f, err := builtinFS.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		t, err := LoadTheme(f)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		builtinThemes[strings.ToLower(t.Name)] = t
		return nil
	})
}

// ThemeByName returns a built-in theme, matched case-insensitively.
func ThemeByName(name string) (*Theme, error) {
	builtinOnce.Do(loadBuiltins)
	if builtinErr != nil {
		return nil, builtinErr
	}
	if name == "" {
		name = DefaultTheme
	}
	t, ok := builtinThemes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTheme, name, strings.Join(Themes(), ", "))
	}
	return t, nil
}

// Themes lists the built-in theme names in sorted order.
func Themes() []string {
	builtinOnce.Do(loadBuiltins)
	names := make([]string, 0, len(builtinThemes))
	for _, t := range builtinThemes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
