package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/glyphsvg"
	"github.com/gogpu/glyphsvg/highlight"
	"github.com/gogpu/glyphsvg/svg"
)

// config is the command configuration. Fields are filled from an optional
// YAML file first and then from the command line.
type config struct {
	Text        string   `yaml:"text"`
	Input       string   `yaml:"input"`
	Output      string   `yaml:"output"`
	Font        string   `yaml:"font"`
	FontDirs    []string `yaml:"font_dirs"`
	Size        float64  `yaml:"size"`
	Fill        string   `yaml:"fill"`
	Color       string   `yaml:"color"`
	StrokeWidth float64  `yaml:"stroke_width"`
	LineCap     string   `yaml:"line_cap"`
	LineJoin    string   `yaml:"line_join"`
	Space       float64  `yaml:"space"`
	Style       string   `yaml:"style"`
	Width       int      `yaml:"width"`
	Highlight   bool     `yaml:"highlight"`
	Theme       string   `yaml:"theme"`
	ThemeFile   string   `yaml:"theme_file"`
	Animate     bool     `yaml:"animate"`
	Minify      bool     `yaml:"minify"`
	Precision   int      `yaml:"precision"`
	Lang        string   `yaml:"lang"`
	Normalize   bool     `yaml:"normalize"`

	// Command-line only.
	ConfigFile  string `yaml:"-"`
	List        bool   `yaml:"-"`
	Debug       bool   `yaml:"-"`
	ShowVersion bool   `yaml:"-"`
	ShowHelp    bool   `yaml:"-"`
}

func defaultConfig() config {
	style := svg.DefaultPathStyle()
	return config{
		Output:      "output.svg",
		Font:        "Go",
		Size:        glyphsvg.DefaultFontSize,
		Fill:        style.Fill,
		Color:       style.Stroke,
		StrokeWidth: style.StrokeWidth,
		LineCap:     style.LineCap.String(),
		LineJoin:    style.LineJoin.String(),
		Space:       glyphsvg.DefaultLetterSpacing,
		Style:       "regular",
		Theme:       highlight.DefaultTheme,
		Precision:   svg.DefaultPrecision,
	}
}

// newFlagSet binds the flags to cfg. The current values of cfg are the
// flag defaults, so values loaded from a config file survive unless the
// flag is given.
func newFlagSet(cfg *config, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("glyphsvg", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SortFlags = false

	fs.StringVarP(&cfg.Text, "text", "t", cfg.Text, "Text to render")
	fs.StringVarP(&cfg.Input, "input", "i", cfg.Input, "Text file to render (- for stdin)")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output SVG file (- for stdout)")
	fs.StringVar(&cfg.Font, "font", cfg.Font, "Font family name")
	fs.StringArrayVar(&cfg.FontDirs, "font-dir", cfg.FontDirs, "Font directory to scan (repeatable; default: system fonts)")
	fs.Float64Var(&cfg.Size, "size", cfg.Size, "Font size and line height")
	fs.StringVar(&cfg.Fill, "fill", cfg.Fill, "Fill paint of the glyphs")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "Stroke paint of the glyphs")
	fs.Float64Var(&cfg.StrokeWidth, "stroke-width", cfg.StrokeWidth, "Stroke width")
	fs.StringVar(&cfg.LineCap, "line-cap", cfg.LineCap, "Stroke line cap (butt, round, square)")
	fs.StringVar(&cfg.LineJoin, "line-join", cfg.LineJoin, "Stroke line join (miter, round, bevel)")
	fs.Float64Var(&cfg.Space, "space", cfg.Space, "Letter spacing in em")
	fs.StringVar(&cfg.Style, "style", cfg.Style, "Font style (regular, bold, italic, ...)")
	fs.IntVarP(&cfg.Width, "width", "w", cfg.Width, "Wrap lines longer than this many characters (0 = no wrapping)")
	fs.BoolVar(&cfg.Highlight, "highlight", cfg.Highlight, "Syntax-highlight the text")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Highlight theme name")
	fs.StringVar(&cfg.ThemeFile, "theme-file", cfg.ThemeFile, "Highlight theme YAML file")
	fs.BoolVar(&cfg.Animate, "animate", cfg.Animate, "Add the stroke drawing animation")
	fs.BoolVar(&cfg.Minify, "minify", cfg.Minify, "Minify the SVG output")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "Decimals in path data")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "BCP 47 language of the text")
	fs.BoolVar(&cfg.Normalize, "normalize", cfg.Normalize, "Apply Unicode NFC normalization")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
	fs.BoolVar(&cfg.List, "list", false, "List available font families and styles")
	fs.BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging to stderr")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "Show version information")
	fs.BoolVarP(&cfg.ShowHelp, "help", "h", false, "Show help message")
	return fs
}

// parseConfig reads args. When --config names a file, the file is applied
// over the defaults and the command line is applied over the file.
func parseConfig(args []string, out io.Writer) (config, *pflag.FlagSet, error) {
	cfg := defaultConfig()
	fs := newFlagSet(&cfg, out)
	if err := fs.Parse(args); err != nil {
		return cfg, fs, err
	}
	if cfg.ConfigFile == "" {
		return cfg, fs, nil
	}

	path := cfg.ConfigFile
	cfg = defaultConfig()
	if err := loadConfigFile(path, &cfg); err != nil {
		return cfg, fs, err
	}
	fs = newFlagSet(&cfg, out)
	if err := fs.Parse(args); err != nil {
		return cfg, fs, err
	}
	return cfg, fs, nil
}

func loadConfigFile(path string, cfg *config) error {
	f, err := os.Open(path) // #nosec G304 -- path chosen by the user
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}
