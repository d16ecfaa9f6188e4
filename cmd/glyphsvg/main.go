// Command glyphsvg renders text into an SVG drawing made of glyph outlines.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/gogpu/glyphsvg"
	"github.com/gogpu/glyphsvg/highlight"
	"github.com/gogpu/glyphsvg/svg"
	"github.com/gogpu/glyphsvg/text"
)

var (
	version = glyphsvg.Version
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, fs, err := parseConfig(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.ShowHelp {
		printHelp(stdout, fs.FlagUsages())
		return 0
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "glyphsvg version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	if cfg.Debug || os.Getenv("GLYPHSVG_DEBUG") == "1" {
		glyphsvg.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if cfg.Text == "" && cfg.Input == "" && fs.NArg() > 0 {
		cfg.Text = strings.Join(fs.Args(), " ")
	}

	if cfg.List {
		if cfg.Text != "" || cfg.Input != "" {
			fmt.Fprintln(stderr, "Error: --list cannot be combined with --text or --input")
			return 1
		}
		if err := listFamilies(stdout, loadLibrary(cfg.FontDirs)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := render(cfg, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// render draws the configured text and writes the SVG.
func render(cfg config, stdin io.Reader, stdout io.Writer) error {
	switch {
	case cfg.Text != "" && cfg.Input != "":
		return errors.New("--text and --input are mutually exclusive")
	case cfg.Text == "" && cfg.Input == "":
		return errors.New("no text provided (use --text, --input or arguments)")
	}

	lib := loadLibrary(cfg.FontDirs)
	family, err := lib.Family(cfg.Font)
	if err != nil {
		return err
	}

	opts, err := rendererOptions(cfg)
	if err != nil {
		return err
	}
	r, err := glyphsvg.NewRenderer(family, opts...)
	if err != nil {
		return err
	}

	var doc *svg.Document
	if cfg.Text != "" {
		doc, err = r.RenderText(cfg.Text)
	} else {
		var in io.ReadCloser
		in, err = openInput(cfg.Input, stdin)
		if err != nil {
			return err
		}
		doc, err = r.RenderReader(in)
		in.Close()
	}
	if err != nil {
		return err
	}

	return writeOutput(cfg, doc, stdout)
}

// rendererOptions translates the configuration into renderer options.
func rendererOptions(cfg config) ([]glyphsvg.Option, error) {
	style, err := text.ParseStyle(cfg.Style)
	if err != nil {
		return nil, err
	}
	lineCap, err := svg.ParseLineCap(cfg.LineCap)
	if err != nil {
		return nil, err
	}
	lineJoin, err := svg.ParseLineJoin(cfg.LineJoin)
	if err != nil {
		return nil, err
	}

	opts := []glyphsvg.Option{
		glyphsvg.WithFontSize(cfg.Size),
		glyphsvg.WithLetterSpacing(cfg.Space),
		glyphsvg.WithStyle(style),
		glyphsvg.WithFill(cfg.Fill),
		glyphsvg.WithStroke(cfg.Color),
		glyphsvg.WithStrokeWidth(cfg.StrokeWidth),
		glyphsvg.WithLineCap(lineCap),
		glyphsvg.WithLineJoin(lineJoin),
		glyphsvg.WithMaxWidth(cfg.Width),
		glyphsvg.WithPrecision(cfg.Precision),
		glyphsvg.WithLanguage(cfg.Lang),
		glyphsvg.WithNormalize(cfg.Normalize),
	}
	if cfg.Animate {
		opts = append(opts, glyphsvg.WithAnimation(svg.DefaultAnimation()))
	}

	if cfg.Highlight || cfg.ThemeFile != "" {
		var theme *highlight.Theme
		if cfg.ThemeFile != "" {
			theme, err = highlight.LoadThemeFile(cfg.ThemeFile)
		} else {
			theme, err = highlight.ThemeByName(cfg.Theme)
		}
		if err != nil {
			return nil, err
		}
		h, err := highlight.NewHighlighter(theme)
		if err != nil {
			return nil, err
		}
		opts = append(opts, glyphsvg.WithHighlighter(h))
	}
	return opts, nil
}

// loadLibrary returns the system fonts, or the Go fonts plus dirs when
// directories are given.
func loadLibrary(dirs []string) *text.Library {
	if len(dirs) == 0 {
		return text.NewSystemLibrary()
	}
	lib := text.NewGoFontLibrary()
	for _, dir := range dirs {
		if err := lib.AddDir(os.DirFS(dir), "."); err != nil {
			glyphsvg.Logger().Warn("font directory skipped", "dir", dir, "err", err)
		}
	}
	return lib
}

func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name) // #nosec G304 -- path chosen by the user
	if err != nil {
		return nil, err
	}
	return f, nil
}

func writeOutput(cfg config, doc *svg.Document, stdout io.Writer) (err error) {
	opts := svg.EncodeOptions{Precision: cfg.Precision, Indent: !cfg.Minify, Minify: cfg.Minify}
	if cfg.Output == "-" {
		return doc.Encode(stdout, opts)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := doc.Encode(f, opts); err != nil {
		return err
	}
	glyphsvg.Logger().Info("svg written", "file", cfg.Output,
		"width", doc.Width, "height", doc.Height, "symbols", len(doc.Symbols))
	return nil
}

// listFamilies prints a table of the font families and their styles.
func listFamilies(w io.Writer, lib *text.Library) error {
	data := pterm.TableData{{"Family", "Styles"}}
	for _, name := range lib.Families() {
		fam, err := lib.Family(name)
		if err != nil {
			return err
		}
		styles := make([]string, 0, fam.Len())
		for _, s := range fam.Styles() {
			styles = append(styles, s.String())
		}
		data = append(data, []string{name, strings.Join(styles, ", ")})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

func printHelp(w io.Writer, usages string) {
	fmt.Fprintln(w, "glyphsvg - render text as SVG glyph outlines")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  glyphsvg [flags] [text]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, usages)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  GLYPHSVG_DEBUG=1  same as --debug")
}
