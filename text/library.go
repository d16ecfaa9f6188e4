package text

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Library is a collection of font families indexed by case-insensitive name.
//
// Library is safe for concurrent use.
type Library struct {
	mu       sync.RWMutex
	families map[string]*Family
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{families: make(map[string]*Family)}
}

// NewGoFontLibrary returns a library holding the Go fonts bundled with
// golang.org/x/image: family "Go" (regular, medium, bold, italic) and
// family "Go Mono" (regular, bold, italic).
func NewGoFontLibrary() *Library {
	lib := NewLibrary()
	bundled := []struct {
		family string
		data   []byte
	}{
		{"Go", goregular.TTF},
		{"Go", gomedium.TTF},
		{"Go", gobold.TTF},
		{"Go", goitalic.TTF},
		{"Go", gobolditalic.TTF},
		{"Go Mono", gomono.TTF},
		{"Go Mono", gomonobold.TTF},
		{"Go Mono", gomonoitalic.TTF},
	}
	for _, b := range bundled {
		// gomedium names its family "Go Medium"; the override keeps every
		// proportional face in "Go".
		src, err := NewFontSource(b.data, WithFamily(b.family))
		if err != nil {
			// The bundled fonts always parse; a failure here is a broken build.
			panic(fmt.Sprintf("text: bundled Go font failed to parse: %v", err))
		}
		lib.AddSource(src)
	}
	return lib
}

// NewSystemLibrary scans the platform font directories plus the Go fonts.
// Unreadable directories are skipped.
func NewSystemLibrary() *Library {
	lib := NewGoFontLibrary()
	for _, dir := range SystemFontDirs() {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := lib.AddDir(os.DirFS(dir), "."); err != nil {
			Logger().Warn("font directory skipped", "dir", dir, "err", err)
		}
	}
	return lib
}

// SystemFontDirs returns the conventional font directories of the current OS.
func SystemFontDirs() []string {
	home, _ := os.UserHomeDir()
	var dirs []string
	switch runtime.GOOS {
	case "windows":
		if windir := os.Getenv("WINDIR"); windir != "" {
			dirs = append(dirs, filepath.Join(windir, "Fonts"))
		}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	case "darwin":
		dirs = append(dirs, "/System/Library/Fonts", "/Library/Fonts")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	default:
		dirs = append(dirs, "/usr/share/fonts", "/usr/local/share/fonts")
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
	}
	return dirs
}

// AddSource files src under its family name.
func (l *Library) AddSource(src *FontSource) {
	if src == nil {
		return
	}
	key := strings.ToLower(src.Name())

	l.mu.Lock()
	defer l.mu.Unlock()

	fam, ok := l.families[key]
	if !ok {
		fam = NewFamily(src.Name())
		l.families[key] = fam
	}
	fam.Add(src)
}

// AddDir walks root inside fsys and loads every .ttf and .otf file.
// Files that fail to parse are logged and skipped; only a failing walk is
// reported as an error.
func (l *Library) AddDir(fsys fs.FS, root string) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			Logger().Debug("font path skipped", "path", p, "err", err)
			return nil
		}
		if d.IsDir() || !isFontFile(p) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			Logger().Warn("font file unreadable", "path", p, "err", err)
			return nil
		}
		src, err := NewFontSource(data)
		if err != nil {
			Logger().Warn("font file skipped", "path", p, "err", err)
			return nil
		}
		l.AddSource(src)
		return nil
	})
}

// isFontFile reports whether p has a single-face font extension.
func isFontFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// Families returns the family names in sorted order.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.families))
	for _, fam := range l.families {
		names = append(names, fam.Name)
	}
	sort.Strings(names)
	return names
}

// Family returns the family called name (case-insensitive).
func (l *Library) Family(name string) (*Family, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if fam, ok := l.families[strings.ToLower(strings.TrimSpace(name))]; ok {
		return fam, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFamilyNotFound, name)
}
