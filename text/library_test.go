package text

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestGoFontLibrary(t *testing.T) {
	lib := NewGoFontLibrary()

	require.Equal(t, []string{"Go", "Go Mono"}, lib.Families())

	fam, err := lib.Family("go")
	require.NoError(t, err)
	for _, s := range []Style{Regular, Medium, Bold, Italic} {
		_, ok := fam.Resolve(s)
		assert.True(t, ok, "Go family missing %v", s)
	}
	src, ok := fam.Resolve(Bold)
	require.True(t, ok)
	assert.False(t, src.Italic(), "Go Bold shadowed by Go Bold Italic")
}

func TestGoFontLibraryMedium(t *testing.T) {
	fam, err := NewGoFontLibrary().Family("Go")
	require.NoError(t, err)

	src, got, err := fam.Lookup(Medium)
	require.NoError(t, err)
	assert.Equal(t, Medium, got)
	assert.Equal(t, "Go", src.Name())
}

func TestWithFamily(t *testing.T) {
	src := goSource(t, goregular.TTF, WithFamily("Custom"))
	assert.Equal(t, "Custom", src.Name())

	plain := goSource(t, goregular.TTF)
	assert.Equal(t, plain.FullName(), src.FullName(), "override must not touch the full name")

	lib := NewLibrary()
	lib.AddSource(src)
	_, err := lib.Family("custom")
	assert.NoError(t, err, "face not filed under the override")
}

func TestLibraryFamilyNotFound(t *testing.T) {
	_, err := NewLibrary().Family("Nope")
	assert.ErrorIs(t, err, ErrFamilyNotFound)
}

func TestLibraryAddDir(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/Go-Regular.ttf":     {Data: goregular.TTF},
		"fonts/nested/Go-Bold.TTF": {Data: gobold.TTF},
		"fonts/broken.otf":         {Data: []byte("not a font")},
		"fonts/readme.txt":         {Data: []byte("ignored")},
	}

	lib := NewLibrary()
	require.NoError(t, lib.AddDir(fsys, "fonts"))

	fam, err := lib.Family("Go")
	require.NoError(t, err)
	assert.Equal(t, 2, fam.Len())

	assert.Error(t, lib.AddDir(fsys, "missing"))
}

func TestSystemFontDirs(t *testing.T) {
	assert.NotEmpty(t, SystemFontDirs())
}
