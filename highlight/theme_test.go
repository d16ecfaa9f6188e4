package highlight

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinThemes(t *testing.T) {
	assert.Equal(t, []string{"base16-ocean.dark", "gruvbox-dark", "gruvbox-light"}, Themes())

	for _, name := range Themes() {
		th, err := ThemeByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, th.Name)
		assert.NotEmpty(t, th.Rules)
	}

	def, err := ThemeByName("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, def.Name)

	_, err = ThemeByName("GRUVBOX-DARK")
	assert.NoError(t, err, "names are case-insensitive")
}

func TestThemeByNameUnknown(t *testing.T) {
	_, err := ThemeByName("solarized")
	assert.True(t, errors.Is(err, ErrUnknownTheme))
	assert.Contains(t, err.Error(), "gruvbox-dark")
}

func TestLoadTheme(t *testing.T) {
	src := `
name: mono
foreground: "#111"
rules:
  keyword:
    style: bold
  comment:
    color: "#888888"
    style: [italic, underline]
`
	th, err := LoadTheme(strings.NewReader(src))
	require.NoError(t, err)

	color, style := th.Resolve(ClassKeyword)
	assert.Equal(t, MustParseColor("#111"), color, "rule without colour uses foreground")
	assert.Equal(t, Bold, style)

	color, style = th.Resolve(ClassComment)
	assert.Equal(t, MustParseColor("#888888"), color)
	assert.Equal(t, Italic|Underline, style)

	color, style = th.Resolve(ClassString)
	assert.Equal(t, th.Foreground, color)
	assert.Zero(t, style)
}

func TestLoadThemeErrors(t *testing.T) {
	tests := map[string]string{
		"no name":       "foreground: \"#000\"\n",
		"bad colour":    "name: x\nforeground: \"#zzz\"\n",
		"unknown class": "name: x\nrules:\n  macro:\n    color: \"#000\"\n",
		"unknown style": "name: x\nrules:\n  keyword:\n    style: [wavy]\n",
		"unknown field": "name: x\nbackdrop: \"#000\"\n",
	}
	for name, src := range tests {
		_, err := LoadTheme(strings.NewReader(src))
		assert.Error(t, err, name)
	}
}

func TestLoadThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\nforeground: \"#abc\"\n"), 0o600))

	th, err := LoadThemeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file", th.Name)

	_, err = LoadThemeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
