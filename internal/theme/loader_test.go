package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/tint/internal/color"
)

const sampleTheme = `
name: solar_test
colors:
  - name: base
    value: "white h230 #fdf6e3"
  - name: accent
    value: "dark_cyan h37 #2aa198 , bold"
styles:
  - name: default
    fg: base
    bg: accent
meta:
  pygments:
    styles:
      - token: k
        style: "bold #859900"
      - token: s
        style: "#2aa198"
    background: h230
    overrides:
      k: "#b58900"
`

func writeThemeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTheme(t *testing.T) {
	path := writeThemeFile(t, t.TempDir(), "solar.yaml", sampleTheme)

	name, th, err := LoadTheme(path)
	require.NoError(t, err)
	require.Equal(t, "solar_test", name)
	require.Equal(t, path, th.Source)

	require.Equal(t, 2, th.Colors.Len())
	accent, ok := th.Colors.Lookup("accent")
	require.True(t, ok)
	require.Equal(t, "dark_cyan", accent.Code16)
	require.Equal(t, []string{",", "bold"}, accent.Suffix)

	require.Equal(t, 1, th.Styles.Len())
	require.NotNil(t, th.Meta)
	require.Equal(t, "h230", th.Meta.Pygments.Background)
	require.Equal(t, "k", th.Meta.Pygments.Styles[0].Token)
	require.Equal(t, "#b58900", th.Meta.Pygments.Overrides["k"])

	// Loaded themes generate like builtins.
	reg := NewRegistry()
	reg.Register(name, th)
	entries, err := reg.Generate(name, color.Depth256)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, Entry{"default", "", "", "", "h230", "h37"}, entries[0])
	require.Equal(t, Entry{"pygments:k", "", "", "", "#b58900", "h230"}, entries[1])
}

func TestLoadThemeErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty path", func(t *testing.T) {
		_, _, err := LoadTheme("")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadTheme(filepath.Join(dir, "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		path := writeThemeFile(t, dir, "anon.yaml", "colors: []\n")
		_, _, err := LoadTheme(path)
		require.ErrorContains(t, err, "theme name is required")
	})

	t.Run("malformed color", func(t *testing.T) {
		path := writeThemeFile(t, dir, "short.yaml", `
name: short
colors:
  - name: broken
    value: "white #fff"
`)
		_, _, err := LoadTheme(path)
		require.ErrorIs(t, err, color.ErrMalformedColor)
	})
}

func TestLoadThemesFromDir(t *testing.T) {
	t.Run("missing dir is not an error", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, LoadThemesFromDir(reg, filepath.Join(t.TempDir(), "nope")))
		require.Empty(t, reg.Names())
	})

	t.Run("empty dir option", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, LoadThemesFromDir(reg, ""))
	})

	t.Run("loads yaml files in name order", func(t *testing.T) {
		dir := t.TempDir()
		writeThemeFile(t, dir, "b.yaml", "name: theme_b\ncolors: []\nstyles: []\n")
		writeThemeFile(t, dir, "a.yml", "name: theme_a\ncolors: []\nstyles: []\n")
		writeThemeFile(t, dir, "ignored.txt", "not a theme")

		reg := NewRegistry()
		require.NoError(t, LoadThemesFromDir(reg, dir))
		require.Equal(t, []string{"theme_a", "theme_b"}, reg.Names())
	})
}
