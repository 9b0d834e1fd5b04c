package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/tint/internal/color"
)

var allDepths = []color.Depth{color.DepthMono, color.Depth16, color.Depth256, color.Depth24}

func TestRegistryOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register("b", fakeTheme())
	reg.Register("a", fakeTheme())
	reg.Register("c", fakeTheme())
	require.Equal(t, []string{"b", "a", "c"}, reg.Names())

	// Re-registration replaces in place without reordering.
	reg.Register("a", &Theme{})
	require.Equal(t, []string{"b", "a", "c"}, reg.Names())
}

func TestGenerateThemeNotFound(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Generate("nope", color.Depth256)
	require.ErrorIs(t, err, ErrThemeNotFound)
}

func TestGenerateMissingAttributes(t *testing.T) {
	reg := NewRegistry()
	th := &Theme{}
	reg.Register("fake_theme", th)

	_, err := reg.Generate("fake_theme", color.Depth256)
	require.EqualError(t, err, "Theme is missing required attribute 'colors'")

	th.Colors = color.NewPalette(
		color.NamedColor{Name: "c1", Color: color.MustParse("a a #fff")},
		color.NamedColor{Name: "c2", Color: color.MustParse("k b #fff")},
	)
	_, err = reg.Generate("fake_theme", color.Depth256)
	require.EqualError(t, err, "Theme is missing required attribute 'styles'")

	th.Styles = NewStyleTable(NamedStyle{Name: "somestyle", Style: Style{Fg: "c1", Bg: "c2"}})
	th.Meta = &Meta{}
	_, err = reg.Generate("fake_theme", color.Depth256)
	require.EqualError(t, err, `Theme is missing required attribute 'meta["pygments"]'`)

	th.Meta.Pygments = &Pygments{
		Styles:     []TokenStyle{{Token: "k", Style: "bold"}},
		Background: "h200",
	}
	_, err = reg.Generate("fake_theme", color.Depth256)
	require.EqualError(t, err, `Theme is missing required attribute 'meta["pygments"]["overrides"]'`)
}

func TestGenerateWithAndWithoutMeta(t *testing.T) {
	// The 16-color identifiers here are deliberately invalid; at depth 256
	// they are never consulted and generation succeeds regardless.
	palette := color.NewPalette(
		color.NamedColor{Name: "c1", Color: color.MustParse("a a #fff")},
		color.NamedColor{Name: "c2", Color: color.MustParse("k b #fff")},
	)
	styles := NewStyleTable(NamedStyle{Name: "somestyle", Style: Style{Fg: "c1", Bg: "c2"}})

	t.Run("meta absent yields base styles only", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register("fake_theme", &Theme{Colors: palette, Styles: styles})

		entries, err := reg.Generate("fake_theme", color.Depth256)
		require.NoError(t, err)
		require.Equal(t, []Entry{{"somestyle", "", "", "", "a", "b"}}, entries)
	})

	t.Run("meta appends highlight styles after base styles", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register("fake_theme", &Theme{
			Colors: palette,
			Styles: styles,
			Meta: &Meta{Pygments: &Pygments{
				Styles:     []TokenStyle{{Token: "k", Style: "#ff79c6"}, {Token: "s", Style: "#f1fa8c"}},
				Background: "h80",
				Overrides:  map[string]string{},
			}},
		})

		entries, err := reg.Generate("fake_theme", color.Depth256)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		require.Equal(t, Entry{"somestyle", "", "", "", "a", "b"}, entries[0])
		require.Equal(t, "pygments:k", entries[1].Name())
		require.Equal(t, "pygments:s", entries[2].Name())
	})
}

func TestGenerateValidatesPaletteAtDepth16(t *testing.T) {
	reg := NewRegistry()
	reg.Register("fake_theme", &Theme{
		Colors: color.NewPalette(
			color.NamedColor{Name: "GOOD", Color: color.MustParse("white h255 g93")},
			color.NamedColor{Name: "BAD", Color: color.MustParse("blac h234 #1d2021")},
		),
		Styles: NewStyleTable(NamedStyle{Name: "s", Style: Style{Fg: "GOOD", Bg: "GOOD"}}),
	})

	_, err := reg.Generate("fake_theme", color.Depth16)
	require.Error(t, err)
	require.Equal(t, "Invalid 16-color codes found in this theme:\n- BAD = blac", err.Error())

	// The same theme still generates at other depths.
	_, err = reg.Generate("fake_theme", color.Depth256)
	require.NoError(t, err)
}

func TestGenerateDeterministic(t *testing.T) {
	for _, depth := range allDepths {
		first, err := Generate("tint_dark", depth)
		require.NoError(t, err)
		second, err := Generate("tint_dark", depth)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestAllThemesRegistrationOrder(t *testing.T) {
	names := AllThemes()
	require.Equal(t, []string{"tint_dark", "tint_light", "tint_blue", "gruvbox_dark", "gruvbox_light"}, names[:5])
}

func TestCompleteAndIncompleteThemes(t *testing.T) {
	reg := NewRegistry()
	reg.Register("good", fakeTheme())
	broken := fakeTheme()
	broken.Styles = nil
	reg.Register("broken", broken)

	complete, incomplete := reg.CompleteAndIncomplete()
	require.Equal(t, []string{"good"}, complete)
	require.Equal(t, []string{"broken"}, incomplete)
}

// Builtin themes are kept complete for quality-control purposes.
func TestBuiltinThemeCompleteness(t *testing.T) {
	for _, name := range []string{"tint_dark", "tint_light", "tint_blue", "gruvbox_dark", "gruvbox_light"} {
		t.Run(name, func(t *testing.T) {
			th, ok := Default.Lookup(name)
			require.True(t, ok)

			require.Empty(t, th.MissingStyles())
			require.Empty(t, th.ExtraStyles())
			require.True(t, th.Complete())

			// Every color carries three valid codes within bounds.
			for _, entry := range th.Colors.Entries() {
				require.NoError(t, entry.Color.Check(), "color %s", entry.Name)
			}

			// Every style references colors from the theme's own palette.
			for _, s := range th.Styles.Entries() {
				require.True(t, th.Colors.Has(s.Style.Fg), "style %s fg %s", s.Name, s.Style.Fg)
				require.True(t, th.Colors.Has(s.Style.Bg), "style %s bg %s", s.Name, s.Style.Bg)
			}

			// Generation succeeds at every supported depth.
			for _, depth := range allDepths {
				entries, err := Generate(name, depth)
				require.NoError(t, err)
				require.Equal(t, th.Styles.Len()+len(th.Meta.Pygments.Styles), len(entries))
			}
		})
	}

	complete, _ := CompleteAndIncompleteThemes()
	require.Subset(t, complete, []string{"gruvbox_dark", "gruvbox_light", "tint_blue", "tint_dark", "tint_light"})
}
