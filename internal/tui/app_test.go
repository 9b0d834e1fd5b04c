package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/tint/internal/color"
	"github.com/opencode-ai/tint/internal/theme"
)

func browserModel() model {
	reg := theme.NewRegistry()
	reg.Register("first", builtinCopy("tint_dark"))
	reg.Register("second", builtinCopy("gruvbox_dark"))
	reg.Register("broken", &theme.Theme{})

	return newModel(Config{Registry: reg, Theme: "first", Depth: color.Depth24})
}

// builtinCopy pulls a builtin theme out of the default registry.
func builtinCopy(name string) *theme.Theme {
	t, ok := theme.Default.Lookup(name)
	if !ok {
		panic("builtin theme missing: " + name)
	}
	return t
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelNavigation(t *testing.T) {
	m := browserModel()

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(model)
	if m.selected != 1 {
		t.Errorf("expected selection 1 after j, got %d", m.selected)
	}

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(model)
	if m.selected != 0 {
		t.Errorf("expected selection 0 after k, got %d", m.selected)
	}

	updated, _ = m.Update(keyMsg("k"))
	m = updated.(model)
	if m.selected != 0 {
		t.Errorf("selection must not go below 0, got %d", m.selected)
	}
}

func TestModelDepthCycle(t *testing.T) {
	m := browserModel()

	seen := map[color.Depth]bool{m.depth: true}
	for i := 0; i < 3; i++ {
		updated, _ := m.Update(keyMsg("d"))
		m = updated.(model)
		seen[m.depth] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all 4 depths in cycle, saw %d", len(seen))
	}
}

func TestModelQuit(t *testing.T) {
	m := browserModel()
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewShowsThemeAndError(t *testing.T) {
	m := browserModel()
	m.width = 100
	m.height = 40

	view := m.View()
	if !strings.Contains(view, "first") {
		t.Errorf("expected selected theme name in view, got: %s", view)
	}

	// Selecting the malformed theme shows its error without crashing.
	m.selected = 2
	view = m.View()
	if !strings.Contains(view, "missing required attribute 'colors'") {
		t.Errorf("expected schema error in view, got: %s", view)
	}
}

func TestSwatchLines(t *testing.T) {
	entries, err := theme.Generate("tint_dark", color.Depth24)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	lines := SwatchLines(entries)
	if len(lines) != len(entries) {
		t.Errorf("expected one swatch per entry, got %d for %d entries", len(lines), len(entries))
	}
}

func TestSplitAttrs(t *testing.T) {
	cases := []struct {
		repr  string
		code  string
		attrs []string
	}{
		{"#ffffff , bold", "#ffffff", []string{"bold"}},
		{"bold #fb4934", "#fb4934", []string{"bold"}},
		{"#870087", "#870087", nil},
		{"#123, bold", "#123", []string{"bold"}},
	}
	for _, tc := range cases {
		code, attrs := splitAttrs(tc.repr)
		if code != tc.code {
			t.Errorf("splitAttrs(%q) code = %q, want %q", tc.repr, code, tc.code)
		}
		if len(attrs) != len(tc.attrs) {
			t.Errorf("splitAttrs(%q) attrs = %v, want %v", tc.repr, attrs, tc.attrs)
			continue
		}
		for i := range attrs {
			if attrs[i] != tc.attrs[i] {
				t.Errorf("splitAttrs(%q) attrs = %v, want %v", tc.repr, attrs, tc.attrs)
			}
		}
	}
}
