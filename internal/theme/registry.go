package theme

import (
	"fmt"
	"sort"

	"github.com/opencode-ai/tint/internal/color"
)

// Registry holds named themes in registration order. It is populated once
// at startup (builtins first, then any user themes) and read-only after
// that, so concurrent Generate calls need no coordination.
type Registry struct {
	names  []string
	themes map[string]*Theme
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{themes: make(map[string]*Theme)}
}

// Register adds a theme under name. Registering a name twice replaces the
// earlier definition but keeps its position, so user themes can shadow
// builtins without reordering the catalogue.
func (r *Registry) Register(name string, t *Theme) {
	if _, ok := r.themes[name]; !ok {
		r.names = append(r.names, name)
	}
	r.themes[name] = t
}

// Lookup returns the theme registered under name.
func (r *Registry) Lookup(name string) (*Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Names returns all theme names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Generate builds the full renderer palette for the named theme at the
// given depth: base styles in table order followed by highlight styles in
// token order, never interleaved. A malformed theme fails with the exact
// validation error; other themes remain generatable.
func (r *Registry) Generate(name string, depth color.Depth) ([]Entry, error) {
	t, ok := r.themes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	if err := t.ValidateSchema(); err != nil {
		return nil, err
	}
	if err := color.ValidatePalette(t.Colors, depth); err != nil {
		return nil, err
	}
	entries, err := ResolveStyles(t.Colors, t.Styles, depth, RequiredStyles)
	if err != nil {
		return nil, err
	}
	if t.Meta != nil {
		entries = append(entries, GeneratePygmentsStyles(t.Meta.Pygments, depth)...)
	}
	return entries, nil
}

// CompleteAndIncomplete partitions the registry into complete and
// incomplete theme names. Both lists are sorted for reproducibility. The
// classification never raises; malformed themes land in the incomplete
// partition so cataloguing proceeds regardless.
func (r *Registry) CompleteAndIncomplete() (complete []string, incomplete []string) {
	complete = []string{}
	incomplete = []string{}
	for _, name := range r.names {
		if r.themes[name].Complete() {
			complete = append(complete, name)
		} else {
			incomplete = append(incomplete, name)
		}
	}
	sort.Strings(complete)
	sort.Strings(incomplete)
	return complete, incomplete
}

// Default is the process-wide registry, populated with the builtin themes
// at init and extended by the user-theme loader.
var Default = NewRegistry()

// Generate builds the named theme's palette from the default registry.
func Generate(name string, depth color.Depth) ([]Entry, error) {
	return Default.Generate(name, depth)
}

// AllThemes lists the default registry's theme names in registration order.
func AllThemes() []string {
	return Default.Names()
}

// CompleteAndIncompleteThemes classifies the default registry's themes.
func CompleteAndIncompleteThemes() ([]string, []string) {
	return Default.CompleteAndIncomplete()
}
