// Package theme turns declarative theme definitions into the exact
// color/attribute entries a terminal renderer consumes at a given color
// depth.
package theme

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/tint/internal/color"
)

// ErrThemeNotFound is returned when a theme name is not registered.
var ErrThemeNotFound = errors.New("theme not found")

// RequiredStyles is the fixed set of logical style names every complete
// theme must define, mapped to the monochrome display attribute used when
// no color information is displayable.
var RequiredStyles = map[string]string{
	"default":          "",
	"selected":         "standout",
	"header":           "bold",
	"footer":           "standout",
	"title":            "bold",
	"bar":              "standout",
	"popup_border":     "",
	"popup_contrast":   "standout",
	"unread":           "bold",
	"starred":          "bold",
	"time":             "",
	"author":           "bold",
	"mention":          "bold",
	"link":             "underline",
	"quote":            "",
	"code":             "",
	"error":            "standout",
	"search_highlight": "standout",
}

// Style references a foreground and background color by palette name.
type Style struct {
	Fg string
	Bg string
}

// NamedStyle pairs a logical style name with its color pair.
type NamedStyle struct {
	Name  string
	Style Style
}

// StyleTable is a theme's ordered style mapping. Iteration order is the
// declaration order, which fixes the order of generated entries.
type StyleTable struct {
	entries []NamedStyle
	byName  map[string]int
}

// NewStyleTable builds a style table in declaration order.
func NewStyleTable(entries ...NamedStyle) *StyleTable {
	t := &StyleTable{
		entries: entries,
		byName:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		t.byName[e.Name] = i
	}
	return t
}

// Entries returns the styles in declaration order.
func (t *StyleTable) Entries() []NamedStyle {
	return t.entries
}

// Has reports whether a style name is defined.
func (t *StyleTable) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Len returns the number of styles.
func (t *StyleTable) Len() int {
	return len(t.entries)
}

// TokenStyle pairs a syntax-highlighting token with its effective style
// string. Inherited entries arrive already expanded to concrete values by
// the upstream token-style source.
type TokenStyle struct {
	Token string
	Style string
}

// Pygments is the syntax-highlighting sub-section of a theme's metadata.
type Pygments struct {
	// Styles maps tokens to base style strings, in token order.
	Styles []TokenStyle
	// Background is the raw color code applied behind every generated
	// highlight entry.
	Background string
	// Overrides maps individual tokens to raw color/attribute strings
	// that replace the base style lookup verbatim.
	Overrides map[string]string
}

// Meta is a theme's optional metadata. Once declared, its highlighting
// sub-section becomes mandatory.
type Meta struct {
	Pygments *Pygments
}

// Theme is a named bundle of a color palette, a style table and optional
// highlighting metadata. Themes are immutable after registration.
type Theme struct {
	Colors *color.Palette
	Styles *StyleTable
	Meta   *Meta

	// Source records where the theme came from: "builtin" or a file path.
	Source string
}

// MissingAttributeError reports exactly one absent structural attribute,
// identified by a bracketed path such as meta["pygments"]["overrides"].
type MissingAttributeError struct {
	Attr string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("Theme is missing required attribute '%s'", e.Attr)
}

// ValidateSchema checks the theme's structural attributes in fixed order
// and stops at the first absence: colors, styles, then — only when
// metadata is declared at all — the pygments sub-section and its styles,
// background and overrides fields. Absent metadata is not an error.
func (t *Theme) ValidateSchema() error {
	if t.Colors == nil {
		return &MissingAttributeError{Attr: "colors"}
	}
	if t.Styles == nil {
		return &MissingAttributeError{Attr: "styles"}
	}
	if t.Meta == nil {
		return nil
	}
	p := t.Meta.Pygments
	if p == nil {
		return &MissingAttributeError{Attr: `meta["pygments"]`}
	}
	if p.Styles == nil {
		return &MissingAttributeError{Attr: `meta["pygments"]["styles"]`}
	}
	if p.Background == "" {
		return &MissingAttributeError{Attr: `meta["pygments"]["background"]`}
	}
	if p.Overrides == nil {
		return &MissingAttributeError{Attr: `meta["pygments"]["overrides"]`}
	}
	return nil
}

// MissingStyles returns the required style names the theme does not
// define, and ExtraStyles the defined names outside the required set.
// Both are reported in a stable order for reproducible output.
func (t *Theme) MissingStyles() []string {
	if t.Styles == nil {
		return sortedKeys(RequiredStyles)
	}
	var missing []string
	for _, name := range sortedKeys(RequiredStyles) {
		if !t.Styles.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// ExtraStyles returns defined style names outside the required set, in
// table declaration order.
func (t *Theme) ExtraStyles() []string {
	if t.Styles == nil {
		return nil
	}
	var extra []string
	for _, e := range t.Styles.Entries() {
		if _, ok := RequiredStyles[e.Name]; !ok {
			extra = append(extra, e.Name)
		}
	}
	return extra
}

// Complete reports whether the theme satisfies the full structural and
// referential schema: every required style is defined (extra non-required
// styles are tolerated here and surfaced separately via ExtraStyles),
// every referenced color is a palette member, and the highlighting
// metadata is present and fully populated. It never raises; malformed
// themes simply classify incomplete.
func (t *Theme) Complete() bool {
	if t.Colors == nil || t.Styles == nil {
		return false
	}
	for name := range RequiredStyles {
		if !t.Styles.Has(name) {
			return false
		}
	}
	for _, e := range t.Styles.Entries() {
		if !t.Colors.Has(e.Style.Fg) || !t.Colors.Has(e.Style.Bg) {
			return false
		}
	}
	if t.Meta == nil {
		return false
	}
	p := t.Meta.Pygments
	if p == nil || len(p.Styles) == 0 || p.Background == "" || p.Overrides == nil {
		return false
	}
	return true
}
