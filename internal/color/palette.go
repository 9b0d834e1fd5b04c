package color

import (
	"fmt"
	"strings"
)

// invalidHeader precedes the per-offender lines of an aggregated report.
const invalidHeader = "Invalid 16-color codes found in this theme:\n"

// NamedColor pairs a palette entry name with its parsed color.
type NamedColor struct {
	Name  string
	Color Color
}

// Palette is a theme's ordered color enumeration. Declaration order is
// preserved so that validation reports are reproducible.
type Palette struct {
	entries []NamedColor
	byName  map[string]int
}

// NewPalette builds a palette from named colors in declaration order.
func NewPalette(entries ...NamedColor) *Palette {
	p := &Palette{
		entries: entries,
		byName:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		p.byName[e.Name] = i
	}
	return p
}

// Entries returns the palette members in declaration order.
func (p *Palette) Entries() []NamedColor {
	return p.entries
}

// Lookup returns the color registered under name.
func (p *Palette) Lookup(name string) (Color, bool) {
	i, ok := p.byName[name]
	if !ok {
		return Color{}, false
	}
	return p.entries[i].Color, true
}

// Has reports whether name is a member of the palette.
func (p *Palette) Has(name string) bool {
	_, ok := p.byName[name]
	return ok
}

// Len returns the number of palette members.
func (p *Palette) Len() int {
	return len(p.entries)
}

// InvalidColorCodeError aggregates every palette entry whose 16-color
// identifier failed validation. Theme authors get one full report instead
// of one-at-a-time feedback.
type InvalidColorCodeError struct {
	// Offenders lists (entry name, failing 16-color code) pairs in
	// palette declaration order.
	Offenders []NamedColor
}

func (e *InvalidColorCodeError) Error() string {
	lines := make([]string, 0, len(e.Offenders))
	for _, o := range e.Offenders {
		lines = append(lines, fmt.Sprintf("- %s = %s", o.Name, o.Color.Raw16))
	}
	return invalidHeader + strings.Join(lines, "\n")
}

// ValidatePalette checks every palette member's 16-color identifier when
// depth is 16; those identifiers are not consulted at other depths. All
// offenders from a single palette are collected into one error.
func ValidatePalette(p *Palette, depth Depth) error {
	if depth != Depth16 {
		return nil
	}
	var offenders []NamedColor
	for _, e := range p.entries {
		if !Valid16(e.Color.Code16) {
			offenders = append(offenders, e)
		}
	}
	if len(offenders) > 0 {
		return &InvalidColorCodeError{Offenders: offenders}
	}
	return nil
}
