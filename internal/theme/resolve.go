package theme

import (
	"fmt"
	"sort"

	"github.com/opencode-ai/tint/internal/color"
)

// Entry is one renderer entry: a positional sequence of strings whose
// length depends on color depth. This shape is the binding contract with
// the rendering layer and must be reproduced exactly:
//
//	depth 1:          (name, "", "", monoAttr)
//	depth 16:         (name, fg16, bg16)
//	depth 256 / 2^24: (name, "", "", "", fgCode, bgCode)
//
// The three empty positions at high depths are placeholders reserved for
// lower-fidelity fallback rendering.
type Entry []string

// Name returns the entry's style name.
func (e Entry) Name() string {
	if len(e) == 0 {
		return ""
	}
	return e[0]
}

// pygmentsMonoAttr is the monochrome display attribute applied to every
// generated highlight entry; emphasis is the only displayable channel at
// depth 1.
const pygmentsMonoAttr = "bold"

// ResolveStyles produces one renderer entry per style, in table order.
// monoDefaults supplies the per-style monochrome attributes; Generate
// passes RequiredStyles.
func ResolveStyles(p *color.Palette, t *StyleTable, depth color.Depth, monoDefaults map[string]string) ([]Entry, error) {
	entries := make([]Entry, 0, t.Len())
	for _, s := range t.Entries() {
		fg, ok := p.Lookup(s.Style.Fg)
		if !ok {
			return nil, fmt.Errorf("style %s references unknown color %s", s.Name, s.Style.Fg)
		}
		bg, ok := p.Lookup(s.Style.Bg)
		if !ok {
			return nil, fmt.Errorf("style %s references unknown color %s", s.Name, s.Style.Bg)
		}

		var entry Entry
		switch depth {
		case color.DepthMono:
			entry = Entry{s.Name, "", "", monoDefaults[s.Name]}
		case color.Depth16:
			entry = Entry{s.Name, fg.Fg16(), bg.Bg16()}
		case color.Depth256:
			entry = Entry{s.Name, "", "", "", fg.Fg256(), bg.Code256}
		case color.Depth24:
			entry = Entry{s.Name, "", "", "", fg.Fg24(), bg.Code24}
		default:
			return nil, fmt.Errorf("unsupported color depth %d", int(depth))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GeneratePygmentsStyles expands the highlighting metadata into one entry
// per mapped token, in token order. Generated names are prefixed with
// "pygments:" to avoid collision with base style names; the background is
// fixed for all entries; a token with an exact override uses the override
// string verbatim as its foreground, bypassing the base style.
func GeneratePygmentsStyles(p *Pygments, depth color.Depth) []Entry {
	entries := make([]Entry, 0, len(p.Styles))
	for _, ts := range p.Styles {
		name := "pygments:" + ts.Token
		fg := ts.Style
		if override, ok := p.Overrides[ts.Token]; ok {
			fg = override
		}

		var entry Entry
		switch depth {
		case color.DepthMono:
			entry = Entry{name, "", "", pygmentsMonoAttr}
		case color.Depth16:
			entry = Entry{name, fg, p.Background}
		default:
			entry = Entry{name, "", "", "", fg, p.Background}
		}
		entries = append(entries, entry)
	}
	return entries
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
