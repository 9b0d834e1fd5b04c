package theme

import "github.com/opencode-ai/tint/internal/color"

// sourceBuiltin marks themes bundled with tint.
const sourceBuiltin = "builtin"

func init() {
	Default.Register("tint_dark", tintDark)
	Default.Register("tint_light", tintLight)
	Default.Register("tint_blue", tintBlue)
	Default.Register("gruvbox_dark", gruvboxDark)
	Default.Register("gruvbox_light", gruvboxLight)
}

// col is shorthand for building builtin palette entries.
func col(name, raw string) color.NamedColor {
	return color.NamedColor{Name: name, Color: color.MustParse(raw)}
}

// sty is shorthand for building builtin style entries.
func sty(name, fg, bg string) NamedStyle {
	return NamedStyle{Name: name, Style: Style{Fg: fg, Bg: bg}}
}

// tok is shorthand for building builtin token-style entries.
func tok(token, style string) TokenStyle {
	return TokenStyle{Token: token, Style: style}
}
