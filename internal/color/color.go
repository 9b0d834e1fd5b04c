// Package color parses and validates terminal color definitions.
//
// A color definition is a single string carrying three whitespace-separated
// codes in fixed order: a 16-color identifier, a 256-color code, and a
// 24-bit code. An optional attribute suffix (e.g. ", bold , italics")
// follows the third code and only applies at depths of 16 colors and above.
package color

import (
	"errors"
	"regexp"
	"strings"
)

// ErrMalformedColor is returned when a definition has fewer than three codes.
var ErrMalformedColor = errors.New("color definition must have 3 color codes")

// codePattern matches a single 256-color or 24-bit color code: a hex
// triplet, an indexed form h<0-255>, a grayscale form g<0-100>, or the
// terminal default.
var codePattern = regexp.MustCompile(`^(?:#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|h([0-9]{1,3})|g([0-9]{1,3})|default)$`)

// Valid16Codes is the closed set of legal 16-color identifiers.
// Multi-word names use underscores; the style resolver rewrites them to
// spaces for the terminal at depth 16.
var Valid16Codes = map[string]struct{}{
	"default":       {},
	"black":         {},
	"dark_red":      {},
	"dark_green":    {},
	"brown":         {},
	"dark_blue":     {},
	"dark_magenta":  {},
	"dark_cyan":     {},
	"dark_gray":     {},
	"light_red":     {},
	"light_green":   {},
	"yellow":        {},
	"light_blue":    {},
	"light_magenta": {},
	"light_cyan":    {},
	"light_gray":    {},
	"white":         {},
}

// Color is a parsed color definition.
type Color struct {
	// Code16, Code256 and Code24 are the depth-specific codes, lowercased.
	Code16  string
	Code256 string
	Code24  string

	// Raw16 is the 16-color token exactly as declared; validation reports
	// echo it so the author sees the value they wrote.
	Raw16 string

	// Suffix holds the raw tokens following the third code, commas
	// included, e.g. [",", "bold", ",", "italics"]. Empty when the
	// definition carries no attributes.
	Suffix []string
}

// Parse splits a raw color definition into its codes and attribute suffix.
// Parsing is lenient about code contents so that authoring mistakes surface
// through Check and the palette validator with full context rather than at
// construction time.
func Parse(raw string) (Color, error) {
	declared := strings.Fields(raw)
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) < 3 {
		return Color{}, ErrMalformedColor
	}
	c := Color{
		Code16:  fields[0],
		Code256: fields[1],
		Code24:  fields[2],
		Raw16:   declared[0],
	}
	if len(fields) > 3 {
		c.Suffix = fields[3:]
	}
	return c, nil
}

// MustParse is Parse for static definitions; it panics on malformed input.
func MustParse(raw string) Color {
	c, err := Parse(raw)
	if err != nil {
		panic("color: " + err.Error() + ": " + raw)
	}
	return c
}

// Valid16 reports whether code is a member of the 16-color identifier set.
func Valid16(code string) bool {
	_, ok := Valid16Codes[strings.ToLower(code)]
	return ok
}

// ValidCode reports whether code satisfies the generic color-code grammar,
// including the numeric bounds on indexed (h < 256) and grayscale (g <= 100)
// forms.
func ValidCode(code string) bool {
	m := codePattern.FindStringSubmatch(strings.ToLower(code))
	if m == nil {
		return false
	}
	if m[1] != "" { // h<N>
		return atoi(m[1]) < 256
	}
	if m[2] != "" { // g<N>
		return atoi(m[2]) <= 100
	}
	return true
}

// Check validates all three codes of the color: the 16-color identifier
// must be a set member and the 256/24-bit codes must satisfy the generic
// grammar.
func (c Color) Check() error {
	if !Valid16(c.Code16) {
		return errors.New("invalid 16-color code: " + c.Code16)
	}
	if !ValidCode(c.Code256) {
		return errors.New("invalid 256-color code: " + c.Code256)
	}
	if !ValidCode(c.Code24) {
		return errors.New("invalid 24-bit color code: " + c.Code24)
	}
	return nil
}

// Fg16 returns the 16-color foreground representation: the identifier with
// underscores rendered as spaces, followed by the attribute suffix.
func (c Color) Fg16() string {
	return joinCode(strings.ReplaceAll(c.Code16, "_", " "), c.Suffix)
}

// Bg16 returns the 16-color background representation. Backgrounds never
// carry display attributes.
func (c Color) Bg16() string {
	return strings.ReplaceAll(c.Code16, "_", " ")
}

// Fg256 returns the 256-color foreground representation with attributes.
func (c Color) Fg256() string {
	return joinCode(c.Code256, c.Suffix)
}

// Fg24 returns the 24-bit foreground representation with attributes.
func (c Color) Fg24() string {
	return joinCode(c.Code24, c.Suffix)
}

func joinCode(code string, suffix []string) string {
	if len(suffix) == 0 {
		return code
	}
	return code + " " + strings.Join(suffix, " ")
}

// atoi converts a digits-only string; the pattern guarantees 1-3 digits.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
