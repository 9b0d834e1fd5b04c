package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/tint/internal/theme"
)

// SwatchLines renders 24-bit renderer entries as colored swatch lines.
// Entries whose codes lipgloss cannot display (terminal defaults) render
// unstyled.
func SwatchLines(entries []theme.Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		if len(entry) != 6 {
			continue
		}

		style := lipgloss.NewStyle()
		fg, attrs := splitAttrs(entry[4])
		if c := lipglossColor(fg); c != "" {
			style = style.Foreground(lipgloss.Color(c))
		}
		if c := lipglossColor(entry[5]); c != "" {
			style = style.Background(lipgloss.Color(c))
		}
		for _, attr := range attrs {
			switch attr {
			case "bold":
				style = style.Bold(true)
			case "italic", "italics":
				style = style.Italic(true)
			case "underline":
				style = style.Underline(true)
			case "standout":
				style = style.Reverse(true)
			}
		}

		lines = append(lines, style.Render(fmt.Sprintf(" %-28s %s ", entry.Name(), fg)))
	}
	return lines
}

// splitAttrs separates a foreground representation into its leading code
// and any attribute words, whether comma-suffixed ("#fff , bold") or
// style-string shaped ("bold #fb4934").
func splitAttrs(repr string) (string, []string) {
	parts := strings.Split(repr, ",")
	code := strings.TrimSpace(parts[0])
	var attrs []string
	for _, p := range parts[1:] {
		if p = strings.TrimSpace(p); p != "" {
			attrs = append(attrs, p)
		}
	}
	if fields := strings.Fields(code); len(fields) > 1 {
		code = ""
		for _, f := range fields {
			if strings.HasPrefix(f, "#") {
				code = f
			} else {
				attrs = append(attrs, f)
			}
		}
	}
	return code, attrs
}

// lipglossColor maps a tint color code onto a lipgloss color string: hex
// codes pass through, indexed codes use the bare ANSI index, grayscale and
// terminal defaults render unstyled.
func lipglossColor(code string) string {
	switch {
	case strings.HasPrefix(code, "#"):
		return code
	case strings.HasPrefix(code, "h"):
		return strings.TrimPrefix(code, "h")
	default:
		return ""
	}
}
