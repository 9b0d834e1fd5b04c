// Package termcap detects the color capability of the attached terminal.
package termcap

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/opencode-ai/tint/internal/color"
)

// IsTTY reports whether stdin and stdout are attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Detect returns the color depth advertised by the environment. Detection
// is conservative: without a TTY or a usable TERM the result is
// monochrome, so piped output never carries color codes.
func Detect() color.Depth {
	return detect(IsTTY(), os.Getenv("COLORTERM"), os.Getenv("TERM"))
}

func detect(tty bool, colorterm, termEnv string) color.Depth {
	termEnv = strings.ToLower(strings.TrimSpace(termEnv))
	if !tty || termEnv == "" || termEnv == "dumb" {
		return color.DepthMono
	}

	switch strings.ToLower(strings.TrimSpace(colorterm)) {
	case "truecolor", "24bit":
		return color.Depth24
	}

	if strings.Contains(termEnv, "256color") {
		return color.Depth256
	}
	return color.Depth16
}
