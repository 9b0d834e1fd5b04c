// Package tui implements the tint theme browser.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/tint/internal/color"
	"github.com/opencode-ai/tint/internal/theme"
)

// Config configures the theme browser.
type Config struct {
	// Registry supplies the themes to browse; nil means the default
	// registry.
	Registry *theme.Registry

	// Theme is the initially selected theme name.
	Theme string

	// Depth is the initially displayed color depth.
	Depth color.Depth

	Logger zerolog.Logger
}

// Run launches the theme browser program.
func Run(cfg Config) error {
	m := newModel(cfg)
	cfg.Logger.Debug().Int("themes", len(m.names)).Stringer("depth", m.depth).Msg("starting theme browser")

	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

const (
	minWidth  = 48
	minHeight = 12
)

// depthCycle is the order the d key steps through.
var depthCycle = []color.Depth{color.Depth24, color.Depth256, color.Depth16, color.DepthMono}

type model struct {
	registry *theme.Registry
	names    []string
	selected int
	depth    color.Depth
	width    int
	height   int
}

func newModel(cfg Config) model {
	registry := cfg.Registry
	if registry == nil {
		registry = theme.Default
	}

	m := model{
		registry: registry,
		names:    registry.Names(),
		depth:    cfg.Depth,
	}
	if m.depth == 0 {
		m.depth = color.Depth24
	}
	for i, name := range m.names {
		if name == cfg.Theme {
			m.selected = i
			break
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.names)-1 {
				m.selected++
			}
		case "d":
			m.depth = nextDepth(m.depth)
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return "window too small\n"
	}
	if len(m.names) == 0 {
		return "no themes registered\n"
	}

	name := m.names[m.selected]
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf(" %s (%d/%d) @ %s ", name, m.selected+1, len(m.names), m.depth),
	)
	footer := "j/k: theme  d: depth  q: quit"

	body := m.renderTheme(name)

	return header + "\n\n" + body + "\n\n" + footer + "\n"
}

// renderTheme shows the selected theme's palette, or the verbatim
// validation error when generation fails. A malformed theme must not take
// down the browser; the other themes stay selectable.
func (m model) renderTheme(name string) string {
	entries, err := m.registry.Generate(name, m.depth)
	if err != nil {
		return lipgloss.NewStyle().Bold(true).Render("theme error:") + "\n" + err.Error()
	}

	if m.depth == color.Depth24 || m.depth == color.Depth256 {
		return strings.Join(m.clip(SwatchLines(entries)), "\n")
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf(" %-28s %s", entry.Name(), strings.Join(entry[1:], " | ")))
	}
	return strings.Join(m.clip(lines), "\n")
}

// clip trims the body to the available height, leaving room for the
// header and footer.
func (m model) clip(lines []string) []string {
	if m.height == 0 {
		return lines
	}
	max := m.height - 6
	if max > 0 && len(lines) > max {
		return lines[:max]
	}
	return lines
}

func nextDepth(d color.Depth) color.Depth {
	for i, candidate := range depthCycle {
		if candidate == d {
			return depthCycle[(i+1)%len(depthCycle)]
		}
	}
	return depthCycle[0]
}
