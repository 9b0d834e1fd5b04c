package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/tint/internal/color"
)

// themeFile is the on-disk theme format. Colors, styles and token styles
// are lists rather than mappings so that declaration order survives
// decoding; the resolver and the aggregated color report both depend on
// that order.
type themeFile struct {
	Name   string     `yaml:"name"`
	Colors []colorDef `yaml:"colors"`
	Styles []styleDef `yaml:"styles"`
	Meta   *metaDef   `yaml:"meta,omitempty"`
}

type colorDef struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type styleDef struct {
	Name string `yaml:"name"`
	Fg   string `yaml:"fg"`
	Bg   string `yaml:"bg"`
}

type metaDef struct {
	Pygments *pygmentsDef `yaml:"pygments"`
}

type pygmentsDef struct {
	Styles     []tokenStyleDef   `yaml:"styles"`
	Background string            `yaml:"background"`
	Overrides  map[string]string `yaml:"overrides"`
}

type tokenStyleDef struct {
	Token string `yaml:"token"`
	Style string `yaml:"style"`
}

// LoadTheme reads a single theme file from disk.
func LoadTheme(path string) (string, *Theme, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil, fmt.Errorf("theme path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	name, t, err := parseTheme(data)
	if err != nil {
		return "", nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	t.Source = path
	return name, t, nil
}

// LoadThemesFromDir loads every *.yaml/*.yml theme in dir and registers it
// in reg, after the builtins. A missing directory is not an error. Files
// register in name order so the catalogue is reproducible.
func LoadThemesFromDir(reg *Registry, dir string) error {
	if strings.TrimSpace(dir) == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		themeName, t, err := LoadTheme(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		reg.Register(themeName, t)
	}
	return nil
}

func parseTheme(data []byte) (string, *Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", nil, err
	}

	file.Name = strings.TrimSpace(file.Name)
	if file.Name == "" {
		return "", nil, fmt.Errorf("theme name is required")
	}

	t := &Theme{}

	if file.Colors != nil {
		entries := make([]color.NamedColor, 0, len(file.Colors))
		for _, def := range file.Colors {
			c, err := color.Parse(def.Value)
			if err != nil {
				return "", nil, fmt.Errorf("color %s: %w", def.Name, err)
			}
			entries = append(entries, color.NamedColor{Name: def.Name, Color: c})
		}
		t.Colors = color.NewPalette(entries...)
	}

	if file.Styles != nil {
		entries := make([]NamedStyle, 0, len(file.Styles))
		for _, def := range file.Styles {
			entries = append(entries, NamedStyle{
				Name:  def.Name,
				Style: Style{Fg: def.Fg, Bg: def.Bg},
			})
		}
		t.Styles = NewStyleTable(entries...)
	}

	if file.Meta != nil {
		t.Meta = &Meta{}
		if file.Meta.Pygments != nil {
			p := &Pygments{
				Background: file.Meta.Pygments.Background,
				Overrides:  file.Meta.Pygments.Overrides,
			}
			if file.Meta.Pygments.Styles != nil {
				p.Styles = make([]TokenStyle, 0, len(file.Meta.Pygments.Styles))
				for _, def := range file.Meta.Pygments.Styles {
					p.Styles = append(p.Styles, TokenStyle{Token: def.Token, Style: def.Style})
				}
			}
			t.Meta.Pygments = p
		}
	}

	return file.Name, t, nil
}
