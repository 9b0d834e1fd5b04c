// Package config loads tint settings from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/tint/internal/color"
)

// Settings holds user-facing configuration.
type Settings struct {
	// Theme is the name of the theme to generate by default.
	Theme string `mapstructure:"theme"`

	// ColorDepth forces a depth (1, 16, 256 or 16777216); 0 means
	// auto-detect from the terminal.
	ColorDepth int `mapstructure:"color_depth"`

	// ThemeDir is an optional directory of user theme files.
	ThemeDir string `mapstructure:"theme_dir"`

	// LogLevel is a zerolog level name.
	LogLevel string `mapstructure:"log_level"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Theme:      "tint_dark",
		ColorDepth: 0,
		LogLevel:   "warn",
	}
}

// Load reads settings from path, or from the standard location when path
// is empty, applying TINT_* environment overrides on top. A missing config
// file yields the defaults.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults := Defaults()
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("color_depth", defaults.ColorDepth)
	v.SetDefault("theme_dir", defaults.ThemeDir)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix("TINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return Settings{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks settings values that have a closed domain.
func (s Settings) Validate() error {
	if s.ColorDepth != 0 {
		if _, err := color.ParseDepth(s.ColorDepth); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Depth resolves the configured depth, falling back to detect when the
// depth is set to auto.
func (s Settings) Depth(detect func() color.Depth) color.Depth {
	if s.ColorDepth != 0 {
		d, err := color.ParseDepth(s.ColorDepth)
		if err == nil {
			return d
		}
	}
	return detect()
}

func defaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "tint")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "tint")
}
