// Package cli implements the tint command line interface.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/config"
	"github.com/opencode-ai/tint/internal/logging"
	"github.com/opencode-ai/tint/internal/theme"
)

var (
	flagConfig   string
	flagThemeDir string
	flagLogLevel string

	settings config.Settings
	logger   zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tint",
	Short: "Terminal theme engine",
	Long:  "Tint resolves declarative color themes into renderer palettes for any terminal color depth.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagThemeDir, "theme-dir", "", "directory of user theme files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// setup loads configuration, builds the logger and registers user themes.
// Theme load failures are fatal here rather than at first use so every
// subcommand sees the same catalogue.
func setup() error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	settings = loaded

	if flagThemeDir != "" {
		settings.ThemeDir = flagThemeDir
	}
	if flagLogLevel != "" {
		settings.LogLevel = flagLogLevel
	}

	logger = logging.Default(settings.LogLevel)

	if settings.ThemeDir != "" {
		logger.Debug().Str("dir", settings.ThemeDir).Msg("loading user themes")
		if err := theme.LoadThemesFromDir(theme.Default, settings.ThemeDir); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
