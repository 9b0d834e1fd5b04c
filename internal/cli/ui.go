// Package cli provides the TUI launch command.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/termcap"
	"github.com/opencode-ai/tint/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the theme browser",
	Long:  "Launch the interactive theme browser TUI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !termcap.IsTTY() {
			return errors.New("the theme browser requires an interactive terminal")
		}

		return tui.Run(tui.Config{
			Theme:  settings.Theme,
			Depth:  settings.Depth(termcap.Detect),
			Logger: logger,
		})
	},
}
