// Package cli provides the theme preview command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/color"
	"github.com/opencode-ai/tint/internal/theme"
	"github.com/opencode-ai/tint/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <theme>",
	Short: "Render theme swatches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := theme.Generate(args[0], color.Depth24)
		if err != nil {
			return err
		}

		for _, line := range tui.SwatchLines(entries) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}
