// Package cli provides the palette generation command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/color"
	"github.com/opencode-ai/tint/internal/termcap"
	"github.com/opencode-ai/tint/internal/theme"
)

var generateDepth int

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&generateDepth, "depth", 0, "color depth (1, 16, 256 or 16777216; default: detect)")
}

var generateCmd = &cobra.Command{
	Use:   "generate <theme>",
	Short: "Resolve a theme into renderer entries",
	Long:  "Resolve the named theme into the ordered renderer entries for a color depth. Validation errors are printed verbatim so the failing field can be located in the theme definition.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		depth, err := resolveDepth(generateDepth)
		if err != nil {
			return err
		}

		entries, err := theme.Generate(args[0], depth)
		if err != nil {
			return err
		}

		logger.Debug().Str("theme", args[0]).Stringer("depth", depth).Int("entries", len(entries)).Msg("generated palette")

		fmt.Fprintf(cmd.OutOrStdout(), "# %s @ %s\n", args[0], depth)
		for _, entry := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), formatEntry(entry))
		}
		return nil
	},
}

// resolveDepth picks the depth from the flag, the configuration, or
// terminal detection, in that order.
func resolveDepth(flagValue int) (color.Depth, error) {
	if flagValue != 0 {
		return color.ParseDepth(flagValue)
	}
	return settings.Depth(termcap.Detect), nil
}
