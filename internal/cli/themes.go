// Package cli provides theme catalogue commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/tint/internal/theme"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([][]string, 0)
		for _, name := range theme.AllThemes() {
			t, _ := theme.Default.Lookup(name)
			rows = append(rows, []string{name, t.Source, formatComplete(t.Complete())})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "SOURCE", "COMPLETE"}, rows)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [theme...]",
	Short: "Check theme completeness",
	Long:  "Check that themes define the full required style set, reference only their own colors, and carry complete highlighting metadata.",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = theme.AllThemes()
		}

		failed := false
		for _, name := range names {
			t, ok := theme.Default.Lookup(name)
			if !ok {
				return fmt.Errorf("%w: %s", theme.ErrThemeNotFound, name)
			}

			if t.Complete() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: complete\n", name)
				continue
			}

			failed = true
			fmt.Fprintf(cmd.OutOrStdout(), "%s: incomplete\n", name)
			if missing := t.MissingStyles(); len(missing) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  missing styles: %s\n", strings.Join(missing, ", "))
			}
			if extra := t.ExtraStyles(); len(extra) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  extra styles: %s\n", strings.Join(extra, ", "))
			}
			if err := t.ValidateSchema(); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", err)
			}
		}

		if failed {
			return fmt.Errorf("one or more themes are incomplete")
		}
		return nil
	},
}
