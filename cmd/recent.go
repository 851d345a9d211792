package cmd

import (
	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recent search terms, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		terms := d.RecentSearches()
		if jsonOutput {
			return ui.FormatJSON(cmd.OutOrStdout(), terms)
		}
		ui.FormatRecentSearches(cmd.OutOrStdout(), terms)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
}
