package cmd

import (
	"fmt"
	"strings"

	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword...>",
	Short: "Search diary entries",
	Long:  "Find entries containing the keyword, ignoring case. Results are newest first.",
	Example: `  diary search apple
  diary search "long walk" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyword := strings.TrimSpace(strings.Join(args, " "))
		if keyword == "" {
			return withCode(exitUser, fmt.Errorf("search keyword cannot be empty"))
		}

		results, err := d.SearchEntries(keyword)
		if err != nil {
			return classify(err)
		}

		if jsonOutput {
			return ui.FormatJSON(cmd.OutOrStdout(), ui.ToSummaries(results))
		}
		ui.FormatSearchResults(cmd.OutOrStdout(), keyword, results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
