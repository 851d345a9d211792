package cmd

import (
	"time"

	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show diary statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := d.CountEntries()
		if err != nil {
			return classify(err)
		}
		backups, err := d.ListBackups()
		if err != nil {
			return classify(err)
		}
		today, streak, err := d.Streak(time.Now())
		if err != nil {
			return classify(err)
		}
		if backups == nil {
			backups = []string{}
		}

		s := ui.Stats{
			TotalEntries:     count,
			EntriesDirectory: d.EntriesDirectory(),
			BackupDirectory:  d.BackupDirectory(),
			AutoBackup:       d.AutoBackup(),
			WrittenToday:     today,
			Streak:           streak,
			RecentSearches:   d.RecentSearches(),
			Backups:          backups,
		}
		if jsonOutput {
			return ui.FormatJSON(cmd.OutOrStdout(), s)
		}
		ui.FormatStats(cmd.OutOrStdout(), s)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
