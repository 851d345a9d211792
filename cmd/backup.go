package cmd

import (
	"fmt"
	"time"

	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
)

var forceBackup bool

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create a zip backup of all entries",
	Long: `Create a zip archive in the backup directory holding every entry file
and the preference snapshot. Archives are named diary_backup_YYYYMMDD_HHMMSS.zip.`,
	Example: `  diary backup --force
  diary backup list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !forceBackup {
			confirmed, err := ui.Confirm("Create a backup of all entries?", true, theme)
			if err != nil {
				return withCode(exitFailure, err)
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}

		path, err := d.CreateBackup()
		if err != nil {
			return withCode(exitFailure, fmt.Errorf("backup failed: %w", err))
		}

		if jsonOutput {
			return ui.FormatJSON(cmd.OutOrStdout(), ui.NewBackupResult(path, time.Now()))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backup created: %s\n", path)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing backup archives, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := d.ListBackups()
		if err != nil {
			return classify(err)
		}
		if jsonOutput {
			if names == nil {
				names = []string{}
			}
			return ui.FormatJSON(cmd.OutOrStdout(), names)
		}
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No backups found.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	backupCmd.Flags().BoolVar(&forceBackup, "force", false, "skip confirmation prompt")
	backupCmd.AddCommand(backupListCmd)
	rootCmd.AddCommand(backupCmd)
}
