package cmd

import (
	"fmt"
	"sort"

	"github.com/chris-regnier/diary/internal/config"
	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change diary preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := map[string]string{
			"entries_path": d.EntriesDirectory(),
			"backup_path":  d.BackupDirectory(),
			"snapshot":     d.SnapshotPath(),
		}
		for _, key := range settingKeys {
			view[key] = d.GetSetting(key)
		}
		if jsonOutput {
			return ui.FormatJSON(cmd.OutOrStdout(), view)
		}
		keys := make([]string, 0, len(view))
		for k := range view {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, view[k])
		}
		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting (empty if unset)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), d.GetSetting(args[0]))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting and persist the preference snapshot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d.SetSetting(args[0], args[1])
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
		return nil
	},
}

var toggleAutoBackupCmd = &cobra.Command{
	Use:   "toggle-autobackup",
	Short: "Flip the autoBackup setting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled := d.ToggleAutoBackup()
		state := "DISABLED"
		if enabled {
			state = "ENABLED"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Auto-backup %s\n", state)
		return nil
	},
}

var entriesDirCmd = &cobra.Command{
	Use:   "entries-dir <path>",
	Short: "Point the diary at a different entries directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := d.SetEntriesDirectory(args[0]); err != nil {
			return withCode(exitFailure, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Entries directory set to %s\n", d.EntriesDirectory())
		return nil
	},
}

var backupDirCmd = &cobra.Command{
	Use:   "backup-dir <path>",
	Short: "Point the diary at a different backup directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := d.SetBackupDirectory(args[0]); err != nil {
			return withCode(exitFailure, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backup directory set to %s\n", d.BackupDirectory())
		return nil
	},
}

var settingKeys = []string{config.SettingAutoBackup, config.SettingDefaultEncoding, config.SettingMaxEntriesPage}

func init() {
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd, toggleAutoBackupCmd, entriesDirCmd, backupDirCmd)
	rootCmd.AddCommand(settingsCmd)
}
