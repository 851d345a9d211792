package cmd

import (
	"fmt"

	"github.com/chris-regnier/diary/internal/entry"
	"github.com/chris-regnier/diary/internal/storage"
	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
)

var forceDelete bool

var deleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete a diary entry",
	Long:  "Permanently delete a diary entry. Requires confirmation unless --force is used.",
	Example: `  diary delete diary_2026_01_31_21_15_00.txt
  diary delete diary_2026_01_31_21_15_00.txt --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		if !forceDelete {
			content, err := d.ReadEntry(name)
			if err != nil {
				return classify(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry: %s\n", name)
			if ts, err := d.ExtractTimestamp(name); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Written: %s\n", ts.Format("2006-01-02 15:04:05"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preview: %s\n\n", entry.Entry{Content: content}.Preview(60))

			confirmed, err := ui.Confirm("Delete this entry? This cannot be undone.", false, theme)
			if err != nil {
				return withCode(exitFailure, err)
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}

		deleted, err := d.DeleteEntry(name)
		if err != nil {
			return classify(err)
		}

		if jsonOutput {
			return ui.FormatJSON(cmd.OutOrStdout(), ui.DeleteResult{Filename: name, Deleted: deleted})
		}
		if !deleted {
			return withCode(exitUser, fmt.Errorf("%w: %s", storage.ErrNotFound, name))
		}
		ui.FormatEntryDeleted(cmd.OutOrStdout(), name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
