package cmd

import (
	"fmt"
	"strings"

	"github.com/chris-regnier/diary/internal/editor"
	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <filename> [-]",
	Short: "Edit a diary entry",
	Long: `Replace the content of an existing entry. The entry keeps its timestamp.

By default the entry is opened in your editor. Pass "-" to read the new
content from stdin instead.`,
	Example: `  diary edit diary_2026_01_31_21_15_00.txt
  echo "rewritten" | diary edit diary_2026_01_31_21_15_00.txt -`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		current, err := d.ReadEntry(name)
		if err != nil {
			return classify(err)
		}

		var content string
		if len(args) == 2 && args[1] == "-" {
			content, err = readInput(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}
		} else {
			var changed bool
			content, changed, err = editor.Edit(editor.ResolveEditor(appOptions.Editor), current)
			if err != nil {
				return withCode(exitEditor, err)
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "No changes detected for entry %s.\n", name)
				return nil
			}
		}

		if strings.TrimSpace(content) == "" {
			return withCode(exitUser, fmt.Errorf("entry content must not be empty"))
		}

		updated, err := d.EditEntry(name, content)
		if err != nil {
			return classify(err)
		}
		if jsonOutput {
			return ui.FormatJSON(cmd.OutOrStdout(), ui.EntryDetail{
				Filename:  updated.Filename(),
				Timestamp: updated.Timestamp,
				Content:   updated.Content,
			})
		}
		ui.FormatEntryUpdated(cmd.OutOrStdout(), updated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
