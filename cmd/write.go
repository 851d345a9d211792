package cmd

import (
	"fmt"
	"strings"

	"github.com/chris-regnier/diary/internal/editor"
	"github.com/chris-regnier/diary/internal/entry"
	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:     "write [content...]",
	Aliases: []string{"new"},
	Short:   "Write a new diary entry",
	Long: `Write a new diary entry stamped with the current time.

If content is provided as arguments, it is used directly.
If "-" is provided, content is read from stdin.
If no content is provided, your editor is opened.`,
	Example: `  diary write "Today was great"
  echo "piped content" | diary write -
  diary write`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			content string
			err     error
		)

		switch {
		case len(args) == 1 && args[0] == "-":
			content, err = readInput(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

		case len(args) > 0:
			content = strings.Join(args, " ") + "\n"

		default:
			var changed bool
			content, changed, err = editor.Edit(editor.ResolveEditor(appOptions.Editor), "")
			if err != nil {
				return withCode(exitEditor, err)
			}
			if !changed {
				fmt.Fprintln(cmd.OutOrStdout(), "Entry cancelled - no content provided.")
				return nil
			}
		}

		if strings.TrimSpace(content) == "" {
			return withCode(exitUser, fmt.Errorf("entry content must not be empty"))
		}

		e := entry.New(content)
		if err := d.SaveEntry(e); err != nil {
			return classify(err)
		}

		if jsonOutput {
			return ui.FormatJSON(cmd.OutOrStdout(), ui.EntryDetail{
				Filename:  e.Filename(),
				Timestamp: e.Timestamp,
				Content:   e.Content,
			})
		}
		ui.FormatEntrySaved(cmd.OutOrStdout(), e)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
}
