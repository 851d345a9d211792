package cmd

import (
	"bytes"
	"fmt"

	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
)

var (
	showContentOnly bool
	showRender      bool
)

var showCmd = &cobra.Command{
	Use:   "show <filename>",
	Short: "Show a diary entry",
	Long:  "Display the full content of a diary entry.",
	Example: `  diary show diary_2026_01_31_21_15_00.txt
  diary show diary_2026_01_31_21_15_00.txt --render
  diary show diary_2026_01_31_21_15_00.txt --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		content, err := d.ReadEntry(name)
		if err != nil {
			return classify(err)
		}

		if showContentOnly {
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		}

		if jsonOutput {
			detail := ui.EntryDetail{Filename: name, Content: content}
			if ts, err := d.ExtractTimestamp(name); err == nil {
				detail.Timestamp = ts
			}
			return ui.FormatJSON(cmd.OutOrStdout(), detail)
		}

		body := content
		if showRender {
			body = ui.RenderMarkdown(content, 80, theme.MarkdownStyle)
		}
		var buf bytes.Buffer
		ui.FormatEntryFull(&buf, name, body)
		return ui.OutputOrPage(cmd.OutOrStdout(), buf.String(), theme)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showContentOnly, "content-only", false, "print just the entry content")
	showCmd.Flags().BoolVar(&showRender, "render", false, "render the entry as markdown")
	rootCmd.AddCommand(showCmd)
}
