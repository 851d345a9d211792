package cmd

import (
	"bytes"
	"fmt"

	"github.com/chris-regnier/diary/internal/ui"
	"github.com/spf13/cobra"
)

var (
	listPage   int
	listIDOnly bool
	listAll    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List diary entries",
	Long:  "List diary entry files, newest first, one page at a time (maxEntriesPerPage).",
	Example: `  diary list
  diary list --page 2
  diary list --all --id-only
  diary list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := d.ListEntries()
		if err != nil {
			return classify(err)
		}

		if listIDOnly && listAll {
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}

		size := len(names)
		if !listAll {
			size, err = d.PageSize()
			if err != nil {
				return withCode(exitUser, err)
			}
		}
		page := ui.Paginate(names, listPage, size)

		switch {
		case jsonOutput:
			summaries := make([]ui.EntrySummary, 0, len(page.Items))
			for _, name := range page.Items {
				s := ui.EntrySummary{Filename: name}
				if ts, err := d.ExtractTimestamp(name); err == nil {
					s.Timestamp = ts
				}
				summaries = append(summaries, s)
			}
			return ui.FormatJSON(cmd.OutOrStdout(), summaries)
		case listIDOnly:
			for _, name := range page.Items {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}

		var buf bytes.Buffer
		ui.FormatEntryPage(&buf, page)
		return ui.OutputOrPage(cmd.OutOrStdout(), buf.String(), theme)
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number (1-based)")
	listCmd.Flags().BoolVar(&listIDOnly, "id-only", false, "print just filenames, one per line")
	listCmd.Flags().BoolVar(&listAll, "all", false, "list every entry on one page")
	rootCmd.AddCommand(listCmd)
}
