package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chris-regnier/diary/internal/entry"
)

const timeLayout = "2006-01-02 15:04:05"

// FormatJSON writes any value as indented JSON.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatEntrySaved formats a save confirmation.
func FormatEntrySaved(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Entry saved: %s\n", e.Filename())
}

// FormatEntryUpdated formats an edit confirmation.
func FormatEntryUpdated(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Entry updated: %s\n", e.Filename())
}

// FormatEntryDeleted formats a deletion confirmation.
func FormatEntryDeleted(w io.Writer, filename string) {
	fmt.Fprintf(w, "Deleted entry %s.\n", filename)
}

// FormatEntryFull prints an entry with its header and footer lines.
func FormatEntryFull(w io.Writer, filename, body string) {
	fmt.Fprintf(w, "--- Entry: %s ---\n", filename)
	fmt.Fprintln(w, strings.TrimRight(body, "\n"))
	fmt.Fprintln(w, "--- End of Entry ---")
}

// Page is one page of a paginated listing. Number is 1-based.
type Page struct {
	Number int
	Total  int
	Start  int // index of the first item in the full list
	Items  []string
}

// Paginate slices items into the requested page, clamping out-of-range page
// numbers to the nearest valid page.
func Paginate(items []string, page, size int) Page {
	if size < 1 {
		size = 1
	}
	total := (len(items) + size - 1) / size
	if total == 0 {
		return Page{Number: 1, Total: 1, Items: []string{}}
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	return Page{Number: page, Total: total, Start: start, Items: items[start:end]}
}

// FormatEntryPage prints a page of entry filenames with their 1-based
// position in the full listing.
func FormatEntryPage(w io.Writer, p Page) {
	if len(p.Items) == 0 {
		fmt.Fprintln(w, "No diary entries found.")
		return
	}
	fmt.Fprintf(w, "Page %d of %d\n---\n", p.Number, p.Total)
	for i, name := range p.Items {
		fmt.Fprintf(w, "%d. %s\n", p.Start+i+1, name)
	}
}

// FormatSearchResults prints numbered search hits.
func FormatSearchResults(w io.Writer, keyword string, results []entry.Entry) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No entries found containing: %s\n", keyword)
		return
	}
	fmt.Fprintf(w, "Found %d entries:\n", len(results))
	for i, e := range results {
		fmt.Fprintf(w, "%d. %s\n", i+1, e)
	}
}

// Stats is the statistics view of a diary.
type Stats struct {
	TotalEntries     int      `json:"total_entries"`
	EntriesDirectory string   `json:"entries_directory"`
	BackupDirectory  string   `json:"backup_directory"`
	AutoBackup       bool     `json:"auto_backup"`
	WrittenToday     bool     `json:"written_today"`
	Streak           int      `json:"streak_days"`
	RecentSearches   []string `json:"recent_searches"`
	Backups          []string `json:"backups"`
}

// FormatStats prints diary statistics.
func FormatStats(w io.Writer, s Stats) {
	fmt.Fprintf(w, "Total entries: %d\n", s.TotalEntries)
	fmt.Fprintf(w, "Entries directory: %s\n", s.EntriesDirectory)
	fmt.Fprintf(w, "Backup directory: %s\n", s.BackupDirectory)
	fmt.Fprintf(w, "Auto-backup: %s\n", onOff(s.AutoBackup))
	fmt.Fprintf(w, "Backups: %d\n", len(s.Backups))
	if s.WrittenToday {
		fmt.Fprintf(w, "Streak: %d day(s), written today\n", s.Streak)
	} else {
		fmt.Fprintln(w, "Streak: not written today")
	}
	fmt.Fprintf(w, "Recent searches: [%s]\n", strings.Join(s.RecentSearches, ", "))
}

// FormatRecentSearches prints recent search terms as a bullet list.
func FormatRecentSearches(w io.Writer, terms []string) {
	if len(terms) == 0 {
		fmt.Fprintln(w, "No recent searches.")
		return
	}
	for _, t := range terms {
		fmt.Fprintf(w, "- %s\n", t)
	}
}

func onOff(b bool) string {
	if b {
		return "ENABLED"
	}
	return "DISABLED"
}

// EntrySummary is the JSON form of an entry in list and search output.
type EntrySummary struct {
	Filename  string    `json:"filename"`
	Timestamp time.Time `json:"timestamp"`
	Preview   string    `json:"preview,omitempty"`
}

// EntryDetail is the JSON form of a single entry.
type EntryDetail struct {
	Filename  string    `json:"filename"`
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`
}

// ToSummaries converts search results for JSON output.
func ToSummaries(entries []entry.Entry) []EntrySummary {
	out := make([]EntrySummary, len(entries))
	for i, e := range entries {
		out[i] = EntrySummary{
			Filename:  e.Filename(),
			Timestamp: e.Timestamp,
			Preview:   e.Preview(60),
		}
	}
	return out
}

// DeleteResult is the JSON form of delete output.
type DeleteResult struct {
	Filename string `json:"filename"`
	Deleted  bool   `json:"deleted"`
}

// BackupResult is the JSON form of backup output.
type BackupResult struct {
	Path    string `json:"path"`
	Created string `json:"created"`
}

// NewBackupResult stamps a backup path with the time it was reported.
func NewBackupResult(path string, at time.Time) BackupResult {
	return BackupResult{Path: path, Created: at.Format(timeLayout)}
}
