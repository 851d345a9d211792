package entry

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	filenamePrefix = "diary_"
	filenameSuffix = ".txt"
	filenameLayout = "2006_01_02_15_04_05"
	displayLayout  = "2006-01-02 15:04:05"

	stringPreviewLen = 50
)

// ErrMalformedIdentifier is returned when a filename does not decode to a timestamp.
var ErrMalformedIdentifier = errors.New("malformed entry identifier")

var filenamePattern = regexp.MustCompile(`^diary_\d{4}_\d{2}_\d{2}_\d{2}_\d{2}_\d{2}\.txt$`)

// Entry represents a single diary entry. The filename is derived from the
// timestamp and is never stored separately.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`
}

// New creates an entry stamped with the current time.
func New(content string) Entry {
	return At(time.Now(), content)
}

// At creates an entry for an explicit timestamp, truncated to the second.
func At(ts time.Time, content string) Entry {
	return Entry{Timestamp: ts.Truncate(time.Second), Content: content}
}

// Filename returns the on-disk name of the entry.
func (e Entry) Filename() string {
	return FilenameFor(e.Timestamp)
}

// FormattedTimestamp returns the local wall-clock timestamp in display form.
func (e Entry) FormattedTimestamp() string {
	return e.Timestamp.In(time.Local).Format(displayLayout)
}

// Equal reports whether two entries share timestamp (to the second) and content.
func (e Entry) Equal(other Entry) bool {
	return e.Timestamp.Truncate(time.Second).Equal(other.Timestamp.Truncate(time.Second)) &&
		e.Content == other.Content
}

// Preview returns a truncated single-line preview of the entry content.
func (e Entry) Preview(maxLen int) string {
	content := strings.ReplaceAll(strings.TrimSpace(e.Content), "\n", " ")
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// String renders the entry as "[timestamp] text", cutting text longer than
// 50 characters to its first 50 followed by "...".
func (e Entry) String() string {
	text := []rune(strings.ReplaceAll(strings.TrimSpace(e.Content), "\n", " "))
	if len(text) > stringPreviewLen {
		text = append(text[:stringPreviewLen], []rune("...")...)
	}
	return fmt.Sprintf("[%s] %s", e.FormattedTimestamp(), string(text))
}

// FilenameFor encodes a timestamp as diary_YYYY_MM_DD_HH_MM_SS.txt using the
// local wall clock, whatever zone ts carries. Fixed-width fields keep string
// order equal to chronological order.
func FilenameFor(ts time.Time) string {
	return filenamePrefix + ts.In(time.Local).Format(filenameLayout) + filenameSuffix
}

// IsEntryFilename reports whether name has the shape of an entry filename.
// It does not range-check the fields; use TimestampFromFilename for that.
func IsEntryFilename(name string) bool {
	return filenamePattern.MatchString(name)
}

// TimestampFromFilename decodes a filename produced by FilenameFor.
// The result is in the local time zone, matching how FilenameFor formats.
func TimestampFromFilename(name string) (time.Time, error) {
	if !IsEntryFilename(name) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedIdentifier, name)
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(name, filenamePrefix), filenameSuffix)
	ts, err := time.ParseInLocation(filenameLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedIdentifier, name, err)
	}
	return ts, nil
}
