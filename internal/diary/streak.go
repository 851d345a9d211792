package diary

import (
	"time"

	"github.com/chris-regnier/diary/internal/entry"
)

const dayLayout = "2006-01-02"

// Streak reports whether an entry was written on now's calendar day and how
// many consecutive days, counting back from that day, have at least one entry.
// Filenames that do not decode are ignored.
func (d *Diary) Streak(now time.Time) (writtenToday bool, streak int, err error) {
	names, err := d.store.ListEntries()
	if err != nil {
		return false, 0, err
	}

	days := make(map[string]bool, len(names))
	for _, name := range names {
		ts, err := entry.TimestampFromFilename(name)
		if err != nil {
			continue
		}
		days[ts.Format(dayLayout)] = true
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	writtenToday = days[today.Format(dayLayout)]

	for check := today; days[check.Format(dayLayout)]; check = check.AddDate(0, 0, -1) {
		streak++
	}
	return writtenToday, streak, nil
}
