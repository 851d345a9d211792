// Package search scans stored entries for a keyword.
package search

import (
	"strings"

	"github.com/chris-regnier/diary/internal/entry"
	"github.com/rs/zerolog"
)

// Source is the part of the entry store the engine reads from.
type Source interface {
	ListEntries() ([]string, error)
	ReadEntry(filename string) (string, error)
}

// Engine performs case-insensitive substring search over every entry.
type Engine struct {
	src Source
	log zerolog.Logger
}

// New returns an engine reading from src.
func New(src Source, log zerolog.Logger) *Engine {
	return &Engine{src: src, log: log.With().Str("component", "search").Logger()}
}

// Search returns matching entries in listing order (newest first). Files that
// cannot be read or decoded are skipped; partial results are returned.
func (e *Engine) Search(keyword string) ([]entry.Entry, error) {
	names, err := e.src.ListEntries()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	results := []entry.Entry{}
	for _, name := range names {
		content, err := e.src.ReadEntry(name)
		if err != nil {
			e.log.Warn().Err(err).Str("file", name).Msg("could not read entry, skipping")
			continue
		}
		if !strings.Contains(strings.ToLower(content), needle) {
			continue
		}
		ts, err := entry.TimestampFromFilename(name)
		if err != nil {
			e.log.Warn().Err(err).Str("file", name).Msg("skipping entry with malformed name")
			continue
		}
		results = append(results, entry.Entry{Timestamp: ts, Content: content})
	}
	return results, nil
}
