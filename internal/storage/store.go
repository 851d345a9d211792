package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chris-regnier/diary/internal/entry"
	"github.com/chris-regnier/diary/internal/fsutil"
	"github.com/spf13/afero"
)

// Store keeps one plain-text file per entry in the entries directory. The
// directory listing is the index: there is no catalog file.
type Store struct {
	fs         afero.Fs
	entriesDir string // e.g. ./entries
	backupDir  string // e.g. ./backups
}

// New creates a store over the two directories, creating them if needed.
func New(afs afero.Fs, entriesDir, backupDir string) (*Store, error) {
	if err := afs.MkdirAll(entriesDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating entries directory: %v", ErrStorage, err)
	}
	if err := afs.MkdirAll(backupDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating backup directory: %v", ErrStorage, err)
	}
	return &Store{fs: afs, entriesDir: entriesDir, backupDir: backupDir}, nil
}

// Fs returns the filesystem the store operates on.
func (s *Store) Fs() afero.Fs { return s.fs }

// EntriesDir returns the entries directory.
func (s *Store) EntriesDir() string { return s.entriesDir }

// BackupDir returns the backup directory.
func (s *Store) BackupDir() string { return s.backupDir }

// EntryPath returns the full path of an entry file.
func (s *Store) EntryPath(filename string) string {
	return filepath.Join(s.entriesDir, filename)
}

// resolve maps a bare filename into the entries directory. Anything that
// would leave the directory cannot name an entry.
func (s *Store) resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.ContainsAny(filename, `/\`) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
	}
	return s.EntryPath(filename), nil
}

// SaveEntry writes the entry content to its file, replacing any existing
// content. Creating and editing in place are the same operation.
func (s *Store) SaveEntry(e entry.Entry) error {
	if err := fsutil.WriteFileAtomic(s.fs, s.EntryPath(e.Filename()), []byte(e.Content), 0644); err != nil {
		return fmt.Errorf("%w: saving %s: %v", ErrStorage, e.Filename(), err)
	}
	return nil
}

// ReadEntry returns the content of the named entry file.
func (s *Store) ReadEntry(filename string) (string, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return "", err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return "", fmt.Errorf("%w: reading %s: %v", ErrStorage, filename, err)
	}
	return string(data), nil
}

// ListEntries returns entry filenames newest first. Files that do not look
// like entries are ignored.
func (s *Store) ListEntries() ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.entriesDir)
	if err != nil {
		return nil, fmt.Errorf("%w: listing entries: %v", ErrStorage, err)
	}

	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		if fi.IsDir() || !entry.IsEntryFilename(fi.Name()) {
			continue
		}
		names = append(names, fi.Name())
	}

	// Filenames sort like their timestamps; descending is newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// DeleteEntry removes the named entry and reports whether a file was removed.
func (s *Store) DeleteEntry(filename string) (bool, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return false, nil
	}
	if _, err := s.fs.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: checking %s: %v", ErrStorage, filename, err)
	}
	if err := s.fs.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: deleting %s: %v", ErrStorage, filename, err)
	}
	return true, nil
}

// CountEntries returns the number of entry files.
func (s *Store) CountEntries() (int, error) {
	names, err := s.ListEntries()
	if err != nil {
		return 0, err
	}
	return len(names), nil
}
