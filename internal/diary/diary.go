// Package diary ties configuration, entry storage, search and backup
// together into the operations the command layer uses.
package diary

import (
	"fmt"
	"strconv"
	"time"

	"github.com/chris-regnier/diary/internal/backup"
	"github.com/chris-regnier/diary/internal/config"
	"github.com/chris-regnier/diary/internal/entry"
	"github.com/chris-regnier/diary/internal/search"
	"github.com/chris-regnier/diary/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// AutoBackupEvery is the entry count step at which auto-backup fires.
const AutoBackupEvery = 10

// Diary is a single-session handle over one diary. It is not safe for
// concurrent use.
type Diary struct {
	fs           afero.Fs
	snapshotPath string
	cfg          *config.Config
	store        *storage.Store
	search       *search.Engine
	backup       *backup.Engine
	backupOpts   []backup.Option
	log          zerolog.Logger
}

// Option configures a Diary.
type Option func(*Diary)

// WithBackupOptions passes options through to the backup engine.
func WithBackupOptions(opts ...backup.Option) Option {
	return func(d *Diary) { d.backupOpts = append(d.backupOpts, opts...) }
}

// Open loads the preference snapshot (falling back to defaults) and opens
// the entry store it points at. Failing to create the directories is fatal.
func Open(afs afero.Fs, snapshotPath string, log zerolog.Logger, opts ...Option) (*Diary, error) {
	d := &Diary{
		fs:           afs,
		snapshotPath: snapshotPath,
		log:          log,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.cfg = config.Load(afs, snapshotPath, log)

	if err := d.bind(d.cfg.EntriesPath, d.cfg.BackupPath); err != nil {
		return nil, err
	}
	return d, nil
}

// bind opens a store on the given directories and swaps it in only on success.
func (d *Diary) bind(entriesDir, backupDir string) error {
	st, err := storage.New(d.fs, entriesDir, backupDir)
	if err != nil {
		return err
	}
	d.store = st
	d.search = search.New(st, d.log)
	d.backup = backup.New(d.fs, st, d.snapshotPath, d.log, d.backupOpts...)
	return nil
}

// SaveEntry persists e and, when auto-backup is on and the entry count has
// reached a multiple of AutoBackupEvery, creates a backup. A failed backup is
// logged and does not fail the save.
func (d *Diary) SaveEntry(e entry.Entry) error {
	if err := d.store.SaveEntry(e); err != nil {
		return err
	}
	d.checkAutoBackup()
	return nil
}

func (d *Diary) checkAutoBackup() {
	if !d.cfg.AutoBackup() {
		return
	}
	n, err := d.store.CountEntries()
	if err != nil {
		d.log.Warn().Err(err).Msg("auto-backup skipped: could not count entries")
		return
	}
	if n%AutoBackupEvery != 0 {
		return
	}
	d.log.Info().Int("entries", n).Msg("auto-backup triggered")
	if _, err := d.backup.CreateBackup(); err != nil {
		d.log.Warn().Err(err).Msg("auto-backup failed")
	}
}

// ReadEntry returns the content of an entry file.
func (d *Diary) ReadEntry(filename string) (string, error) {
	return d.store.ReadEntry(filename)
}

// ListEntries returns entry filenames, newest first.
func (d *Diary) ListEntries() ([]string, error) {
	return d.store.ListEntries()
}

// SearchEntries records keyword as a recent search and returns matches.
func (d *Diary) SearchEntries(keyword string) ([]entry.Entry, error) {
	d.cfg.AddRecentSearch(keyword)
	return d.search.Search(keyword)
}

// DeleteEntry removes an entry, reporting whether it existed.
func (d *Diary) DeleteEntry(filename string) (bool, error) {
	return d.store.DeleteEntry(filename)
}

// EditEntry replaces the content of an existing entry. The timestamp comes
// from the filename; if the re-encoded name differs the old file is removed.
func (d *Diary) EditEntry(filename, content string) (entry.Entry, error) {
	if _, err := d.store.ReadEntry(filename); err != nil {
		return entry.Entry{}, err
	}
	ts, err := entry.TimestampFromFilename(filename)
	if err != nil {
		return entry.Entry{}, err
	}
	e := entry.At(ts, content)
	if err := d.SaveEntry(e); err != nil {
		return entry.Entry{}, err
	}
	if e.Filename() != filename {
		if _, err := d.store.DeleteEntry(filename); err != nil {
			return e, fmt.Errorf("removing superseded %s: %w", filename, err)
		}
	}
	return e, nil
}

// CreateBackup archives every entry and the config snapshot.
func (d *Diary) CreateBackup() (string, error) {
	return d.backup.CreateBackup()
}

// ListBackups returns existing backup archive names, newest first.
func (d *Diary) ListBackups() ([]string, error) {
	return d.backup.ListBackups()
}

// CountEntries returns the number of stored entries.
func (d *Diary) CountEntries() (int, error) {
	return d.store.CountEntries()
}

// ExtractTimestamp decodes the timestamp carried by an entry filename.
func (d *Diary) ExtractTimestamp(filename string) (time.Time, error) {
	return entry.TimestampFromFilename(filename)
}

// GetSetting returns a raw preference value.
func (d *Diary) GetSetting(key string) string {
	return d.cfg.GetSetting(key)
}

// SetSetting stores a raw preference value and persists the snapshot.
// A failed save is logged; the in-memory value is kept.
func (d *Diary) SetSetting(key, value string) {
	d.cfg.SetSetting(key, value)
	d.SaveConfiguration()
}

// ToggleAutoBackup flips autoBackup and returns the new state.
func (d *Diary) ToggleAutoBackup() bool {
	next := !d.cfg.AutoBackup()
	d.SetSetting(config.SettingAutoBackup, strconv.FormatBool(next))
	return next
}

// AutoBackup reports whether auto-backup is enabled.
func (d *Diary) AutoBackup() bool {
	return d.cfg.AutoBackup()
}

// PageSize returns the configured number of entries per page.
func (d *Diary) PageSize() (int, error) {
	return d.cfg.PageSize()
}

// AddRecentSearch records a search term without running a search.
func (d *Diary) AddRecentSearch(term string) {
	d.cfg.AddRecentSearch(term)
}

// RecentSearches returns recent search terms, most recent first.
func (d *Diary) RecentSearches() []string {
	out := make([]string, len(d.cfg.RecentSearches))
	copy(out, d.cfg.RecentSearches)
	return out
}

// EntriesDirectory returns the active entries directory.
func (d *Diary) EntriesDirectory() string {
	return d.store.EntriesDir()
}

// BackupDirectory returns the active backup directory.
func (d *Diary) BackupDirectory() string {
	return d.store.BackupDir()
}

// SnapshotPath returns where preferences are persisted.
func (d *Diary) SnapshotPath() string {
	return d.snapshotPath
}

// SetEntriesDirectory moves the diary to a new entries directory.
func (d *Diary) SetEntriesDirectory(dir string) error {
	return d.relocate(dir, d.cfg.BackupPath)
}

// SetBackupDirectory moves backups to a new directory.
func (d *Diary) SetBackupDirectory(dir string) error {
	return d.relocate(d.cfg.EntriesPath, dir)
}

// relocate changes both the persisted config and the active store, or
// neither: the new directories are opened first, then the config is saved,
// and only then is the new store bound.
func (d *Diary) relocate(entriesDir, backupDir string) error {
	if _, err := storage.New(d.fs, entriesDir, backupDir); err != nil {
		return err
	}

	prev := d.cfg.Clone()
	d.cfg.EntriesPath = entriesDir
	d.cfg.BackupPath = backupDir
	if err := config.Save(d.fs, d.snapshotPath, d.cfg); err != nil {
		d.cfg = prev
		return fmt.Errorf("persisting directory change: %w", err)
	}

	if err := d.bind(entriesDir, backupDir); err != nil {
		// The directories were just created; only a concurrent removal gets here.
		d.cfg = prev
		if serr := config.Save(d.fs, d.snapshotPath, d.cfg); serr != nil {
			d.log.Warn().Err(serr).Msg("could not restore configuration")
		}
		return err
	}
	d.log.Info().Str("entries", entriesDir).Str("backups", backupDir).Msg("storage relocated")
	return nil
}

// SaveConfiguration persists preferences. Failure is logged, never returned.
func (d *Diary) SaveConfiguration() {
	if err := config.Save(d.fs, d.snapshotPath, d.cfg); err != nil {
		d.log.Warn().Err(err).Msg("could not save configuration")
	}
}

// Close performs the final best-effort configuration save.
func (d *Diary) Close() {
	d.SaveConfiguration()
}
