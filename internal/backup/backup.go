// Package backup snapshots the diary into zip archives.
package backup

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	archivePrefix = "diary_backup_"
	archiveSuffix = ".zip"
	archiveLayout = "20060102_150405"

	stagingAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	stagingIDLength = 8
)

var archivePattern = regexp.MustCompile(`^diary_backup_\d{8}_\d{6}\.zip$`)

// Source is the part of the entry store a backup reads from.
type Source interface {
	ListEntries() ([]string, error)
	EntryPath(filename string) string
	BackupDir() string
}

// Engine writes backup archives into the store's backup directory.
type Engine struct {
	fs         afero.Fs
	src        Source
	configPath string
	now        func() time.Time
	log        zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used to name archives.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New returns an engine. configPath is the preference snapshot to include;
// it is skipped when the file does not exist.
func New(afs afero.Fs, src Source, configPath string, log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		fs:         afs,
		src:        src,
		configPath: configPath,
		now:        time.Now,
		log:        log.With().Str("component", "backup").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ArchiveName returns the archive filename for a point in time.
func ArchiveName(t time.Time) string {
	return archivePrefix + t.Format(archiveLayout) + archiveSuffix
}

// CreateBackup writes every entry, then the config snapshot if present, into
// a new archive and returns its path. The archive is staged under a hidden
// name and renamed into place only once complete.
func (e *Engine) CreateBackup() (string, error) {
	names, err := e.src.ListEntries()
	if err != nil {
		return "", fmt.Errorf("listing entries for backup: %w", err)
	}

	dir := e.src.BackupDir()
	if err := e.fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	final := filepath.Join(dir, ArchiveName(e.now()))
	suffix, err := gonanoid.Generate(stagingAlphabet, stagingIDLength)
	if err != nil {
		return "", fmt.Errorf("generating staging name: %w", err)
	}
	staging := filepath.Join(dir, "."+filepath.Base(final)+"-"+suffix+".partial")

	if err := e.writeArchive(staging, names); err != nil {
		e.fs.Remove(staging)
		return "", err
	}
	if err := e.fs.Rename(staging, final); err != nil {
		e.fs.Remove(staging)
		return "", fmt.Errorf("publishing backup: %w", err)
	}

	e.log.Info().Str("path", final).Int("entries", len(names)).Msg("backup created")
	return final, nil
}

func (e *Engine) writeArchive(path string, names []string) error {
	f, err := e.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("creating staging archive: %w", err)
	}

	zw := zip.NewWriter(f)
	for _, name := range names {
		if err := e.addMember(zw, e.src.EntryPath(name), name); err != nil {
			zw.Close()
			f.Close()
			return err
		}
	}

	if _, err := e.fs.Stat(e.configPath); err == nil {
		if err := e.addMember(zw, e.configPath, filepath.Base(e.configPath)); err != nil {
			zw.Close()
			f.Close()
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		zw.Close()
		f.Close()
		return fmt.Errorf("checking config snapshot: %w", err)
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finishing archive: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}

func (e *Engine) addMember(zw *zip.Writer, path, member string) error {
	src, err := e.fs.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", member, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", member, err)
	}

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     member,
		Method:   zip.Deflate,
		Modified: info.ModTime(),
	})
	if err != nil {
		return fmt.Errorf("adding %s: %w", member, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("copying %s: %w", member, err)
	}
	return nil
}

// ListBackups returns archive names in the backup directory, newest first.
func (e *Engine) ListBackups() ([]string, error) {
	infos, err := afero.ReadDir(e.fs, e.src.BackupDir())
	if err != nil {
		return nil, fmt.Errorf("listing backups: %w", err)
	}
	var names []string
	for _, fi := range infos {
		if !fi.IsDir() && archivePattern.MatchString(fi.Name()) {
			names = append(names, fi.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
