package storage_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/chris-regnier/diary/internal/entry"
	"github.com/chris-regnier/diary/internal/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFactory func(t *testing.T) *storage.Store

func memFactory(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.New(afero.NewMemMapFs(), "entries", "backups")
	require.NoError(t, err)
	return s
}

func osFactory(t *testing.T) *storage.Store {
	t.Helper()
	dir := t.TempDir()
	s, err := storage.New(afero.NewOsFs(), filepath.Join(dir, "entries"), filepath.Join(dir, "backups"))
	require.NoError(t, err)
	return s
}

func at(sec int) time.Time {
	return time.Date(2024, time.April, 1, 12, 0, sec, 0, time.Local)
}

func TestStore(t *testing.T) {
	runStoreTests(t, "memfs", memFactory)
	runStoreTests(t, "osfs", osFactory)
}

func runStoreTests(t *testing.T, name string, factory storeFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Save and Read", func(t *testing.T) {
			s := factory(t)
			e := entry.At(at(1), "Hello diary\n")
			require.NoError(t, s.SaveEntry(e))

			got, err := s.ReadEntry(e.Filename())
			require.NoError(t, err)
			assert.Equal(t, "Hello diary\n", got)
		})

		t.Run("Save overwrites", func(t *testing.T) {
			s := factory(t)
			require.NoError(t, s.SaveEntry(entry.At(at(1), "first")))
			require.NoError(t, s.SaveEntry(entry.At(at(1), "second")))

			got, err := s.ReadEntry(entry.FilenameFor(at(1)))
			require.NoError(t, err)
			assert.Equal(t, "second", got)

			n, err := s.CountEntries()
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})

		t.Run("Read not found", func(t *testing.T) {
			s := factory(t)
			_, err := s.ReadEntry("diary_2000_01_01_00_00_00.txt")
			assert.True(t, errors.Is(err, storage.ErrNotFound), "got %v", err)
		})

		t.Run("Read outside directory", func(t *testing.T) {
			s := factory(t)
			_, err := s.ReadEntry("../secret.txt")
			assert.True(t, errors.Is(err, storage.ErrNotFound), "got %v", err)
		})

		t.Run("List empty", func(t *testing.T) {
			s := factory(t)
			names, err := s.ListEntries()
			require.NoError(t, err)
			assert.Empty(t, names)
		})

		t.Run("List newest first", func(t *testing.T) {
			s := factory(t)
			for _, sec := range []int{2, 3, 1} {
				require.NoError(t, s.SaveEntry(entry.At(at(sec), "x")))
			}
			names, err := s.ListEntries()
			require.NoError(t, err)
			assert.Equal(t, []string{
				entry.FilenameFor(at(3)),
				entry.FilenameFor(at(2)),
				entry.FilenameFor(at(1)),
			}, names)
		})

		t.Run("List ignores foreign files", func(t *testing.T) {
			s := factory(t)
			require.NoError(t, s.SaveEntry(entry.At(at(1), "x")))
			fs := s.Fs()
			require.NoError(t, afero.WriteFile(fs, s.EntryPath("notes.txt"), []byte("n"), 0644))
			require.NoError(t, afero.WriteFile(fs, s.EntryPath("diary_bad.txt"), []byte("n"), 0644))
			require.NoError(t, fs.MkdirAll(s.EntryPath("diary_2024_01_01_00_00_00.txt"), 0755))

			names, err := s.ListEntries()
			require.NoError(t, err)
			assert.Equal(t, []string{entry.FilenameFor(at(1))}, names)

			n, err := s.CountEntries()
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})

		t.Run("Delete", func(t *testing.T) {
			s := factory(t)
			e := entry.At(at(5), "bye")
			require.NoError(t, s.SaveEntry(e))

			deleted, err := s.DeleteEntry(e.Filename())
			require.NoError(t, err)
			assert.True(t, deleted)

			names, err := s.ListEntries()
			require.NoError(t, err)
			assert.NotContains(t, names, e.Filename())
		})

		t.Run("Delete missing", func(t *testing.T) {
			s := factory(t)
			deleted, err := s.DeleteEntry("diary_2000_01_01_00_00_00.txt")
			require.NoError(t, err)
			assert.False(t, deleted)
		})

		t.Run("New is idempotent", func(t *testing.T) {
			s := factory(t)
			require.NoError(t, s.SaveEntry(entry.At(at(1), "keep")))
			again, err := storage.New(s.Fs(), s.EntriesDir(), s.BackupDir())
			require.NoError(t, err)
			n, err := again.CountEntries()
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	})
}

func TestNewFailure(t *testing.T) {
	_, err := storage.New(afero.NewReadOnlyFs(afero.NewMemMapFs()), "entries", "backups")
	assert.True(t, errors.Is(err, storage.ErrStorage), "got %v", err)
}
