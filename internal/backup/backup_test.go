package backup

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/chris-regnier/diary/internal/entry"
	"github.com/chris-regnier/diary/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshot = "diary_config.toml"

var fixedNow = time.Date(2025, time.January, 2, 3, 4, 5, 0, time.Local)

func clock() time.Time { return fixedNow }

func newStore(t *testing.T, fs afero.Fs) *storage.Store {
	t.Helper()
	s, err := storage.New(fs, "entries", "backups")
	require.NoError(t, err)
	return s
}

func readArchive(t *testing.T, fs afero.Fs, path string) map[string]string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	members := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		members[f.Name] = string(body)
	}
	return members
}

func TestArchiveName(t *testing.T) {
	assert.Equal(t, "diary_backup_20250102_030405.zip", ArchiveName(fixedNow))
}

func TestCreateBackupComplete(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newStore(t, fs)
	a := entry.At(time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local), "first\nline two\n")
	b := entry.At(time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local), "second \x00 binary-ish")
	require.NoError(t, s.SaveEntry(a))
	require.NoError(t, s.SaveEntry(b))
	cfgBytes := "version = 1\nentries_path = \"entries\"\n"
	require.NoError(t, afero.WriteFile(fs, snapshot, []byte(cfgBytes), 0644))

	path, err := New(fs, s, snapshot, zerolog.Nop(), WithClock(clock)).CreateBackup()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("backups", "diary_backup_20250102_030405.zip"), path)

	members := readArchive(t, fs, path)
	assert.Equal(t, map[string]string{
		a.Filename(): a.Content,
		b.Filename(): b.Content,
		snapshot:     cfgBytes,
	}, members)
}

func TestCreateBackupMemberOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newStore(t, fs)
	for d := 1; d <= 3; d++ {
		require.NoError(t, s.SaveEntry(entry.At(time.Date(2024, 1, d, 0, 0, 0, 0, time.Local), "x")))
	}
	require.NoError(t, afero.WriteFile(fs, snapshot, []byte("version = 1\n"), 0644))

	path, err := New(fs, s, snapshot, zerolog.Nop(), WithClock(clock)).CreateBackup()
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	listed, err := s.ListEntries()
	require.NoError(t, err)
	var got []string
	for _, f := range zr.File {
		got = append(got, f.Name)
	}
	assert.Equal(t, append(listed, snapshot), got)
}

func TestCreateBackupWithoutConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newStore(t, fs)
	require.NoError(t, s.SaveEntry(entry.At(fixedNow, "only")))

	path, err := New(fs, s, snapshot, zerolog.Nop(), WithClock(clock)).CreateBackup()
	require.NoError(t, err)
	members := readArchive(t, fs, path)
	assert.Len(t, members, 1)
	assert.Contains(t, members, entry.FilenameFor(fixedNow))
}

func TestCreateBackupEmptyDiary(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newStore(t, fs)

	path, err := New(fs, s, snapshot, zerolog.Nop(), WithClock(clock)).CreateBackup()
	require.NoError(t, err)
	assert.Empty(t, readArchive(t, fs, path))
}

// vanishingSource lists an entry whose file does not exist, as if it was
// deleted between listing and archiving.
type vanishingSource struct {
	*storage.Store
}

func (v vanishingSource) ListEntries() ([]string, error) {
	names, err := v.Store.ListEntries()
	return append(names, "diary_1999_01_01_00_00_00.txt"), err
}

func TestCreateBackupFailureLeavesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newStore(t, fs)
	require.NoError(t, s.SaveEntry(entry.At(fixedNow, "present")))

	_, err := New(fs, vanishingSource{s}, snapshot, zerolog.Nop(), WithClock(clock)).CreateBackup()
	require.Error(t, err)

	infos, err := afero.ReadDir(fs, "backups")
	require.NoError(t, err)
	assert.Empty(t, infos, "no partial or staged archive may remain")
}

func TestListBackups(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newStore(t, fs)
	now := fixedNow
	engine := New(fs, s, snapshot, zerolog.Nop(), WithClock(func() time.Time { return now }))

	_, err := engine.CreateBackup()
	require.NoError(t, err)
	now = now.Add(time.Hour)
	_, err = engine.CreateBackup()
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, filepath.Join("backups", "readme.txt"), []byte("x"), 0644))

	names, err := engine.ListBackups()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"diary_backup_20250102_040405.zip",
		"diary_backup_20250102_030405.zip",
	}, names)
}
