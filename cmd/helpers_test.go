package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/diary/internal/entry"
	"github.com/chris-regnier/diary/internal/storage"
	"github.com/spf13/afero"
)

// setupTestEnv points the CLI at a fresh in-memory filesystem.
func setupTestEnv(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	diaryFs = fs
	t.Cleanup(func() {
		closeDiary()
		diaryFs = afero.NewOsFs()
	})
	return fs
}

func resetFlags() {
	cfgFile, snapshotPath, logLevel = "", "", ""
	jsonOutput = false
	listPage, listIDOnly, listAll = 1, false, false
	showContentOnly, showRender = false, false
	forceDelete, forceBackup = false, false
}

// runCmd executes the root command with args and stdin, closing the diary
// afterwards the way Execute does.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	closeDiary()
	return out.String(), err
}

// seedEntries writes n entries one minute apart, oldest first, and returns
// their filenames newest first.
func seedEntries(t *testing.T, fs afero.Fs, contents ...string) []string {
	t.Helper()
	st, err := storage.New(fs, "entries", "backups")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)
	names := make([]string, len(contents))
	for i, c := range contents {
		e := entry.At(base.Add(time.Duration(i)*time.Minute), c)
		if err := st.SaveEntry(e); err != nil {
			t.Fatalf("seeding entry: %v", err)
		}
		names[len(contents)-1-i] = e.Filename()
	}
	return names
}
