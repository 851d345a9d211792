package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestReadInput(t *testing.T) {
	got, err := readInput(context.Background(), strings.NewReader("piped\n"))
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if got != "piped\n" {
		t.Errorf("got %q", got)
	}
}

func TestReadInputCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	_, err := readInput(ctx, pr)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if code := ExitCode(err); code != exitInterrupted {
		t.Errorf("exit code = %d, want %d", code, exitInterrupted)
	}
}

func TestExecuteInterruptedDuringStdinRead(t *testing.T) {
	fs := setupTestEnv(t)
	resetFlags()

	// Keeps an early SIGINT, sent before Execute installs its handler, from
	// terminating the test binary.
	guard := make(chan os.Signal, 1)
	signal.Notify(guard, os.Interrupt)
	defer signal.Stop(guard)

	pr, pw := io.Pipe()
	defer pw.Close()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(pr)
	rootCmd.SetArgs([]string{"write", "-"})

	done := make(chan error, 1)
	go func() { done <- Execute() }()

	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case err := <-done:
			if code := ExitCode(err); code != exitInterrupted {
				t.Errorf("exit code = %d, want %d (err %v)", code, exitInterrupted, err)
			}
			if ok, _ := afero.Exists(fs, "diary_config.toml"); !ok {
				t.Error("configuration was not saved on interrupt")
			}
			return
		case <-tick.C:
			syscall.Kill(os.Getpid(), syscall.SIGINT)
		case <-deadline:
			t.Fatal("Execute still blocked after SIGINT")
		}
	}
}
