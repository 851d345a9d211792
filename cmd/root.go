package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chris-regnier/diary/internal/config"
	"github.com/chris-regnier/diary/internal/diary"
	"github.com/chris-regnier/diary/internal/entry"
	"github.com/chris-regnier/diary/internal/logging"
	"github.com/chris-regnier/diary/internal/storage"
	"github.com/chris-regnier/diary/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	jsonOutput   bool
	snapshotPath string
	logLevel     string
	appOptions   *config.Options
	logger       zerolog.Logger
	theme        ui.Theme
	d            *diary.Diary

	// diaryFs is the filesystem the diary is opened on.
	diaryFs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "A personal diary kept as plain text files",
	Long: `diary stores each journal entry as its own text file named after the moment
it was written, and supports listing, searching, editing, deleting and zip
backups of those files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.LoadOptions(cfgFile)
		if err != nil {
			return withCode(exitFailure, fmt.Errorf("loading options: %w", err))
		}
		if snapshotPath != "" {
			opts.Snapshot = snapshotPath
		}
		if logLevel != "" {
			opts.LogLevel = logLevel
		}
		appOptions = opts
		logger = logging.New(cmd.ErrOrStderr(), opts.LogLevel, logging.Format(opts.LogFormat))
		theme = ui.ResolveTheme(opts.MarkdownStyle)

		d, err = diary.Open(diaryFs, opts.Snapshot, logger)
		if err != nil {
			return withCode(exitFailure, fmt.Errorf("initializing diary: %w", err))
		}
		return nil
	},
}

// Execute runs the root command. SIGINT/SIGTERM cancel the command context
// instead of killing the process; commands blocked on input return promptly
// with exitInterrupted, so the deferred configuration save runs on every exit
// path.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer closeDiary()

	return rootCmd.ExecuteContext(ctx)
}

func closeDiary() {
	if d != nil {
		d.Close()
		d = nil
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "options file path (TOML)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "preference snapshot path (default diary_config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// Exit codes.
const (
	exitUser    = 1 // not found, bad input
	exitFailure = 2 // storage or other runtime failure
	exitEditor  = 3

	exitInterrupted = 130 // SIGINT/SIGTERM
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	return exitUser
}

// classify assigns an exit code to an error from the diary layer.
func classify(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, entry.ErrMalformedIdentifier):
		return withCode(exitUser, err)
	default:
		return withCode(exitFailure, err)
	}
}
