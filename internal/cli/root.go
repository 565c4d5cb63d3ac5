package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dshills/sheetdiff/internal/changes"
	"github.com/dshills/sheetdiff/internal/config"
	"github.com/dshills/sheetdiff/internal/logging"
	"github.com/dshills/sheetdiff/internal/remote"
)

const version = "0.1.0"

const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

// errUsage marks errors caused by bad arguments rather than failures.
var errUsage = errors.New("usage error")

var rootCmd = &cobra.Command{
	Use:           "sheetdiff",
	Short:         "Preview and review spreadsheet changes",
	Long:          "sheetdiff renders cell-level spreadsheet changes as a file/sheet hierarchy and drives the upload and approval workflow of the versioning backend.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var flagLogLevel string

// newAPI builds the backend client. Tests replace it.
var newAPI = func(cfg config.Config, logger *slog.Logger) remote.API {
	return remote.NewClient(cfg.ServerURL, cfg.Token, time.Duration(cfg.TimeoutSeconds)*time.Second, logger)
}

// Run executes the root command and returns an exit code.
func Run() int {
	exitCode = ExitSuccess
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print sheetdiff version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sheetdiff version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(commitsCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(sentCmd)
	rootCmd.AddCommand(prCmd)
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(collaboratorsCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the effective config and builds the logger on stderr.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return config.Config{}, nil, errors.Wrap(errUsage, err.Error())
	}
	return cfg, logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.JSON), nil
}

// fail reports err on stderr and records the matching exit code. It returns
// nil so that cobra does not print the error a second time.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	exitCode = classify(err)
	return nil
}

func classify(err error) int {
	switch {
	case remote.IsAuthError(err):
		return ExitAuthError
	case errors.Is(err, errUsage),
		errors.Is(err, changes.ErrUnknownFilter),
		errors.Is(err, changes.ErrInvalidSheetKey),
		errors.Is(err, remote.ErrCommentRequired),
		errors.Is(err, config.ErrUnknownKey),
		errors.Is(err, config.ErrInvalidFormat),
		errors.Is(err, config.ErrInvalidLogLevel),
		errors.Is(err, config.ErrInvalidTimeout):
		return ExitUsageError
	default:
		return ExitRuntimeError
	}
}
