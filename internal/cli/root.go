package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the logger initialized in PersistentPreRunE.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// It MUST only be called after the root command's PersistentPreRunE has
// executed; before that it returns a zero-value logger that discards all
// output. Safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates the root command and registers every subcommand.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "rcli",
		Short: "rcli - a toolbox of small command-line utilities",
		Long: `rcli bundles a handful of everyday utilities behind one binary.

Commands:
  • text     sign and verify text with BLAKE3 keyed hashes or Ed25519
  • csv      convert CSV files to JSON, YAML or a table
  • genpass  generate random passwords
  • base64   encode and decode base64
  • http     serve a directory over HTTP`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			// Environment overrides apply only when the flag was not given.
			if !cmd.Flags().Changed("output") {
				flags.Output = v.GetString("output")
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			globalLoggerMu.Lock()
			globalLogger = InitLogger(flags.Verbose, flags.Quiet)
			globalLoggerMu.Unlock()

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddTextCommand(cmd, flags)
	AddCSVCommand(cmd, flags)
	AddGenPassCommand(cmd, flags)
	AddBase64Command(cmd, flags)
	AddHTTPCommand(cmd, flags)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command and reports any error on stderr in the
// selected output format. The returned error should be mapped to an exit
// code with ExitCodeForError.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	//nolint:contextcheck // Cobra command pattern uses cmd.Context() internally
	cmd := newRootCmd(flags, info)
	defer CloseLogFile()

	err := cmd.ExecuteContext(ctx)
	reportError(cmd, flags, err)
	return err
}

// reportError prints err unless it is nil or was already written as JSON.
func reportError(cmd *cobra.Command, flags *GlobalFlags, err error) {
	if err == nil || stderrors.Is(err, errors.ErrJSONErrorOutput) {
		return
	}

	format := flags.Output
	if !IsValidOutputFormat(format) {
		format = OutputText
	}
	tui.NewOutput(cmd.ErrOrStderr(), format).Error(err)
}
