package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/rcli/internal/config"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/input"
)

// loadConfig loads the layered configuration with the CLI logger attached
// to the context.
func loadConfig(ctx context.Context) (*config.Config, error) {
	logger := GetLogger()
	return config.Load(logger.WithContext(ctx))
}

// validateInputPath checks that path is stdin or an existing regular file
// before any work starts.
func validateInputPath(flag, path string) error {
	if input.IsStdin(path) {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: --%s %q does not exist", errors.ErrInvalidArgument, flag, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: --%s %q is a directory", errors.ErrInvalidArgument, flag, path)
	}
	return nil
}

// stringFlag returns the flag value when it was set on the command line,
// otherwise fallback.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

// formRunner is an interface that matches huh.Form's Run method.
type formRunner interface {
	Run() error
}

// createOverwriteConfirmForm is the factory for overwrite confirmation forms.
// Tests replace it to inject mock forms.
//
//nolint:gochecknoglobals // Test injection point - standard Go testing pattern
var createOverwriteConfirmForm = defaultCreateOverwriteConfirmForm

func defaultCreateOverwriteConfirmForm(paths []string, confirm *bool) formRunner {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite %d existing key file(s)?", len(paths))).
				Description(fmt.Sprintf("%v\nThe old keys cannot be recovered.", paths)).
				Affirmative("Yes, overwrite").
				Negative("No, cancel").
				Value(confirm),
		),
	)
}

// confirmOverwrite asks before replacing existing key files. It returns nil
// only when the user agreed.
func confirmOverwrite(paths []string) error {
	if !terminalCheck() {
		return fmt.Errorf("cannot overwrite %v: %w", paths, errors.ErrNonInteractiveMode)
	}

	var confirm bool
	if err := createOverwriteConfirmForm(paths, &confirm).Run(); err != nil {
		return fmt.Errorf("failed to get confirmation: %w", err)
	}
	if !confirm {
		return errors.ErrOperationCanceled
	}
	return nil
}

// terminalCheck is a variable for the terminal check function, allowing tests to override it.
//
//nolint:gochecknoglobals // Required for test injection of terminal detection
var terminalCheck = isTerminal

// isTerminal returns true if stdin is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
