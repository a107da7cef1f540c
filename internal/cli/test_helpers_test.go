package cli

// This file contains test utilities and mocks for testing CLI functions.
// These helpers are only available in test files (*_test.go).

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/mrz1836/rcli/internal/constants"
)

// mockFormRunner is a test helper that implements the formRunner interface.
// Use this to mock Charm Huh forms in tests.
type mockFormRunner struct {
	// runErr is the error to return from Run()
	runErr error

	// onRun is an optional callback executed when Run() is called
	// Use this to simulate user input by modifying form values
	onRun func()
}

// Run executes the mock form, optionally calling the onRun callback.
func (m *mockFormRunner) Run() error {
	if m.onRun != nil {
		m.onRun()
	}
	return m.runErr
}

// mockTerminalCheckFunc returns a function that can replace terminalCheck in tests.
// The returned cleanup function should be deferred to restore the original.
func mockTerminalCheckFunc(isTerminal bool) func() {
	original := terminalCheck
	terminalCheck = func() bool { return isTerminal }
	return func() { terminalCheck = original }
}

// mockOverwriteForm makes every confirmation form answer with confirm.
func mockOverwriteForm(t *testing.T, confirm bool, runErr error) *[]string {
	t.Helper()

	var asked []string
	original := createOverwriteConfirmForm
	createOverwriteConfirmForm = func(paths []string, value *bool) formRunner {
		asked = append(asked, paths...)
		return &mockFormRunner{
			runErr: runErr,
			onRun:  func() { *value = confirm },
		}
	}
	t.Cleanup(func() { createOverwriteConfirmForm = original })
	return &asked
}

// cmdResult captures one run of the root command.
type cmdResult struct {
	stdout string
	stderr string
	err    error
}

// runRcli executes the root command with args and stdin, isolated from the
// user's rcli home directory. Tests using it must not run in parallel.
func runRcli(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()

	t.Setenv(constants.HomeEnvVar, t.TempDir())
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(CloseLogFile)

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	reportError(cmd, flags, err)

	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
