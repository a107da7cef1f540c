package cli

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

func TestExitCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitError)
	assert.Equal(t, 2, ExitInvalidInput)
}

func TestGlobalFlags_Defaults(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd, flags)

	assert.Equal(t, OutputText, flags.Output)
	assert.False(t, flags.Verbose)
	assert.False(t, flags.Quiet)

	outputFlag := cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)
	assert.Equal(t, "q", cmd.PersistentFlags().Lookup("quiet").Shorthand)
}

func TestGlobalFlags_VerboseAndQuietAreExclusive(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	AddGlobalFlags(cmd, flags)
	cmd.SetArgs([]string{"-v", "-q"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "if any flags in the group")
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestBindGlobalFlags(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd, flags)
	require.NoError(t, cmd.PersistentFlags().Set("output", "json"))

	v := viper.New()
	require.NoError(t, BindGlobalFlags(v, cmd))
	assert.Equal(t, "json", v.GetString("output"))
}

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidOutputFormat("text"))
	assert.True(t, IsValidOutputFormat("json"))
	assert.False(t, IsValidOutputFormat("yaml"))
	assert.False(t, IsValidOutputFormat(""))
	assert.Equal(t, []string{"text", "json"}, ValidOutputFormats())
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"io error", fmt.Errorf("reading x: %w", errors.ErrIO), ExitError},
		{"key format", errors.ErrKeyFormat, ExitError},
		{"decode", errors.ErrDecode, ExitError},
		{"unknown scheme", fmt.Errorf("%w: rsa", errors.ErrUnknownScheme), ExitInvalidInput},
		{"conflicting flags", errors.ErrConflictingFlags, ExitInvalidInput},
		{"invalid argument", errors.ErrInvalidArgument, ExitInvalidInput},
		{"unsupported format", errors.ErrUnsupportedFormat, ExitInvalidInput},
		{"no character class", errors.ErrNoCharacterClass, ExitInvalidInput},
		{"password length", errors.ErrInvalidPasswordLength, ExitInvalidInput},
		{"output format", errors.ErrInvalidOutputFormat, ExitInvalidInput},
		{"exit code 2 wrapper", errors.NewExitCode2Error(stderrors.New("bad")), ExitInvalidInput},
		{"cobra unknown flag", stderrors.New("unknown flag: --nope"), ExitInvalidInput},
		{"cobra required flag", stderrors.New(`required flag(s) "key" not set`), ExitInvalidInput},
		{"generic", stderrors.New("boom"), ExitError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}
