package cli

import (
	"encoding/json"
	"io"
	mrand "math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/passgen"
	"github.com/mrz1836/rcli/internal/testutil"
)

func withPasswordSource(t *testing.T, r io.Reader) {
	t.Helper()
	original := passwordSource
	passwordSource = r
	t.Cleanup(func() { passwordSource = original })
}

func TestGenPass_Defaults(t *testing.T) {
	res := runRcli(t, "", "genpass")
	require.NoError(t, res.err)

	password := strings.TrimSpace(res.stdout)
	assert.Len(t, password, constants.DefaultPasswordLength)
	assert.True(t, strings.ContainsAny(password, passgen.Uppercase))
	assert.True(t, strings.ContainsAny(password, passgen.Lowercase))
	assert.True(t, strings.ContainsAny(password, passgen.Numbers))
	assert.True(t, strings.ContainsAny(password, passgen.Symbols))
}

func TestGenPass_FlagsRestrictClasses(t *testing.T) {
	res := runRcli(t, "", "genpass", "-l", "40", "--symbol=false", "--uppercase=false")
	require.NoError(t, res.err)

	password := strings.TrimSpace(res.stdout)
	assert.Len(t, password, 40)
	assert.False(t, strings.ContainsAny(password, passgen.Symbols))
	assert.False(t, strings.ContainsAny(password, passgen.Uppercase))
}

func TestGenPass_Deterministic(t *testing.T) {
	withPasswordSource(t, mrand.NewChaCha8([32]byte{1}))
	first := runRcli(t, "", "-o", "json", "genpass", "-l", "24")
	require.NoError(t, first.err)

	withPasswordSource(t, mrand.NewChaCha8([32]byte{1}))
	second := runRcli(t, "", "-o", "json", "genpass", "-l", "24")
	require.NoError(t, second.err)

	var a, b map[string]string
	require.NoError(t, json.Unmarshal([]byte(first.stdout), &a))
	require.NoError(t, json.Unmarshal([]byte(second.stdout), &b))
	assert.Len(t, a["password"], 24)
	assert.Equal(t, a["password"], b["password"])
}

func TestGenPass_GlobalConfigDefaults(t *testing.T) {
	home := t.TempDir()
	writeFile(t, home, constants.GlobalConfigName, []byte("genpass:\n  length: 8\n  symbol: false\n"))

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})
	t.Setenv(constants.HomeEnvVar, home)
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(CloseLogFile)

	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"genpass"})
	require.NoError(t, cmd.Execute())

	password := strings.TrimSpace(out.String())
	assert.Len(t, password, 8)
	assert.False(t, strings.ContainsAny(password, passgen.Symbols))

	_, err := os.Stat(filepath.Join(home, constants.LogsDir, constants.CLILogFileName))
	require.NoError(t, err)
}

func TestGenPass_Errors(t *testing.T) {
	t.Run("no character class", func(t *testing.T) {
		res := runRcli(t, "", "genpass", "--uppercase=false", "--lowercase=false", "--number=false", "--symbol=false")
		require.ErrorIs(t, res.err, errors.ErrNoCharacterClass)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
	})

	t.Run("too long", func(t *testing.T) {
		res := runRcli(t, "", "genpass", "-l", "256")
		require.ErrorIs(t, res.err, errors.ErrInvalidPasswordLength)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(res.err))
	})

	t.Run("random source failure", func(t *testing.T) {
		withPasswordSource(t, testutil.FailingReader{})
		res := runRcli(t, "", "genpass")
		require.ErrorIs(t, res.err, errors.ErrRandomSource)
		assert.Equal(t, ExitError, ExitCodeForError(res.err))
	})
}
