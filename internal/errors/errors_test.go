package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rclierrors "github.com/mrz1836/rcli/internal/errors"
)

// testError is a custom error type used to test default branches
// in UserMessage and Actionable without matching any sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrIO", rclierrors.ErrIO, "i/o error"},
		{"ErrKeyFormat", rclierrors.ErrKeyFormat, "invalid key format"},
		{"ErrSignatureLength", rclierrors.ErrSignatureLength, "invalid signature length"},
		{"ErrDecode", rclierrors.ErrDecode, "invalid encoding"},
		{"ErrUnknownScheme", rclierrors.ErrUnknownScheme, "unknown signing scheme"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	allErrors := []error{
		rclierrors.ErrIO,
		rclierrors.ErrKeyFormat,
		rclierrors.ErrSignatureLength,
		rclierrors.ErrDecode,
		rclierrors.ErrUnknownScheme,
		rclierrors.ErrFileExists,
		rclierrors.ErrNotADirectory,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, err1, err2, "%v should not match %v", err1, err2)
		}
	}
}

func TestWrap(t *testing.T) {
	t.Run("preserves error chain", func(t *testing.T) {
		wrapped := rclierrors.Wrap(rclierrors.ErrKeyFormat, "failed to load key")
		require.ErrorIs(t, wrapped, rclierrors.ErrKeyFormat)
		assert.Equal(t, "failed to load key: invalid key format", wrapped.Error())
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, rclierrors.Wrap(nil, "context"))
	})

	t.Run("multiple wraps", func(t *testing.T) {
		inner := rclierrors.Wrap(rclierrors.ErrDecode, "decode signature")
		outer := rclierrors.Wrap(inner, "verify")
		require.ErrorIs(t, outer, rclierrors.ErrDecode)
		assert.Equal(t, "verify: decode signature: invalid encoding", outer.Error())
	})
}

func TestWrapf(t *testing.T) {
	wrapped := rclierrors.Wrapf(rclierrors.ErrIO, "failed to read %s", "key.bin")
	require.ErrorIs(t, wrapped, rclierrors.ErrIO)
	assert.Equal(t, "failed to read key.bin: i/o error", wrapped.Error())

	assert.NoError(t, rclierrors.Wrapf(nil, "failed to read %s", "key.bin"))
}

func TestWithKind(t *testing.T) {
	t.Run("keeps both kind and cause", func(t *testing.T) {
		err := rclierrors.WithKind(rclierrors.ErrIO, fs.ErrNotExist, "open %s", "missing.txt")
		require.ErrorIs(t, err, rclierrors.ErrIO)
		require.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, "open missing.txt: i/o error: file does not exist", err.Error())
	})

	t.Run("nil cause", func(t *testing.T) {
		err := rclierrors.WithKind(rclierrors.ErrKeyFormat, nil, "expected %d bytes", 32)
		require.ErrorIs(t, err, rclierrors.ErrKeyFormat)
		assert.Equal(t, "expected 32 bytes: invalid key format", err.Error())
	})
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"ErrKeyFormat", rclierrors.ErrKeyFormat, "valid key material"},
		{"ErrSignatureLength", rclierrors.ErrSignatureLength, "wrong length"},
		{"ErrDecode", rclierrors.ErrDecode, "not valid encoded text"},
		{"ErrIO", rclierrors.ErrIO, "could not be read or written"},
		{"wrapped", rclierrors.Wrap(rclierrors.ErrUnknownScheme, "parse"), "Unknown signing scheme"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, rclierrors.UserMessage(tc.err), tc.contains)
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, rclierrors.UserMessage(nil))
	})

	t.Run("unknown error falls back to original message", func(t *testing.T) {
		assert.Equal(t, "some unexpected error occurred",
			rclierrors.UserMessage(testError{msg: "some unexpected error occurred"}))
	})
}

func TestActionable(t *testing.T) {
	msg, action := rclierrors.Actionable(fmt.Errorf("load: %w", rclierrors.ErrKeyFormat))
	assert.Contains(t, msg, "key")
	assert.Contains(t, action, "rcli text generate")

	msg, action = rclierrors.Actionable(rclierrors.ErrOperationCanceled)
	assert.Equal(t, "Operation canceled.", msg)
	assert.Empty(t, action)

	msg, action = rclierrors.Actionable(nil)
	assert.Empty(t, msg)
	assert.Empty(t, action)
}

func TestExitCode2Error(t *testing.T) {
	inner := rclierrors.ErrUnknownScheme
	err := rclierrors.NewExitCode2Error(inner)

	assert.Equal(t, inner.Error(), err.Error())
	require.ErrorIs(t, err, rclierrors.ErrUnknownScheme)
	assert.True(t, rclierrors.IsExitCode2Error(err))
	assert.True(t, rclierrors.IsExitCode2Error(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, rclierrors.IsExitCode2Error(stderrors.New("plain")))
	assert.False(t, rclierrors.IsExitCode2Error(nil))
}
