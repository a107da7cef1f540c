package keyed

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

func TestSigner_Sign(t *testing.T) {
	t.Run("zero key hello world is pinned", func(t *testing.T) {
		s, err := NewSigner(make([]byte, KeySize))
		require.NoError(t, err)

		sig := s.Sign([]byte("hello world"))
		assert.Equal(t, "f70d67530338246a6522eae9daad92c0dfd4bcf4e511602d96e9afd1d2210479", hex.EncodeToString(sig))
	})

	t.Run("official keyed vector for empty input", func(t *testing.T) {
		s, err := NewSigner([]byte("whats the Elvish word for friend"))
		require.NoError(t, err)

		sig := s.Sign(nil)
		assert.Equal(t, "92b2b75604ed3c761f9d6f62392c8a9227ad0ea3f09573e783f1498a4ed60d26", hex.EncodeToString(sig))
	})

	t.Run("deterministic", func(t *testing.T) {
		s, err := NewSigner([]byte("1LNQ3ny#&Y@q^@8_5VDVzi9w4a_B!@6#"))
		require.NoError(t, err)

		message := []byte("hello world")
		assert.Equal(t, s.Sign(message), s.Sign(message))
		assert.Len(t, s.Sign(message), Size)
	})

	t.Run("key changes output", func(t *testing.T) {
		s1, err := NewSigner(bytes.Repeat([]byte{1}, KeySize))
		require.NoError(t, err)
		s2, err := NewSigner(bytes.Repeat([]byte{2}, KeySize))
		require.NoError(t, err)

		assert.NotEqual(t, s1.Sign([]byte("msg")), s2.Sign([]byte("msg")))
	})
}

func TestSigner_Verify(t *testing.T) {
	s, err := NewSigner(make([]byte, KeySize))
	require.NoError(t, err)

	message := []byte("hello world")
	sig := s.Sign(message)

	assert.True(t, s.Verify(message, sig))

	tamperedSig := append([]byte(nil), sig...)
	tamperedSig[31] ^= 0x01
	assert.False(t, s.Verify(message, tamperedSig))

	assert.False(t, s.Verify([]byte("hello worle"), sig))
	assert.False(t, s.Verify(message, sig[:31]))
}

func TestNewSigner_KeySize(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33} {
		_, err := NewSigner(make([]byte, size))
		require.ErrorIs(t, err, errors.ErrKeyFormat, "size %d", size)
	}
}

func TestNewSigner_CopiesKey(t *testing.T) {
	key := make([]byte, KeySize)
	s, err := NewSigner(key)
	require.NoError(t, err)
	before := s.Sign([]byte("x"))

	key[0] = 0xff
	assert.Equal(t, before, s.Sign([]byte("x")))
}
