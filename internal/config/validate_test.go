package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/rcli/internal/errors"
)

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Validate(nil), errors.ErrConfigNil)
}

func TestValidate_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"ed25519 scheme", func(c *Config) { c.Text.Scheme = "ed25519" }, nil},
		{"unknown scheme", func(c *Config) { c.Text.Scheme = "rsa" }, errors.ErrConfigInvalidText},
		{"no character class", func(c *Config) {
			c.GenPass.Uppercase, c.GenPass.Lowercase, c.GenPass.Number, c.GenPass.Symbol = false, false, false, false
		}, errors.ErrConfigInvalidGenPass},
		{"zero length", func(c *Config) { c.GenPass.Length = 0 }, errors.ErrConfigInvalidGenPass},
		{"length too long", func(c *Config) { c.GenPass.Length = 256 }, errors.ErrConfigInvalidGenPass},
		{"max length", func(c *Config) { c.GenPass.Length = 255 }, nil},
		{"tab delimiter", func(c *Config) { c.CSV.Delimiter = "\t" }, nil},
		{"long delimiter", func(c *Config) { c.CSV.Delimiter = ";;" }, errors.ErrConfigInvalidCSV},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }, errors.ErrConfigInvalidCSV},
		{"csv format", func(c *Config) { c.CSV.Format = "xml" }, errors.ErrConfigInvalidCSV},
		{"base64 format", func(c *Config) { c.Base64.Format = "base32" }, errors.ErrConfigInvalidBase64},
		{"empty dir", func(c *Config) { c.HTTP.Dir = "" }, errors.ErrConfigInvalidHTTP},
		{"negative port", func(c *Config) { c.HTTP.Port = -1 }, errors.ErrConfigInvalidHTTP},
		{"port too large", func(c *Config) { c.HTTP.Port = 65536 }, errors.ErrConfigInvalidHTTP},
		{"ephemeral port", func(c *Config) { c.HTTP.Port = 0 }, nil},
		{"header timeout too long", func(c *Config) { c.HTTP.ReadHeaderTimeout = 2 * time.Minute }, errors.ErrConfigInvalidHTTP},
		{"zero shutdown timeout", func(c *Config) { c.HTTP.ShutdownTimeout = 0 }, errors.ErrConfigInvalidHTTP},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := Validate(cfg)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
