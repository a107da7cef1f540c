package config

import (
	"slices"
	"time"
	"unicode/utf8"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

//nolint:gochecknoglobals // fixed value sets
var (
	validSchemes       = []string{constants.SchemeBlake3, constants.SchemeEd25519}
	validCSVFormats    = []string{"json", "yaml", "table"}
	validBase64Formats = []string{"standard", "urlsafe"}
)

// Validate checks cfg and returns the first invalid value found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateTextConfig(&cfg.Text); err != nil {
		return err
	}
	if err := validateGenPassConfig(&cfg.GenPass); err != nil {
		return err
	}
	if err := validateCSVConfig(&cfg.CSV); err != nil {
		return err
	}
	if err := validateBase64Config(&cfg.Base64); err != nil {
		return err
	}
	return validateHTTPConfig(&cfg.HTTP)
}

func validateTextConfig(cfg *TextConfig) error {
	if !slices.Contains(validSchemes, cfg.Scheme) {
		return errors.Wrapf(errors.ErrConfigInvalidText,
			"text.scheme must be one of %v, got %q", validSchemes, cfg.Scheme)
	}
	return nil
}

func validateGenPassConfig(cfg *GenPassConfig) error {
	if !cfg.Uppercase && !cfg.Lowercase && !cfg.Number && !cfg.Symbol {
		return errors.Wrap(errors.ErrConfigInvalidGenPass,
			"genpass must enable at least one character class")
	}
	if cfg.Length < 1 || cfg.Length > constants.MaxPasswordLength {
		return errors.Wrapf(errors.ErrConfigInvalidGenPass,
			"genpass.length must be between 1 and %d, got %d", constants.MaxPasswordLength, cfg.Length)
	}
	return nil
}

func validateCSVConfig(cfg *CSVConfig) error {
	if utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return errors.Wrapf(errors.ErrConfigInvalidCSV,
			"csv.delimiter must be a single character, got %q", cfg.Delimiter)
	}
	if !slices.Contains(validCSVFormats, cfg.Format) {
		return errors.Wrapf(errors.ErrConfigInvalidCSV,
			"csv.format must be one of %v, got %q", validCSVFormats, cfg.Format)
	}
	return nil
}

func validateBase64Config(cfg *Base64Config) error {
	if !slices.Contains(validBase64Formats, cfg.Format) {
		return errors.Wrapf(errors.ErrConfigInvalidBase64,
			"base64.format must be one of %v, got %q", validBase64Formats, cfg.Format)
	}
	return nil
}

func validateHTTPConfig(cfg *HTTPConfig) error {
	if cfg.Dir == "" {
		return errors.Wrap(errors.ErrConfigInvalidHTTP, "http.dir must not be empty")
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return errors.Wrapf(errors.ErrConfigInvalidHTTP,
			"http.port must be between 0 and 65535, got %d", cfg.Port)
	}
	if cfg.ReadHeaderTimeout <= 0 || cfg.ReadHeaderTimeout > time.Minute {
		return errors.Wrapf(errors.ErrConfigInvalidHTTP,
			"http.read_header_timeout must be between 0s and 1m, got %s", cfg.ReadHeaderTimeout)
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidHTTP,
			"http.shutdown_timeout must be positive, got %s", cfg.ShutdownTimeout)
	}
	return nil
}
