package config

import (
	"github.com/mrz1836/rcli/internal/constants"
)

// DefaultConfig returns the built-in defaults, the lowest configuration layer.
func DefaultConfig() *Config {
	return &Config{
		Text: TextConfig{
			Scheme: constants.DefaultScheme,
		},
		GenPass: GenPassConfig{
			Length:    constants.DefaultPasswordLength,
			Uppercase: true,
			Lowercase: true,
			Number:    true,
			Symbol:    true,
		},
		CSV: CSVConfig{
			Delimiter: constants.DefaultCSVDelimiter,
			Header:    true,
			Format:    constants.DefaultCSVFormat,
		},
		Base64: Base64Config{
			Format: constants.DefaultBase64Format,
		},
		HTTP: HTTPConfig{
			Dir:               constants.DefaultHTTPDir,
			Port:              constants.DefaultHTTPPort,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
			ShutdownTimeout:   constants.DefaultShutdownTimeout,
		},
	}
}
