// Package config provides layered configuration for rcli.
//
// Sources are applied in this order (highest precedence first):
//  1. CLI flags (applied by the cli package when a flag is Changed)
//  2. Environment variables (RCLI_* prefix, e.g. RCLI_HTTP_PORT)
//  3. Project config (.rcli/config.yaml)
//  4. Global config (~/.rcli/config.yaml, or $RCLI_HOME/config.yaml)
//  5. Built-in defaults
//
// This package may import internal/constants and internal/errors only.
package config

import "time"

// Config is the root configuration structure.
type Config struct {
	// Text holds defaults for the text sign/verify/generate commands.
	Text TextConfig `yaml:"text" mapstructure:"text"`

	// GenPass holds defaults for the password generator.
	GenPass GenPassConfig `yaml:"genpass" mapstructure:"genpass"`

	// CSV holds defaults for CSV conversion.
	CSV CSVConfig `yaml:"csv" mapstructure:"csv"`

	// Base64 holds defaults for base64 encoding.
	Base64 Base64Config `yaml:"base64" mapstructure:"base64"`

	// HTTP holds defaults for the static file server.
	HTTP HTTPConfig `yaml:"http" mapstructure:"http"`
}

// TextConfig configures the text signing commands.
type TextConfig struct {
	// Scheme is the signing scheme used when --format is not given.
	// One of "blake3" or "ed25519". Default: "blake3".
	Scheme string `yaml:"scheme" mapstructure:"scheme"`
}

// GenPassConfig configures password generation.
type GenPassConfig struct {
	Length    int  `yaml:"length" mapstructure:"length"`
	Uppercase bool `yaml:"uppercase" mapstructure:"uppercase"`
	Lowercase bool `yaml:"lowercase" mapstructure:"lowercase"`
	Number    bool `yaml:"number" mapstructure:"number"`
	Symbol    bool `yaml:"symbol" mapstructure:"symbol"`
}

// CSVConfig configures CSV conversion.
type CSVConfig struct {
	// Delimiter is a single character. Default: ",".
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
	// Header treats the first row as column names. Default: true.
	Header bool `yaml:"header" mapstructure:"header"`
	// Format is one of "json", "yaml", "table". Default: "json".
	Format string `yaml:"format" mapstructure:"format"`
}

// Base64Config configures base64 encoding.
type Base64Config struct {
	// Format is "standard" or "urlsafe". Default: "standard".
	Format string `yaml:"format" mapstructure:"format"`
}

// HTTPConfig configures the static file server.
type HTTPConfig struct {
	Dir               string        `yaml:"dir" mapstructure:"dir"`
	Port              int           `yaml:"port" mapstructure:"port"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}
