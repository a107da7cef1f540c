package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// newViperInstance creates a Viper instance with defaults and RCLI_ env binding.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so AutomaticEnv can resolve it.
// Keys must match the mapstructure tags.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("text.scheme", d.Text.Scheme)

	v.SetDefault("genpass.length", d.GenPass.Length)
	v.SetDefault("genpass.uppercase", d.GenPass.Uppercase)
	v.SetDefault("genpass.lowercase", d.GenPass.Lowercase)
	v.SetDefault("genpass.number", d.GenPass.Number)
	v.SetDefault("genpass.symbol", d.GenPass.Symbol)

	v.SetDefault("csv.delimiter", d.CSV.Delimiter)
	v.SetDefault("csv.header", d.CSV.Header)
	v.SetDefault("csv.format", d.CSV.Format)

	v.SetDefault("base64.format", d.Base64.Format)

	v.SetDefault("http.dir", d.HTTP.Dir)
	v.SetDefault("http.port", d.HTTP.Port)
	v.SetDefault("http.read_header_timeout", d.HTTP.ReadHeaderTimeout.String())
	v.SetDefault("http.shutdown_timeout", d.HTTP.ShutdownTimeout.String())
}

func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads the global and project config files, applies RCLI_ environment
// variables, and validates the result. Missing files are not an error.
func Load(ctx context.Context) (*Config, error) {
	globalPath, err := GlobalConfigPath()
	if err != nil {
		// No resolvable home directory: continue with project config only.
		globalPath = ""
	}

	cfg, err := LoadFromPaths(ctx, ProjectConfigPath(), globalPath)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "config").
		Str("text.scheme", cfg.Text.Scheme).
		Int("http.port", cfg.HTTP.Port).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadFromPaths loads configuration from explicit file paths. The project
// file is merged over the global file. Either path may be empty, and a path
// that does not exist is skipped.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" && fileExists(globalConfigPath) {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" && fileExists(projectConfigPath) {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
