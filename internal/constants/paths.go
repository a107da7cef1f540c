package constants

// Directory names and paths used by rcli.
const (
	// RcliHome is the hidden directory name where rcli stores its data.
	// This directory is created in the user's home directory.
	RcliHome = ".rcli"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.rcli/logs/rcli.log
	CLILogFileName = "rcli.log"

	// GlobalConfigName is the name of the configuration file, both in the
	// rcli home directory and in a project's .rcli directory.
	GlobalConfigName = "config.yaml"

	// HomeEnvVar overrides the rcli home directory.
	HomeEnvVar = "RCLI_HOME"

	// EnvPrefix is the prefix for environment variable configuration.
	EnvPrefix = "RCLI"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days to retain rotated files.
	LogMaxAgeDays = 28

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)
