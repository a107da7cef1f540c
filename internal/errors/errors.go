// Package errors provides centralized error handling for rcli.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrIO indicates that an input, key or signature file could not be
	// opened, read or written.
	ErrIO = errors.New("i/o error")

	// ErrKeyFormat indicates that key material has the wrong length or shape
	// for the chosen signing scheme.
	ErrKeyFormat = errors.New("invalid key format")

	// ErrSignatureLength indicates that a signature does not have the fixed
	// length required by the signing scheme.
	ErrSignatureLength = errors.New("invalid signature length")

	// ErrDecode indicates that text is not a valid encoding of binary data.
	ErrDecode = errors.New("invalid encoding")

	// ErrUnknownScheme indicates an unsupported signing scheme name.
	ErrUnknownScheme = errors.New("unknown signing scheme")

	// ErrFileExists indicates that a file would be overwritten without permission.
	ErrFileExists = errors.New("file already exists")

	// ErrNotADirectory indicates that a path expected to be a directory is not one.
	ErrNotADirectory = errors.New("not a directory")

	// ErrInvalidCSV indicates that CSV input could not be converted.
	ErrInvalidCSV = errors.New("invalid csv input")

	// ErrUnsupportedFormat indicates an unsupported conversion or encoding format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNoCharacterClass indicates that password generation was requested
	// with every character class disabled.
	ErrNoCharacterClass = errors.New("no character class enabled")

	// ErrInvalidPasswordLength indicates a password length outside the allowed range.
	ErrInvalidPasswordLength = errors.New("invalid password length")

	// ErrRandomSource indicates that the random source failed to produce bytes.
	ErrRandomSource = errors.New("random source failure")

	// ErrServerFailed indicates that the HTTP file server stopped unexpectedly.
	ErrServerFailed = errors.New("http server failed")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidText indicates an invalid text signing configuration value.
	ErrConfigInvalidText = errors.New("invalid text configuration")

	// ErrConfigInvalidGenPass indicates an invalid password generator configuration value.
	ErrConfigInvalidGenPass = errors.New("invalid genpass configuration")

	// ErrConfigInvalidCSV indicates an invalid CSV configuration value.
	ErrConfigInvalidCSV = errors.New("invalid csv configuration")

	// ErrConfigInvalidBase64 indicates an invalid base64 configuration value.
	ErrConfigInvalidBase64 = errors.New("invalid base64 configuration")

	// ErrConfigInvalidHTTP indicates an invalid HTTP configuration value.
	ErrConfigInvalidHTTP = errors.New("invalid http configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrConflictingFlags indicates that mutually exclusive flags were specified.
	ErrConflictingFlags = errors.New("conflicting flags specified")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNonInteractiveMode indicates that an operation requiring confirmation
	// was attempted in non-interactive mode without the force flag.
	ErrNonInteractiveMode = errors.New("use --force in non-interactive mode")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	// Commands should silence cobra's error printing when this is returned.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
