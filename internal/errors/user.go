package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Signing & keys
	// ===================
	{
		err: ErrKeyFormat,
		info: ErrorInfo{
			Message: "The key file does not hold valid key material for this scheme.",
			Action:  "Keys are raw 32-byte files. Run 'rcli text generate' to create a fresh key.",
		},
	},
	{
		err: ErrSignatureLength,
		info: ErrorInfo{
			Message: "The signature has the wrong length for this scheme.",
			Action:  "blake3 signatures are 32 bytes and ed25519 signatures are 64 bytes. Check --format.",
		},
	},
	{
		err: ErrDecode,
		info: ErrorInfo{
			Message: "The input is not valid encoded text.",
			Action:  "Pass the text exactly as printed, without extra characters.",
		},
	},
	{
		err: ErrUnknownScheme,
		info: ErrorInfo{
			Message: "Unknown signing scheme.",
			Action:  "Use 'blake3' or 'ed25519'.",
		},
	},
	{
		err: ErrRandomSource,
		info: ErrorInfo{
			Message: "The system random source is unavailable.",
		},
	},

	// ===================
	// Files
	// ===================
	{
		err: ErrIO,
		info: ErrorInfo{
			Message: "A file could not be read or written.",
			Action:  "Check that the path exists and that you have permission to access it.",
		},
	},
	{
		err: ErrFileExists,
		info: ErrorInfo{
			Message: "Refusing to overwrite an existing file.",
			Action:  "Use --force to overwrite, or choose another output directory.",
		},
	},
	{
		err: ErrNotADirectory,
		info: ErrorInfo{
			Message: "The path is not a directory.",
			Action:  "Pass an existing directory.",
		},
	},

	// ===================
	// Utilities
	// ===================
	{
		err: ErrInvalidCSV,
		info: ErrorInfo{
			Message: "The CSV input could not be converted.",
			Action:  "Check the delimiter and that every row has the same number of fields.",
		},
	},
	{
		err: ErrUnsupportedFormat,
		info: ErrorInfo{
			Message: "Unsupported format.",
			Action:  "Run the command with --help to list supported formats.",
		},
	},
	{
		err: ErrNoCharacterClass,
		info: ErrorInfo{
			Message: "At least one character class must be enabled.",
			Action:  "Enable one of --uppercase, --lowercase, --number or --symbol.",
		},
	},
	{
		err: ErrInvalidPasswordLength,
		info: ErrorInfo{
			Message: "The password length is out of range.",
			Action:  "Choose a length between the number of enabled character classes and 255.",
		},
	},
	{
		err: ErrServerFailed,
		info: ErrorInfo{
			Message: "The file server stopped unexpectedly.",
			Action:  "Check that the port is free and retry.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "No configuration was provided.",
		},
	},
	{
		err: ErrConfigInvalidText,
		info: ErrorInfo{
			Message: "Invalid text signing configuration.",
			Action:  "Check the 'text' section of your config file or RCLI_TEXT_* variables.",
		},
	},
	{
		err: ErrConfigInvalidGenPass,
		info: ErrorInfo{
			Message: "Invalid password generator configuration.",
			Action:  "Check the 'genpass' section of your config file or RCLI_GENPASS_* variables.",
		},
	},
	{
		err: ErrConfigInvalidCSV,
		info: ErrorInfo{
			Message: "Invalid CSV configuration.",
			Action:  "Check the 'csv' section of your config file or RCLI_CSV_* variables.",
		},
	},
	{
		err: ErrConfigInvalidBase64,
		info: ErrorInfo{
			Message: "Invalid base64 configuration.",
			Action:  "Check the 'base64' section of your config file or RCLI_BASE64_* variables.",
		},
	},
	{
		err: ErrConfigInvalidHTTP,
		info: ErrorInfo{
			Message: "Invalid HTTP configuration.",
			Action:  "Check the 'http' section of your config file or RCLI_HTTP_* variables.",
		},
	},

	// ===================
	// CLI usage
	// ===================
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Invalid output format.",
			Action:  "Use --output text or --output json.",
		},
	},
	{
		err: ErrConflictingFlags,
		info: ErrorInfo{
			Message: "Conflicting flags were specified.",
			Action:  "Only one input may be read from stdin.",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "Invalid argument.",
			Action:  "Run the command with --help for usage.",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "Confirmation is required but no terminal is attached.",
			Action:  "Re-run with --force.",
		},
	},
	{
		err: ErrOperationCanceled,
		info: ErrorInfo{
			Message: "Operation canceled.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo returns the ErrorInfo for the first sentinel in err's chain.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that have no clear action, the action string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
