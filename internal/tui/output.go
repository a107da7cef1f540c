package tui

import (
	"io"
)

// Output format names accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output writes command results in either styled text or JSON.
type Output interface {
	// Success reports a completed operation.
	Success(msg string)
	// Error reports a failure.
	Error(err error)
	// Warning reports a condition needing attention.
	Warning(msg string)
	// Info reports supplementary information.
	Info(msg string)
	// Value prints a primary result, such as a signature, unstyled so it
	// can be piped.
	Value(s string)
	// JSON writes v as indented JSON.
	JSON(v any) error
}

// NewOutput returns a JSONOutput for format "json" and a TTYOutput otherwise.
func NewOutput(w io.Writer, format string) Output {
	if format == FormatJSON {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w)
}
