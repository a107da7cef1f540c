// Package logging keeps key material and generated passwords out of log
// output. It provides a zerolog hook that flags suspicious messages and a
// writer that redacts them before they reach the log file.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue replaces sensitive data in log output.
const RedactedValue = "[REDACTED]"

// sensitivePatterns match secret assignments that may appear in log text.
var sensitivePatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // compiled once for reuse
	// key=..., seed: ..., secret_key="..."
	regexp.MustCompile(`(?i)\b(secret[_-]?key|private[_-]?key|signing[_-]?key|seed|secret|key)\b"?\s*[:=]\s*"?[^\s",}]{16,}"?`),

	// password=..., passwd: ..., "password":"..."
	regexp.MustCompile(`(?i)\b(password|passwd|pwd)\b"?\s*[:=]\s*"?[^\s",}]{4,}"?`),

	// PEM private key blocks
	regexp.MustCompile(`-----BEGIN[A-Z ]*PRIVATE KEY-----`),

	// A bare 64 character hex string is the shape of a hex encoded seed.
	regexp.MustCompile(`\b[0-9a-fA-F]{64}\b`),
}

// sensitiveFieldNames are log field names whose values are never written.
var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // fixed list
	"password",
	"passwd",
	"secret",
	"seed",
	"private_key",
	"privatekey",
	"signing_key",
	"key_bytes",
}

// SensitiveDataHook flags log events whose message looks like it carries
// secret material. zerolog hooks cannot rewrite a message, so the file
// writer does the actual redaction.
type SensitiveDataHook struct{}

// NewSensitiveDataHook returns a SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements zerolog.Hook.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData reports whether s matches any sensitive pattern.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive match in value.
func FilterSensitiveValue(value string) string {
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedValue)
	}
	return result
}

// IsSensitiveFieldName reports whether a log field name denotes secret data.
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lowerName, sensitive) {
			return true
		}
	}
	return false
}

// SafeValue returns value fit for logging under fieldName.
//
//	log.Debug().Str("path", logging.SafeValue("path", p)).Msg("loaded key")
func SafeValue(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter redacts sensitive data from everything written through it.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter wraps w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write filters p and writes the result. It reports len(p) on success so
// callers never see a short write caused by redaction.
func (fw *FilteringWriter) Write(p []byte) (int, error) {
	filtered := FilterSensitiveValue(string(p))
	if _, err := fw.w.Write([]byte(filtered)); err != nil {
		return 0, err
	}
	return len(p), nil
}
