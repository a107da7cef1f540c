// Package codec converts raw signatures to and from their text form.
//
// The text form is URL-safe base64 without padding. Decoding is strict:
// padding, characters outside the URL-safe alphabet, and embedded line
// breaks are all rejected.
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mrz1836/rcli/internal/errors"
)

var encoding = base64.RawURLEncoding.Strict()

// Encode returns the text form of b.
func Encode(b []byte) string {
	return encoding.EncodeToString(b)
}

// Decode parses the text form produced by Encode.
func Decode(s string) ([]byte, error) {
	// The base64 decoder silently skips CR and LF; a signature never contains them.
	if strings.ContainsAny(s, "\r\n") {
		return nil, fmt.Errorf("%w: line break in signature text", errors.ErrDecode)
	}
	b, err := encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrDecode, err)
	}
	return b, nil
}
