// Package b64 encodes and decodes arbitrary data as base64.
package b64

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mrz1836/rcli/internal/errors"
)

// Format selects the base64 alphabet and padding.
type Format string

// Supported formats.
const (
	// Standard is the padded standard alphabet.
	Standard Format = "standard"
	// URLSafe is the unpadded URL and filename safe alphabet.
	URLSafe Format = "urlsafe"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Standard, URLSafe:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: standard, urlsafe)", errors.ErrUnsupportedFormat, s)
	}
}

func (f Format) encoding() (*base64.Encoding, error) {
	switch f {
	case Standard:
		return base64.StdEncoding, nil
	case URLSafe:
		return base64.RawURLEncoding, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, f)
	}
}

// Encode returns the base64 text of data.
func Encode(data []byte, format Format) (string, error) {
	enc, err := format.encoding()
	if err != nil {
		return "", err
	}
	return enc.EncodeToString(data), nil
}

// Decode trims surrounding whitespace from text and decodes it.
func Decode(text []byte, format Format) ([]byte, error) {
	enc, err := format.encoding()
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(text)
	out := make([]byte, enc.DecodedLen(len(trimmed)))
	n, err := enc.Decode(out, trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrDecode, err)
	}
	return out[:n], nil
}
