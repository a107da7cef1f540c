package tui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mrz1836/rcli/internal/errors"
)

// TTYOutput writes styled, human-readable output.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput creates a TTYOutput, honoring NO_COLOR.
func NewTTYOutput(w io.Writer) *TTYOutput {
	CheckNoColor()

	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(),
	}
}

// Success prints msg in green with a check mark.
func (o *TTYOutput) Success(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Success.Render("✓ "+msg))
}

// Error prints the user-facing message for err followed by the raw error
// and the suggested action when they add information.
func (o *TTYOutput) Error(err error) {
	msg, action := errors.Actionable(err)
	_, _ = fmt.Fprintln(o.w, o.styles.Error.Render("✗ "+msg))
	if raw := err.Error(); raw != msg {
		_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  "+raw))
	}
	if action != "" {
		_, _ = fmt.Fprintln(o.w, o.styles.Dim.Render("  ▸ Try: "+action))
	}
}

// Warning prints msg in yellow.
func (o *TTYOutput) Warning(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Warning.Render("⚠ "+msg))
}

// Info prints msg in blue.
func (o *TTYOutput) Info(msg string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Info.Render(msg))
}

// Value prints s followed by a newline.
func (o *TTYOutput) Value(s string) {
	_, _ = fmt.Fprintln(o.w, o.styles.Value.Render(s))
}

// JSON writes v as indented JSON.
func (o *TTYOutput) JSON(v any) error {
	return encodeIndented(o.w, v)
}

func encodeIndented(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
