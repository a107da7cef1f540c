package tui

import (
	"encoding/json"
	"io"

	"github.com/mrz1836/rcli/internal/errors"
)

// JSONOutput writes every message as one JSON object per line.
type JSONOutput struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONOutput creates a JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{
		w:       w,
		encoder: json.NewEncoder(w),
	}
}

type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type jsonError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Action  string `json:"action,omitempty"`
}

type jsonValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Success writes {"type":"success","message":...}.
func (o *JSONOutput) Success(msg string) {
	//nolint:errchkjson // no error return in the interface
	_ = o.encoder.Encode(jsonMessage{Type: "success", Message: msg})
}

// Error writes the user-facing message, the raw error as details, and the
// suggested action when one is known.
func (o *JSONOutput) Error(err error) {
	msg, action := errors.Actionable(err)
	out := jsonError{Type: "error", Message: msg, Action: action}
	if raw := err.Error(); raw != msg {
		out.Details = raw
	}
	//nolint:errchkjson // no error return in the interface
	_ = o.encoder.Encode(out)
}

// Warning writes {"type":"warning","message":...}.
func (o *JSONOutput) Warning(msg string) {
	//nolint:errchkjson // no error return in the interface
	_ = o.encoder.Encode(jsonMessage{Type: "warning", Message: msg})
}

// Info writes {"type":"info","message":...}.
func (o *JSONOutput) Info(msg string) {
	//nolint:errchkjson // no error return in the interface
	_ = o.encoder.Encode(jsonMessage{Type: "info", Message: msg})
}

// Value writes {"type":"value","value":...}.
func (o *JSONOutput) Value(s string) {
	//nolint:errchkjson // no error return in the interface
	_ = o.encoder.Encode(jsonValue{Type: "value", Value: s})
}

// JSON writes v as indented JSON.
func (o *JSONOutput) JSON(v any) error {
	return encodeIndented(o.w, v)
}
