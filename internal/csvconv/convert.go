// Package csvconv converts CSV documents to JSON, YAML, or a rendered table.
package csvconv

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/rcli/internal/errors"
)

// Format is an output encoding for converted CSV.
type Format string

// Supported output formats.
const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTable}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: json, yaml, table)", errors.ErrUnsupportedFormat, s)
	}
}

// DefaultOutput returns the output file used when none is given.
// Tables are always written to the terminal and have no default file.
func (f Format) DefaultOutput() string {
	if f == FormatTable {
		return ""
	}
	return "output." + string(f)
}

// Options controls how CSV input is parsed.
type Options struct {
	// Delimiter is the single field separator character.
	Delimiter string
	// Header treats the first record as column names.
	Header bool
}

// ParseDelimiter validates a delimiter string and returns its rune.
func ParseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: delimiter must be a single character, got %q", errors.ErrInvalidArgument, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: %q cannot be used as a delimiter", errors.ErrInvalidArgument, s)
	}
	return r, nil
}

// Document is a parsed CSV file.
type Document struct {
	// Headers is empty when the input has no header row.
	Headers []string
	Rows    [][]string
}

// Read parses all of r.
func Read(r io.Reader, opts Options) (*Document, error) {
	delim, err := ParseDelimiter(opts.Delimiter)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.Comma = delim

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidCSV, err)
	}

	doc := &Document{Rows: records}
	if opts.Header && len(records) > 0 {
		doc.Headers = records[0]
		doc.Rows = records[1:]
		if dup, ok := firstDuplicate(doc.Headers); ok {
			return nil, fmt.Errorf("%w: duplicate header %q", errors.ErrInvalidArgument, dup)
		}
	}
	return doc, nil
}

func firstDuplicate(names []string) (string, bool) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return n, true
		}
		seen[n] = struct{}{}
	}
	return "", false
}

// Records returns the rows in output form: header-keyed records when the
// document has headers, plain string lists otherwise.
func (d *Document) Records() []any {
	out := make([]any, 0, len(d.Rows))
	for _, row := range d.Rows {
		if len(d.Headers) == 0 {
			out = append(out, row)
			continue
		}
		out = append(out, Record{Keys: d.Headers, Values: row})
	}
	return out
}

// Encode renders the document in the given format.
func Encode(d *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(d.Records(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d.Records()); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTable:
		return renderTable(d), nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, format)
	}
}

func renderTable(d *Document) []byte {
	var buf bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	if len(d.Headers) > 0 {
		t.AppendHeader(toRow(d.Headers))
	}
	for _, row := range d.Rows {
		t.AppendRow(toRow(row))
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
	return buf.Bytes()
}

func toRow(fields []string) table.Row {
	row := make(table.Row, len(fields))
	for i, f := range fields {
		row[i] = f
	}
	return row
}
