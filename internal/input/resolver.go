// Package input resolves input designators to readable byte sources.
//
// A designator is either "-", meaning standard input, or a file path.
package input

import (
	"io"
	"os"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Source is an opened input. Callers must Close it when done.
type Source interface {
	io.ReadCloser

	// Name describes the source for log and error messages.
	Name() string
}

// Resolver opens designators against an injected standard input.
type Resolver struct {
	stdin io.Reader
}

// NewResolver returns a Resolver reading "-" from stdin.
func NewResolver(stdin io.Reader) *Resolver {
	return &Resolver{stdin: stdin}
}

// IsStdin reports whether designator names standard input.
func IsStdin(designator string) bool {
	return designator == constants.StdinDesignator
}

// Open returns a Source for designator. Failure to open a file is an
// ErrIO error.
func (r *Resolver) Open(designator string) (Source, error) {
	if IsStdin(designator) {
		return stdinSource{r: r.stdin}, nil
	}
	f, err := os.Open(designator) //nolint:gosec // designator is a user-supplied path
	if err != nil {
		return nil, errors.WithKind(errors.ErrIO, err, "opening input %s", designator)
	}
	return fileSource{File: f}, nil
}

// ReadAll opens designator and reads it to the end.
func (r *Resolver) ReadAll(designator string) ([]byte, error) {
	src, err := r.Open(designator)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.WithKind(errors.ErrIO, err, "reading input %s", src.Name())
	}
	return data, nil
}

// stdinSource never closes the underlying reader; it is owned by the process.
type stdinSource struct {
	r io.Reader
}

func (s stdinSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (stdinSource) Close() error                 { return nil }
func (stdinSource) Name() string                 { return "stdin" }

type fileSource struct {
	*os.File
}

func (s fileSource) Name() string { return s.File.Name() }
