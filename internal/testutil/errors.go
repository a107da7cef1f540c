// Package testutil provides testing utilities for rcli.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
var (
	// ErrMockRead indicates a mock reader failed (used in tests).
	ErrMockRead = errors.New("mock read failure")

	// ErrMockWrite indicates a mock writer failed (used in tests).
	ErrMockWrite = errors.New("mock write failure")
)

// FailingReader is an io.Reader that always fails with ErrMockRead.
// Use it to simulate an exhausted random source or an unreadable input.
type FailingReader struct{}

// Read implements io.Reader.
func (FailingReader) Read([]byte) (int, error) {
	return 0, ErrMockRead
}

// FailingWriter is an io.Writer that always fails with ErrMockWrite.
type FailingWriter struct{}

// Write implements io.Writer.
func (FailingWriter) Write([]byte) (int, error) {
	return 0, ErrMockWrite
}
