package ioerr

import "fmt"

// ReaderError is a fatal input-reader failure (spec.md 7's "Input I/O
// failure" and "Input format failure" kinds). Every other irregularity
// the core encounters is handled conservatively inside the analysis and
// never surfaces as an error.
type ReaderError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *ReaderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ReaderError) Unwrap() error {
	return e.Cause
}

// IOFailure wraps an error encountered while reading the input document
// itself (file open/read, or stdin read).
func IOFailure(path string, cause error) *ReaderError {
	msg := "failed to read standard input"
	if path != "" {
		msg = fmt.Sprintf("failed to read %s", path)
	}
	return &ReaderError{Code: CodeIO, Message: msg, Cause: cause}
}

// FormatFailure reports that the document was read but is not
// well-formed (bad JSON, or missing the required "functions" array).
func FormatFailure(message string, cause error) *ReaderError {
	return &ReaderError{Code: CodeFormat, Message: message, Cause: cause}
}
