package ioerr

import (
	"fmt"

	"github.com/fatih/color"
)

// Reporter formats a ReaderError the way kanso's internal/errors
// package formats a CompilerError — a colored "error[CODE]: message"
// line — minus the source-position caret, since the input here is a
// structured document rather than source text with a lexer position.
type Reporter struct{}

// NewReporter creates a new error reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report renders a single-line diagnostic for a ReaderError.
func (r *Reporter) Report(err *ReaderError) string {
	levelColor := color.New(color.FgRed, color.Bold).SprintFunc()
	return fmt.Sprintf("%s[%s]: %s", levelColor("error"), err.Code, err.Error())
}
