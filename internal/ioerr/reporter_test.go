package ioerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterFormatsIOFailure(t *testing.T) {
	reporter := NewReporter()
	err := IOFailure("prog.json", errors.New("no such file or directory"))

	formatted := reporter.Report(err)

	assert.Contains(t, formatted, "error["+string(CodeIO)+"]")
	assert.Contains(t, formatted, "prog.json")
	assert.Contains(t, formatted, "no such file or directory")
}

func TestReporterFormatsFormatFailure(t *testing.T) {
	reporter := NewReporter()
	err := FormatFailure("missing \"functions\" array", nil)

	formatted := reporter.Report(err)

	assert.Contains(t, formatted, "error["+string(CodeFormat)+"]")
	assert.Contains(t, formatted, "missing \"functions\" array")
}

func TestReaderErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := IOFailure("", cause)

	assert.ErrorIs(t, err, cause)
}
