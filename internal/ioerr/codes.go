package ioerr

// Code identifies one of the two fatal error kinds spec.md 7 admits:
// everything else (unknown op, missing terminator label, non-integer
// const, division by zero) is normal analysis, never an error code.
//
// Error code ranges, in the same spirit as the teacher's E0001-E0999
// scheme, scaled to this toolkit's much smaller taxonomy:
// E0001-E0099: input reader errors
type Code string

const (
	// CodeIO: the input document could not be read at all (file
	// missing, permission denied, stdin read failure).
	CodeIO Code = "E0001"

	// CodeFormat: the input document was read but is not well-formed,
	// or lacks the "functions" array.
	CodeFormat Code = "E0002"
)
