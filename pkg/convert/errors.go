package convert

import (
	"errors"
	"fmt"
)

// Sentinel errors for categorization via errors.Is.
var (
	// ErrInputNotFound indicates the input path does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrMalformedHeading indicates a '#' line with no heading text.
	ErrMalformedHeading = errors.New("malformed heading")

	// ErrIO indicates a read or write failure other than a missing input.
	ErrIO = errors.New("i/o failure")
)

// InputNotFoundError reports a missing input file.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return "missing input " + e.Path
}

// Is reports ErrInputNotFound as a match.
func (e *InputNotFoundError) Is(target error) bool {
	return target == ErrInputNotFound
}

func (e *InputNotFoundError) Unwrap() error {
	return e.Err
}

// MalformedHeadingError reports a line that starts with a heading marker
// but carries no text after it.
type MalformedHeadingError struct {
	// Line is the 1-based line number.
	Line int

	// Text is the trimmed line content.
	Text string
}

func (e *MalformedHeadingError) Error() string {
	return fmt.Sprintf("line %d: heading %q has no text", e.Line, e.Text)
}

// Is reports ErrMalformedHeading as a match.
func (e *MalformedHeadingError) Is(target error) bool {
	return target == ErrMalformedHeading
}

// IOError wraps a read or write failure on a path.
type IOError struct {
	// Op is "read" or "write".
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Is reports ErrIO as a match.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}
