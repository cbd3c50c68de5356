package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/yaklabco/gomd2html/internal/configloader"
	"github.com/yaklabco/gomd2html/internal/logging"
	"github.com/yaklabco/gomd2html/pkg/convert"
)

// Exit codes for gomd2html.
const (
	// ExitSuccess indicates the output was fully written.
	ExitSuccess = 0

	// ExitMissingInput indicates the input file does not exist.
	ExitMissingInput = 1

	// ExitFailures indicates batch files failed or check --strict found constructs.
	ExitFailures = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration errors and strict heading failures.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// usageLine is printed for wrong positional arity.
const usageLine = "Usage: gomd2html INPUT.md OUTPUT.html"

var (
	// ErrBatchFailures is returned by batch and check when at least one file failed.
	// The failures have already been reported.
	ErrBatchFailures = errors.New("one or more files failed")

	// ErrUnsupportedConstructs is returned by check --strict when findings exist.
	ErrUnsupportedConstructs = errors.New("unsupported constructs found")
)

// UsageError reports invalid command-line usage.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	if e.Msg == "" {
		return usageLine
	}
	return e.Msg
}

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	var (
		usageErr      *UsageError
		validationErr *configloader.ValidationError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usageErr):
		return ExitInvalidUsage
	case errors.Is(err, convert.ErrInputNotFound):
		return ExitMissingInput
	case errors.Is(err, ErrBatchFailures), errors.Is(err, ErrUnsupportedConstructs):
		return ExitFailures
	case errors.Is(err, configloader.ErrInvalidConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, convert.ErrMalformedHeading):
		return ExitConfigError
	case errors.Is(err, convert.ErrIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// ReportError prints err to w in the form the user sees and returns the
// exit code for it. Already-reported failures print nothing.
func ReportError(w io.Writer, err error) int {
	code := ExitCodeFromError(err)

	var (
		usageErr    *UsageError
		notFoundErr *convert.InputNotFoundError
	)

	switch {
	case err == nil:
	case errors.As(err, &usageErr):
		fmt.Fprintln(w, usageErr.Error())
	case errors.As(err, &notFoundErr):
		fmt.Fprintln(w, "Missing "+notFoundErr.Path)
	case errors.Is(err, ErrBatchFailures), errors.Is(err, ErrUnsupportedConstructs):
	default:
		logging.NewWithWriter(w, "info").Error("gomd2html failed", logging.FieldError, err)
	}

	return code
}
