package cli

import (
	"errors"

	"github.com/aidanlsb/journal/internal/journal"
	"github.com/aidanlsb/journal/internal/scan"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Journal errors
	ErrRootNotFound   = "ROOT_NOT_FOUND"
	ErrRootUnreadable = "ROOT_UNREADABLE"
	ErrConfigInvalid  = "CONFIG_INVALID"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Domain errors
	ErrNoEmptyDays = "NO_EMPTY_DAYS"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for non-fatal issues.
const (
	WarnUnparsableEntries = "UNPARSABLE_ENTRIES"
	WarnNoSchedule        = "NO_SCHEDULE"
)

var (
	// errIssuesFound is returned by validate commands when the report should
	// fail the process. The report itself has already been printed.
	errIssuesFound = errors.New("validation issues found")

	// errHandled marks an error already written as a JSON envelope.
	errHandled = errors.New("error already reported")
)

// codedError carries a stable error code and hint alongside an error.
type codedError struct {
	Code       string
	Err        error
	Suggestion string
}

func (e *codedError) Error() string {
	return e.Err.Error()
}

func (e *codedError) Unwrap() error {
	return e.Err
}

// scanErrorCode maps errors from journal traversal to error codes.
func scanErrorCode(err error) string {
	switch {
	case errors.Is(err, scan.ErrRootNotFound):
		return ErrRootNotFound
	case errors.Is(err, scan.ErrRootUnreadable):
		return ErrRootUnreadable
	case errors.Is(err, journal.ErrNoEmptyDays):
		return ErrNoEmptyDays
	default:
		return ErrInternal
	}
}

// handleScanError reports a traversal failure with a code derived from err.
func handleScanError(err error) error {
	code := scanErrorCode(err)
	suggestion := ""
	switch code {
	case ErrRootNotFound:
		suggestion = "Check --root and --class, or run 'jrn create-year <year>' to scaffold the class"
	case ErrNoEmptyDays:
		suggestion = "Every day up to today already has content"
	}
	return handleError(code, err, suggestion)
}
