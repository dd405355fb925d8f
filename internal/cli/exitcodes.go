package cli

import (
	"errors"

	"github.com/yaklabco/gramlint/internal/configloader"
	"github.com/yaklabco/gramlint/pkg/config"
	"github.com/yaklabco/gramlint/pkg/runner"
)

// Exit codes for gramlint, following sysexits.h where one applies.
const (
	// ExitSuccess indicates no issue at or above the fail-on severity.
	ExitSuccess = 0

	// ExitIssuesFound indicates at least one issue at or above the fail-on severity.
	ExitIssuesFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates that one or more inputs could not be read.
	ExitIOError = 74
)

var (
	// ErrIssuesFound is returned when issues at or above the fail-on severity
	// are found. It only selects the exit code and is never logged.
	ErrIssuesFound = errors.New("grammar issues found")

	// ErrInputsUnreadable is returned when some inputs could not be checked.
	// The reporter has already listed them.
	ErrInputsUnreadable = errors.New("some inputs could not be read")

	// errConfig marks configuration loading failures.
	errConfig = errors.New("failed to load configuration")
)

// UsageError is a command-line usage error.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// usageError wraps err as a usage error.
func usageError(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// ExitCodeFromResult determines the exit code for a finished run.
// Issues at or above failOn take precedence over unreadable inputs.
func ExitCodeFromResult(result *runner.Result, failOn config.Severity) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasFailures(failOn) {
		return ExitIssuesFound
	}
	if result.HasErrors() {
		return ExitIOError
	}
	return ExitSuccess
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var usageErr *UsageError
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssuesFound
	case errors.Is(err, ErrInputsUnreadable):
		return ExitIOError
	case errors.As(err, &usageErr):
		return ExitInvalidUsage
	case errors.As(err, &validationErr), errors.Is(err, errConfig):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// IsSilent reports whether err only carries an exit code and should not be logged.
func IsSilent(err error) bool {
	return errors.Is(err, ErrIssuesFound) || errors.Is(err, ErrInputsUnreadable)
}
