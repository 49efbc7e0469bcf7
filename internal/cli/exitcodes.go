package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tasklist/internal/models"
	taskservice "github.com/thenoetrevino/tasklist/internal/services/task"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors or any error that doesn't fit the specific
	// categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, malformed arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Files that cannot be read or written.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid status values, empty titles or malformed deadlines
	// under strict validation.
	ExitValidation = 5
)

// ExitCodeError carries the exit code a failed command should terminate with.
// The message has already been reported to the user.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, models.ErrTaskNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrInvalidStatus), errors.Is(err, taskservice.ErrInvalidArgument):
		return ExitValidation
	default:
		return ExitError
	}
}

// Fail reports err through the formatter and returns it tagged with an exit
// code. Task-not-found and validation errors get their own codes and error
// codes; anything else is reported under fallbackCode.
func Fail(formatter *OutputFormatter, fallbackCode string, err error) error {
	code := fallbackCode
	suggestion := ""
	exit := ExitCodeFor(err)

	switch exit {
	case ExitNotFound:
		code = "TASK_NOT_FOUND"
		suggestion = "Use 'tasklist task list' to see available tasks"
	case ExitValidation:
		code = "VALIDATION_ERROR"
	}

	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		return fmt.Errorf("error formatting error message: %w (original: %w)", fmtErr, err)
	}
	return &ExitCodeError{Code: exit, Err: err}
}

// Usage reports a usage problem and returns an ExitUsage error
func Usage(formatter *OutputFormatter, code string, err error, suggestion string) error {
	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		return fmt.Errorf("error formatting error message: %w (original: %w)", fmtErr, err)
	}
	return &ExitCodeError{Code: ExitUsage, Err: err}
}
