// Package errors provides structured error presentation for the chlog CLI.
// Domain failures from the changelog package are converted into categorized
// errors with actionable remediation guidance; the CLI layer is the only
// place this conversion happens.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration errors are caused by invalid configuration files.
	Configuration
	// Invariant errors are violations of the data model's rules
	// (bad change type, empty summary, frozen version).
	Invariant
	// NotFound errors target a project or version with no recorded state.
	NotFound
	// Persistence errors are I/O failures on store load or save.
	Persistence
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Invariant:
		return "Invariant Violation"
	case NotFound:
		return "Not Found"
	case Persistence:
		return "Persistence Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates an argument error with remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewConfigError creates a configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewInvariantError creates an invariant violation error.
func NewInvariantError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Invariant, Message: message, Remediation: remediation}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: NotFound, Message: message, Remediation: remediation}
}

// NewPersistenceError creates a persistence error.
func NewPersistenceError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Persistence, Message: message, Remediation: remediation}
}

// Wrap wraps an existing error with a CLIError, preserving the message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{Category: category, Message: err.Error(), Remediation: remediation}
}

// WrapWithMessage wraps an error with a custom message prefix.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
	}
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
