package cli

import clierrors "github.com/blackroad/chlog/internal/errors"

// Exit codes for the chlog CLI.
// These codes support scripting and CI integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitInvariantViolation indicates a data-model rule was violated
	// (invalid change type, empty summary, frozen version, bad version
	// string, nothing to bump).
	ExitInvariantViolation = 1

	// ExitInvalidArguments indicates invalid command arguments or
	// configuration.
	ExitInvalidArguments = 2

	// ExitNotFound indicates the target project or version has no
	// recorded state.
	ExitNotFound = 3

	// ExitPersistenceFailure indicates an I/O failure on store load or
	// save; the previously persisted state is left untouched.
	ExitPersistenceFailure = 4
)

// exitCodeFor maps an error category to a process exit code.
func exitCodeFor(category clierrors.ErrorCategory) int {
	switch category {
	case clierrors.Invariant:
		return ExitInvariantViolation
	case clierrors.NotFound:
		return ExitNotFound
	case clierrors.Persistence:
		return ExitPersistenceFailure
	default:
		return ExitInvalidArguments
	}
}
