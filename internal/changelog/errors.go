package changelog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for invariants that need no extra context.
var (
	// ErrEmptySummary is returned when a change summary is blank.
	ErrEmptySummary = errors.New("change summary cannot be empty")

	// ErrNoChangesToBump is returned when a bump is requested but the
	// project has no pending draft changes.
	ErrNoChangesToBump = errors.New("no pending changes to compute a version bump from")
)

// InvalidChangeTypeError is returned when a change type is not one of the
// seven known types.
type InvalidChangeTypeError struct {
	Type string
}

func (e *InvalidChangeTypeError) Error() string {
	valid := make([]string, 0, 7)
	for _, t := range CanonicalOrder() {
		valid = append(valid, string(t))
	}
	return fmt.Sprintf("invalid change type %q (valid: %s)", e.Type, strings.Join(valid, ", "))
}

// ProjectNotFoundError is returned by writes and renders that target a
// project with no recorded versions.
type ProjectNotFoundError struct {
	Project string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %q not found", e.Project)
}

// VersionNotFoundError is returned when a (project, version) pair has no
// recorded changes and was never explicitly created.
type VersionNotFoundError struct {
	Project string
	Version string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %q not found for project %q", e.Version, e.Project)
}

// VersionFinalizedError is returned when a change is added to a version
// whose change set is already frozen.
type VersionFinalizedError struct {
	Project string
	Version string
}

func (e *VersionFinalizedError) Error() string {
	return fmt.Sprintf("version %q of project %q is finalized and no longer accepts changes", e.Version, e.Project)
}

// AlreadyFinalizedError is returned when finalize is called twice on the
// same version.
type AlreadyFinalizedError struct {
	Project string
	Version string
}

func (e *AlreadyFinalizedError) Error() string {
	return fmt.Sprintf("version %q of project %q is already finalized", e.Version, e.Project)
}

// InvalidVersionError is returned when a version string does not match the
// MAJOR.MINOR.PATCH shape required for bump suggestions.
type InvalidVersionError struct {
	Input string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version string %q (expected MAJOR.MINOR.PATCH)", e.Input)
}

// PersistenceError wraps an I/O failure on store load or save. It is the
// only fatal error class: the command aborts and the previously persisted
// state is left untouched.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s store %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
